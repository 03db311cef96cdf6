package postgres

import (
	"context"

	"opocentral/internal/database"
	"opocentral/internal/domain/opportunity"

	"github.com/google/uuid"
)

type OpportunityRepository struct {
	db database.DB
}

func NewOpportunityRepository(db database.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

const opportunityColumns = `id, title, description, company, location, type,
	requirements, benefits, salary, duration, status, deadline, created_at, created_by`

func (r *OpportunityRepository) ListActive(ctx context.Context) ([]opportunity.Opportunity, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+opportunityColumns+` FROM opportunities
		 WHERE status = $1 ORDER BY created_at DESC`,
		opportunity.StatusActive,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]opportunity.Opportunity, 0)
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OpportunityRepository) GetByID(ctx context.Context, id uuid.UUID) (opportunity.Opportunity, error) {
	row := r.db.QueryRow(ctx, `SELECT `+opportunityColumns+` FROM opportunities WHERE id = $1`, id)
	o, err := scanOpportunity(row)
	if err != nil {
		if isNoRows(err) {
			return opportunity.Opportunity{}, opportunity.ErrNotFound
		}
		return opportunity.Opportunity{}, err
	}
	return o, nil
}

func (r *OpportunityRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]opportunity.Opportunity, error) {
	out := make(map[uuid.UUID]opportunity.Opportunity, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+opportunityColumns+` FROM opportunities WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		out[o.ID] = o
	}
	return out, rows.Err()
}

func (r *OpportunityRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM opportunities WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *OpportunityRepository) Create(ctx context.Context, o opportunity.Opportunity) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO opportunities (id, title, description, company, location, type,
			requirements, benefits, salary, duration, status, deadline, created_at, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		o.ID, o.Title, o.Description, o.Company, o.Location, o.Type,
		o.Requirements, o.Benefits, o.Salary, o.Duration, o.Status, o.Deadline,
		o.CreatedAt, o.CreatedBy,
	)
	return err
}

func scanOpportunity(row database.Row) (opportunity.Opportunity, error) {
	var o opportunity.Opportunity
	err := row.Scan(
		&o.ID, &o.Title, &o.Description, &o.Company, &o.Location, &o.Type,
		&o.Requirements, &o.Benefits, &o.Salary, &o.Duration, &o.Status,
		&o.Deadline, &o.CreatedAt, &o.CreatedBy,
	)
	if err != nil {
		return opportunity.Opportunity{}, err
	}

	if o.Requirements == nil {
		o.Requirements = []string{}
	}
	if o.Benefits == nil {
		o.Benefits = []string{}
	}
	return o, nil
}
