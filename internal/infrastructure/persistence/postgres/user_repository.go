package postgres

import (
	"context"
	"fmt"
	"strings"

	"opocentral/internal/database"
	"opocentral/internal/domain/user"

	"github.com/google/uuid"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, user_type,
	full_name, bio, location, education, skills, interests, social_media,
	saved_opportunities, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, user_type,
			full_name, bio, location, education, skills, interests, social_media, saved_opportunities)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.UserType,
		u.Profile.FullName, u.Profile.Bio, u.Profile.Location, u.Profile.Education,
		emptyIfNil(u.Profile.Skills), emptyIfNil(u.Profile.Interests), u.Profile.SocialMedia,
		emptyUUIDsIfNil(u.Profile.SavedOpportunities),
	)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, upd user.ProfileUpdate) error {
	sets := make([]string, 0, 8)
	args := []any{userID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.FullName != nil {
		add("full_name", *upd.FullName)
	}
	if upd.Bio != nil {
		add("bio", *upd.Bio)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Education != nil {
		add("education", *upd.Education)
	}
	if upd.Skills != nil {
		add("skills", upd.Skills)
	}
	if upd.Interests != nil {
		add("interests", upd.Interests)
	}
	if upd.SocialMedia != nil {
		add("social_media", *upd.SocialMedia)
	}

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	n, err := r.db.Exec(ctx,
		`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = $1`,
		args...,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

// AddSavedOpportunity appends in a single statement; the ANY guard makes the
// call idempotent without a read-modify-write race.
func (r *UserRepository) AddSavedOpportunity(ctx context.Context, userID, opportunityID uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users
		 SET saved_opportunities = array_append(saved_opportunities, $2), updated_at = now()
		 WHERE id = $1 AND NOT ($2 = ANY(saved_opportunities))`,
		userID, opportunityID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		// already saved or user missing; only the latter is an error
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return user.ErrNotFound
		}
	}
	return nil
}

// AddApplication relies on the (user_id, opportunity_id) primary key for the
// at-most-one-application invariant.
func (r *UserRepository) AddApplication(ctx context.Context, userID uuid.UUID, app user.Application) error {
	n, err := r.db.Exec(ctx,
		`INSERT INTO applications (user_id, opportunity_id, status, applied_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, opportunity_id) DO NOTHING`,
		userID, app.OpportunityID, app.Status, app.AppliedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrDuplicateApplication
	}
	return nil
}

func (r *UserRepository) ListApplications(ctx context.Context, userID uuid.UUID) ([]user.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT opportunity_id, status, applied_at
		 FROM applications WHERE user_id = $1 ORDER BY applied_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.Application, 0)
	for rows.Next() {
		var a user.Application
		if err := rows.Scan(&a.OpportunityID, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.UserType,
		&u.Profile.FullName, &u.Profile.Bio, &u.Profile.Location, &u.Profile.Education,
		&u.Profile.Skills, &u.Profile.Interests, &u.Profile.SocialMedia,
		&u.Profile.SavedOpportunities, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	if u.Profile.Skills == nil {
		u.Profile.Skills = []string{}
	}
	if u.Profile.Interests == nil {
		u.Profile.Interests = []string{}
	}
	if u.Profile.SavedOpportunities == nil {
		u.Profile.SavedOpportunities = []uuid.UUID{}
	}
	return u, nil
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func emptyUUIDsIfNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
