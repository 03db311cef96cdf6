package opportunity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("opportunity not found")

type Repository interface {
	ListActive(ctx context.Context) ([]Opportunity, error)
	GetByID(ctx context.Context, id uuid.UUID) (Opportunity, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Opportunity, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, o Opportunity) error
}
