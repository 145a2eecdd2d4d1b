package pipeline

import (
	"context"
	"time"

	"traveldesk/internal/domain"
)

// LeadRepository defines the lead collection the pipeline operates on.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) error
	List(ctx context.Context) ([]*domain.Lead, error)
	CountByStatus(ctx context.Context) (map[domain.Stage]int, error)
}

// Clock supplies the timestamp written on every mutation.
type Clock interface {
	Now() time.Time
}
