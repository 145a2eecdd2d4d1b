package repository

import (
	"context"
	"errors"
	"sync"

	"traveldesk/internal/domain"
)

var ErrDuplicateLeadID = errors.New("lead id already exists")

// LeadRepository is an in-memory lead store. The collection is owned by
// a single process; a mutex guards it so background jobs (reminder
// sweeps) can read while the session mutates.
//
// Reads hand out deep copies: projections recomputed from List can
// never observe a half-applied mutation, and callers cannot reach into
// stored state.
type LeadRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Lead
	order []string
}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{
		byID: make(map[string]*domain.Lead),
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[lead.ID]; ok {
		return ErrDuplicateLeadID
	}
	r.byID[lead.ID] = lead.Clone()
	r.order = append(r.order, lead.ID)
	return nil
}

// GetByID returns a copy of the lead, or (nil, nil) when absent.
// Mapping absence to a domain error is the caller's concern.
func (r *LeadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return lead.Clone(), nil
}

// Update replaces the stored lead. Updating an unknown id is a no-op:
// the collection stays exactly as it was.
func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[lead.ID]; !ok {
		return nil
	}
	r.byID[lead.ID] = lead.Clone()
	return nil
}

// List returns all leads in insertion order. Board columns group this
// list without re-sorting, so the order must be stable across calls.
func (r *LeadRepository) List(ctx context.Context) ([]*domain.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Lead, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *LeadRepository) CountByStatus(ctx context.Context) (map[domain.Stage]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.Stage]int)
	for _, lead := range r.byID {
		counts[lead.Status]++
	}
	return counts, nil
}
