package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"deposit_book/internal/domain"
	"deposit_book/internal/repository"
)

// DepositorRepository keeps depositors in an append-only slice so that
// listings come back in insertion order. Lookup is a linear scan over the
// exact ID string.
type DepositorRepository struct {
	mu         sync.RWMutex
	depositors []*domain.Depositor
}

func NewDepositorRepository() *DepositorRepository {
	return &DepositorRepository{}
}

// Save appends the depositor. IDs are random draws with no collision
// check, so a duplicate ID is stored as-is rather than rejected.
func (r *DepositorRepository) Save(ctx context.Context, depositor *domain.Depositor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	depositor.CreatedAt = time.Now()
	r.depositors = append(r.depositors, depositor)

	return nil
}

// GetByID returns the first depositor whose ID matches exactly.
func (r *DepositorRepository) GetByID(ctx context.Context, id string) (*domain.Depositor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.depositors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: depositor %s", repository.ErrNotFound, id)
}

// GetAll returns all depositors in insertion order.
func (r *DepositorRepository) GetAll(ctx context.Context) ([]*domain.Depositor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Depositor, len(r.depositors))
	copy(result, r.depositors)

	return result, nil
}
