package repository

import (
	"context"
	"errors"

	"deposit_book/internal/domain"
)

type DepositorRepository interface {
	Save(ctx context.Context, depositor *domain.Depositor) error
	GetByID(ctx context.Context, id string) (*domain.Depositor, error)
	GetAll(ctx context.Context) ([]*domain.Depositor, error)
}

var ErrNotFound = errors.New("not found")
