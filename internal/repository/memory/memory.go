package memory

import (
	"deposit_book/internal/repository"
)

var (
	_ repository.DepositorRepository = (*DepositorRepository)(nil)
)
