package repository

import (
	"context"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia para Transfer.
type TransferRepository interface {
	Create(ctx context.Context, transfer *entity.Transfer) error
	List(ctx context.Context, limit, offset int) ([]*entity.Transfer, error)
}
