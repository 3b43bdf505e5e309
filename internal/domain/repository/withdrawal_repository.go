package repository

import (
	"context"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
)

// WithdrawalRepository define el puerto de persistencia para Withdrawal.
type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *entity.Withdrawal) error
	List(ctx context.Context, limit, offset int) ([]*entity.Withdrawal, error)
	ListByAccount(ctx context.Context, accountID int64) ([]*entity.Withdrawal, error)
}
