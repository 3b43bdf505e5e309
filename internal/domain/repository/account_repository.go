package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account.
// El saldo solo se escribe vía UpdateBalance, y siempre con la fila
// previamente bloqueada (GetForUpdate) dentro de la transacción del caller.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
	GetByNumber(ctx context.Context, accountNumber string) (*entity.Account, error)
	// GetForUpdate obtiene la cuenta y bloquea la fila (SELECT FOR UPDATE)
	// hasta el commit o rollback de la transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Account, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error
	List(ctx context.Context, limit, offset int) ([]*entity.Account, error)
}
