package repository

import (
	"context"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
)

// LoanRepository define el puerto de persistencia para Loan.
type LoanRepository interface {
	Create(ctx context.Context, loan *entity.Loan) error
	List(ctx context.Context, limit, offset int) ([]*entity.Loan, error)
	ListByClient(ctx context.Context, clientID int64) ([]*entity.Loan, error)
}
