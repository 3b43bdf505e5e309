package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
)

// LoanSummary agregado de préstamos (por cliente o por empleado).
type LoanSummary struct {
	LoanCount          int64
	TotalAmount        decimal.Decimal
	OutstandingBalance decimal.Decimal
}

// WithdrawalSummary agregado de retiros de una cuenta.
type WithdrawalSummary struct {
	WithdrawalCount int64
	TotalAmount     decimal.Decimal
}

// ReportingRepository consultas de solo lectura sobre el estado asentado.
// Sin invariantes: los agregados vacíos se devuelven en cero, nunca como error.
type ReportingRepository interface {
	LoanSummaryByClient(ctx context.Context, clientID int64) (*LoanSummary, error)
	LoanSummaryByEmployee(ctx context.Context, employeeID int64) (*LoanSummary, error)
	// WithdrawalSummaryByAccount agrega retiros de la cuenta dentro del rango
	// [from, to]; un rango en cero significa sin límite en ese extremo.
	WithdrawalSummaryByAccount(ctx context.Context, accountID int64, from, to time.Time) (*WithdrawalSummary, error)
	AccountsAboveBalance(ctx context.Context, threshold decimal.Decimal) ([]*entity.Account, error)
	LoansAboveAmount(ctx context.Context, threshold decimal.Decimal) ([]*entity.Loan, error)
	TransfersInRange(ctx context.Context, from, to time.Time) ([]*entity.Transfer, error)
}
