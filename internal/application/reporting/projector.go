package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Banco-api/internal/application/dto"
	"github.com/jhoicas/Banco-api/internal/application/ledger"
	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

// Projector proyecciones de solo lectura sobre el estado asentado del
// ledger. Sin invariantes: una clave natural que resuelve pero no tiene
// filas hijas produce agregados en cero, no un error. domain.ErrNotFound
// solo cuando la clave misma no resuelve.
type Projector struct {
	resolver *ledger.Resolver
	repo     repository.ReportingRepository
}

// NewProjector construye el proyector.
func NewProjector(resolver *ledger.Resolver, repo repository.ReportingRepository) *Projector {
	return &Projector{resolver: resolver, repo: repo}
}

// ClientLoanSummary agrega los préstamos del cliente identificado por nombre
// completo.
func (p *Projector) ClientLoanSummary(ctx context.Context, clientFullName string) (*dto.LoanSummaryResponse, error) {
	clientID, err := p.resolver.Resolve(ctx, ledger.KindClient, clientFullName)
	if err != nil {
		return nil, err
	}
	summary, err := p.repo.LoanSummaryByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return loanSummaryResponse(clientFullName, summary), nil
}

// EmployeeLoanSummary agrega los préstamos colocados por el empleado.
func (p *Projector) EmployeeLoanSummary(ctx context.Context, employeeName string) (*dto.LoanSummaryResponse, error) {
	employeeID, err := p.resolver.Resolve(ctx, ledger.KindEmployee, employeeName)
	if err != nil {
		return nil, err
	}
	summary, err := p.repo.LoanSummaryByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return loanSummaryResponse(employeeName, summary), nil
}

// AccountWithdrawalSummary agrega los retiros de la cuenta dentro del rango
// [from, to]; extremos en cero significan sin límite.
func (p *Projector) AccountWithdrawalSummary(ctx context.Context, accountNumber string, from, to time.Time) (*dto.WithdrawalSummaryResponse, error) {
	accountID, err := p.resolver.Resolve(ctx, ledger.KindAccount, accountNumber)
	if err != nil {
		return nil, err
	}
	summary, err := p.repo.WithdrawalSummaryByAccount(ctx, accountID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.WithdrawalSummaryResponse{
		AccountNumber:   accountNumber,
		WithdrawalCount: summary.WithdrawalCount,
		TotalAmount:     summary.TotalAmount,
	}, nil
}

// AccountsAboveBalance cuentas con saldo estrictamente mayor al umbral.
func (p *Projector) AccountsAboveBalance(ctx context.Context, threshold decimal.Decimal) ([]dto.AccountResponse, error) {
	accounts, err := p.repo.AccountsAboveBalance(ctx, threshold)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.AccountResponse{
			AccountID:     a.ID,
			IDClient:      a.ClientID,
			AccountNumber: a.AccountNumber,
			Balance:       a.Balance,
		})
	}
	return out, nil
}

// LoansAboveAmount préstamos con monto estrictamente mayor al umbral.
func (p *Projector) LoansAboveAmount(ctx context.Context, threshold decimal.Decimal) ([]dto.LoanListItem, error) {
	loans, err := p.repo.LoansAboveAmount(ctx, threshold)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoanListItem, 0, len(loans))
	for _, l := range loans {
		out = append(out, dto.LoanListItem{
			LoanID:           l.ID,
			IDClient:         l.ClientID,
			EmployeeID:       l.EmployeeID,
			Amount:           l.Amount,
			InterestRate:     l.InterestRate,
			DisbursementDate: l.DisbursementDate,
			DueDate:          l.DueDate,
			Balance:          l.Balance,
			Status:           l.Status,
			Reference:        l.Reference,
		})
	}
	return out, nil
}

// TransfersInRange transferencias con fecha dentro del rango [from, to].
func (p *Projector) TransfersInRange(ctx context.Context, from, to time.Time) ([]dto.TransferListItem, error) {
	transfers, err := p.repo.TransfersInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferListItem, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, dto.TransferListItem{
			TransferID:     t.ID,
			FromAccountID:  t.FromAccountID,
			ToAccountID:    t.ToAccountID,
			Amount:         t.Amount,
			TransferDate:   t.Date,
			TransferMethod: t.Method,
			Status:         t.Status,
			Reference:      t.Reference,
		})
	}
	return out, nil
}

func loanSummaryResponse(key string, s *repository.LoanSummary) *dto.LoanSummaryResponse {
	return &dto.LoanSummaryResponse{
		NaturalKey:         key,
		LoanCount:          s.LoanCount,
		TotalAmount:        s.TotalAmount,
		OutstandingBalance: s.OutstandingBalance,
	}
}
