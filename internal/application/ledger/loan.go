package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Banco-api/internal/application/dto"
	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/entity"
)

// IssueLoan emite un préstamo: resuelve cliente y empleado por nombre
// completo y registra la línea. No toca saldos de cuentas: el préstamo es
// una línea de ledger separada con su propio balance.
func (p *Processor) IssueLoan(ctx context.Context, in dto.LoanCreate) (*dto.LoanResponse, error) {
	if in.ClientFullName == "" || in.EmployeeFullName == "" || !positiveAmount(in.Amount) {
		return nil, domain.ErrInvalidInput
	}
	if in.Balance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.LoanActive
	}
	ref := uuid.New().String()

	var resp *dto.LoanResponse
	err := p.txRunner.Run(ctx, func(r Repos) error {
		client, err := r.Clients.GetByFullName(ctx, in.ClientFullName)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("cliente %q: %w", in.ClientFullName, domain.ErrNotFound)
		}
		employee, err := r.Employees.GetByName(ctx, in.EmployeeFullName)
		if err != nil {
			return err
		}
		if employee == nil {
			return fmt.Errorf("empleado %q: %w", in.EmployeeFullName, domain.ErrNotFound)
		}

		loan := &entity.Loan{
			ClientID:         client.ID,
			EmployeeID:       employee.ID,
			Amount:           in.Amount,
			InterestRate:     in.InterestRate,
			DisbursementDate: in.DisbursementDate,
			DueDate:          in.DueDate,
			Balance:          in.Balance,
			Status:           in.Status,
			Reference:        ref,
		}
		if err := r.Loans.Create(ctx, loan); err != nil {
			return err
		}
		resp = &dto.LoanResponse{
			LoanCreate: in,
			LoanID:     loan.ID,
			IDClient:   client.ID,
			EmployeeID: employee.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.log.Info().
		Str("reference", ref).
		Int64("loan_id", resp.LoanID).
		Int64("client_id", resp.IDClient).
		Str("amount", in.Amount.String()).
		Msg("préstamo emitido")
	return resp, nil
}
