package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

var _ repository.LoanRepository = (*LoanRepo)(nil)

// LoanRepo implementación de LoanRepository sobre PostgreSQL (usable con pool o tx).
type LoanRepo struct {
	q Querier
}

// NewLoanRepository construye el adaptador de préstamos. Pasar pool o tx (Querier).
func NewLoanRepository(q Querier) *LoanRepo {
	return &LoanRepo{q: q}
}

const loanColumns = `loan_id, id_client, employee_id, amount, interest_rate, disbursement_date, due_date, balance, status, reference`

// Create persiste el préstamo y asigna el id generado (RETURNING).
func (r *LoanRepo) Create(ctx context.Context, loan *entity.Loan) error {
	query := `
		INSERT INTO loans (id_client, employee_id, amount, interest_rate, disbursement_date, due_date, balance, status, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING loan_id`
	err := r.q.QueryRow(ctx, query,
		loan.ClientID, loan.EmployeeID, loan.Amount, loan.InterestRate,
		loan.DisbursementDate, loan.DueDate, loan.Balance, loan.Status, loan.Reference,
	).Scan(&loan.ID)
	if err != nil {
		return fmt.Errorf("insert loan: %w", err)
	}
	return nil
}

// List devuelve préstamos paginados por id.
func (r *LoanRepo) List(ctx context.Context, limit, offset int) ([]*entity.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY loan_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return r.collect(rows)
}

// ListByClient devuelve los préstamos de un cliente, ordenados por id.
func (r *LoanRepo) ListByClient(ctx context.Context, clientID int64) ([]*entity.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id_client = $1 ORDER BY loan_id`
	rows, err := r.q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list loans by client: %w", err)
	}
	return r.collect(rows)
}

func (r *LoanRepo) collect(rows pgx.Rows) ([]*entity.Loan, error) {
	defer rows.Close()
	var out []*entity.Loan
	for rows.Next() {
		var l entity.Loan
		if err := rows.Scan(
			&l.ID, &l.ClientID, &l.EmployeeID, &l.Amount, &l.InterestRate,
			&l.DisbursementDate, &l.DueDate, &l.Balance, &l.Status, &l.Reference,
		); err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
