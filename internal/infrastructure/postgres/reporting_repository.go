package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

var _ repository.ReportingRepository = (*ReportingRepo)(nil)

// ReportingRepo consultas de solo lectura sobre el estado asentado del ledger.
// Siempre sobre el pool: las proyecciones no participan en transacciones.
type ReportingRepo struct {
	pool *pgxpool.Pool
}

// NewReportingRepository construye el adaptador de reportes.
func NewReportingRepository(pool *pgxpool.Pool) *ReportingRepo {
	return &ReportingRepo{pool: pool}
}

// LoanSummaryByClient agrega los préstamos de un cliente. Cliente sin
// préstamos produce agregados en cero (COALESCE), no error.
func (r *ReportingRepo) LoanSummaryByClient(ctx context.Context, clientID int64) (*repository.LoanSummary, error) {
	const query = `
	SELECT
	    COUNT(*)                      AS loan_count,
	    COALESCE(SUM(amount), 0)      AS total_amount,
	    COALESCE(SUM(balance), 0)     AS outstanding_balance
	FROM loans
	WHERE id_client = $1`
	return r.scanLoanSummary(ctx, query, clientID)
}

// LoanSummaryByEmployee agrega los préstamos colocados por un empleado.
func (r *ReportingRepo) LoanSummaryByEmployee(ctx context.Context, employeeID int64) (*repository.LoanSummary, error) {
	const query = `
	SELECT
	    COUNT(*)                      AS loan_count,
	    COALESCE(SUM(amount), 0)      AS total_amount,
	    COALESCE(SUM(balance), 0)     AS outstanding_balance
	FROM loans
	WHERE employee_id = $1`
	return r.scanLoanSummary(ctx, query, employeeID)
}

func (r *ReportingRepo) scanLoanSummary(ctx context.Context, query string, id int64) (*repository.LoanSummary, error) {
	var s repository.LoanSummary
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.LoanCount, &s.TotalAmount, &s.OutstandingBalance)
	if err != nil {
		return nil, fmt.Errorf("loan summary: %w", err)
	}
	return &s, nil
}

// WithdrawalSummaryByAccount agrega los retiros de la cuenta dentro del rango
// [from, to]. Extremos en cero significan sin límite en ese lado.
func (r *ReportingRepo) WithdrawalSummaryByAccount(ctx context.Context, accountID int64, from, to time.Time) (*repository.WithdrawalSummary, error) {
	const query = `
	SELECT
	    COUNT(*)                  AS withdrawal_count,
	    COALESCE(SUM(amount), 0)  AS total_amount
	FROM withdrawals
	WHERE account_id = $1
	  AND ($2::timestamptz IS NULL OR withdrawal_date >= $2)
	  AND ($3::timestamptz IS NULL OR withdrawal_date <= $3)`
	var s repository.WithdrawalSummary
	err := r.pool.QueryRow(ctx, query, accountID, nullableTime(from), nullableTime(to)).
		Scan(&s.WithdrawalCount, &s.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("withdrawal summary: %w", err)
	}
	return &s, nil
}

// AccountsAboveBalance cuentas con saldo estrictamente mayor al umbral.
func (r *ReportingRepo) AccountsAboveBalance(ctx context.Context, threshold decimal.Decimal) ([]*entity.Account, error) {
	const query = `
	SELECT account_id, id_client, account_number, balance
	FROM accounts
	WHERE balance > $1
	ORDER BY balance DESC`
	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("accounts above balance: %w", err)
	}
	defer rows.Close()

	var out []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.ClientID, &a.AccountNumber, &a.Balance); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// LoansAboveAmount préstamos con monto estrictamente mayor al umbral.
func (r *ReportingRepo) LoansAboveAmount(ctx context.Context, threshold decimal.Decimal) ([]*entity.Loan, error) {
	const query = `
	SELECT loan_id, id_client, employee_id, amount, interest_rate, disbursement_date, due_date, balance, status, reference
	FROM loans
	WHERE amount > $1
	ORDER BY amount DESC`
	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("loans above amount: %w", err)
	}
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

// TransfersInRange transferencias con fecha dentro del rango [from, to].
func (r *ReportingRepo) TransfersInRange(ctx context.Context, from, to time.Time) ([]*entity.Transfer, error) {
	const query = `
	SELECT transfer_id, from_account_id, to_account_id, amount, transfer_date, transfer_method, status, reference
	FROM transfers
	WHERE ($1::timestamptz IS NULL OR transfer_date >= $1)
	  AND ($2::timestamptz IS NULL OR transfer_date <= $2)
	ORDER BY transfer_id`
	rows, err := r.pool.Query(ctx, query, nullableTime(from), nullableTime(to))
	if err != nil {
		return nil, fmt.Errorf("transfers in range: %w", err)
	}
	defer rows.Close()

	var out []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.FromAccountID, &t.ToAccountID, &t.Amount, &t.Date, &t.Method, &t.Status, &t.Reference); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// nullableTime convierte el cero de time.Time en NULL para los filtros de rango.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
