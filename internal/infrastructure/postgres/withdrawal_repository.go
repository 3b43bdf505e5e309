package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

// WithdrawalRepo implementación de WithdrawalRepository sobre PostgreSQL (usable con pool o tx).
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository construye el adaptador de retiros. Pasar pool o tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

// Create persiste el retiro y asigna el id generado (RETURNING). El id sale
// del propio insert dentro de la transacción: nunca se lee el cursor del
// store por fuera.
func (r *WithdrawalRepo) Create(ctx context.Context, withdrawal *entity.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (account_id, amount, withdrawal_date, withdrawal_method, reference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING withdrawal_id`
	err := r.q.QueryRow(ctx, query,
		withdrawal.AccountID, withdrawal.Amount, withdrawal.Date, withdrawal.Method, withdrawal.Reference,
	).Scan(&withdrawal.ID)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// List devuelve retiros paginados por id.
func (r *WithdrawalRepo) List(ctx context.Context, limit, offset int) ([]*entity.Withdrawal, error) {
	query := `
		SELECT withdrawal_id, account_id, amount, withdrawal_date, withdrawal_method, reference
		FROM withdrawals ORDER BY withdrawal_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	return r.collect(rows)
}

// ListByAccount devuelve los retiros de una cuenta, ordenados por id.
func (r *WithdrawalRepo) ListByAccount(ctx context.Context, accountID int64) ([]*entity.Withdrawal, error) {
	query := `
		SELECT withdrawal_id, account_id, amount, withdrawal_date, withdrawal_method, reference
		FROM withdrawals WHERE account_id = $1 ORDER BY withdrawal_id`
	rows, err := r.q.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals by account: %w", err)
	}
	return r.collect(rows)
}

func (r *WithdrawalRepo) collect(rows pgx.Rows) ([]*entity.Withdrawal, error) {
	defer rows.Close()
	var out []*entity.Withdrawal
	for rows.Next() {
		var w entity.Withdrawal
		if err := rows.Scan(&w.ID, &w.AccountID, &w.Amount, &w.Date, &w.Method, &w.Reference); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		out = append(out, &w)
	}
	return out, rows.Err()
}
