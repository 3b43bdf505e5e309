package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de transferencias. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste la transferencia y asigna el id generado (RETURNING).
func (r *TransferRepo) Create(ctx context.Context, transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (from_account_id, to_account_id, amount, transfer_date, transfer_method, status, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING transfer_id`
	err := r.q.QueryRow(ctx, query,
		transfer.FromAccountID, transfer.ToAccountID, transfer.Amount,
		transfer.Date, transfer.Method, transfer.Status, transfer.Reference,
	).Scan(&transfer.ID)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// List devuelve transferencias paginadas por id.
func (r *TransferRepo) List(ctx context.Context, limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT transfer_id, from_account_id, to_account_id, amount, transfer_date, transfer_method, status, reference
		FROM transfers ORDER BY transfer_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
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
