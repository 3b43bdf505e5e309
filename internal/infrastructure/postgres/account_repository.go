package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/entity"
	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository sobre PostgreSQL (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de cuentas. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta nueva y asigna el id generado (RETURNING).
// Un número de cuenta repetido retorna domain.ErrDuplicate.
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (id_client, account_number, balance)
		VALUES ($1, $2, $3)
		RETURNING account_id`
	err := r.q.QueryRow(ctx, query, account.ClientID, account.AccountNumber, account.Balance).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por id interno.
func (r *AccountRepo) GetByID(ctx context.Context, id int64) (*entity.Account, error) {
	query := `SELECT account_id, id_client, account_number, balance FROM accounts WHERE account_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get account")
}

// GetByNumber obtiene una cuenta por número (clave natural única).
func (r *AccountRepo) GetByNumber(ctx context.Context, accountNumber string) (*entity.Account, error) {
	query := `SELECT account_id, id_client, account_number, balance FROM accounts WHERE account_number = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, accountNumber), "get account by number")
}

// GetForUpdate obtiene la cuenta y bloquea la fila (SELECT FOR UPDATE) hasta
// el cierre de la transacción del caller. Dos débitos concurrentes sobre la
// misma cuenta se serializan aquí.
func (r *AccountRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Account, error) {
	query := `
		SELECT account_id, id_client, account_number, balance
		FROM accounts WHERE account_id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get account for update")
}

// UpdateBalance escribe el saldo de la cuenta. Solo debe llamarse con la fila
// bloqueada por GetForUpdate en la misma transacción.
func (r *AccountRepo) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE accounts SET balance = $1 WHERE account_id = $2`, balance, id)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve cuentas paginadas por id.
func (r *AccountRepo) List(ctx context.Context, limit, offset int) ([]*entity.Account, error) {
	query := `SELECT account_id, id_client, account_number, balance FROM accounts ORDER BY account_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
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

func (r *AccountRepo) scanOne(row pgx.Row, op string) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(&a.ID, &a.ClientID, &a.AccountNumber, &a.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}
