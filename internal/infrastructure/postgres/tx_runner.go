package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Banco-api/internal/application/ledger"
	"github.com/jhoicas/Banco-api/internal/domain"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El Rollback diferido cubre toda ruta de salida,
// incluido panic en fn.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ledger.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", domain.ErrConnectionFailure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := NewRepos(tx)

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepos construye el conjunto completo de repositorios sobre un Querier
// (pool o tx).
func NewRepos(q Querier) ledger.Repos {
	return ledger.Repos{
		Clients:     NewClientRepository(q),
		Employees:   NewEmployeeRepository(q),
		Accounts:    NewAccountRepository(q),
		Withdrawals: NewWithdrawalRepository(q),
		Transfers:   NewTransferRepository(q),
		Loans:       NewLoanRepository(q),
	}
}
