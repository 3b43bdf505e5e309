package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/entity"
	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

// BalanceLedger aplica débitos y créditos sobre cuentas dentro de la
// transacción del caller. Toda mutación bloquea primero la fila de la cuenta
// (SELECT FOR UPDATE), así dos débitos concurrentes no pueden observar ambos
// el saldo pre-débito y pasar los dos la verificación de fondos.
type BalanceLedger struct {
	accounts repository.AccountRepository
}

// NewBalanceLedger construye el ledger sobre un repo de cuentas atado a la
// transacción en curso.
func NewBalanceLedger(accounts repository.AccountRepository) *BalanceLedger {
	return &BalanceLedger{accounts: accounts}
}

// Debit resta amount del saldo de la cuenta y devuelve el saldo resultante.
// domain.ErrInsufficientFunds si el saldo quedaría negativo.
func (l *BalanceLedger) Debit(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	account, err := l.accounts.GetForUpdate(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if account == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	if account.Balance.LessThan(amount) {
		return decimal.Zero, fmt.Errorf("cuenta %s: %w", account.AccountNumber, domain.ErrInsufficientFunds)
	}
	newBalance := account.Balance.Sub(amount)
	if err := l.accounts.UpdateBalance(ctx, accountID, newBalance); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// Credit suma amount al saldo de la cuenta y devuelve el saldo resultante.
func (l *BalanceLedger) Credit(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	account, err := l.accounts.GetForUpdate(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if account == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	newBalance := account.Balance.Add(amount)
	if err := l.accounts.UpdateBalance(ctx, accountID, newBalance); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// BalanceOf devuelve el saldo comprometido de la cuenta al inicio de la
// transacción en curso.
func (l *BalanceLedger) BalanceOf(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	account, err := l.accounts.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if account == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	return account.Balance, nil
}

// Move debita from y acredita to como un solo paso (conservación: la suma de
// los dos deltas es cero dentro de la misma transacción). Las filas se
// bloquean en orden ascendente de id para evitar deadlocks entre
// transferencias en direcciones opuestas.
func (l *BalanceLedger) Move(ctx context.Context, fromID, toID int64, amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) || fromID == toID {
		return domain.ErrInvalidInput
	}
	first, second := fromID, toID
	if second < first {
		first, second = second, first
	}
	firstRow, err := l.accounts.GetForUpdate(ctx, first)
	if err != nil {
		return err
	}
	secondRow, err := l.accounts.GetForUpdate(ctx, second)
	if err != nil {
		return err
	}
	if firstRow == nil || secondRow == nil {
		return domain.ErrNotFound
	}
	from, to := firstRow, secondRow
	if from.ID != fromID {
		from, to = secondRow, firstRow
	}
	if from.Balance.LessThan(amount) {
		return fmt.Errorf("cuenta %s: %w", from.AccountNumber, domain.ErrInsufficientFunds)
	}
	if err := l.accounts.UpdateBalance(ctx, from.ID, from.Balance.Sub(amount)); err != nil {
		return err
	}
	return l.accounts.UpdateBalance(ctx, to.ID, to.Balance.Add(amount))
}

// batchBalances acumula el efecto de los ítems de un lote sobre cada cuenta:
// cada ítem se verifica contra el saldo corrido (post-ítems anteriores), no
// contra el saldo pre-lote. Las filas se bloquean al primer toque y se
// escriben una sola vez en flush, dentro de la transacción del lote.
type batchBalances struct {
	accounts repository.AccountRepository
	rows     map[int64]*entity.Account
	running  map[int64]decimal.Decimal
	touched  []int64
}

func newBatchBalances(accounts repository.AccountRepository) *batchBalances {
	return &batchBalances{
		accounts: accounts,
		rows:     make(map[int64]*entity.Account),
		running:  make(map[int64]decimal.Decimal),
	}
}

// lock bloquea la fila al primer toque y arranca el saldo corrido desde el
// saldo comprometido.
func (b *batchBalances) lock(ctx context.Context, accountID int64) (*entity.Account, error) {
	if row, ok := b.rows[accountID]; ok {
		return row, nil
	}
	row, err := b.accounts.GetForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	b.rows[accountID] = row
	b.running[accountID] = row.Balance
	b.touched = append(b.touched, accountID)
	return row, nil
}

func (b *batchBalances) debit(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	row, err := b.lock(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	current := b.running[accountID]
	if current.LessThan(amount) {
		return decimal.Zero, fmt.Errorf("cuenta %s: %w", row.AccountNumber, domain.ErrInsufficientFunds)
	}
	newBalance := current.Sub(amount)
	b.running[accountID] = newBalance
	return newBalance, nil
}

func (b *batchBalances) credit(ctx context.Context, accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if _, err := b.lock(ctx, accountID); err != nil {
		return decimal.Zero, err
	}
	newBalance := b.running[accountID].Add(amount)
	b.running[accountID] = newBalance
	return newBalance, nil
}

// flush escribe el saldo corrido final de cada cuenta tocada, en orden de
// primer toque.
func (b *batchBalances) flush(ctx context.Context) error {
	for _, accountID := range b.touched {
		if err := b.accounts.UpdateBalance(ctx, accountID, b.running[accountID]); err != nil {
			return err
		}
	}
	return nil
}
