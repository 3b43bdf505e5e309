package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banco-api/internal/application/ledger"
	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/entity"
)

// recordingAccounts envuelve el repo de cuentas y registra el orden en que se
// bloquean las filas, para verificar la disciplina anti-deadlock de Move.
type recordingAccounts struct {
	*memAccounts
	locked []int64
}

func (r *recordingAccounts) GetForUpdate(ctx context.Context, id int64) (*entity.Account, error) {
	r.locked = append(r.locked, id)
	return r.memAccounts.GetForUpdate(ctx, id)
}

func TestMove_BloqueaEnOrdenAscendenteDeId(t *testing.T) {
	s := newMemStore()
	clientID := seedClient(s, "Ana", "Gómez", "CC-1")
	seedAccount(s, clientID, "A-1", "100.00") // id 1
	seedAccount(s, clientID, "A-2", "100.00") // id 2
	rec := &recordingAccounts{memAccounts: &memAccounts{s}}
	l := ledger.NewBalanceLedger(rec)

	// Transferencia en dirección "contraria": origen id 2, destino id 1.
	// Las filas deben bloquearse igual en orden ascendente.
	err := l.Move(context.Background(), 2, 1, dec("10"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, rec.locked)
	assert.True(t, dec("90").Equal(balanceOf(s, "A-2")), "el débito cae sobre el origen real")
	assert.True(t, dec("110").Equal(balanceOf(s, "A-1")))
}

func TestMove_ConservaLaSuma(t *testing.T) {
	s := newMemStore()
	clientID := seedClient(s, "Ana", "Gómez", "CC-1")
	seedAccount(s, clientID, "A-1", "70.00")
	seedAccount(s, clientID, "A-2", "30.00")
	l := ledger.NewBalanceLedger(&memAccounts{s})

	require.NoError(t, l.Move(context.Background(), 1, 2, dec("25")))

	suma := balanceOf(s, "A-1").Add(balanceOf(s, "A-2"))
	assert.True(t, dec("100").Equal(suma))
}

func TestMove_EntradaInvalida(t *testing.T) {
	s := newMemStore()
	l := ledger.NewBalanceLedger(&memAccounts{s})

	assert.ErrorIs(t, l.Move(context.Background(), 1, 1, dec("10")), domain.ErrInvalidInput,
		"misma cuenta en ambos lados")
	assert.ErrorIs(t, l.Move(context.Background(), 1, 2, dec("0")), domain.ErrInvalidInput)
}

func TestDebit_CuentaInexistente(t *testing.T) {
	s := newMemStore()
	l := ledger.NewBalanceLedger(&memAccounts{s})

	_, err := l.Debit(context.Background(), 99, dec("10"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDebitCredit_SaldoResultante(t *testing.T) {
	s := newMemStore()
	clientID := seedClient(s, "Ana", "Gómez", "CC-1")
	seedAccount(s, clientID, "A-1", "100.00")
	l := ledger.NewBalanceLedger(&memAccounts{s})

	saldo, err := l.Debit(context.Background(), 1, dec("40"))
	require.NoError(t, err)
	assert.True(t, dec("60").Equal(saldo))

	saldo, err = l.Credit(context.Background(), 1, dec("15"))
	require.NoError(t, err)
	assert.True(t, dec("75").Equal(saldo))

	saldo, err = l.BalanceOf(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, dec("75").Equal(saldo))
}
