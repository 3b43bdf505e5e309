package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banco-api/internal/application/dto"
	"github.com/jhoicas/Banco-api/internal/application/ledger"
	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del coordinador de lotes. Las propiedades bajo prueba: todo-o-nada
// (ningún ítem persiste si cualquiera falla), saldo corrido por cuenta dentro
// del lote, ids 1:1 con el orden de entrada y referencia compartida entre los
// ítems de un mismo lote.
// ──────────────────────────────────────────────────────────────────────────────

func newTestBatch(s *memStore) *ledger.BatchCoordinator {
	return ledger.NewBatchCoordinator(&memTxRunner{store: s}, nil)
}

func TestBatchClients_IdsEnOrdenDeEntrada(t *testing.T) {
	s := newMemStore()
	b := newTestBatch(s)

	out, err := b.Clients(context.Background(), []dto.ClientCreate{
		{Name: "Ana", LastName: "Gómez", IdentificationNumber: "CC-1"},
		{Name: "Beto", LastName: "Díaz", IdentificationNumber: "CC-2"},
		{Name: "Caro", LastName: "Mora", IdentificationNumber: "CC-3"},
	})

	require.NoError(t, err)
	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		assert.Greater(t, out[i].IDClient, out[i-1].IDClient, "los ids respetan el orden del lote")
	}
	assert.Equal(t, "Beto", out[1].Name)
	assert.Len(t, s.clients, 3)
}

func TestBatchClients_DuplicadoRevierteTodo(t *testing.T) {
	s := newMemStore()
	b := newTestBatch(s)

	_, err := b.Clients(context.Background(), []dto.ClientCreate{
		{Name: "Ana", LastName: "Gómez", IdentificationNumber: "CC-1"},
		{Name: "Beto", LastName: "Díaz", IdentificationNumber: "CC-1"}, // misma identificación
	})

	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "ítem 1", "el error debe señalar la posición del ítem")
	assert.Empty(t, s.clients, "ningún cliente del lote debe persistir")
}

func TestBatchClients_LoteVacio(t *testing.T) {
	s := newMemStore()
	b := newTestBatch(s)

	_, err := b.Clients(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBatchAccounts_ResuelveDuenosUnaVez(t *testing.T) {
	s := newMemStore()
	clientID := seedClient(s, "Ana", "Gómez", "CC-1")
	b := newTestBatch(s)

	out, err := b.Accounts(context.Background(), []dto.AccountCreate{
		{AccountNumber: "A-1", ClientFullName: "Ana Gómez", Balance: dec("100")},
		{AccountNumber: "A-2", ClientFullName: "Ana Gómez", Balance: dec("0")},
	})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, clientID, out[0].IDClient)
	assert.Equal(t, clientID, out[1].IDClient)
	assert.Len(t, s.accounts, 2)
}

func TestBatchWithdrawals_SaldoCorridoRechazaElLoteCompleto(t *testing.T) {
	s := newMemStore()
	clientID := seedClient(s, "Ana", "Gómez", "CC-1")
	seedAccount(s, clientID, "A-1", "100.00")
	b := newTestBatch(s)

	// Cada retiro pasa contra el saldo pre-lote (100), pero el segundo debe
	// verificarse contra el saldo corrido (100 - 60 = 40) y fallar.
	_, err := b.Withdrawals(context.Background(), []dto.WithdrawalCreate{
		{AccountNumber: "A-1", Amount: dec("60")},
		{AccountNumber: "A-1", Amount: dec("60")},
	})

	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "ítem 1")
	assert.True(t, dec("100.00").Equal(balanceOf(s, "A-1")), "el saldo pre-lote debe quedar intacto")
	assert.Empty(t, s.withdrawals, "ningún retiro del lote debe persistir")
}

func TestBatchWithdrawals_SaldoCorridoEnRespuestas(t *testing.T) {
	s := newMemStore()
	clientID := seedClient(s, "Ana", "Gómez", "CC-1")
	seedAccount(s, clientID, "A-1", "100.00")
	b := newTestBatch(s)

	out, err := b.Withdrawals(context.Background(), []dto.WithdrawalCreate{
		{AccountNumber: "A-1", Amount: dec("60")},
		{AccountNumber: "A-1", Amount: dec("30")},
	})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, dec("40").Equal(out[0].NewBalance), "primer retiro: 100 - 60")
	assert.True(t, dec("10").Equal(out[1].NewBalance), "segundo retiro: 40 - 30")
	assert.True(t, dec("10").Equal(balanceOf(s, "A-1")), "el saldo final se escribe una sola vez")
	require.Len(t, s.withdrawals, 2)
	assert.Equal(t, s.withdrawals[0].Reference, s.withdrawals[1].Reference,
		"los ítems de un lote comparten referencia")
}

func TestBatchWithdrawals_CuentaInexistenteRevierteTodo(t *testing.T) {
	s := newMemStore()
	clientID := seedClient(s, "Ana", "Gómez", "CC-1")
	seedAccount(s, clientID, "A-1", "100.00")
	b := newTestBatch(s)

	_, err := b.Withdrawals(context.Background(), []dto.WithdrawalCreate{
		{AccountNumber: "A-1", Amount: dec("10")},
		{AccountNumber: "NO-EXISTE", Amount: dec("10")},
	})

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, dec("100.00").Equal(balanceOf(s, "A-1")))
	assert.Empty(t, s.withdrawals)
}

func TestBatchTransfers_SoloCompletadasMuevenSaldoCorrido(t *testing.T) {
	s := newMemStore()
	clientID := seedClient(s, "Ana", "Gómez", "CC-1")
	seedAccount(s, clientID, "A-1", "100.00")
	seedAccount(s, clientID, "A-2", "0.00")
	b := newTestBatch(s)

	out, err := b.Transfers(context.Background(), []dto.TransferCreate{
		{FromAccountNumber: "A-1", ToAccountNumber: "A-2", Amount: dec("40"), Status: entity.TransferCompleted},
		{FromAccountNumber: "A-1", ToAccountNumber: "A-2", Amount: dec("500"), Status: entity.TransferPending},
		{FromAccountNumber: "A-2", ToAccountNumber: "A-1", Amount: dec("15"), Status: entity.TransferCompleted},
	})

	require.NoError(t, err)
	require.Len(t, out, 3)
	// A-1: 100 - 40 + 15 = 75; A-2: 0 + 40 - 15 = 25. La pendiente no mueve.
	assert.True(t, dec("75").Equal(balanceOf(s, "A-1")))
	assert.True(t, dec("25").Equal(balanceOf(s, "A-2")))
	suma := balanceOf(s, "A-1").Add(balanceOf(s, "A-2"))
	assert.True(t, dec("100").Equal(suma), "la suma de saldos se conserva a través del lote")
	require.Len(t, s.transfers, 3)
	assert.Equal(t, entity.TransferPending, s.transfers[1].Status)
}

func TestBatchTransfers_FondosInsuficientesRevierteTodo(t *testing.T) {
	s := newMemStore()
	clientID := seedClient(s, "Ana", "Gómez", "CC-1")
	seedAccount(s, clientID, "A-1", "100.00")
	seedAccount(s, clientID, "A-2", "0.00")
	b := newTestBatch(s)

	// La segunda completada excede el saldo corrido de A-1 (100 - 80 = 20).
	_, err := b.Transfers(context.Background(), []dto.TransferCreate{
		{FromAccountNumber: "A-1", ToAccountNumber: "A-2", Amount: dec("80"), Status: entity.TransferCompleted},
		{FromAccountNumber: "A-1", ToAccountNumber: "A-2", Amount: dec("80"), Status: entity.TransferCompleted},
	})

	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "ítem 1")
	assert.True(t, dec("100.00").Equal(balanceOf(s, "A-1")))
	assert.True(t, dec("0.00").Equal(balanceOf(s, "A-2")))
	assert.Empty(t, s.transfers)
}

func TestBatchLoans_CompartenReferenciaYResuelvenUnaVez(t *testing.T) {
	s := newMemStore()
	clientID := seedClient(s, "Ana", "Gómez", "CC-1")
	employeeID := seedEmployee(s, "Carlos Ruiz")
	b := newTestBatch(s)

	out, err := b.Loans(context.Background(), []dto.LoanCreate{
		{ClientFullName: "Ana Gómez", EmployeeFullName: "Carlos Ruiz", Amount: dec("1000")},
		{ClientFullName: "Ana Gómez", EmployeeFullName: "Carlos Ruiz", Amount: dec("2000")},
	})

	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, resp := range out {
		assert.Equal(t, clientID, resp.IDClient)
		assert.Equal(t, employeeID, resp.EmployeeID)
	}
	require.Len(t, s.loans, 2)
	assert.Equal(t, s.loans[0].Reference, s.loans[1].Reference)
}

func TestBatchLoans_ClienteInexistenteRevierteTodo(t *testing.T) {
	s := newMemStore()
	seedClient(s, "Ana", "Gómez", "CC-1")
	seedEmployee(s, "Carlos Ruiz")
	b := newTestBatch(s)

	_, err := b.Loans(context.Background(), []dto.LoanCreate{
		{ClientFullName: "Ana Gómez", EmployeeFullName: "Carlos Ruiz", Amount: dec("1000")},
		{ClientFullName: "Nadie Conocido", EmployeeFullName: "Carlos Ruiz", Amount: dec("2000")},
	})

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "ítem 1")
	assert.Empty(t, s.loans)
}
