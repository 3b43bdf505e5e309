package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banco-api/internal/application/dto"
	"github.com/jhoicas/Banco-api/internal/application/ledger"
	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Banco-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del endpoint de retiros: el mapeo de errores de dominio a códigos
// HTTP es el contrato que consumen los clientes de la API, así que se prueba
// de punta a punta sobre una app Fiber mínima con un store en memoria.
// ──────────────────────────────────────────────────────────────────────────────

// httpStore una sola cuenta y sus retiros, suficiente para ejercitar el
// handler sin base de datos.
type httpStore struct {
	account     entity.Account
	withdrawals []entity.Withdrawal
}

type stubAccounts struct{ s *httpStore }

func (a *stubAccounts) Create(context.Context, *entity.Account) error { return nil }
func (a *stubAccounts) GetByID(_ context.Context, id int64) (*entity.Account, error) {
	if a.s.account.ID == id {
		acc := a.s.account
		return &acc, nil
	}
	return nil, nil
}
func (a *stubAccounts) GetByNumber(_ context.Context, number string) (*entity.Account, error) {
	if a.s.account.AccountNumber == number {
		acc := a.s.account
		return &acc, nil
	}
	return nil, nil
}
func (a *stubAccounts) GetForUpdate(ctx context.Context, id int64) (*entity.Account, error) {
	return a.GetByID(ctx, id)
}
func (a *stubAccounts) UpdateBalance(_ context.Context, id int64, balance decimal.Decimal) error {
	if a.s.account.ID != id {
		return domain.ErrNotFound
	}
	a.s.account.Balance = balance
	return nil
}
func (a *stubAccounts) List(context.Context, int, int) ([]*entity.Account, error) { return nil, nil }

type stubWithdrawals struct{ s *httpStore }

func (w *stubWithdrawals) Create(_ context.Context, row *entity.Withdrawal) error {
	row.ID = int64(len(w.s.withdrawals) + 1)
	w.s.withdrawals = append(w.s.withdrawals, *row)
	return nil
}
func (w *stubWithdrawals) List(context.Context, int, int) ([]*entity.Withdrawal, error) {
	return nil, nil
}
func (w *stubWithdrawals) ListByAccount(context.Context, int64) ([]*entity.Withdrawal, error) {
	return nil, nil
}

// passRunner ejecuta fn directo sobre los repos del store. Los tests de
// rollback viven en la capa de aplicación; acá solo interesa el contrato HTTP.
type passRunner struct{ repos ledger.Repos }

func (r *passRunner) Run(_ context.Context, fn func(repos ledger.Repos) error) error {
	return fn(r.repos)
}

// buildWithdrawApp app Fiber mínima con el endpoint de retiros sobre una
// cuenta A-1 con el saldo indicado.
func buildWithdrawApp(balance string) (*fiber.App, *httpStore) {
	s := &httpStore{account: entity.Account{
		ID: 1, ClientID: 1, AccountNumber: "A-1",
		Balance: decimal.RequireFromString(balance),
	}}
	repos := ledger.Repos{
		Accounts:    &stubAccounts{s},
		Withdrawals: &stubWithdrawals{s},
	}
	processor := ledger.NewProcessor(&passRunner{repos}, repos, nil)
	batch := ledger.NewBatchCoordinator(&passRunner{repos}, nil)

	app := fiber.New()
	handler := apphttp.NewTransactionHandler(processor, batch)
	app.Post("/api/withdrawals", handler.Withdraw)
	app.Post("/api/withdrawals/bulk", handler.WithdrawBulk)
	return app, s
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var errBody dto.ErrorResponse
	if resp.StatusCode >= 400 {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &errBody))
	}
	return resp, errBody
}

func TestWithdrawEndpoint_Creado(t *testing.T) {
	app, s := buildWithdrawApp("100.00")

	resp, _ := postJSON(t, app, "/api/withdrawals",
		`{"account_number":"A-1","amount":50,"withdrawal_method":"cajero"}`)

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out dto.WithdrawalResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, decimal.RequireFromString("50").Equal(out.NewBalance))
	assert.Equal(t, int64(1), out.AccountID)
	assert.Len(t, s.withdrawals, 1)
}

func TestWithdrawEndpoint_FondosInsuficientes(t *testing.T) {
	app, s := buildWithdrawApp("50.00")

	resp, errBody := postJSON(t, app, "/api/withdrawals",
		`{"account_number":"A-1","amount":1000}`)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_FUNDS", errBody.Code)
	assert.Contains(t, errBody.Message, "A-1", "el mensaje nombra la cuenta ofensora")
	assert.Empty(t, s.withdrawals)
}

func TestWithdrawEndpoint_CuentaInexistente(t *testing.T) {
	app, _ := buildWithdrawApp("50.00")

	resp, errBody := postJSON(t, app, "/api/withdrawals",
		`{"account_number":"NO-EXISTE","amount":10}`)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
	assert.Contains(t, errBody.Message, "NO-EXISTE")
}

func TestWithdrawEndpoint_MontoInvalido(t *testing.T) {
	app, _ := buildWithdrawApp("50.00")

	resp, errBody := postJSON(t, app, "/api/withdrawals",
		`{"account_number":"A-1","amount":0}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestWithdrawEndpoint_CuerpoMalformado(t *testing.T) {
	app, _ := buildWithdrawApp("50.00")

	resp, errBody := postJSON(t, app, "/api/withdrawals", `{esto no es json`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errBody.Code)
}

func TestWithdrawBulkEndpoint_ItemConErrorSenalaPosicion(t *testing.T) {
	app, _ := buildWithdrawApp("100.00")

	resp, errBody := postJSON(t, app, "/api/withdrawals/bulk",
		`[{"account_number":"A-1","amount":60},{"account_number":"A-1","amount":60}]`)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_FUNDS", errBody.Code)
	assert.Contains(t, errBody.Message, "ítem 1", "el mensaje señala el ítem que hizo fallar el lote")
}

func TestWithdrawBulkEndpoint_LoteVacio(t *testing.T) {
	app, _ := buildWithdrawApp("100.00")

	resp, errBody := postJSON(t, app, "/api/withdrawals/bulk", `[]`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errBody.Code)
}
