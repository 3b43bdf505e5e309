package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banco-api/internal/application/dto"
	"github.com/jhoicas/Banco-api/internal/application/ledger"
)

// TransactionHandler maneja retiros, transferencias y préstamos (operaciones
// del ledger, individuales y por lote).
type TransactionHandler struct {
	processor *ledger.Processor
	batch     *ledger.BatchCoordinator
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(processor *ledger.Processor, batch *ledger.BatchCoordinator) *TransactionHandler {
	return &TransactionHandler{processor: processor, batch: batch}
}

// Withdraw godoc
// @Summary      Aplicar un retiro (débito atómico)
// @Tags         withdrawals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawalCreate  true  "account_number, amount, fecha y método"
// @Success      201   {object}  dto.WithdrawalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "fondos insuficientes"
// @Router       /api/withdrawals [post]
func (h *TransactionHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.WithdrawalCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.Withdraw(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// WithdrawBulk godoc
// @Summary      Aplicar un lote de retiros (todo o nada, saldo corrido por cuenta)
// @Tags         withdrawals
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.WithdrawalCreate  true  "Lista ordenada de retiros"
// @Success      201   {array}   dto.WithdrawalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/withdrawals/bulk [post]
func (h *TransactionHandler) WithdrawBulk(c *fiber.Ctx) error {
	var in []dto.WithdrawalCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.batch.Withdrawals(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListWithdrawals godoc
// @Summary      Listar retiros
// @Tags         withdrawals
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.WithdrawalListItem
// @Router       /api/withdrawals [get]
func (h *TransactionHandler) ListWithdrawals(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.ListWithdrawals(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Transfer godoc
// @Summary      Registrar una transferencia (solo status completed mueve saldos)
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferCreate  true  "cuentas origen y destino, monto, status"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "fondos insuficientes"
// @Router       /api/transfers [post]
func (h *TransactionHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.Transfer(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// TransferBulk godoc
// @Summary      Registrar un lote de transferencias (todo o nada)
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.TransferCreate  true  "Lista ordenada de transferencias"
// @Success      201   {array}   dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers/bulk [post]
func (h *TransactionHandler) TransferBulk(c *fiber.Ctx) error {
	var in []dto.TransferCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.batch.Transfers(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListTransfers godoc
// @Summary      Listar transferencias
// @Tags         transfers
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.TransferListItem
// @Router       /api/transfers [get]
func (h *TransactionHandler) ListTransfers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.ListTransfers(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// IssueLoan godoc
// @Summary      Emitir un préstamo (cliente y empleado por nombre completo)
// @Tags         loans
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoanCreate  true  "Datos del préstamo"
// @Success      201   {object}  dto.LoanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/loans [post]
func (h *TransactionHandler) IssueLoan(c *fiber.Ctx) error {
	var in dto.LoanCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.IssueLoan(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// IssueLoanBulk godoc
// @Summary      Emitir un lote de préstamos (todo o nada)
// @Tags         loans
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.LoanCreate  true  "Lista ordenada de préstamos"
// @Success      201   {array}   dto.LoanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/loans/bulk [post]
func (h *TransactionHandler) IssueLoanBulk(c *fiber.Ctx) error {
	var in []dto.LoanCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.batch.Loans(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListLoans godoc
// @Summary      Listar préstamos
// @Tags         loans
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.LoanListItem
// @Router       /api/loans [get]
func (h *TransactionHandler) ListLoans(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.ListLoans(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
