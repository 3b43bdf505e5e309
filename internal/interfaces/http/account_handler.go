package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banco-api/internal/application/dto"
	"github.com/jhoicas/Banco-api/internal/application/ledger"
)

// AccountHandler maneja las peticiones HTTP de cuentas.
type AccountHandler struct {
	processor *ledger.Processor
	batch     *ledger.BatchCoordinator
}

// NewAccountHandler construye el handler.
func NewAccountHandler(processor *ledger.Processor, batch *ledger.BatchCoordinator) *AccountHandler {
	return &AccountHandler{processor: processor, batch: batch}
}

// Create godoc
// @Summary      Abrir una cuenta para un cliente (por nombre completo)
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AccountCreate  true  "account_number, balance inicial, client_full_name"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.AccountCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.CreateAccount(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CreateBulk godoc
// @Summary      Abrir un lote de cuentas (todo o nada)
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.AccountCreate  true  "Lista ordenada de cuentas"
// @Success      201   {array}   dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/accounts/bulk [post]
func (h *AccountHandler) CreateBulk(c *fiber.Ctx) error {
	var in []dto.AccountCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.batch.Accounts(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar cuentas
// @Tags         accounts
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.ListAccounts(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
