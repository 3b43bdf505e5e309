package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banco-api/internal/application/dto"
	"github.com/jhoicas/Banco-api/internal/application/ledger"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	processor *ledger.Processor
	batch     *ledger.BatchCoordinator
}

// NewClientHandler construye el handler.
func NewClientHandler(processor *ledger.Processor, batch *ledger.BatchCoordinator) *ClientHandler {
	return &ClientHandler{processor: processor, batch: batch}
}

// Create godoc
// @Summary      Registrar un cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientCreate  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.ClientCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.CreateClient(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CreateBulk godoc
// @Summary      Registrar un lote de clientes (todo o nada)
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.ClientCreate  true  "Lista ordenada de clientes"
// @Success      201   {array}   dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clients/bulk [post]
func (h *ClientHandler) CreateBulk(c *fiber.Ctx) error {
	var in []dto.ClientCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.batch.Clients(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.ListClients(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListNames godoc
// @Summary      Nombres completos e ids de todos los clientes
// @Tags         clients
// @Produce      json
// @Success      200  {array}  dto.ClientNameResponse
// @Router       /api/clients/names [get]
func (h *ClientHandler) ListNames(c *fiber.Ctx) error {
	resp, err := h.processor.ListClientNames(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
