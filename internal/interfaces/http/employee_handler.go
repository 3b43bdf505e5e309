package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banco-api/internal/application/dto"
	"github.com/jhoicas/Banco-api/internal/application/ledger"
)

// EmployeeHandler maneja las peticiones HTTP de empleados.
type EmployeeHandler struct {
	processor *ledger.Processor
	batch     *ledger.BatchCoordinator
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(processor *ledger.Processor, batch *ledger.BatchCoordinator) *EmployeeHandler {
	return &EmployeeHandler{processor: processor, batch: batch}
}

// Create godoc
// @Summary      Registrar un empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeCreate  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.CreateEmployee(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CreateBulk godoc
// @Summary      Registrar un lote de empleados (todo o nada)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.EmployeeCreate  true  "Lista ordenada de empleados"
// @Success      201   {array}   dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees/bulk [post]
func (h *EmployeeHandler) CreateBulk(c *fiber.Ctx) error {
	var in []dto.EmployeeCreate
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.batch.Employees(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.processor.ListEmployees(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
