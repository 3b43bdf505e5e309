package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Banco-api/internal/application/ledger"
	"github.com/jhoicas/Banco-api/internal/application/reporting"
)

// ReportingHandler proyecciones de solo lectura y resolución de claves naturales.
type ReportingHandler struct {
	projector *reporting.Projector
	resolver  *ledger.Resolver
}

// NewReportingHandler construye el handler.
func NewReportingHandler(projector *reporting.Projector, resolver *ledger.Resolver) *ReportingHandler {
	return &ReportingHandler{projector: projector, resolver: resolver}
}

// parseDate acepta fecha RFC3339 o solo día (2006-01-02). Vacío = sin límite.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ClientLoanSummary godoc
// @Summary      Resumen de préstamos de un cliente (por nombre completo)
// @Tags         reports
// @Produce      json
// @Param        client_full_name  query  string  true  "Nombre completo del cliente"
// @Success      200  {object}  dto.LoanSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/clients/loans [get]
func (h *ReportingHandler) ClientLoanSummary(c *fiber.Ctx) error {
	resp, err := h.projector.ClientLoanSummary(c.Context(), c.Query("client_full_name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// EmployeeLoanSummary godoc
// @Summary      Resumen de préstamos colocados por un empleado
// @Tags         reports
// @Produce      json
// @Param        employee_name  query  string  true  "Nombre del empleado"
// @Success      200  {object}  dto.LoanSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/employees/loans [get]
func (h *ReportingHandler) EmployeeLoanSummary(c *fiber.Ctx) error {
	resp, err := h.projector.EmployeeLoanSummary(c.Context(), c.Query("employee_name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// AccountWithdrawalSummary godoc
// @Summary      Resumen de retiros de una cuenta (rango de fechas opcional)
// @Tags         reports
// @Produce      json
// @Param        account_number  query  string  true   "Número de cuenta"
// @Param        from            query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to              query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Success      200  {object}  dto.WithdrawalSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/accounts/withdrawals [get]
func (h *ReportingHandler) AccountWithdrawalSummary(c *fiber.Ctx) error {
	from, ok := parseDate(c.Query("from"))
	if !ok {
		return badBody(c)
	}
	to, ok := parseDate(c.Query("to"))
	if !ok {
		return badBody(c)
	}
	resp, err := h.projector.AccountWithdrawalSummary(c.Context(), c.Query("account_number"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// AccountsAboveBalance godoc
// @Summary      Cuentas con saldo mayor al umbral
// @Tags         reports
// @Produce      json
// @Param        threshold  query  string  true  "Umbral de saldo (decimal)"
// @Success      200  {array}   dto.AccountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/accounts/above [get]
func (h *ReportingHandler) AccountsAboveBalance(c *fiber.Ctx) error {
	threshold, err := decimal.NewFromString(c.Query("threshold", "0"))
	if err != nil {
		return badBody(c)
	}
	resp, err := h.projector.AccountsAboveBalance(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// LoansAboveAmount godoc
// @Summary      Préstamos con monto mayor al umbral
// @Tags         reports
// @Produce      json
// @Param        threshold  query  string  true  "Umbral de monto (decimal)"
// @Success      200  {array}   dto.LoanListItem
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/loans/above [get]
func (h *ReportingHandler) LoansAboveAmount(c *fiber.Ctx) error {
	threshold, err := decimal.NewFromString(c.Query("threshold", "0"))
	if err != nil {
		return badBody(c)
	}
	resp, err := h.projector.LoansAboveAmount(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// TransfersInRange godoc
// @Summary      Transferencias dentro de un rango de fechas
// @Tags         reports
// @Produce      json
// @Param        from  query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Success      200  {array}  dto.TransferListItem
// @Router       /api/reports/transfers [get]
func (h *ReportingHandler) TransfersInRange(c *fiber.Ctx) error {
	from, ok := parseDate(c.Query("from"))
	if !ok {
		return badBody(c)
	}
	to, ok := parseDate(c.Query("to"))
	if !ok {
		return badBody(c)
	}
	resp, err := h.projector.TransfersInRange(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Resolve godoc
// @Summary      Resolver una clave natural a id interno
// @Description  kind: client | employee | account. Para nombres completos
// @Description  duplicados devuelve la primera coincidencia por id.
// @Tags         resolve
// @Produce      json
// @Param        kind  query  string  true  "client, employee o account"
// @Param        key   query  string  true  "Clave natural"
// @Success      200  {object}  map[string]int64
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resolve [get]
func (h *ReportingHandler) Resolve(c *fiber.Ctx) error {
	id, err := h.resolver.Resolve(c.Context(), ledger.Kind(c.Query("kind")), c.Query("key"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}
