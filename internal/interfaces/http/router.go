package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banco-api/internal/application/ledger"
	"github.com/jhoicas/Banco-api/internal/application/reporting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Processor *ledger.Processor
	Batch     *ledger.BatchCoordinator
	Resolver  *ledger.Resolver
	Projector *reporting.Projector
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.Processor, deps.Batch)
	clients.Post("/", clientHandler.Create)
	clients.Post("/bulk", clientHandler.CreateBulk)
	clients.Get("/", clientHandler.List)
	clients.Get("/names", clientHandler.ListNames)

	// Employees
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.Processor, deps.Batch)
	employees.Post("/", employeeHandler.Create)
	employees.Post("/bulk", employeeHandler.CreateBulk)
	employees.Get("/", employeeHandler.List)

	// Accounts
	accounts := api.Group("/accounts")
	accountHandler := NewAccountHandler(deps.Processor, deps.Batch)
	accounts.Post("/", accountHandler.Create)
	accounts.Post("/bulk", accountHandler.CreateBulk)
	accounts.Get("/", accountHandler.List)

	// Operaciones del ledger: retiros, transferencias, préstamos
	txHandler := NewTransactionHandler(deps.Processor, deps.Batch)

	withdrawals := api.Group("/withdrawals")
	withdrawals.Post("/", txHandler.Withdraw)
	withdrawals.Post("/bulk", txHandler.WithdrawBulk)
	withdrawals.Get("/", txHandler.ListWithdrawals)

	transfers := api.Group("/transfers")
	transfers.Post("/", txHandler.Transfer)
	transfers.Post("/bulk", txHandler.TransferBulk)
	transfers.Get("/", txHandler.ListTransfers)

	loans := api.Group("/loans")
	loans.Post("/", txHandler.IssueLoan)
	loans.Post("/bulk", txHandler.IssueLoanBulk)
	loans.Get("/", txHandler.ListLoans)

	// Reportes y resolución de claves naturales
	reportingHandler := NewReportingHandler(deps.Projector, deps.Resolver)
	reports := api.Group("/reports")
	reports.Get("/clients/loans", reportingHandler.ClientLoanSummary)
	reports.Get("/employees/loans", reportingHandler.EmployeeLoanSummary)
	reports.Get("/accounts/withdrawals", reportingHandler.AccountWithdrawalSummary)
	reports.Get("/accounts/above", reportingHandler.AccountsAboveBalance)
	reports.Get("/loans/above", reportingHandler.LoansAboveAmount)
	reports.Get("/transfers", reportingHandler.TransfersInRange)

	api.Get("/resolve", reportingHandler.Resolve)
}
