package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanActive estado por defecto de un préstamo recién emitido.
const LoanActive = "active"

// Loan representa un préstamo emitido a un cliente por un empleado.
// La emisión no toca saldos de cuentas: el préstamo lleva su propio Balance
// como línea separada del ledger.
type Loan struct {
	ID               int64
	ClientID         int64
	EmployeeID       int64
	Amount           decimal.Decimal
	InterestRate     decimal.Decimal
	DisbursementDate time.Time
	DueDate          time.Time
	Balance          decimal.Decimal
	Status           string
	Reference        string
}
