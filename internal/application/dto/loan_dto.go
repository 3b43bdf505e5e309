package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanCreate campos escribibles de un préstamo. Cliente y empleado se
// indican por nombre completo (claves naturales, no únicas).
type LoanCreate struct {
	ClientFullName   string          `json:"client_full_name"`
	EmployeeFullName string          `json:"employee_full_name"`
	Amount           decimal.Decimal `json:"amount"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	DisbursementDate time.Time       `json:"disbursement_date"`
	DueDate          time.Time       `json:"due_date"`
	Balance          decimal.Decimal `json:"balance"`
	Status           string          `json:"status"`
}

// LoanResponse préstamo emitido: campos de creación más ids resueltos.
type LoanResponse struct {
	LoanCreate
	LoanID     int64 `json:"loan_id"`
	IDClient   int64 `json:"id_client"`
	EmployeeID int64 `json:"employee_id"`
}

// LoanListItem fila de préstamo tal como está almacenada (ids internos).
type LoanListItem struct {
	LoanID           int64           `json:"loan_id"`
	IDClient         int64           `json:"id_client"`
	EmployeeID       int64           `json:"employee_id"`
	Amount           decimal.Decimal `json:"amount"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	DisbursementDate time.Time       `json:"disbursement_date"`
	DueDate          time.Time       `json:"due_date"`
	Balance          decimal.Decimal `json:"balance"`
	Status           string          `json:"status"`
	Reference        string          `json:"reference"`
}
