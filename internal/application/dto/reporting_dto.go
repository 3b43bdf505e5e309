package dto

import "github.com/shopspring/decimal"

// LoanSummaryResponse agregado de préstamos por cliente o por empleado.
type LoanSummaryResponse struct {
	NaturalKey         string          `json:"natural_key"`
	LoanCount          int64           `json:"loan_count"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// WithdrawalSummaryResponse agregado de retiros de una cuenta (rango opcional).
type WithdrawalSummaryResponse struct {
	AccountNumber   string          `json:"account_number"`
	WithdrawalCount int64           `json:"withdrawal_count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}
