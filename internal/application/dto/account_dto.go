package dto

import "github.com/shopspring/decimal"

// AccountCreate campos escribibles de una cuenta. El dueño se indica por
// nombre completo del cliente (clave natural), no por id interno.
type AccountCreate struct {
	AccountNumber  string          `json:"account_number"`
	Balance        decimal.Decimal `json:"balance"`
	ClientFullName string          `json:"client_full_name"`
}

// AccountResponse cuenta almacenada: campos de creación más id generado e
// id interno del cliente resuelto.
type AccountResponse struct {
	AccountID      int64           `json:"account_id"`
	IDClient       int64           `json:"id_client"`
	AccountNumber  string          `json:"account_number"`
	Balance        decimal.Decimal `json:"balance"`
	ClientFullName string          `json:"client_full_name,omitempty"`
}
