package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdrawal registro inmutable de un débito completado sobre una cuenta.
// Reference agrupa la operación lógica que lo generó (los ítems de un lote
// comparten la misma referencia).
type Withdrawal struct {
	ID        int64
	AccountID int64
	Amount    decimal.Decimal
	Date      time.Time
	Method    string
	Reference string
}
