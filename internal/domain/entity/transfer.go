package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una transferencia. Solo TransferCompleted mueve saldos;
// pending y failed se registran sin efecto sobre las cuentas.
const (
	TransferPending   = "pending"
	TransferCompleted = "completed"
	TransferFailed    = "failed"
)

// Transfer registro de una transferencia entre dos cuentas.
type Transfer struct {
	ID            int64
	FromAccountID int64
	ToAccountID   int64
	Amount        decimal.Decimal
	Date          time.Time
	Method        string
	Status        string
	Reference     string
}

// ValidTransferStatus verifica que el estado sea uno de los conocidos.
func ValidTransferStatus(s string) bool {
	return s == TransferPending || s == TransferCompleted || s == TransferFailed
}
