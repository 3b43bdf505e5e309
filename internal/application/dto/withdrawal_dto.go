package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalCreate campos escribibles de un retiro. La cuenta se indica por
// número de cuenta (clave natural única).
type WithdrawalCreate struct {
	AccountNumber    string          `json:"account_number"`
	Amount           decimal.Decimal `json:"amount"`
	WithdrawalDate   time.Time       `json:"withdrawal_date"`
	WithdrawalMethod string          `json:"withdrawal_method"`
}

// WithdrawalResponse retiro asentado: id generado, cuenta resuelta y el
// saldo resultante tras el débito.
type WithdrawalResponse struct {
	WithdrawalCreate
	WithdrawalID int64           `json:"withdrawal_id"`
	AccountID    int64           `json:"account_id"`
	NewBalance   decimal.Decimal `json:"new_balance"`
}

// WithdrawalListItem fila de retiro tal como está almacenada (ids internos).
type WithdrawalListItem struct {
	WithdrawalID     int64           `json:"withdrawal_id"`
	AccountID        int64           `json:"account_id"`
	Amount           decimal.Decimal `json:"amount"`
	WithdrawalDate   time.Time       `json:"withdrawal_date"`
	WithdrawalMethod string          `json:"withdrawal_method"`
	Reference        string          `json:"reference"`
}
