package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferCreate campos escribibles de una transferencia. Status en vacío
// se toma como "pending"; solo "completed" mueve saldos.
type TransferCreate struct {
	FromAccountNumber string          `json:"from_account_number"`
	ToAccountNumber   string          `json:"to_account_number"`
	Amount            decimal.Decimal `json:"amount"`
	TransferDate      time.Time       `json:"transfer_date"`
	TransferMethod    string          `json:"transfer_method"`
	Status            string          `json:"status"`
}

// TransferResponse transferencia registrada con su id generado.
type TransferResponse struct {
	TransferCreate
	TransferID int64 `json:"transfer_id"`
}

// TransferListItem fila de transferencia tal como está almacenada (ids internos).
type TransferListItem struct {
	TransferID     int64           `json:"transfer_id"`
	FromAccountID  int64           `json:"from_account_id"`
	ToAccountID    int64           `json:"to_account_id"`
	Amount         decimal.Decimal `json:"amount"`
	TransferDate   time.Time       `json:"transfer_date"`
	TransferMethod string          `json:"transfer_method"`
	Status         string          `json:"status"`
	Reference      string          `json:"reference"`
}
