package entity

import "github.com/shopspring/decimal"

// Account representa una cuenta bancaria de un cliente.
// AccountNumber es clave natural única. Balance nunca queda negativo después
// de un commit; solo se muta a través del ledger (nunca escritura directa).
type Account struct {
	ID            int64
	ClientID      int64
	AccountNumber string
	Balance       decimal.Decimal
}
