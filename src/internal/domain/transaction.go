package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the transactions table. Nothing posts
// transactions yet; the table is kept so the schema is ready for it.
type Transaction struct {
	ID            int64
	AccountNumber string
	Type          string
	Amount        decimal.Decimal
	Timestamp     time.Time
}
