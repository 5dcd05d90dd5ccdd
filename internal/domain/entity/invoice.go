package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice belongs to a company via CompCode. PaidDate is non-nil exactly when
// Paid is true; the invoice update use case is the only writer that maintains
// this, there is no database constraint backing it.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time

	// Company is populated on single-invoice reads (joined projection).
	Company *Company
}
