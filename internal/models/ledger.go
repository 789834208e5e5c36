package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a single dashboard account together with its movement history.
// Movements and MovementsDates are parallel slices: index i of one always
// describes index i of the other.
type Account struct {
	Owner          string            `json:"owner"`
	Username       string            `json:"username"`
	PIN            int               `json:"-"`
	Movements      []decimal.Decimal `json:"movements"`
	MovementsDates []time.Time       `json:"movementsDates"`
	InterestRate   decimal.Decimal   `json:"interestRate"`
	Currency       string            `json:"currency"`
	Locale         string            `json:"locale"`
}

// LedgerEntry pairs one movement with its timestamp.
type LedgerEntry struct {
	Position  int             `json:"position"` // index in the stored movements
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}
