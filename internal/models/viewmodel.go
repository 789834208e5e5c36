package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a movement row for display.
type MovementType string

const (
	MovementDeposit    MovementType = "deposit"
	MovementWithdrawal MovementType = "withdrawal"
)

// MovementRow is one line of the movements list handed to a renderer.
type MovementRow struct {
	Index     int             `json:"index" example:"1"` // 1-based display position
	Type      MovementType    `json:"type" example:"deposit"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"200"`
	Timestamp time.Time       `json:"timestamp"`
}

// ViewModel is everything a renderer needs to draw the dashboard. It holds
// typed values only; formatting is left to the renderer.
type ViewModel struct {
	LoggedIn      bool            `json:"loggedIn"`
	Owner         string          `json:"owner,omitempty" example:"Jonas Schmedtmann"`
	Username      string          `json:"username,omitempty" example:"js"`
	Rows          []MovementRow   `json:"movements"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string" example:"3840"`
	TotalIncome   decimal.Decimal `json:"totalIncome" swaggertype:"string"`
	TotalExpense  decimal.Decimal `json:"totalExpense" swaggertype:"string"`
	TotalInterest decimal.Decimal `json:"totalInterest" swaggertype:"string"`
	Currency      string          `json:"currency,omitempty" example:"EUR"`
	Locale        string          `json:"locale,omitempty" example:"pt-PT"`
	Sorted        bool            `json:"sorted"`
	AsOf          time.Time       `json:"asOf"`
	ExpiresAt     *time.Time      `json:"expiresAt,omitempty"`
}
