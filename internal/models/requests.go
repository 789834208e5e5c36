package models

import "github.com/shopspring/decimal"

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"js"`
	PIN      string `json:"pin" validate:"required,numeric" example:"1111"`
}

// TransferRequest moves money from the session account to another account.
type TransferRequest struct {
	To     string          `json:"to" validate:"required" example:"jd"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"250"`
}

// LoanRequest asks for a loan credited to the session account. Fractional
// amounts are floored before use.
type LoanRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"1000"`
}

// CloseAccountRequest repeats the session credentials to confirm closure.
type CloseAccountRequest struct {
	Username string `json:"username" validate:"required" example:"js"`
	PIN      string `json:"pin" validate:"required,numeric" example:"1111"`
}

// QRGenerateRequest asks for a receive-money QR code for the session account.
type QRGenerateRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"50"`
}

// QRProcessRequest carries the code read from a scanned QR image.
type QRProcessRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// PaymentRequest is the payload encoded in a receive-money QR code.
type PaymentRequest struct {
	To       string          `json:"to" example:"jd"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"50"`
	Currency string          `json:"currency" example:"USD"`
	IssuedAt int64           `json:"issuedAt"`
	Nonce    string          `json:"nonce"`
}
