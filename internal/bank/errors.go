package bank

import (
	"errors"
	"fmt"
)

// Reason names why an action was rejected.
type Reason string

const (
	ReasonInvalidCredentials Reason = "InvalidCredentials"
	ReasonInsufficientFunds  Reason = "InsufficientFunds"
	ReasonReceiverNotFound   Reason = "ReceiverNotFound"
	ReasonInvalidAmount      Reason = "InvalidAmount"
	ReasonLoanRejected       Reason = "LoanRejected"
	ReasonSelfTransfer       Reason = "SelfTransfer"
	ReasonNotLoggedIn        Reason = "NotLoggedIn"
	ReasonSessionExpired     Reason = "SessionExpired"
)

// RejectionError is returned when an action is refused. A rejected action
// never changes any state.
type RejectionError struct {
	Reason  Reason
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

var (
	ErrInvalidCredentials = &RejectionError{Reason: ReasonInvalidCredentials, Message: "invalid username or pin"}
	ErrInsufficientFunds  = &RejectionError{Reason: ReasonInsufficientFunds, Message: "insufficient balance"}
	ErrReceiverNotFound   = &RejectionError{Reason: ReasonReceiverNotFound, Message: "receiver account not found"}
	ErrInvalidAmount      = &RejectionError{Reason: ReasonInvalidAmount, Message: "amount must be > 0"}
	ErrLoanRejected       = &RejectionError{Reason: ReasonLoanRejected, Message: "no movement exceeds 10% of the requested loan"}
	ErrSelfTransfer       = &RejectionError{Reason: ReasonSelfTransfer, Message: "cannot transfer to the same account"}
	ErrNotLoggedIn        = &RejectionError{Reason: ReasonNotLoggedIn, Message: "no account is logged in"}
	ErrSessionExpired     = &RejectionError{Reason: ReasonSessionExpired, Message: "session expired, please log in again"}
)

// ErrDuplicateUsername is returned when two owners derive the same handle.
var ErrDuplicateUsername = errors.New("duplicate username")

// ReasonOf extracts the rejection reason from err, or "" when err is not a
// rejection.
func ReasonOf(err error) Reason {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason
	}
	return ""
}

func duplicateUsername(username, first, second string) error {
	return fmt.Errorf("%w %q shared by %q and %q", ErrDuplicateUsername, username, first, second)
}
