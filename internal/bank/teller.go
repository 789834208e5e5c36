package bank

import (
	"time"

	"github.com/bankist/backend/internal/models"
	"github.com/shopspring/decimal"
)

var loanCollateralRatio = decimal.NewFromFloat(0.1)

// Teller runs the dashboard actions against a store. Every action either
// succeeds or returns a *RejectionError and leaves the store and session as
// they were.
type Teller struct {
	store *Store
	now   func() time.Time

	// Timeout is the idle period after which a session is logged out. Zero
	// disables expiry.
	Timeout time.Duration
	// ResetSortOnLogout clears the sort toggle whenever the session logs out.
	ResetSortOnLogout bool
}

// NewTeller returns a teller over store. A nil clock means time.Now.
func NewTeller(store *Store, clock func() time.Time) *Teller {
	if clock == nil {
		clock = time.Now
	}
	return &Teller{store: store, now: clock}
}

// Store returns the store the teller acts on.
func (t *Teller) Store() *Store {
	return t.store
}

// Now reads the teller clock.
func (t *Teller) Now() time.Time {
	return t.now()
}

// Login attaches the account matching username and pin to sess. A failed
// login leaves sess unchanged.
func (t *Teller) Login(sess *Session, username string, pin int) (*models.Account, error) {
	a, ok := t.store.FindByUsername(username)
	if !ok || a.PIN != pin {
		return nil, ErrInvalidCredentials
	}
	sess.login(a)
	t.touch(sess)
	return a, nil
}

// Logout detaches the current account, if any.
func (t *Teller) Logout(sess *Session) {
	sess.logout(t.ResetSortOnLogout)
}

// Transfer moves amount from the session account to the account named to.
// The sender must keep a strictly positive balance.
func (t *Teller) Transfer(sess *Session, to string, amount decimal.Decimal) error {
	sender, err := t.active(sess)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	receiver, ok := t.store.FindByUsername(to)
	if !ok {
		return ErrReceiverNotFound
	}
	if receiver.Username == sender.Username {
		return ErrSelfTransfer
	}
	if !Balance(sender).GreaterThan(amount) {
		return ErrInsufficientFunds
	}

	now := t.now()
	RecordTransaction(sender, amount.Neg(), now)
	RecordTransaction(receiver, amount, now)
	t.touch(sess)
	return nil
}

// RequestLoan credits the session account with the floored amount when its
// history holds at least one movement above 10% of that amount. It returns
// the amount actually credited.
func (t *Teller) RequestLoan(sess *Session, amount decimal.Decimal) (decimal.Decimal, error) {
	a, err := t.active(sess)
	if err != nil {
		return decimal.Zero, err
	}
	amount = amount.Floor()
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	if !LoanEligible(a, amount) {
		return decimal.Zero, ErrLoanRejected
	}

	RecordTransaction(a, amount, t.now())
	t.touch(sess)
	return amount, nil
}

// LoanEligible reports whether any movement of a exceeds 10% of amount.
func LoanEligible(a *models.Account, amount decimal.Decimal) bool {
	threshold := amount.Mul(loanCollateralRatio)
	for _, m := range a.Movements {
		if m.GreaterThan(threshold) {
			return true
		}
	}
	return false
}

// CloseAccount removes the session account from the store once the supplied
// credentials match it, then logs the session out.
func (t *Teller) CloseAccount(sess *Session, username string, pin int) error {
	a, err := t.active(sess)
	if err != nil {
		return err
	}
	if a.Username != username || a.PIN != pin {
		return ErrInvalidCredentials
	}
	t.store.RemoveByUsername(a.Username)
	t.Logout(sess)
	return nil
}

// ToggleSort flips the movement sort order and returns the new value.
func (t *Teller) ToggleSort(sess *Session) (bool, error) {
	if _, err := t.active(sess); err != nil {
		return sess.sorted, err
	}
	sess.sorted = !sess.sorted
	t.touch(sess)
	return sess.sorted, nil
}

// Check reports whether sess may still act, logging it out when its idle
// deadline has passed.
func (t *Teller) Check(sess *Session) error {
	_, err := t.active(sess)
	return err
}

func (t *Teller) active(sess *Session) (*models.Account, error) {
	if !sess.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	if sess.expired(t.now()) {
		t.Logout(sess)
		return nil, ErrSessionExpired
	}
	return sess.account, nil
}

func (t *Teller) touch(sess *Session) {
	if t.Timeout > 0 {
		sess.expiresAt = t.now().Add(t.Timeout)
	}
}
