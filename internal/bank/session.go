package bank

import (
	"time"

	"github.com/bankist/backend/internal/models"
)

// Session records which account, if any, is logged in. The zero value is a
// logged-out session with sorting off.
type Session struct {
	account   *models.Account
	sorted    bool
	expiresAt time.Time
}

// LoggedIn reports whether an account is attached to the session.
func (s *Session) LoggedIn() bool {
	return s.account != nil
}

// Account returns the logged-in account, or nil.
func (s *Session) Account() *models.Account {
	return s.account
}

// Sorted reports the current sort toggle.
func (s *Session) Sorted() bool {
	return s.sorted
}

// ExpiresAt is the idle deadline of a logged-in session. It is zero when the
// session is logged out or has no timeout.
func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

func (s *Session) expired(now time.Time) bool {
	return !s.expiresAt.IsZero() && !now.Before(s.expiresAt)
}

func (s *Session) login(a *models.Account) {
	s.account = a
	s.expiresAt = time.Time{}
}

func (s *Session) logout(resetSort bool) {
	s.account = nil
	s.expiresAt = time.Time{}
	if resetSort {
		s.sorted = false
	}
}
