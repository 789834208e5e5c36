package bank

import "github.com/bankist/backend/internal/models"

// Store owns the set of accounts. It is not safe for concurrent use; callers
// that share a Store across goroutines serialise access themselves.
type Store struct {
	accounts []*models.Account
}

// NewStore builds a store over accounts and derives every username.
func NewStore(accounts []*models.Account) (*Store, error) {
	s := &Store{accounts: accounts}
	if err := s.DeriveUsernames(); err != nil {
		return nil, err
	}
	return s, nil
}

// DeriveUsernames recomputes the username of every account from its owner.
// It fails if two accounts end up with the same handle, leaving the handles
// derived so far in place.
func (s *Store) DeriveUsernames() error {
	seen := make(map[string]string, len(s.accounts))
	for _, a := range s.accounts {
		a.Username = DeriveUsername(a.Owner)
		if owner, ok := seen[a.Username]; ok {
			return duplicateUsername(a.Username, owner, a.Owner)
		}
		seen[a.Username] = a.Owner
	}
	return nil
}

// FindByUsername returns the account whose username matches exactly.
func (s *Store) FindByUsername(username string) (*models.Account, bool) {
	for _, a := range s.accounts {
		if a.Username == username {
			return a, true
		}
	}
	return nil, false
}

// RemoveByUsername deletes the matching account. Unknown usernames are ignored.
func (s *Store) RemoveByUsername(username string) {
	for i, a := range s.accounts {
		if a.Username == username {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return
		}
	}
}

// Accounts returns the accounts in store order. The slice is a copy; the
// accounts are shared.
func (s *Store) Accounts() []*models.Account {
	out := make([]*models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Usernames lists every handle in store order.
func (s *Store) Usernames() []string {
	out := make([]string, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a.Username)
	}
	return out
}

func (s *Store) Len() int {
	return len(s.accounts)
}
