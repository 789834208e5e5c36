package bank

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/bankist/backend/internal/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yml
var defaultSeed []byte

type seedFile struct {
	Accounts []seedAccount `yaml:"accounts"`
}

type seedAccount struct {
	Owner          string      `yaml:"owner"`
	Movements      []float64   `yaml:"movements"`
	MovementsDates []time.Time `yaml:"movementsDates"`
	InterestRate   float64     `yaml:"interestRate"`
	PIN            int         `yaml:"pin"`
	Currency       string      `yaml:"currency"`
	Locale         string      `yaml:"locale"`
}

// DefaultSeed returns the built-in demo accounts.
func DefaultSeed() ([]*models.Account, error) {
	return LoadSeed(defaultSeed)
}

// LoadAccounts returns the accounts in path, or the built-in ones when path
// is empty.
func LoadAccounts(path string) ([]*models.Account, error) {
	if path == "" {
		return DefaultSeed()
	}
	return LoadSeedFile(path)
}

// LoadSeedFile reads accounts from a YAML file on disk.
func LoadSeedFile(path string) ([]*models.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return LoadSeed(data)
}

// LoadSeed parses YAML seed data. Usernames are left empty; NewStore derives
// them.
func LoadSeed(data []byte) ([]*models.Account, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	accounts := make([]*models.Account, 0, len(f.Accounts))
	for _, sa := range f.Accounts {
		if sa.Owner == "" {
			return nil, fmt.Errorf("seed account without owner")
		}
		if len(sa.Movements) != len(sa.MovementsDates) {
			return nil, fmt.Errorf("seed account %q: %d movements but %d dates",
				sa.Owner, len(sa.Movements), len(sa.MovementsDates))
		}

		a := &models.Account{
			Owner:          sa.Owner,
			PIN:            sa.PIN,
			Movements:      make([]decimal.Decimal, len(sa.Movements)),
			MovementsDates: append([]time.Time(nil), sa.MovementsDates...),
			InterestRate:   decimal.NewFromFloat(sa.InterestRate),
			Currency:       sa.Currency,
			Locale:         sa.Locale,
		}
		for i, m := range sa.Movements {
			a.Movements[i] = decimal.NewFromFloat(m)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
