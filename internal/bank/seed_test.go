package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	accounts, err := DefaultSeed()
	require.NoError(t, err)
	require.Len(t, accounts, 4)

	js := accounts[0]
	assert.Equal(t, "Jonas Schmedtmann", js.Owner)
	assert.Equal(t, 1111, js.PIN)
	assert.Equal(t, "1.2", js.InterestRate.String())
	assert.Equal(t, "EUR", js.Currency)
	for _, a := range accounts {
		assert.Equal(t, len(a.Movements), len(a.MovementsDates), a.Owner)
		assert.Empty(t, a.Username)
	}
}

func TestLoadSeed(t *testing.T) {
	t.Run("length mismatch", func(t *testing.T) {
		data := []byte(`
accounts:
  - owner: Broken Account
    movements: [100, 200]
    movementsDates: [2020-01-01T00:00:00Z]
    pin: 1
`)
		_, err := LoadSeed(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 movements but 1 dates")
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := LoadSeed([]byte("accounts:\n  - pin: 1\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadSeed([]byte("accounts: ["))
		assert.Error(t, err)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "accounts.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
accounts:
  - owner: Ada Lovelace
    movements: [12.5]
    movementsDates: [2021-06-01T10:00:00Z]
    interestRate: 2
    pin: 9999
    currency: GBP
    locale: en-GB
`), 0o600))

		accounts, err := LoadSeedFile(path)
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, "12.5", accounts[0].Movements[0].String())
	})
}

func TestLoadAccounts(t *testing.T) {
	accounts, err := LoadAccounts("")
	require.NoError(t, err)
	assert.Len(t, accounts, 4)

	_, err = LoadAccounts(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
