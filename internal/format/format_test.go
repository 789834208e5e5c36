package format

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	amount := decimal.RequireFromString("1234.5")

	assert.Equal(t, "1,234.50", Number(amount, "en-US"))
	assert.Equal(t, "1.234,50", Number(amount, "de-DE"))
	assert.Equal(t, "0.00", Number(decimal.Zero, "en-GB"))
}

func TestCurrency(t *testing.T) {
	t.Run("symbol before number", func(t *testing.T) {
		got := Currency(decimal.RequireFromString("1234.5"), "USD", "en-US")
		assert.Contains(t, got, "$")
		assert.True(t, strings.HasSuffix(got, "1,234.50"), got)
	})

	t.Run("symbol after number", func(t *testing.T) {
		got := Currency(decimal.RequireFromString("1234.5"), "EUR", "de-DE")
		assert.Equal(t, "1.234,50 €", got)
	})

	t.Run("negative", func(t *testing.T) {
		got := Currency(decimal.NewFromInt(-650), "GBP", "en-GB")
		assert.Equal(t, "-£650.00", got)
	})

	t.Run("unknown code", func(t *testing.T) {
		got := Currency(decimal.NewFromInt(5), "???", "fr-FR")
		assert.Contains(t, got, "???")
	})
}

func TestMovementDate(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		ts     time.Time
		locale string
		want   string
	}{
		{"same day", now.Add(-3 * time.Hour), "en-US", "Today"},
		{"one day", now.AddDate(0, 0, -1), "en-US", "Yesterday"},
		{"few days", now.AddDate(0, 0, -4), "en-US", "4 days ago"},
		{"one week", now.AddDate(0, 0, -7), "en-US", "7 days ago"},
		{"us layout", now.AddDate(0, 0, -30), "en-US", "02/14/2024"},
		{"uk layout", now.AddDate(0, 0, -30), "en-GB", "14/02/2024"},
		{"german layout", now.AddDate(0, 0, -30), "de-DE", "14.02.2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MovementDate(tt.ts, now, tt.locale))
		})
	}
}

func TestCountdown(t *testing.T) {
	assert.Equal(t, "05:00", Countdown(5*time.Minute))
	assert.Equal(t, "01:09", Countdown(69*time.Second+400*time.Millisecond))
	assert.Equal(t, "00:00", Countdown(-time.Second))
}

func TestWelcome(t *testing.T) {
	assert.Equal(t, "Welcome back, Jonas", Welcome("Jonas Schmedtmann"))
	assert.Equal(t, "Log in to get started", Welcome(""))
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 7, 0, 0, time.UTC)
	assert.Equal(t, "03/05/2024, 09:07", DateTime(ts, "en-US"))
	assert.Equal(t, "05/03/2024, 09:07", DateTime(ts, "pt-PT"))
}
