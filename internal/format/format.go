// Package format turns view model values into display strings for a locale.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const recentDays = 7

func printer(locale string) *message.Printer {
	return message.NewPrinter(language.Make(locale))
}

func baseLanguage(locale string) string {
	base, _ := language.Make(locale).Base()
	return base.String()
}

// Number formats amount with two fraction digits and the locale's grouping.
func Number(amount decimal.Decimal, locale string) string {
	f := amount.Round(2).InexactFloat64()
	return printer(locale).Sprint(number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Symbol returns the display symbol of an ISO 4217 code, or the code itself
// when it is unknown.
func Symbol(code, locale string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}
	return printer(locale).Sprint(currency.Symbol(unit))
}

// Currency formats amount in the given currency. English locales put the
// symbol in front; the rest place it after the number.
func Currency(amount decimal.Decimal, code, locale string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	num := Number(amount, locale)
	sym := Symbol(code, locale)
	if baseLanguage(locale) == "en" {
		return sign + sym + num
	}
	return sign + num + " " + sym
}

func dateLayout(locale string) string {
	switch {
	case locale == "en-US":
		return "01/02/2006"
	case baseLanguage(locale) == "de":
		return "02.01.2006"
	default:
		return "02/01/2006"
	}
}

// Date formats the calendar date of ts.
func Date(ts time.Time, locale string) string {
	return ts.Format(dateLayout(locale))
}

// DateTime formats ts as date and 24h time, as shown next to the balance.
func DateTime(ts time.Time, locale string) string {
	return ts.Format(dateLayout(locale) + ", 15:04")
}

// DaysBetween is the whole number of days separating a and b.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(math.Abs(b.Sub(a).Hours()) / 24))
}

// MovementDate labels a movement timestamp relative to now.
func MovementDate(ts, now time.Time, locale string) string {
	days := DaysBetween(ts, now)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= recentDays:
		return fmt.Sprintf("%d days ago", days)
	}
	return Date(ts, locale)
}

// Countdown renders the time left in a session as mm:ss.
func Countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Welcome greets an owner by first name.
func Welcome(owner string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(owner), " ")
	if first == "" {
		return "Log in to get started"
	}
	return "Welcome back, " + first
}
