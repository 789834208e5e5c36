package bank

import (
	"sort"
	"time"

	"github.com/bankist/backend/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Balance is the sum of all movements.
func Balance(a *models.Account) decimal.Decimal {
	return decimal.Sum(decimal.Zero, a.Movements...)
}

// TotalIncome sums the non-negative movements.
func TotalIncome(a *models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if !m.IsNegative() {
			total = total.Add(m)
		}
	}
	return total
}

// TotalExpense sums the negative movements. The result keeps its sign.
func TotalExpense(a *models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if m.IsNegative() {
			total = total.Add(m)
		}
	}
	return total
}

// TotalInterest applies the account interest rate to every deposit. Interest
// below one unit of currency on a single deposit is not credited.
func TotalInterest(a *models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if !m.IsPositive() {
			continue
		}
		interest := m.Mul(a.InterestRate).Div(hundred)
		if interest.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			total = total.Add(interest)
		}
	}
	return total
}

// RecordTransaction appends a movement and its timestamp at matching indices.
func RecordTransaction(a *models.Account, amount decimal.Decimal, ts time.Time) {
	a.Movements = append(a.Movements, amount)
	a.MovementsDates = append(a.MovementsDates, ts)
}

// SortedView returns the movements sorted ascending when sorted is set, and
// in chronological order otherwise. The stored movements are never touched.
func SortedView(a *models.Account, sorted bool) []decimal.Decimal {
	out := make([]decimal.Decimal, len(a.Movements))
	copy(out, a.Movements)
	if sorted {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LessThan(out[j])
		})
	}
	return out
}

// Entries is SortedView with each amount still paired with its timestamp and
// stored position.
func Entries(a *models.Account, sorted bool) []models.LedgerEntry {
	out := make([]models.LedgerEntry, len(a.Movements))
	for i, m := range a.Movements {
		var ts time.Time
		if i < len(a.MovementsDates) {
			ts = a.MovementsDates[i]
		}
		out[i] = models.LedgerEntry{Position: i, Amount: m, Timestamp: ts}
	}
	if sorted {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.LessThan(out[j].Amount)
		})
	}
	return out
}
