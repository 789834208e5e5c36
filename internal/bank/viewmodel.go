package bank

import (
	"time"

	"github.com/bankist/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BuildViewModel computes the dashboard values for sess as of now. A
// logged-out session yields an empty model carrying only the sort flag.
func BuildViewModel(sess *Session, now time.Time) models.ViewModel {
	vm := models.ViewModel{
		Rows:          []models.MovementRow{},
		Balance:       decimal.Zero,
		TotalIncome:   decimal.Zero,
		TotalExpense:  decimal.Zero,
		TotalInterest: decimal.Zero,
		Sorted:        sess.Sorted(),
		AsOf:          now,
	}
	a := sess.Account()
	if a == nil {
		return vm
	}

	vm.LoggedIn = true
	vm.Owner = a.Owner
	vm.Username = a.Username
	vm.Currency = a.Currency
	vm.Locale = a.Locale
	vm.Balance = Balance(a)
	vm.TotalIncome = TotalIncome(a)
	vm.TotalExpense = TotalExpense(a)
	vm.TotalInterest = TotalInterest(a)
	if exp := sess.ExpiresAt(); !exp.IsZero() {
		vm.ExpiresAt = &exp
	}

	for i, e := range Entries(a, sess.Sorted()) {
		vm.Rows = append(vm.Rows, models.MovementRow{
			Index:     i + 1,
			Type:      MovementTypeOf(e.Amount),
			Amount:    e.Amount,
			Timestamp: e.Timestamp,
		})
	}
	return vm
}

// MovementTypeOf classifies amount. Zero counts as a withdrawal.
func MovementTypeOf(amount decimal.Decimal) models.MovementType {
	if amount.IsPositive() {
		return models.MovementDeposit
	}
	return models.MovementWithdrawal
}
