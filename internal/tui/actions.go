package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bankist/backend/internal/bank"
	"github.com/bankist/backend/internal/format"
	"github.com/bankist/backend/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/shopspring/decimal"
)

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, bank.ErrInvalidAmount
	}
	return d, nil
}

func parsePIN(s string) (int, error) {
	pin, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, bank.ErrInvalidCredentials
	}
	return pin, nil
}

func (a *App) currentUsername() string {
	if acc := a.session.Account(); acc != nil {
		return acc.Username
	}
	return ""
}

func (a *App) login(username, pin string) error {
	p, err := parsePIN(pin)
	if err != nil {
		return err
	}
	_, err = a.teller.Login(&a.session, strings.TrimSpace(username), p)
	return err
}

func (a *App) transfer(to, amount string) error {
	d, err := parseAmount(amount)
	if err != nil {
		return err
	}
	return a.teller.Transfer(&a.session, strings.TrimSpace(to), d)
}

func (a *App) requestLoan(amount string) (decimal.Decimal, error) {
	d, err := parseAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	return a.teller.RequestLoan(&a.session, d)
}

func (a *App) closeAccount(username, pin string) error {
	p, err := parsePIN(pin)
	if err != nil {
		return err
	}
	return a.teller.CloseAccount(&a.session, strings.TrimSpace(username), p)
}

func (a *App) submitLogin() {
	err := a.login(a.loginUsername.GetText(), a.loginPIN.GetText())
	a.loginPIN.SetText("")
	if err != nil {
		a.report(err, "")
		return
	}
	a.loginUsername.SetText("")
	a.report(nil, "")
	a.app.SetFocus(a.transferForm)
}

func (a *App) submitTransfer() {
	to, amount := a.transferTo.GetText(), a.transferAmount.GetText()
	err := a.transfer(to, amount)
	if err == nil {
		a.transferTo.SetText("")
		a.transferAmount.SetText("")
	}
	a.report(err, fmt.Sprintf("Sent %s to %s", strings.TrimSpace(amount), strings.TrimSpace(to)))
}

func (a *App) submitLoan() {
	credited, err := a.requestLoan(a.loanAmount.GetText())
	if err == nil {
		a.loanAmount.SetText("")
	}
	a.report(err, "Loan approved: "+credited.String())
}

func (a *App) submitClose() {
	err := a.closeAccount(a.closeUsername.GetText(), a.closePIN.GetText())
	a.closeUsername.SetText("")
	a.closePIN.SetText("")
	a.report(err, "Account closed")
}

func (a *App) submitSort() {
	_, err := a.teller.ToggleSort(&a.session)
	a.report(err, "")
}

func (a *App) logout() {
	a.teller.Logout(&a.session)
	a.report(nil, "Logged out")
}

// report shows the outcome of an action and redraws the dashboard.
func (a *App) report(err error, ok string) {
	switch {
	case err != nil:
		a.status.SetText("[red]" + tview.Escape(err.Error()) + "[-]")
	case ok != "":
		a.status.SetText("[green]" + tview.Escape(ok) + "[-]")
	default:
		a.status.SetText("")
	}
	a.refresh()
}

// tick runs once a second while the app is up.
func (a *App) tick() {
	if !a.session.LoggedIn() {
		return
	}
	if err := a.teller.Check(&a.session); err != nil {
		a.report(err, "")
		return
	}
	a.renderTimer()
}

func (a *App) renderTimer() {
	exp := a.session.ExpiresAt()
	if exp.IsZero() {
		a.timer.SetText("")
		return
	}
	a.timer.SetText("You will be logged out in [yellow]" + format.Countdown(exp.Sub(a.teller.Now())) + "[-]")
}

// refresh redraws every widget from a fresh view model and shows the page
// that matches the session state.
func (a *App) refresh() {
	vm := bank.BuildViewModel(&a.session, a.teller.Now())
	if !vm.LoggedIn {
		a.welcome.SetText(format.Welcome(""))
		a.movements.Clear()
		a.pages.SwitchToPage(PageLogin)
		a.app.SetFocus(a.loginForm)
		return
	}

	a.welcome.SetText(tview.Escape(format.Welcome(vm.Owner)))
	a.asOf.SetText("As of " + format.DateTime(vm.AsOf, vm.Locale))
	a.balance.SetText("[::b]" + tview.Escape(format.Currency(vm.Balance, vm.Currency, vm.Locale)) + "[::-]")
	a.renderMovements(vm)
	a.renderSummary(vm)
	a.renderTimer()

	if page, _ := a.pages.GetFrontPage(); page != PageDashboard {
		a.pages.SwitchToPage(PageDashboard)
	}
}

// renderMovements lists the rows with the last one on top.
func (a *App) renderMovements(vm models.ViewModel) {
	a.movements.Clear()
	for i := range vm.Rows {
		row := vm.Rows[len(vm.Rows)-1-i]

		color := tcell.ColorGreen
		if row.Type == models.MovementWithdrawal {
			color = tcell.ColorRed
		}
		label := fmt.Sprintf("%d %s", row.Index, strings.ToUpper(string(row.Type)))

		a.movements.SetCell(i, 0, tview.NewTableCell(label).SetTextColor(color))
		a.movements.SetCell(i, 1, tview.NewTableCell(format.MovementDate(row.Timestamp, vm.AsOf, vm.Locale)).
			SetTextColor(tcell.ColorGray))
		a.movements.SetCell(i, 2, tview.NewTableCell(tview.Escape(format.Currency(row.Amount, vm.Currency, vm.Locale))).
			SetAlign(tview.AlignRight).SetExpansion(1))
	}
	a.movements.ScrollToBeginning()
}

func (a *App) renderSummary(vm models.ViewModel) {
	money := func(d decimal.Decimal) string {
		return tview.Escape(format.Currency(d, vm.Currency, vm.Locale))
	}
	a.summary.SetText(fmt.Sprintf("IN [green]%s[-]  OUT [red]%s[-]  INTEREST [green]%s[-]",
		money(vm.TotalIncome), money(vm.TotalExpense.Abs()), money(vm.TotalInterest)))
}
