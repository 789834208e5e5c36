// Package tui draws the Bankist dashboard in a terminal and drives the teller
// from keyboard input.
package tui

import (
	"time"

	"github.com/bankist/backend/internal/bank"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	// PageLogin shows the login form. It is also where the app lands after a
	// logout, an account closure or an expired session.
	PageLogin = "Login"
	// PageDashboard shows the movements, summary and operation forms of the
	// logged-in account.
	PageDashboard = "Dashboard"
)

const navText = "[yellow]F2[-] transfer  [yellow]F3[-] loan  [yellow]F4[-] close account  [yellow]F5[-] sort  [yellow]F10[-] log out  [yellow]Ctrl+C[-] quit"

// App is the terminal dashboard. It owns a single session; every action runs
// on the tview event loop.
type App struct {
	app     *tview.Application
	pages   *tview.Pages
	layout  *tview.Flex
	teller  *bank.Teller
	session bank.Session

	welcome   *tview.TextView
	asOf      *tview.TextView
	balance   *tview.TextView
	movements *tview.Table
	summary   *tview.TextView
	timer     *tview.TextView
	status    *tview.TextView
	nav       *tview.TextView

	loginForm     *tview.Form
	loginUsername *tview.InputField
	loginPIN      *tview.InputField

	transferForm   *tview.Form
	transferTo     *tview.InputField
	transferAmount *tview.InputField

	loanForm   *tview.Form
	loanAmount *tview.InputField

	closeForm     *tview.Form
	closeUsername *tview.InputField
	closePIN      *tview.InputField

	sortButton *tview.Button
}

// New builds the dashboard over teller. Nothing is drawn until Run.
func New(teller *bank.Teller) *App {
	a := &App{
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		teller: teller,
	}

	a.status = tview.NewTextView().SetDynamicColors(true)
	a.nav = tview.NewTextView().SetDynamicColors(true).SetText(navText)

	a.pages.AddPage(PageLogin, a.loginPage(), true, true).
		AddPage(PageDashboard, a.dashboardPage(), true, false)

	a.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.status, 1, 0, false).
		AddItem(a.nav, 1, 0, false)

	a.app.SetInputCapture(a.capture)
	a.refresh()
	return a
}

// Run starts the event loop and the logout countdown. It returns when the
// user quits.
func (a *App) Run() error {
	done := make(chan struct{})
	defer close(done)
	go a.countdown(done)

	return a.app.SetRoot(a.layout, true).EnableMouse(true).Run()
}

func (a *App) countdown(done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			a.app.QueueUpdateDraw(a.tick)
		}
	}
}

// capture handles the global shortcuts. They only apply on the dashboard so
// that typing into the login form is never intercepted.
func (a *App) capture(e *tcell.EventKey) *tcell.EventKey {
	if page, _ := a.pages.GetFrontPage(); page != PageDashboard {
		return e
	}

	switch e.Key() {
	case tcell.KeyF2:
		a.app.SetFocus(a.transferForm)
	case tcell.KeyF3:
		a.app.SetFocus(a.loanForm)
	case tcell.KeyF4:
		a.app.SetFocus(a.closeForm)
	case tcell.KeyF5:
		a.submitSort()
	case tcell.KeyF10:
		a.logout()
	case tcell.KeyEscape:
		a.app.SetFocus(a.movements)
	default:
		return e
	}
	return nil
}
