package tui

import (
	"testing"
	"time"

	"github.com/bankist/backend/internal/bank"
	"github.com/bankist/backend/internal/format"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(amount int64, code, locale string) string {
	return format.Currency(decimal.NewFromInt(amount), code, locale)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestApp(t *testing.T) (*App, *fakeClock) {
	t.Helper()
	accounts, err := bank.DefaultSeed()
	require.NoError(t, err)
	store, err := bank.NewStore(accounts)
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2020, 7, 26, 12, 0, 0, 0, time.UTC)}
	teller := bank.NewTeller(store, clock.Now)
	teller.Timeout = 5 * time.Minute
	return New(teller), clock
}

func frontPage(a *App) string {
	page, _ := a.pages.GetFrontPage()
	return page
}

func TestApp_StartsOnLogin(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Equal(t, PageLogin, frontPage(a))
}

func TestApp_Login(t *testing.T) {
	t.Run("wrong pin stays on login", func(t *testing.T) {
		a, _ := newTestApp(t)
		a.loginUsername.SetText("js")
		a.loginPIN.SetText("9999")
		a.submitLogin()

		assert.Equal(t, PageLogin, frontPage(a))
		assert.Contains(t, a.status.GetText(true), "invalid username or pin")
		assert.Empty(t, a.loginPIN.GetText())
	})

	t.Run("renders the dashboard", func(t *testing.T) {
		a, _ := newTestApp(t)
		a.loginUsername.SetText("jd")
		a.loginPIN.SetText("2222")
		a.submitLogin()

		require.Equal(t, PageDashboard, frontPage(a))
		assert.Equal(t, "Welcome back, Jessica", a.welcome.GetText(true))
		assert.Equal(t, money(11720, "USD", "en-US"), a.balance.GetText(true))
		assert.Equal(t, "You will be logged out in 05:00", a.timer.GetText(true))

		require.Equal(t, 8, a.movements.GetRowCount())
		assert.Equal(t, "8 WITHDRAWAL", a.movements.GetCell(0, 0).Text)
		assert.Equal(t, "Today", a.movements.GetCell(0, 1).Text)
		assert.Equal(t, "1 DEPOSIT", a.movements.GetCell(7, 0).Text)

		summary := a.summary.GetText(true)
		assert.Contains(t, summary, "IN "+money(16900, "USD", "en-US"))
		assert.Contains(t, summary, "OUT "+money(5180, "USD", "en-US"))
	})
}

func TestApp_Transfer(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.login("jd", "2222"))

	a.transferTo.SetText("js")
	a.transferAmount.SetText("720")
	a.submitTransfer()

	assert.Equal(t, money(11000, "USD", "en-US"), a.balance.GetText(true))
	assert.Contains(t, a.status.GetText(true), "Sent 720 to js")
	assert.Empty(t, a.transferTo.GetText())

	a.transferTo.SetText("zz")
	a.transferAmount.SetText("10")
	a.submitTransfer()
	assert.Contains(t, a.status.GetText(true), "receiver account not found")
	assert.Equal(t, "zz", a.transferTo.GetText())

	assert.ErrorIs(t, a.transfer("js", "abc"), bank.ErrInvalidAmount)
	assert.ErrorIs(t, a.transfer("jd", "10"), bank.ErrSelfTransfer)
}

func TestApp_RequestLoan(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.login("stw", "3333"))

	_, err := a.requestLoan("5000")
	assert.ErrorIs(t, err, bank.ErrLoanRejected)

	credited, err := a.requestLoan("3999.9")
	require.NoError(t, err)
	assert.Equal(t, "3999", credited.String())
}

func TestApp_CloseAccount(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.login("ss", "4444"))

	assert.ErrorIs(t, a.closeAccount("ss", "x"), bank.ErrInvalidCredentials)

	a.closeUsername.SetText("ss")
	a.closePIN.SetText("4444")
	a.submitClose()

	assert.Equal(t, PageLogin, frontPage(a))
	_, ok := a.teller.Store().FindByUsername("ss")
	assert.False(t, ok)
}

func TestApp_Sort(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.login("js", "1111"))
	a.refresh()

	a.submitSort()
	assert.Equal(t, "8 DEPOSIT", a.movements.GetCell(0, 0).Text)
	assert.Equal(t, money(3000, "EUR", "pt-PT"), a.movements.GetCell(0, 2).Text)
	assert.Equal(t, money(-650, "EUR", "pt-PT"), a.movements.GetCell(7, 2).Text)

	a.submitSort()
	assert.Equal(t, money(1300, "EUR", "pt-PT"), a.movements.GetCell(0, 2).Text)
}

func TestApp_Suggestions(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.login("js", "1111"))

	assert.Equal(t, []string{"jd"}, a.teller.Store().Suggest("j", a.currentUsername(), suggestionLimit))
}

func TestApp_Countdown(t *testing.T) {
	a, clock := newTestApp(t)
	require.NoError(t, a.login("js", "1111"))
	a.refresh()

	clock.now = clock.now.Add(70 * time.Second)
	a.tick()
	assert.Equal(t, "You will be logged out in 03:50", a.timer.GetText(true))

	clock.now = clock.now.Add(4 * time.Minute)
	a.tick()
	assert.Equal(t, PageLogin, frontPage(a))
	assert.Contains(t, a.status.GetText(true), "session expired")
}

func TestApp_Logout(t *testing.T) {
	a, _ := newTestApp(t)
	require.NoError(t, a.login("js", "1111"))
	a.refresh()

	a.logout()
	assert.Equal(t, PageLogin, frontPage(a))
	assert.False(t, a.session.LoggedIn())
}
