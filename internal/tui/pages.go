package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const suggestionLimit = 5

func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}

func pinField(label string) *tview.InputField {
	return tview.NewInputField().
		SetLabel(label).
		SetFieldWidth(6).
		SetMaskCharacter('*').
		SetAcceptanceFunc(tview.InputFieldInteger)
}

func (a *App) loginPage() tview.Primitive {
	a.loginUsername = tview.NewInputField().SetLabel("User").SetFieldWidth(12)
	a.loginPIN = pinField("PIN")

	a.loginForm = tview.NewForm().
		AddFormItem(a.loginUsername).
		AddFormItem(a.loginPIN).
		AddButton("Log in", a.submitLogin)
	a.loginForm.SetBorder(true).SetTitle(" Bankist ")

	return center(a.loginForm, 32, 9)
}

func (a *App) dashboardPage() tview.Primitive {
	a.welcome = tview.NewTextView().SetDynamicColors(true)
	a.asOf = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignRight)
	a.balance = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignRight)
	a.summary = tview.NewTextView().SetDynamicColors(true)
	a.timer = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignRight)

	a.movements = tview.NewTable().SetSelectable(true, false)
	a.movements.SetBorder(true).SetTitle(" Movements ")

	a.transferTo = tview.NewInputField().SetLabel("Transfer to").SetFieldWidth(12)
	a.transferTo.SetAutocompleteFunc(func(current string) []string {
		if current == "" {
			return nil
		}
		return a.teller.Store().Suggest(current, a.currentUsername(), suggestionLimit)
	})
	a.transferTo.SetAutocompletedFunc(func(text string, index, source int) bool {
		a.transferTo.SetText(text)
		return source != tview.AutocompletedNavigate
	})
	a.transferAmount = tview.NewInputField().SetLabel("Amount").SetFieldWidth(12).
		SetAcceptanceFunc(tview.InputFieldFloat)
	a.transferForm = tview.NewForm().
		AddFormItem(a.transferTo).
		AddFormItem(a.transferAmount).
		AddButton("Transfer", a.submitTransfer)
	a.transferForm.SetBorder(true).SetTitle(" Transfer money ").SetTitleColor(tcell.ColorGoldenrod)

	a.loanAmount = tview.NewInputField().SetLabel("Amount").SetFieldWidth(12).
		SetAcceptanceFunc(tview.InputFieldFloat)
	a.loanForm = tview.NewForm().
		AddFormItem(a.loanAmount).
		AddButton("Request", a.submitLoan)
	a.loanForm.SetBorder(true).SetTitle(" Request loan ").SetTitleColor(tcell.ColorGreen)

	a.closeUsername = tview.NewInputField().SetLabel("Confirm user").SetFieldWidth(12)
	a.closePIN = pinField("Confirm PIN")
	a.closeForm = tview.NewForm().
		AddFormItem(a.closeUsername).
		AddFormItem(a.closePIN).
		AddButton("Close", a.submitClose)
	a.closeForm.SetBorder(true).SetTitle(" Close account ").SetTitleColor(tcell.ColorRed)

	a.sortButton = tview.NewButton("↓ SORT").SetSelectedFunc(a.submitSort)

	header := tview.NewFlex().
		AddItem(a.welcome, 0, 1, false).
		AddItem(a.asOf, 0, 1, false)
	balanceRow := tview.NewFlex().
		AddItem(tview.NewTextView().SetText("Current balance"), 0, 1, false).
		AddItem(a.balance, 0, 1, false)
	operations := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.transferForm, 9, 0, false).
		AddItem(a.loanForm, 7, 0, false).
		AddItem(a.closeForm, 9, 0, false).
		AddItem(nil, 0, 1, false)
	body := tview.NewFlex().
		AddItem(a.movements, 0, 1, true).
		AddItem(operations, 42, 0, false)
	footer := tview.NewFlex().
		AddItem(a.summary, 0, 1, false).
		AddItem(a.sortButton, 10, 0, false).
		AddItem(a.timer, 0, 1, false)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(balanceRow, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(footer, 1, 0, false)
}
