package services

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockAuditor struct {
	mock.Mock
}

func (m *MockAuditor) LogTransfer(from, to string, amount decimal.Decimal, messageID string) string {
	args := m.Called(from, to, amount, messageID)
	return args.String(0)
}

func (m *MockAuditor) LogLoan(account string, amount decimal.Decimal) string {
	args := m.Called(account, amount)
	return args.String(0)
}

func (m *MockAuditor) LogRejection(account, operation, reason string) string {
	args := m.Called(account, operation, reason)
	return args.String(0)
}

func (m *MockAuditor) LogError(account, operation string, err error) string {
	args := m.Called(account, operation, err)
	return args.String(0)
}

func (m *MockAuditor) LogOperation(account, operation, details string) string {
	args := m.Called(account, operation, details)
	return args.String(0)
}

// permissiveAuditor accepts any audit call.
func permissiveAuditor() *MockAuditor {
	m := &MockAuditor{}
	m.On("LogTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("evt").Maybe()
	m.On("LogLoan", mock.Anything, mock.Anything).Return("evt").Maybe()
	m.On("LogRejection", mock.Anything, mock.Anything, mock.Anything).Return("evt").Maybe()
	m.On("LogError", mock.Anything, mock.Anything, mock.Anything).Return("evt").Maybe()
	m.On("LogOperation", mock.Anything, mock.Anything, mock.Anything).Return("evt").Maybe()
	return m
}
