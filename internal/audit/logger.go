package audit

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Event struct {
	ID        string           `json:"event_id"`
	Timestamp time.Time        `json:"timestamp"`
	EventType string           `json:"event_type"`
	Account   string           `json:"account,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Status    string           `json:"status"`
	Reason    string           `json:"reason,omitempty"`
	Details   any              `json:"details,omitempty"`
}

const (
	StatusSuccess  = "SUCCESS"
	StatusRejected = "REJECTED"
	StatusFailed   = "FAILED"
)

type Logger struct {
	out *log.Logger
	now func() time.Time
}

func NewLogger() *Logger {
	return NewLoggerTo(os.Stderr, time.Now)
}

// NewLoggerTo writes audit lines to w using clock for timestamps.
func NewLoggerTo(w io.Writer, clock func() time.Time) *Logger {
	if clock == nil {
		clock = time.Now
	}
	return &Logger{out: log.New(w, "", log.LstdFlags), now: clock}
}

func (a *Logger) LogTransfer(from, to string, amount decimal.Decimal, messageID string) string {
	return a.log(Event{
		EventType: "TRANSFER",
		Account:   from,
		Amount:    &amount,
		Status:    StatusSuccess,
		Details: map[string]string{
			"to_account": to,
			"message_id": messageID,
		},
	})
}

func (a *Logger) LogLoan(account string, amount decimal.Decimal) string {
	return a.log(Event{
		EventType: "LOAN",
		Account:   account,
		Amount:    &amount,
		Status:    StatusSuccess,
	})
}

// LogRejection records an action refused with a reason code.
func (a *Logger) LogRejection(account, operation, reason string) string {
	return a.log(Event{
		EventType: operation,
		Account:   account,
		Status:    StatusRejected,
		Reason:    reason,
	})
}

func (a *Logger) LogError(account, operation string, err error) string {
	return a.log(Event{
		EventType: operation,
		Account:   account,
		Status:    StatusFailed,
		Details:   map[string]string{"error": err.Error()},
	})
}

func (a *Logger) LogOperation(account, operation, details string) string {
	ev := Event{
		EventType: operation,
		Account:   account,
		Status:    StatusSuccess,
	}
	if details != "" {
		ev.Details = map[string]string{"details": details}
	}
	return a.log(ev)
}

func (a *Logger) log(event Event) string {
	event.ID = uuid.NewString()
	event.Timestamp = a.now()
	data, _ := json.Marshal(event)
	a.out.Printf("AUDIT: %s", string(data))
	return event.ID
}
