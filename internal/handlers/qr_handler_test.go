package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bankist/backend/internal/audit"
	"github.com/bankist/backend/internal/bank"
	"github.com/bankist/backend/internal/services"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQRHandler(t *testing.T, rdb *redis.Client) (*QRHandler, *services.DashboardService) {
	t.Helper()
	accounts, err := bank.DefaultSeed()
	require.NoError(t, err)
	store, err := bank.NewStore(accounts)
	require.NoError(t, err)

	teller := bank.NewTeller(store, time.Now)
	dashboard := services.NewDashboardService(teller, services.NewISO20022Service("BNKSPTPL", "Bankist"), audit.NewLogger())

	return NewQRHandler(services.NewQRService(rdb, 5*time.Minute), dashboard), dashboard
}

func post(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("POST", "/qr", bytes.NewBufferString(body)))
	return w
}

func errorReason(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp services.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Reason
}

func TestQRHandler_GenerateQR(t *testing.T) {
	t.Run("logged out", func(t *testing.T) {
		h, _ := newTestQRHandler(t, nil)
		w := post(h.GenerateQR, `{"amount":"50"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "NotLoggedIn", errorReason(t, w))
	})

	t.Run("redis not configured", func(t *testing.T) {
		h, dashboard := newTestQRHandler(t, nil)
		_, _, err := dashboard.Login("jd", 2222)
		require.NoError(t, err)

		w := post(h.GenerateQR, `{"amount":"50"}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("invalid amount", func(t *testing.T) {
		db, _ := redismock.NewClientMock()
		h, dashboard := newTestQRHandler(t, db)
		_, _, err := dashboard.Login("jd", 2222)
		require.NoError(t, err)

		w := post(h.GenerateQR, `{"amount":"0"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "InvalidAmount", errorReason(t, w))
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newTestQRHandler(t, nil)
		w := post(h.GenerateQR, `{"amount":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestQRHandler_ProcessQR(t *testing.T) {
	payload := `{"to":"jd","amount":"50","currency":"USD","issuedAt":1710495000,"nonce":"n"}`

	t.Run("valid code", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		h, _ := newTestQRHandler(t, db)
		mock.ExpectGetDel("qr:abc").SetVal(payload)

		w := post(h.ProcessQR, `{"qrData":"abc"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				To       string `json:"to"`
				Amount   string `json:"amount"`
				Currency string `json:"currency"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "jd", resp.Data.To)
		assert.Equal(t, "50", resp.Data.Amount)
		assert.Equal(t, "USD", resp.Data.Currency)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expired code", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		h, _ := newTestQRHandler(t, db)
		mock.ExpectGetDel("qr:gone").RedisNil()

		w := post(h.ProcessQR, `{"qrData":"gone"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing code", func(t *testing.T) {
		h, _ := newTestQRHandler(t, nil)
		w := post(h.ProcessQR, `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
