package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bankist/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetRecentMovements(t *testing.T) {
	svc, _ := newTestDashboard(t, permissiveAuditor())

	t.Run("logged out", func(t *testing.T) {
		w := httptest.NewRecorder()
		svc.GetRecentMovements(w, httptest.NewRequest("GET", "/movements/recent", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	_, _, err := svc.Login("js", 1111)
	require.NoError(t, err)

	t.Run("newest first", func(t *testing.T) {
		w := httptest.NewRecorder()
		svc.GetRecentMovements(w, httptest.NewRequest("GET", "/movements/recent?limit=3", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var entries []models.LedgerEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 3)
		assert.Equal(t, "1300", entries[0].Amount.String())
		assert.Equal(t, 7, entries[0].Position)
		assert.Equal(t, "70", entries[1].Amount.String())
		assert.Equal(t, "-130", entries[2].Amount.String())
	})

	t.Run("default limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		svc.GetRecentMovements(w, httptest.NewRequest("GET", "/movements/recent", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var entries []models.LedgerEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		assert.Len(t, entries, 8)
	})

	t.Run("limit out of range", func(t *testing.T) {
		w := httptest.NewRecorder()
		svc.GetRecentMovements(w, httptest.NewRequest("GET", "/movements/recent?limit=500", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		svc.GetRecentMovements(w, httptest.NewRequest("GET", "/movements/recent?limit=abc", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "limit must be a number", resp.Error)
	})
}

func TestDashboardService_NameEnquiry(t *testing.T) {
	svc, _ := newTestDashboard(t, permissiveAuditor())

	tests := []struct {
		name     string
		query    string
		code     int
		expected Recipient
		reason   string
	}{
		{name: "known", query: "?username=jd", code: http.StatusOK, expected: Recipient{Username: "jd", Owner: "Jessica Davis"}},
		{name: "unknown", query: "?username=zz", code: http.StatusNotFound, reason: "ReceiverNotFound"},
		{name: "missing", query: "", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			svc.NameEnquiry(w, httptest.NewRequest("GET", "/accounts/name-enquiry"+tt.query, nil))
			require.Equal(t, tt.code, w.Code)

			if tt.code != http.StatusOK {
				assert.Equal(t, tt.reason, decodeError(t, w).Reason)
				return
			}
			var got Recipient
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDashboardService_SearchRecipients(t *testing.T) {
	svc, _ := newTestDashboard(t, permissiveAuditor())
	_, _, err := svc.Login("js", 1111)
	require.NoError(t, err)

	search := func(query string) []Recipient {
		w := httptest.NewRecorder()
		svc.SearchRecipients(w, httptest.NewRequest("GET", "/accounts"+query, nil))
		require.Equal(t, http.StatusOK, w.Code)
		var out []Recipient
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		return out
	}

	t.Run("everyone but the session account", func(t *testing.T) {
		got := search("")
		assert.Equal(t, []Recipient{
			{Username: "jd", Owner: "Jessica Davis"},
			{Username: "stw", Owner: "Steven Thomas Williams"},
			{Username: "ss", Owner: "Sarah Smith"},
		}, got)
	})

	t.Run("fuzzy match", func(t *testing.T) {
		got := search("?q=sw")
		require.Len(t, got, 1)
		assert.Equal(t, "stw", got[0].Username)
	})

	t.Run("limit", func(t *testing.T) {
		assert.Len(t, search("?limit=2"), 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, search("?q=xyz"))
	})

	t.Run("bad limit", func(t *testing.T) {
		for _, q := range []string{"?limit=abc", "?limit=0", "?limit=-1"} {
			w := httptest.NewRecorder()
			svc.SearchRecipients(w, httptest.NewRequest("GET", "/accounts"+q, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})
}
