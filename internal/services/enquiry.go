package services

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/bankist/backend/internal/bank"
	"github.com/bankist/backend/internal/models"
)

// Recipient identifies an account that can receive a transfer.
type Recipient struct {
	Username string `json:"username" example:"jd"`
	Owner    string `json:"owner" example:"Jessica Davis"`
}

// GetRecentMovements returns the latest movements
// @Summary Get recent movements
// @Description Latest movements of the logged-in account, newest first
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of movements to return (default: 10, max: 100)"
// @Success 200 {array} models.LedgerEntry
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /movements/recent [get]
func (s *DashboardService) GetRecentMovements(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Limit int `validate:"omitempty,min=1,max=100"`
	}
	limit, ok := queryLimit(w, r, 10)
	if !ok {
		return
	}
	req.Limit = limit

	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.teller.Check(&s.session); err != nil {
		SendRejection(w, err)
		return
	}

	entries := bank.Entries(s.session.Account(), false)
	out := make([]models.LedgerEntry, 0, req.Limit)
	for i := len(entries) - 1; i >= 0 && len(out) < req.Limit; i-- {
		out = append(out, entries[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// NameEnquiry resolves a username to its owner
// @Summary Account name enquiry
// @Description Look up the owner of a username before transferring to it
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param username query string true "Username"
// @Success 200 {object} Recipient
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "ReceiverNotFound"
// @Router /accounts/name-enquiry [get]
func (s *DashboardService) NameEnquiry(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.URL.Query().Get("username"))
	log.Printf("[ACCOUNT_ENQUIRY] Name enquiry for %q from IP: %s", username, r.RemoteAddr)

	if username == "" {
		SendErrorResponse(w, "username is required", http.StatusBadRequest, nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.teller.Store().FindByUsername(username)
	if !ok {
		SendRejection(w, bank.ErrReceiverNotFound)
		return
	}
	writeJSON(w, http.StatusOK, Recipient{Username: a.Username, Owner: a.Owner})
}

// SearchRecipients suggests transfer recipients
// @Summary Search recipients
// @Description Fuzzy search over usernames, excluding the logged-in account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param q query string false "Partial username"
// @Param limit query int false "Maximum results (default: 10)"
// @Success 200 {array} Recipient
// @Failure 400 {object} ErrorResponse
// @Router /accounts [get]
func (s *DashboardService) SearchRecipients(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	limit, ok := queryLimit(w, r, 10)
	if !ok {
		return
	}
	if limit < 1 {
		SendErrorResponse(w, "limit must be positive", http.StatusBadRequest, nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	store := s.teller.Store()
	out := []Recipient{}
	for _, u := range store.Suggest(query, s.currentUsername(), limit) {
		a, _ := store.FindByUsername(u)
		out = append(out, Recipient{Username: a.Username, Owner: a.Owner})
	}
	writeJSON(w, http.StatusOK, out)
}

// queryLimit reads the optional limit query parameter. A value that is not a
// number is answered with 400 and ok is false.
func queryLimit(w http.ResponseWriter, r *http.Request, def int) (limit int, ok bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		SendErrorResponse(w, "limit must be a number", http.StatusBadRequest, nil)
		return 0, false
	}
	return limit, true
}
