package services

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/bankist/backend/internal/bank"
	"github.com/bankist/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Auditor records dashboard actions.
type Auditor interface {
	LogTransfer(from, to string, amount decimal.Decimal, messageID string) string
	LogLoan(account string, amount decimal.Decimal) string
	LogRejection(account, operation, reason string) string
	LogError(account, operation string, err error) string
	LogOperation(account, operation, details string) string
}

// DashboardService exposes the teller over HTTP. The dashboard has a single
// session shared by every request; all actions run one at a time under mu.
type DashboardService struct {
	mu        sync.Mutex
	teller    *bank.Teller
	session   bank.Session
	sessionID string

	iso       *ISO20022Service
	audit     Auditor
	validator *ValidationHelper
}

// TransferResponse is the dashboard after a transfer plus the id of the
// pacs.008 exported for it.
type TransferResponse struct {
	models.ViewModel
	MessageID string `json:"messageId,omitempty"`
}

func NewDashboardService(teller *bank.Teller, iso *ISO20022Service, auditor Auditor) *DashboardService {
	return &DashboardService{
		teller:    teller,
		iso:       iso,
		audit:     auditor,
		validator: NewValidationHelper(),
	}
}

// Login starts a new session, replacing any current one. It returns the id
// of the new session.
func (s *DashboardService) Login(username string, pin int) (string, models.ViewModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.currentUsername()
	if _, err := s.teller.Login(&s.session, username, pin); err != nil {
		s.audit.LogRejection(username, "LOGIN", string(bank.ReasonOf(err)))
		return "", models.ViewModel{}, err
	}
	if previous != "" && previous != username {
		log.Printf("[DASHBOARD] Session of %s replaced by %s", previous, username)
	}

	s.sessionID = uuid.NewString()
	s.audit.LogOperation(username, "LOGIN", "")
	return s.sessionID, s.viewModel(), nil
}

// Logout ends the session identified by sid. Stale ids are ignored.
func (s *DashboardService) Logout(sid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sid == "" || sid != s.sessionID || !s.session.LoggedIn() {
		return false
	}
	username := s.currentUsername()
	s.teller.Logout(&s.session)
	s.sessionID = ""
	s.audit.LogOperation(username, "LOGOUT", "")
	return true
}

// ValidateSession checks that username and sid belong to the live session
// and that its idle deadline has not passed. An expired session is logged out.
func (s *DashboardService) ValidateSession(username, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.LoggedIn() || sid != s.sessionID || s.currentUsername() != username {
		return bank.ErrNotLoggedIn
	}
	if err := s.teller.Check(&s.session); err != nil {
		s.sessionID = ""
		s.audit.LogRejection(username, "SESSION", string(bank.ReasonOf(err)))
		return err
	}
	return nil
}

// ActiveAccount returns a copy of the session account's identity fields.
func (s *DashboardService) ActiveAccount() (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.teller.Check(&s.session); err != nil {
		return models.Account{}, err
	}
	a := s.session.Account()
	return models.Account{
		Owner:    a.Owner,
		Username: a.Username,
		Currency: a.Currency,
		Locale:   a.Locale,
	}, nil
}

// Usernames lists the handles of every open account.
func (s *DashboardService) Usernames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teller.Store().Usernames()
}

func (s *DashboardService) currentUsername() string {
	if a := s.session.Account(); a != nil {
		return a.Username
	}
	return ""
}

func (s *DashboardService) viewModel() models.ViewModel {
	return bank.BuildViewModel(&s.session, s.teller.Now())
}

func (s *DashboardService) reject(w http.ResponseWriter, operation, account string, err error) {
	log.Printf("[DASHBOARD] %s rejected for %q: %v", operation, account, err)
	s.audit.LogRejection(account, operation, string(bank.ReasonOf(err)))
	SendRejection(w, err)
}

// GetDashboard returns the current dashboard
// @Summary Get dashboard
// @Description Balance, movements and summary of the logged-in account
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ViewModel
// @Failure 401 {object} ErrorResponse
// @Router /dashboard [get]
func (s *DashboardService) GetDashboard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.currentUsername()
	if err := s.teller.Check(&s.session); err != nil {
		s.reject(w, "DASHBOARD", account, err)
		return
	}
	writeJSON(w, http.StatusOK, s.viewModel())
}

// Transfer moves money to another account
// @Summary Transfer money
// @Description Transfer an amount from the logged-in account to another account
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TransferRequest true "Transfer request"
// @Success 200 {object} TransferResponse
// @Failure 400 {object} ErrorResponse "InvalidAmount"
// @Failure 401 {object} ErrorResponse "NotLoggedIn or SessionExpired"
// @Failure 404 {object} ErrorResponse "ReceiverNotFound"
// @Failure 409 {object} ErrorResponse "InsufficientFunds or SelfTransfer"
// @Router /transfers [post]
func (s *DashboardService) Transfer(w http.ResponseWriter, r *http.Request) {
	var req models.TransferRequest
	if !DecodeJSONBody(w, r, &req) {
		return
	}
	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sender := s.session.Account()
	account := s.currentUsername()
	if err := s.teller.Transfer(&s.session, req.To, req.Amount); err != nil {
		s.reject(w, "TRANSFER", account, err)
		return
	}

	receiver, _ := s.teller.Store().FindByUsername(req.To)
	record := TransferRecord{
		From:       sender,
		To:         receiver,
		Amount:     req.Amount,
		ExecutedAt: sender.MovementsDates[len(sender.MovementsDates)-1],
	}
	msgID, err := s.iso.Export(record)
	if err != nil {
		log.Printf("[DASHBOARD] pacs.008 export failed for %s -> %s: %v", account, req.To, err)
		s.audit.LogError(account, "ISO20022_EXPORT", err)
	}
	s.audit.LogTransfer(account, req.To, req.Amount, msgID)

	writeJSON(w, http.StatusOK, TransferResponse{ViewModel: s.viewModel(), MessageID: msgID})
}

// RequestLoan credits a loan to the logged-in account
// @Summary Request loan
// @Description Approved when any movement exceeds 10% of the floored amount
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LoanRequest true "Loan request"
// @Success 200 {object} models.ViewModel
// @Failure 400 {object} ErrorResponse "InvalidAmount"
// @Failure 401 {object} ErrorResponse "NotLoggedIn or SessionExpired"
// @Failure 422 {object} ErrorResponse "LoanRejected"
// @Router /loans [post]
func (s *DashboardService) RequestLoan(w http.ResponseWriter, r *http.Request) {
	var req models.LoanRequest
	if !DecodeJSONBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.currentUsername()
	credited, err := s.teller.RequestLoan(&s.session, req.Amount)
	if err != nil {
		s.reject(w, "LOAN", account, err)
		return
	}
	s.audit.LogLoan(account, credited)

	writeJSON(w, http.StatusOK, s.viewModel())
}

// CloseAccount deletes the logged-in account
// @Summary Close account
// @Description Remove the logged-in account after re-entering its credentials
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CloseAccountRequest true "Close request"
// @Success 200 {object} object{closed=bool}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "InvalidCredentials, NotLoggedIn or SessionExpired"
// @Router /account/close [post]
func (s *DashboardService) CloseAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CloseAccountRequest
	if !DecodeJSONBody(w, r, &req) {
		return
	}
	if err := s.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.currentUsername()
	pin, err := strconv.Atoi(req.PIN)
	if err != nil {
		s.reject(w, "CLOSE_ACCOUNT", account, bank.ErrInvalidCredentials)
		return
	}
	if err := s.teller.CloseAccount(&s.session, req.Username, pin); err != nil {
		s.reject(w, "CLOSE_ACCOUNT", account, err)
		return
	}
	s.sessionID = ""
	s.audit.LogOperation(account, "CLOSE_ACCOUNT", "")

	writeJSON(w, http.StatusOK, map[string]bool{"closed": true})
}

// ToggleSort flips the movement sort order
// @Summary Toggle sort
// @Description Switch the movements list between stored and ascending order
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ViewModel
// @Failure 401 {object} ErrorResponse
// @Router /movements/sort [post]
func (s *DashboardService) ToggleSort(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.currentUsername()
	sorted, err := s.teller.ToggleSort(&s.session)
	if err != nil {
		s.reject(w, "SORT", account, err)
		return
	}
	s.audit.LogOperation(account, "SORT", strconv.FormatBool(sorted))

	writeJSON(w, http.StatusOK, s.viewModel())
}
