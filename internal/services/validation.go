package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bankist/backend/internal/bank"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1_048_576 // 1 MB

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Error   string            `json:"error"`             // Error message
	Reason  string            `json:"reason,omitempty"`  // Rejection reason code
	Details map[string]string `json:"details,omitempty"` // Validation details
}

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper
func NewValidationHelper() *ValidationHelper {
	return &ValidationHelper{
		validator: validator.New(),
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// SendErrorResponse sends a JSON error response
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, validationErr error) {
	errorResp := ErrorResponse{Error: message}
	var verrs validator.ValidationErrors
	if errors.As(validationErr, &verrs) {
		errorResp.Details = make(map[string]string)
		for _, err := range verrs {
			errorResp.Details[err.Field()] = fmt.Sprintf("Field Validation Failed on '%s' tag", err.Tag())
		}
	}
	writeJSON(w, statusCode, errorResp)
}

// RejectionStatus maps a rejection reason to its HTTP status.
func RejectionStatus(reason bank.Reason) int {
	switch reason {
	case bank.ReasonInvalidAmount:
		return http.StatusBadRequest
	case bank.ReasonReceiverNotFound:
		return http.StatusNotFound
	case bank.ReasonInsufficientFunds, bank.ReasonSelfTransfer:
		return http.StatusConflict
	case bank.ReasonLoanRejected:
		return http.StatusUnprocessableEntity
	case bank.ReasonInvalidCredentials, bank.ReasonNotLoggedIn, bank.ReasonSessionExpired:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// SendRejection writes err as a reason-coded error response. Errors that are
// not rejections become a 500.
func SendRejection(w http.ResponseWriter, err error) {
	reason := bank.ReasonOf(err)
	if reason == "" {
		SendErrorResponse(w, "An Internal Error Occurred", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, RejectionStatus(reason), ErrorResponse{
		Error:  err.Error(),
		Reason: string(reason),
	})
}

// DecodeJSONBody reads a single JSON object into dst, rejecting unknown
// fields. On failure it writes the error response and returns false.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
