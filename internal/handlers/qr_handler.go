package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bankist/backend/internal/bank"
	"github.com/bankist/backend/internal/models"
	"github.com/bankist/backend/internal/services"
)

type QRHandler struct {
	service   *services.QRService
	dashboard *services.DashboardService
	validator *services.ValidationHelper
}

func NewQRHandler(service *services.QRService, dashboard *services.DashboardService) *QRHandler {
	return &QRHandler{
		service:   service,
		dashboard: dashboard,
		validator: services.NewValidationHelper(),
	}
}

// GenerateQR generates a receive-money QR code
// @Summary Generate QR Code
// @Description Generate a QR code asking for a payment to the logged-in account
// @Tags QR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.QRGenerateRequest true "QR generation request"
// @Success 200 {object} object{success=bool,qrCode=string,qrImage=string}
// @Failure 400 {object} services.ErrorResponse
// @Failure 401 {object} services.ErrorResponse
// @Failure 503 {object} services.ErrorResponse
// @Router /qr/generate [post]
func (h *QRHandler) GenerateQR(w http.ResponseWriter, r *http.Request) {
	var req models.QRGenerateRequest
	if !services.DecodeJSONBody(w, r, &req) {
		return
	}

	account, err := h.dashboard.ActiveAccount()
	if err != nil {
		services.SendRejection(w, err)
		return
	}

	qrCode, qrImage, err := h.service.GenerateQRCode(r.Context(), account, req.Amount)
	if err != nil {
		h.sendError(w, err)
		return
	}

	log.Printf("[QR] Payment request issued for %s: %s %s", account.Username, req.Amount, account.Currency)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"qrCode":  qrCode,
		"qrImage": qrImage,
	})
}

// ProcessQR processes a scanned QR code
// @Summary Process QR Code
// @Description Decode a scanned QR code into the payment request it carries. Each code can be processed once.
// @Tags QR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.QRProcessRequest true "QR processing request"
// @Success 200 {object} object{success=bool,data=models.PaymentRequest}
// @Failure 400 {object} services.ErrorResponse
// @Failure 503 {object} services.ErrorResponse
// @Router /qr/process [post]
func (h *QRHandler) ProcessQR(w http.ResponseWriter, r *http.Request) {
	var req models.QRProcessRequest
	if !services.DecodeJSONBody(w, r, &req) {
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	result, err := h.service.ProcessQRCode(r.Context(), req.QRData)
	if err != nil {
		h.sendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    result,
	})
}

func (h *QRHandler) sendError(w http.ResponseWriter, err error) {
	switch {
	case bank.ReasonOf(err) != "":
		services.SendRejection(w, err)
	case errors.Is(err, services.ErrQRUnavailable):
		services.SendErrorResponse(w, err.Error(), http.StatusServiceUnavailable, nil)
	case errors.Is(err, services.ErrQRInvalid):
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
	default:
		log.Printf("[QR] Request failed: %v", err)
		services.SendErrorResponse(w, "An Internal Error Occurred", http.StatusInternalServerError, nil)
	}
}
