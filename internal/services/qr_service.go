package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"time"

	"github.com/bankist/backend/internal/bank"
	"github.com/bankist/backend/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

var (
	ErrQRUnavailable = errors.New("QR codes need redis, which is not configured")
	ErrQRInvalid     = errors.New("invalid or expired QR code")
)

// QRService issues receive-money QR codes. The payment request behind each
// code lives in redis until it is scanned or expires.
type QRService struct {
	redis *redis.Client
	ttl   time.Duration
	now   func() time.Time
	nonce func() string
}

func NewQRService(redis *redis.Client, ttl time.Duration) *QRService {
	return &QRService{
		redis: redis,
		ttl:   ttl,
		now:   time.Now,
		nonce: generateNonce,
	}
}

func qrKey(code string) string {
	return fmt.Sprintf("qr:%s", code)
}

// GenerateQRCode stores a payment request to account and returns its code
// and a base64 PNG of the QR image.
func (s *QRService) GenerateQRCode(ctx context.Context, account models.Account, amount decimal.Decimal) (string, string, error) {
	if s.redis == nil {
		return "", "", ErrQRUnavailable
	}
	if !amount.IsPositive() {
		return "", "", bank.ErrInvalidAmount
	}

	req := models.PaymentRequest{
		To:       account.Username,
		Amount:   amount,
		Currency: account.Currency,
		IssuedAt: s.now().Unix(),
		Nonce:    s.nonce(),
	}
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", "", err
	}

	qrCode := base64.URLEncoding.EncodeToString(jsonData)

	if err := s.redis.Set(ctx, qrKey(qrCode), jsonData, s.ttl).Err(); err != nil {
		return "", "", fmt.Errorf("failed to store QR code: %w", err)
	}

	qr, err := qrcode.New(qrCode, qrcode.Medium)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(256)); err != nil {
		return "", "", err
	}

	qrImage := base64.StdEncoding.EncodeToString(buf.Bytes())

	return qrCode, qrImage, nil
}

// ProcessQRCode consumes a code and returns its payment request. A code can
// be processed once.
func (s *QRService) ProcessQRCode(ctx context.Context, qrData string) (*models.PaymentRequest, error) {
	if s.redis == nil {
		return nil, ErrQRUnavailable
	}
	// GETDEL reads and removes the code in one step, so a second scan of
	// the same code finds nothing.
	data, err := s.redis.GetDel(ctx, qrKey(qrData)).Bytes()
	if err == redis.Nil {
		return nil, ErrQRInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read QR code: %w", err)
	}

	var result models.PaymentRequest
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func generateNonce() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
