package dto

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	OrderId     uuid.UUID `json:"order_id"`
	Method      string    `json:"method"`
	AmountCents int64     `json:"amount_cents"`
	// Hosted checkout, card payments only.
	RedirectURL string `json:"redirect_url,omitempty"`
	SnapToken   string `json:"snap_token,omitempty"`
	// Copy-paste payload and QR image, pix only.
	PixCopyPaste string `json:"pix_copy_paste,omitempty"`
	PixQrURL     string `json:"pix_qr_url,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

type OrderResponse struct {
	Id          uuid.UUID `json:"id"`
	Purpose     string    `json:"purpose"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amount_cents"`
	GroupId     *uuid.UUID `json:"group_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

// WatchOrderMessage is the in-process queue payload for the order watcher.
type WatchOrderMessage struct {
	OrderId uuid.UUID `json:"order_id"`
}

// PaymentNotificationRequest mirrors the gateway's webhook payload. The
// signature fields are verified before anything else is trusted.
type PaymentNotificationRequest struct {
	OrderId           string `json:"order_id" validate:"required"`
	StatusCode        string `json:"status_code" validate:"required"`
	GrossAmount       string `json:"gross_amount" validate:"required"`
	SignatureKey      string `json:"signature_key" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}
