package dto

import (
	"time"

	"github.com/google/uuid"
)

type WalletResponse struct {
	Id           uuid.UUID `json:"id"`
	BalanceCents int64     `json:"balance_cents"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type WalletTransactionResponse struct {
	Id          uuid.UUID  `json:"id"`
	Kind        string     `json:"kind"`
	AmountCents int64      `json:"amount_cents"`
	Description string     `json:"description"`
	ReferenceId *uuid.UUID `json:"reference_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TopUpRequest struct {
	AmountCents   int64  `json:"amount_cents" validate:"required,min=500"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=pix credit_card"`
}
