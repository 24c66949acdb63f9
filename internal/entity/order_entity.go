package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string
type PaymentMethod string
type OrderPurpose string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
	OrderStatusExpired OrderStatus = "expired"

	PaymentMethodPix  PaymentMethod = "pix"
	PaymentMethodCard PaymentMethod = "credit_card"

	OrderPurposeJoinGroup   OrderPurpose = "join_group"
	OrderPurposeWalletTopup OrderPurpose = "wallet_topup"
)

// Order is a payment intent against the gateway. The webhook and the status
// poller both converge it onto a terminal status; transitions out of a
// terminal status are ignored.
type Order struct {
	Id                   uuid.UUID
	UserId               uuid.UUID
	GroupId              *uuid.UUID
	Method               PaymentMethod
	Purpose              OrderPurpose
	AmountCents          int64
	Status               OrderStatus
	GatewayTransactionId *string
	SnapToken            *string
	QRCodeURL            *string
	PaidAt               *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Terminal reports whether the order reached a final state.
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusPaid || o.Status == OrderStatusFailed || o.Status == OrderStatusExpired
}
