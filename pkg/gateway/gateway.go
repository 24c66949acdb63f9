package gateway

import (
	"crypto/sha512"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

// ChargeStatus is the gateway-agnostic payment state surfaced to services.
type ChargeStatus string

const (
	StatusPending ChargeStatus = "pending"
	StatusPaid    ChargeStatus = "paid"
	StatusFailed  ChargeStatus = "failed"
	StatusExpired ChargeStatus = "expired"
	StatusUnknown ChargeStatus = "unknown"
)

type Config struct {
	ServerKey  string
	Production bool
	FinishURL  string
}

// Order is a charge request against the gateway. Amount is in minor
// currency units.
type Order struct {
	OrderID       string
	AmountCents   int64
	Description   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// CardCheckout holds the hosted-checkout handles for a card payment.
type CardCheckout struct {
	Token       string
	RedirectURL string
}

// PixCharge holds the QR handles for an instant payment.
type PixCharge struct {
	TransactionID string
	QRCodeURL     string
	ExpiresAt     string
}

// Gateway is the provider surface the payment services depend on.
type Gateway interface {
	CreateCardCheckout(order Order) (*CardCheckout, error)
	CreatePixCharge(order Order) (*PixCharge, error)
	CheckStatus(orderID string) (ChargeStatus, error)
	ValidSignature(orderID, statusCode, grossAmount, signatureKey string) bool
}

// Client wraps the payment provider's snap (hosted checkout) and core
// (direct charge / status) APIs.
type Client struct {
	snap snap.Client
	core coreapi.Client
	cfg  Config
}

func New(cfg Config) *Client {
	env := midtrans.Sandbox
	if cfg.Production {
		env = midtrans.Production
	}

	c := &Client{cfg: cfg}
	c.snap.New(cfg.ServerKey, env)
	c.core.New(cfg.ServerKey, env)
	return c
}

// CreateCardCheckout opens a hosted checkout session and returns the token
// the client embeds plus the redirect URL fallback.
func (c *Client) CreateCardCheckout(order Order) (*CardCheckout, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderID,
			GrossAmt: order.AmountCents,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: c.cfg.FinishURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: order.CustomerName,
			Email: order.CustomerEmail,
			Phone: order.CustomerPhone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    order.OrderID,
				Price: order.AmountCents,
				Qty:   1,
				Name:  order.Description,
			},
		},
		EnabledPayments: []snap.SnapPaymentType{snap.PaymentTypeCreditCard},
	}

	resp, err := c.snap.CreateTransaction(req)
	if err != nil {
		return nil, fmt.Errorf("gateway checkout error: %v", err.GetMessage())
	}

	return &CardCheckout{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// CreatePixCharge creates an instant QR charge.
func (c *Client) CreatePixCharge(order Order) (*PixCharge, error) {
	req := &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeQris,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderID,
			GrossAmt: order.AmountCents,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    order.OrderID,
				Price: order.AmountCents,
				Qty:   1,
				Name:  order.Description,
			},
		},
	}

	resp, err := c.core.ChargeTransaction(req)
	if err != nil {
		return nil, fmt.Errorf("gateway charge error: %v", err.GetMessage())
	}

	charge := &PixCharge{
		TransactionID: resp.TransactionID,
		ExpiresAt:     resp.ExpiryTime,
	}
	for _, action := range resp.Actions {
		if action.Name == "generate-qr-code" {
			charge.QRCodeURL = action.URL
			break
		}
	}

	return charge, nil
}

// CheckStatus queries the gateway for the current state of an order.
func (c *Client) CheckStatus(orderID string) (ChargeStatus, error) {
	resp, err := c.core.CheckTransaction(orderID)
	if err != nil {
		return StatusUnknown, fmt.Errorf("gateway status error: %v", err.GetMessage())
	}
	return MapTransactionStatus(resp.TransactionStatus), nil
}

// ValidSignature verifies a webhook notification.
// Signature = SHA512(order_id + status_code + gross_amount + server_key).
func (c *Client) ValidSignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	input := orderID + statusCode + grossAmount + c.cfg.ServerKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
	return signatureKey == expected
}

// MapTransactionStatus folds the gateway's transaction states into the
// charge statuses the order service understands.
func MapTransactionStatus(s string) ChargeStatus {
	switch s {
	case "capture", "settlement":
		return StatusPaid
	case "deny", "cancel", "failure":
		return StatusFailed
	case "expire":
		return StatusExpired
	case "pending", "authorize":
		return StatusPending
	default:
		return StatusUnknown
	}
}
