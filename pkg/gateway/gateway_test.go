package gateway

import (
	"crypto/sha512"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSignature(t *testing.T) {
	c := New(Config{ServerKey: "test-server-key"})

	orderID := "a3c51f2e-0001-4a2b-9c3d-111122223333"
	statusCode := "200"
	grossAmount := "3000.00"

	valid := fmt.Sprintf("%x", sha512.Sum512([]byte(orderID+statusCode+grossAmount+"test-server-key")))

	assert.True(t, c.ValidSignature(orderID, statusCode, grossAmount, valid))
	assert.False(t, c.ValidSignature(orderID, statusCode, grossAmount, "tampered"))
	assert.False(t, c.ValidSignature(orderID, "201", grossAmount, valid))
}

func TestMapTransactionStatus(t *testing.T) {
	tests := []struct {
		in   string
		want ChargeStatus
	}{
		{"capture", StatusPaid},
		{"settlement", StatusPaid},
		{"deny", StatusFailed},
		{"cancel", StatusFailed},
		{"failure", StatusFailed},
		{"expire", StatusExpired},
		{"pending", StatusPending},
		{"authorize", StatusPending},
		{"refund", StatusUnknown},
		{"", StatusUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapTransactionStatus(tt.in), "status %q", tt.in)
	}
}
