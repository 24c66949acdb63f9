package entity

import (
	"time"

	"github.com/google/uuid"
)

type WalletEntryKind string

const (
	WalletEntryCredit WalletEntryKind = "credit"
	WalletEntryDebit  WalletEntryKind = "debit"
)

// Wallet tracks a user's balance in integer cents. Balance never goes
// negative; debits are rejected upstream when funds are short.
type Wallet struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	BalanceCents int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WalletTransaction is one immutable statement line.
type WalletTransaction struct {
	Id          uuid.UUID
	WalletId    uuid.UUID
	Kind        WalletEntryKind
	AmountCents int64
	Description string
	// ReferenceId links back to the originating record (order id,
	// cancellation record id).
	ReferenceId *uuid.UUID
	CreatedAt   time.Time
}
