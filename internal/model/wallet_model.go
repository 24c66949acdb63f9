package model

import (
	"time"

	"github.com/google/uuid"
)

type Wallet struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BalanceCents int64     `gorm:"not null;default:0;check:balance_cents >= 0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	User User `gorm:"foreignKey:UserId"`
}

func (Wallet) TableName() string {
	return "wallets"
}

type WalletTransaction struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WalletId    uuid.UUID  `gorm:"type:uuid;not null;index:idx_wallet_tx_wallet_created,priority:1"`
	Kind        string     `gorm:"type:varchar(10);not null"`
	AmountCents int64      `gorm:"not null"`
	Description string     `gorm:"type:varchar(255)"`
	ReferenceId *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index:idx_wallet_tx_wallet_created,priority:2"`

	Wallet Wallet `gorm:"foreignKey:WalletId"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
