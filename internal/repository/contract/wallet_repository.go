package contract

import (
	"context"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WalletRepository interface {
	Create(ctx context.Context, wallet *entity.Wallet) error
	FindByUser(ctx context.Context, userId uuid.UUID) (*entity.Wallet, error)
	// FindByUserForUpdate locks the wallet row inside the current
	// transaction so concurrent credits/debits serialize.
	FindByUserForUpdate(ctx context.Context, userId uuid.UUID) (*entity.Wallet, error)
	UpdateBalance(ctx context.Context, walletId uuid.UUID, balanceCents int64) error
	CreateTransaction(ctx context.Context, tx *entity.WalletTransaction) error
	FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.WalletTransaction, error)
}
