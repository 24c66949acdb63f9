package implementation

import (
	"context"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/model"
	"juntaplay-be/internal/repository/contract"
	"juntaplay-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type walletRepositoryImpl struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) contract.WalletRepository {
	return &walletRepositoryImpl{db: db}
}

func (r *walletRepositoryImpl) Create(ctx context.Context, wallet *entity.Wallet) error {
	m := &model.Wallet{
		Id:           wallet.Id,
		UserId:       wallet.UserId,
		BalanceCents: wallet.BalanceCents,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *walletRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) (*entity.Wallet, error) {
	return r.findByUser(ctx, r.db.WithContext(ctx), userId)
}

func (r *walletRepositoryImpl) FindByUserForUpdate(ctx context.Context, userId uuid.UUID) (*entity.Wallet, error) {
	query := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.findByUser(ctx, query, userId)
}

func (r *walletRepositoryImpl) findByUser(ctx context.Context, query *gorm.DB, userId uuid.UUID) (*entity.Wallet, error) {
	var m model.Wallet
	if err := query.Where("user_id = ?", userId).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&m), nil
}

func (r *walletRepositoryImpl) UpdateBalance(ctx context.Context, walletId uuid.UUID, balanceCents int64) error {
	return r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("id = ?", walletId).
		Update("balance_cents", balanceCents).Error
}

func (r *walletRepositoryImpl) CreateTransaction(ctx context.Context, tx *entity.WalletTransaction) error {
	m := &model.WalletTransaction{
		Id:          tx.Id,
		WalletId:    tx.WalletId,
		Kind:        string(tx.Kind),
		AmountCents: tx.AmountCents,
		Description: tx.Description,
		ReferenceId: tx.ReferenceId,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *walletRepositoryImpl) FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.WalletTransaction, error) {
	var ms []*model.WalletTransaction
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	var txs []*entity.WalletTransaction
	for _, m := range ms {
		txs = append(txs, &entity.WalletTransaction{
			Id:          m.Id,
			WalletId:    m.WalletId,
			Kind:        entity.WalletEntryKind(m.Kind),
			AmountCents: m.AmountCents,
			Description: m.Description,
			ReferenceId: m.ReferenceId,
			CreatedAt:   m.CreatedAt,
		})
	}
	return txs, nil
}

func (r *walletRepositoryImpl) mapToEntity(m *model.Wallet) *entity.Wallet {
	return &entity.Wallet{
		Id:           m.Id,
		UserId:       m.UserId,
		BalanceCents: m.BalanceCents,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
