package implementation

import (
	"context"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/mapper"
	"juntaplay-be/internal/model"
	"juntaplay-be/internal/repository/contract"
	"juntaplay-be/internal/repository/specification"

	"gorm.io/gorm"
)

type orderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &orderRepositoryImpl{db: db, mapper: mapper.NewOrderMapper()}
}

func (r *orderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(r.mapper.ToModel(order)).Error
}

func (r *orderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	var m model.Order
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *orderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var ms []*model.Order
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	var orders []*entity.Order
	for _, m := range ms {
		orders = append(orders, r.mapper.ToEntity(m))
	}
	return orders, nil
}

func (r *orderRepositoryImpl) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", order.Id).
		Updates(map[string]interface{}{
			"status":                 string(order.Status),
			"gateway_transaction_id": order.GatewayTransactionId,
			"snap_token":             order.SnapToken,
			"qr_code_url":            order.QRCodeURL,
			"paid_at":                order.PaidAt,
		}).Error
}
