package contract

import (
	"context"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/repository/specification"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
}
