package contract

import (
	"context"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/repository/specification"
)

type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Group, error)
	// FindOneForUpdate locks the row (SELECT ... FOR UPDATE) inside the
	// current transaction. Used by flows that mutate the member counter.
	FindOneForUpdate(ctx context.Context, specs ...specification.Specification) (*entity.Group, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Group, error)
	FindAllWithService(ctx context.Context, specs ...specification.Specification) ([]*entity.Group, error)
	Update(ctx context.Context, group *entity.Group) error
}

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.StreamingService) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StreamingService, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StreamingService, error)
}
