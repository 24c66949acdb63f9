package contract

import (
	"context"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/repository/specification"
)

type MembershipRepository interface {
	Create(ctx context.Context, membership *entity.Membership) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Membership, error)
	// FindOneWithGroup preloads the Group (and its service) relation.
	FindOneWithGroup(ctx context.Context, specs ...specification.Specification) (*entity.Membership, error)
	FindAllWithGroup(ctx context.Context, specs ...specification.Specification) ([]*entity.Membership, error)
	Update(ctx context.Context, membership *entity.Membership) error
}
