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

type membershipRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MembershipMapper
}

func NewMembershipRepository(db *gorm.DB) contract.MembershipRepository {
	return &membershipRepositoryImpl{db: db, mapper: mapper.NewMembershipMapper()}
}

func (r *membershipRepositoryImpl) Create(ctx context.Context, membership *entity.Membership) error {
	return r.db.WithContext(ctx).Create(r.mapper.ToModel(membership)).Error
}

func (r *membershipRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Membership, error) {
	m, err := r.findOneModel(ctx, r.db.WithContext(ctx), specs...)
	if err != nil || m == nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *membershipRepositoryImpl) FindOneWithGroup(ctx context.Context, specs ...specification.Specification) (*entity.Membership, error) {
	query := r.db.WithContext(ctx).Preload("Group").Preload("Group.Service")
	m, err := r.findOneModel(ctx, query, specs...)
	if err != nil || m == nil {
		return nil, err
	}
	return r.mapper.ToEntityWithGroup(m), nil
}

func (r *membershipRepositoryImpl) findOneModel(ctx context.Context, query *gorm.DB, specs ...specification.Specification) (*model.Membership, error) {
	var m model.Membership

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *membershipRepositoryImpl) FindAllWithGroup(ctx context.Context, specs ...specification.Specification) ([]*entity.Membership, error) {
	var ms []*model.Membership
	query := r.db.WithContext(ctx).Preload("Group").Preload("Group.Service")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	var memberships []*entity.Membership
	for _, m := range ms {
		memberships = append(memberships, r.mapper.ToEntityWithGroup(m))
	}
	return memberships, nil
}

func (r *membershipRepositoryImpl) Update(ctx context.Context, membership *entity.Membership) error {
	var pendingReason *string
	if membership.PendingReason != nil {
		reason := string(*membership.PendingReason)
		pendingReason = &reason
	}

	return r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("id = ?", membership.Id).
		Updates(map[string]interface{}{
			"status":         string(membership.Status),
			"pending_reason": pendingReason,
		}).Error
}
