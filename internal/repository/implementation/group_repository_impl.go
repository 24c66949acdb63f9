package implementation

import (
	"context"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/mapper"
	"juntaplay-be/internal/model"
	"juntaplay-be/internal/repository/contract"
	"juntaplay-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type groupRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GroupMapper
}

func NewGroupRepository(db *gorm.DB) contract.GroupRepository {
	return &groupRepositoryImpl{db: db, mapper: mapper.NewGroupMapper()}
}

func (r *groupRepositoryImpl) Create(ctx context.Context, group *entity.Group) error {
	return r.db.WithContext(ctx).Create(r.mapper.ToModel(group)).Error
}

func (r *groupRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Group, error) {
	return r.findOne(ctx, r.db.WithContext(ctx), specs...)
}

func (r *groupRepositoryImpl) FindOneForUpdate(ctx context.Context, specs ...specification.Specification) (*entity.Group, error) {
	query := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.findOne(ctx, query, specs...)
}

func (r *groupRepositoryImpl) findOne(ctx context.Context, query *gorm.DB, specs ...specification.Specification) (*entity.Group, error) {
	var m model.Group

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

func (r *groupRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Group, error) {
	return r.findAll(ctx, r.db.WithContext(ctx), specs...)
}

// FindAllWithService preloads the catalog relation for listing responses.
func (r *groupRepositoryImpl) FindAllWithService(ctx context.Context, specs ...specification.Specification) ([]*entity.Group, error) {
	query := r.db.WithContext(ctx).Preload("Service")
	return r.findAll(ctx, query, specs...)
}

func (r *groupRepositoryImpl) findAll(ctx context.Context, query *gorm.DB, specs ...specification.Specification) ([]*entity.Group, error) {
	var ms []*model.Group

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	var groups []*entity.Group
	for _, m := range ms {
		groups = append(groups, r.mapper.ToEntity(m))
	}
	return groups, nil
}

func (r *groupRepositoryImpl) Update(ctx context.Context, group *entity.Group) error {
	return r.db.WithContext(ctx).Model(&model.Group{}).
		Where("id = ?", group.Id).
		Updates(map[string]interface{}{
			"name":                  group.Name,
			"description":           group.Description,
			"price_per_slot_cents":  group.PricePerSlotCents,
			"max_members":           group.MaxMembers,
			"current_members":       group.CurrentMembers,
			"status":                string(group.Status),
			"credentials_encrypted": group.CredentialsEncrypted,
			"approved":              group.Approved,
		}).Error
}

type serviceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GroupMapper
}

func NewServiceRepository(db *gorm.DB) contract.ServiceRepository {
	return &serviceRepositoryImpl{db: db, mapper: mapper.NewGroupMapper()}
}

func (r *serviceRepositoryImpl) Create(ctx context.Context, service *entity.StreamingService) error {
	return r.db.WithContext(ctx).Create(r.mapper.ServiceToModel(service)).Error
}

func (r *serviceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StreamingService, error) {
	var m model.StreamingService
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

	return r.mapper.ServiceToEntity(&m), nil
}

func (r *serviceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StreamingService, error) {
	var ms []*model.StreamingService
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	var services []*entity.StreamingService
	for _, m := range ms {
		services = append(services, r.mapper.ServiceToEntity(m))
	}
	return services, nil
}
