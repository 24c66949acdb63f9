package service

import (
	"context"
	"errors"
	"time"

	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/pkg/logger"
	"juntaplay-be/internal/repository/specification"
	"juntaplay-be/internal/repository/unitofwork"
	"juntaplay-be/pkg/cache"
	"juntaplay-be/pkg/events"
	pktNats "juntaplay-be/pkg/nats"

	"github.com/google/uuid"
)

var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrServiceNotFound = errors.New("streaming service not found")
	ErrNotGroupAdmin   = errors.New("only the group admin can do this")
)

type IGroupService interface {
	CreateGroup(ctx context.Context, adminId uuid.UUID, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	GetGroup(ctx context.Context, groupId uuid.UUID) (*dto.GroupResponse, error)
	ListPublicGroups(ctx context.Context, req *dto.ListGroupsRequest) ([]dto.GroupResponse, error)
	ListMyGroups(ctx context.Context, adminId uuid.UUID) ([]dto.GroupResponse, error)
	ListServices(ctx context.Context) ([]dto.ServiceResponse, error)
	ApproveGroup(ctx context.Context, groupId uuid.UUID, approved bool) error
}

type groupService struct {
	uowFactory     unitofwork.RepositoryFactory
	groupCache     *cache.GroupCache
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewGroupService(uowFactory unitofwork.RepositoryFactory, groupCache *cache.GroupCache, eventPublisher *pktNats.Publisher, log logger.ILogger) IGroupService {
	return &groupService{
		uowFactory:     uowFactory,
		groupCache:     groupCache,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, adminId uuid.UUID, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: req.ServiceId})
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.IsActive {
		return nil, ErrServiceNotFound
	}
	if req.TotalSlots > svc.MaxSlots {
		return nil, errors.New("total_slots exceeds the service slot limit")
	}

	group := &entity.Group{
		Id:                   uuid.New(),
		AdminId:              adminId,
		ServiceId:            svc.Id,
		Name:                 req.Name,
		Description:          req.Description,
		PricePerSlotCents:    req.PricePerSlotCents,
		MaxMembers:           req.TotalSlots,
		CurrentMembers:       1, // the admin occupies a slot
		Status:               entity.GroupStatusWaitingSubscription,
		CredentialsEncrypted: &req.AccessCredential,
		Approved:             false,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	if err := uow.GroupRepository().Create(ctx, group); err != nil {
		return nil, err
	}

	group.Service = *svc
	resp := toGroupResponse(group)
	return &resp, nil
}

func (s *groupService) GetGroup(ctx context.Context, groupId uuid.UUID) (*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: groupId})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	resp := toGroupResponse(group)
	return &resp, nil
}

func (s *groupService) ListPublicGroups(ctx context.Context, req *dto.ListGroupsRequest) ([]dto.GroupResponse, error) {
	// The unfiltered first page is the hot path, serve it from cache.
	cacheable := req.ServiceSlug == "" && (req.Page == 0 || req.Page == 1)
	if cacheable {
		var cached []dto.GroupResponse
		if found, err := s.groupCache.Get(ctx, &cached); err == nil && found {
			return cached, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.PublicGroups{},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	pageSize := req.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	page := req.Page
	if page < 1 {
		page = 1
	}
	specs = append(specs, specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize})

	groups, err := uow.GroupRepository().FindAllWithService(ctx, specs...)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		if req.ServiceSlug != "" && g.Service.Slug != req.ServiceSlug {
			continue
		}
		resp = append(resp, toGroupResponse(g))
	}

	if cacheable {
		if err := s.groupCache.Set(ctx, resp); err != nil {
			s.logger.Warn("GroupService", "Failed to cache public groups", map[string]interface{}{"error": err.Error()})
		}
	}
	return resp, nil
}

func (s *groupService) ListMyGroups(ctx context.Context, adminId uuid.UUID) ([]dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	groups, err := uow.GroupRepository().FindAllWithService(ctx,
		specification.GroupAdministeredBy{AdminID: adminId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, toGroupResponse(g))
	}
	return resp, nil
}

func (s *groupService) ListServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	services, err := uow.ServiceRepository().FindAll(ctx,
		specification.Filter("is_active", true),
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, svc := range services {
		resp = append(resp, dto.ServiceResponse{
			Id:                svc.Id,
			Name:              svc.Name,
			Slug:              svc.Slug,
			MonthlyPriceCents: svc.SuggestedPriceCents,
			MaxSlots:          svc.MaxSlots,
		})
	}
	return resp, nil
}

// ApproveGroup is the moderation gate. Approved groups start accepting
// members; rejected ones stay hidden from the catalog.
func (s *groupService) ApproveGroup(ctx context.Context, groupId uuid.UUID, approved bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: groupId})
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}

	group.Approved = approved
	if approved && group.Status == entity.GroupStatusWaitingSubscription {
		group.Status = entity.GroupStatusActiveWithSlots
	}
	group.UpdatedAt = time.Now()

	if err := uow.GroupRepository().Update(ctx, group); err != nil {
		return err
	}

	if err := s.groupCache.Invalidate(ctx); err != nil {
		s.logger.Warn("GroupService", "Cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}

	if approved && s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeGroupActivated,
			Data: map[string]interface{}{
				"user_id":     group.AdminId.String(),
				"group_id":    group.Id.String(),
				"group_name":  group.Name,
				"entity_type": "group",
				"entity_id":   group.Id.String(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("GroupService", "Failed to publish group activated event", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}

func toGroupResponse(g *entity.Group) dto.GroupResponse {
	resp := dto.GroupResponse{
		Id:                g.Id,
		Name:              g.Name,
		Description:       g.Description,
		Status:            string(g.Status),
		Approved:          g.Approved,
		TotalSlots:        g.MaxMembers,
		CurrentMembers:    g.CurrentMembers,
		OpenSlots:         g.MaxMembers - g.CurrentMembers,
		PricePerSlotCents: g.PricePerSlotCents,
		CreatedAt:         g.CreatedAt,
	}
	if g.Service.Id != uuid.Nil {
		resp.Service = &dto.ServiceResponse{
			Id:                g.Service.Id,
			Name:              g.Service.Name,
			Slug:              g.Service.Slug,
			MonthlyPriceCents: g.Service.SuggestedPriceCents,
			MaxSlots:          g.Service.MaxSlots,
		}
	}
	return resp
}
