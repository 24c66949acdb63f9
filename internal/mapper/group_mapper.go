package mapper

import (
	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/model"
)

type GroupMapper struct{}

func NewGroupMapper() *GroupMapper {
	return &GroupMapper{}
}

func (m *GroupMapper) ToEntity(g *model.Group) *entity.Group {
	if g == nil {
		return nil
	}
	return &entity.Group{
		Id:                   g.Id,
		AdminId:              g.AdminId,
		ServiceId:            g.ServiceId,
		Name:                 g.Name,
		Description:          g.Description,
		PricePerSlotCents:    g.PricePerSlotCents,
		MaxMembers:           g.MaxMembers,
		CurrentMembers:       g.CurrentMembers,
		Status:               entity.GroupStatus(g.Status),
		CredentialsEncrypted: g.CredentialsEncrypted,
		Approved:             g.Approved,
		CreatedAt:            g.CreatedAt,
		UpdatedAt:            g.UpdatedAt,
		Service:              *m.ServiceToEntity(&g.Service),
	}
}

func (m *GroupMapper) ToModel(g *entity.Group) *model.Group {
	if g == nil {
		return nil
	}
	return &model.Group{
		Id:                   g.Id,
		AdminId:              g.AdminId,
		ServiceId:            g.ServiceId,
		Name:                 g.Name,
		Description:          g.Description,
		PricePerSlotCents:    g.PricePerSlotCents,
		MaxMembers:           g.MaxMembers,
		CurrentMembers:       g.CurrentMembers,
		Status:               string(g.Status),
		CredentialsEncrypted: g.CredentialsEncrypted,
		Approved:             g.Approved,
		CreatedAt:            g.CreatedAt,
		UpdatedAt:            g.UpdatedAt,
	}
}

func (m *GroupMapper) ServiceToEntity(s *model.StreamingService) *entity.StreamingService {
	if s == nil {
		return nil
	}
	return &entity.StreamingService{
		Id:                  s.Id,
		Name:                s.Name,
		Slug:                s.Slug,
		Category:            s.Category,
		MaxSlots:            s.MaxSlots,
		SuggestedPriceCents: s.SuggestedPriceCents,
		LogoURL:             s.LogoURL,
		IsActive:            s.IsActive,
		SortOrder:           s.SortOrder,
	}
}

func (m *GroupMapper) ServiceToModel(s *entity.StreamingService) *model.StreamingService {
	if s == nil {
		return nil
	}
	return &model.StreamingService{
		Id:                  s.Id,
		Name:                s.Name,
		Slug:                s.Slug,
		Category:            s.Category,
		MaxSlots:            s.MaxSlots,
		SuggestedPriceCents: s.SuggestedPriceCents,
		LogoURL:             s.LogoURL,
		IsActive:            s.IsActive,
		SortOrder:           s.SortOrder,
	}
}
