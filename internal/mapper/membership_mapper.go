package mapper

import (
	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/model"
)

type MembershipMapper struct {
	groupMapper *GroupMapper
}

func NewMembershipMapper() *MembershipMapper {
	return &MembershipMapper{
		groupMapper: NewGroupMapper(),
	}
}

func (m *MembershipMapper) ToEntity(ms *model.Membership) *entity.Membership {
	if ms == nil {
		return nil
	}
	e := &entity.Membership{
		Id:        ms.Id,
		UserId:    ms.UserId,
		GroupId:   ms.GroupId,
		JoinedAt:  ms.JoinedAt,
		Status:    entity.MembershipStatus(ms.Status),
		CreatedAt: ms.CreatedAt,
		UpdatedAt: ms.UpdatedAt,
	}
	if ms.PendingReason != nil {
		reason := entity.CancellationReason(*ms.PendingReason)
		e.PendingReason = &reason
	}
	return e
}

func (m *MembershipMapper) ToModel(ms *entity.Membership) *model.Membership {
	if ms == nil {
		return nil
	}
	mdl := &model.Membership{
		Id:        ms.Id,
		UserId:    ms.UserId,
		GroupId:   ms.GroupId,
		JoinedAt:  ms.JoinedAt,
		Status:    string(ms.Status),
		CreatedAt: ms.CreatedAt,
		UpdatedAt: ms.UpdatedAt,
	}
	if ms.PendingReason != nil {
		reason := string(*ms.PendingReason)
		mdl.PendingReason = &reason
	}
	return mdl
}

// ToEntityWithGroup also maps a preloaded Group relation.
func (m *MembershipMapper) ToEntityWithGroup(ms *model.Membership) *entity.Membership {
	e := m.ToEntity(ms)
	if e == nil {
		return nil
	}
	if g := m.groupMapper.ToEntity(&ms.Group); g != nil {
		e.Group = *g
	}
	return e
}
