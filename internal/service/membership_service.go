package service

import (
	"context"
	"errors"
	"time"

	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/repository/specification"
	"juntaplay-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var (
	ErrUserRestricted = errors.New("user is restricted from joining groups")
	ErrGroupFull      = errors.New("group has no open slots")
	ErrGroupNotOpen   = errors.New("group is not accepting members")
	ErrAlreadyMember  = errors.New("user already has a membership in this group")
)

type IMembershipService interface {
	// Join validates eligibility and opens a payment for the slot. The
	// membership itself is only created when the payment settles.
	Join(ctx context.Context, userId uuid.UUID, req *dto.JoinGroupRequest) (*dto.CheckoutResponse, error)
	MyMemberships(ctx context.Context, userId uuid.UUID) ([]dto.MembershipResponse, error)
}

type membershipService struct {
	uowFactory     unitofwork.RepositoryFactory
	paymentService IPaymentService
}

func NewMembershipService(uowFactory unitofwork.RepositoryFactory, paymentService IPaymentService) IMembershipService {
	return &membershipService{
		uowFactory:     uowFactory,
		paymentService: paymentService,
	}
}

func (s *membershipService) Join(ctx context.Context, userId uuid.UUID, req *dto.JoinGroupRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	if user.IsRestricted(time.Now()) {
		return nil, ErrUserRestricted
	}

	group, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: req.GroupId})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	if !group.Approved || group.Status != entity.GroupStatusActiveWithSlots {
		return nil, ErrGroupNotOpen
	}
	if !group.HasOpenSlot() {
		return nil, ErrGroupFull
	}
	if group.AdminId == userId {
		return nil, ErrAlreadyMember
	}

	existing, err := uow.MembershipRepository().FindOne(ctx,
		specification.MembershipOf{UserID: userId, GroupID: group.Id},
		specification.Filter("status", string(entity.MembershipStatusActive)),
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyMember
	}

	groupId := group.Id
	return s.paymentService.CreateCheckout(ctx,
		userId,
		entity.OrderPurposeJoinGroup,
		&groupId,
		group.PricePerSlotCents,
		entity.PaymentMethod(req.PaymentMethod),
	)
}

func (s *membershipService) MyMemberships(ctx context.Context, userId uuid.UUID) ([]dto.MembershipResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	memberships, err := uow.MembershipRepository().FindAllWithGroup(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "joined_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		resp = append(resp, toMembershipResponse(m))
	}
	return resp, nil
}

func toMembershipResponse(m *entity.Membership) dto.MembershipResponse {
	resp := dto.MembershipResponse{
		Id:       m.Id,
		GroupId:  m.GroupId,
		Status:   string(m.Status),
		JoinedAt: m.JoinedAt,
	}
	if m.PendingReason != nil {
		reason := string(*m.PendingReason)
		resp.PendingReason = &reason
	}
	if m.Group.Id != uuid.Nil {
		g := toGroupResponse(&m.Group)
		resp.Group = &g
	}
	return resp
}
