package service

import (
	"context"
	"errors"
	"time"

	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/pkg/logger"
	"juntaplay-be/internal/pkg/mailer"
	"juntaplay-be/internal/repository/specification"
	"juntaplay-be/internal/repository/unitofwork"
	"juntaplay-be/pkg/billing"
	"juntaplay-be/pkg/cache"
	"juntaplay-be/pkg/events"
	pktNats "juntaplay-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrNotMembershipOwner = errors.New("membership belongs to another user")
	ErrAlreadyCancelled   = errors.New("membership already cancelled")
	ErrNoPendingRequest   = errors.New("no cancellation request to confirm")
	ErrInvalidReason      = errors.New("invalid cancellation reason")
	ErrRecordNotFound     = errors.New("cancellation record not found")
)

type ICancellationService interface {
	// RequestCancellation records the member's reason and returns a refund
	// preview. Nothing financial happens until confirmation.
	RequestCancellation(ctx context.Context, userId, membershipId uuid.UUID, req *dto.RequestCancellationRequest) (*dto.CancellationPreviewResponse, error)
	// ConfirmCancellation runs the irreversible transition in one
	// transaction: audit record, membership closed, slot freed, open
	// complaint resolved, restriction applied, wallet credited.
	ConfirmCancellation(ctx context.Context, userId, membershipId uuid.UUID) (*dto.CancellationRecordResponse, error)
	GetRecord(ctx context.Context, userId, membershipId uuid.UUID) (*dto.CancellationRecordResponse, error)
}

type cancellationService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	groupCache     *cache.GroupCache
	logger         logger.ILogger
	now            func() time.Time
}

func NewCancellationService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	groupCache *cache.GroupCache,
	log logger.ILogger,
) ICancellationService {
	return &cancellationService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		groupCache:     groupCache,
		logger:         log,
		now:            time.Now,
	}
}

func (s *cancellationService) RequestCancellation(ctx context.Context, userId, membershipId uuid.UUID, req *dto.RequestCancellationRequest) (*dto.CancellationPreviewResponse, error) {
	reason := entity.CancellationReason(req.Reason)
	if !entity.ValidCancellationReason(reason) {
		return nil, ErrInvalidReason
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	membership, err := uow.MembershipRepository().FindOneWithGroup(ctx, specification.ByID{ID: membershipId})
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, ErrMembershipNotFound
	}
	if membership.UserId != userId {
		return nil, ErrNotMembershipOwner
	}
	if membership.Status == entity.MembershipStatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	now := s.now()

	// Re-requesting just replaces the reason and refreshes the preview.
	membership.Status = entity.MembershipStatusCancellationRequested
	membership.PendingReason = &reason
	membership.UpdatedAt = now
	if err := uow.MembershipRepository().Update(ctx, membership); err != nil {
		return nil, err
	}

	proration := billing.Prorate(membership.JoinedAt, now, membership.Group.PricePerSlotCents)
	outcome := billing.ApplyPolicy(proration, now)

	return &dto.CancellationPreviewResponse{
		MembershipId:     membership.Id,
		Reason:           string(reason),
		DaysMember:       proration.DaysMember,
		DaysRemaining:    proration.DaysRemaining,
		RefundCents:      proration.RefundCents,
		FeeCents:         outcome.FeeCents,
		FinalRefundCents: outcome.FinalRefundCents,
		RestrictionDays:  outcome.RestrictionDays,
		RestrictedUntil:  outcome.RestrictionUntil,
	}, nil
}

func (s *cancellationService) ConfirmCancellation(ctx context.Context, userId, membershipId uuid.UUID) (*dto.CancellationRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	membership, err := uow.MembershipRepository().FindOneWithGroup(ctx, specification.ByID{ID: membershipId})
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, ErrMembershipNotFound
	}
	if membership.UserId != userId {
		return nil, ErrNotMembershipOwner
	}
	if membership.Status == entity.MembershipStatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if membership.Status != entity.MembershipStatusCancellationRequested || membership.PendingReason == nil {
		return nil, ErrNoPendingRequest
	}

	now := s.now()
	proration := billing.Prorate(membership.JoinedAt, now, membership.Group.PricePerSlotCents)
	outcome := billing.ApplyPolicy(proration, now)

	// The unique index on membership_id turns a concurrent double confirm
	// into an insert failure here, which rolls the whole transaction back.
	record := &entity.CancellationRecord{
		Id:                 uuid.New(),
		MembershipId:       membership.Id,
		UserId:             userId,
		GroupId:            membership.GroupId,
		Reason:             *membership.PendingReason,
		DaysMember:         proration.DaysMember,
		RefundAmountCents:  proration.RefundCents,
		ProcessingFeeCents: outcome.FeeCents,
		FinalRefundCents:   outcome.FinalRefundCents,
		RestrictionDays:    outcome.RestrictionDays,
		RestrictionUntil:   outcome.RestrictionUntil,
		CreatedAt:          now,
	}
	if err := uow.CancellationRepository().Create(ctx, record); err != nil {
		// A concurrent confirm that committed first trips the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCancelled
		}
		return nil, err
	}

	membership.Status = entity.MembershipStatusCancelled
	membership.UpdatedAt = now
	if err := uow.MembershipRepository().Update(ctx, membership); err != nil {
		return nil, err
	}

	group, err := uow.GroupRepository().FindOneForUpdate(ctx, specification.ByID{ID: membership.GroupId})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	if group.CurrentMembers > 0 {
		group.CurrentMembers--
	}
	if group.Status == entity.GroupStatusQueue && group.HasOpenSlot() {
		group.Status = entity.GroupStatusActiveWithSlots
	}
	group.UpdatedAt = now
	if err := uow.GroupRepository().Update(ctx, group); err != nil {
		return nil, err
	}

	// Leaving the group resolves any open complaint the member had against it.
	complaint, err := uow.ComplaintRepository().FindOne(ctx,
		specification.MembershipOf{UserID: userId, GroupID: membership.GroupId},
		specification.Filter("status", string(entity.ComplaintStatusOpen)),
	)
	if err != nil {
		return nil, err
	}
	if complaint != nil {
		complaint.Status = entity.ComplaintStatusClosed
		complaint.ClosedAt = &now
		complaint.UpdatedAt = now
		if err := uow.ComplaintRepository().Update(ctx, complaint); err != nil {
			return nil, err
		}
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	restrictedUntil := outcome.RestrictionUntil
	user.RestrictedUntil = &restrictedUntil
	user.UpdatedAt = now
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	if outcome.FinalRefundCents > 0 {
		if err := creditWallet(ctx, uow, userId, outcome.FinalRefundCents, "Reembolso de cancelamento", &record.Id, now); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.groupCache.Invalidate(ctx); err != nil {
		s.logger.Warn("CancellationService", "Cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
	s.publishCancelled(ctx, record, user.Email)

	resp := toCancellationRecordResponse(record)
	return &resp, nil
}

func (s *cancellationService) GetRecord(ctx context.Context, userId, membershipId uuid.UUID) (*dto.CancellationRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.CancellationRepository().FindOne(ctx, specification.Filter("membership_id", membershipId))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	if record.UserId != userId {
		return nil, ErrNotMembershipOwner
	}

	resp := toCancellationRecordResponse(record)
	return &resp, nil
}

func (s *cancellationService) publishCancelled(ctx context.Context, record *entity.CancellationRecord, email string) {
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeMembershipCancelled,
			Data: map[string]interface{}{
				"user_id":            record.UserId.String(),
				"group_id":           record.GroupId.String(),
				"membership_id":      record.MembershipId.String(),
				"final_refund_cents": record.FinalRefundCents,
				"reason":             string(record.Reason),
				"entity_type":        "group",
				"entity_id":          record.GroupId.String(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("CancellationService", "Failed to publish cancellation event", map[string]interface{}{"membership_id": record.MembershipId, "error": err.Error()})
		}
	}

	// Summary mail is best effort, the record is already durable.
	if s.emailService != nil {
		if err := s.emailService.SendCancellationSummary(email, record.FinalRefundCents, record.RestrictionDays); err != nil {
			s.logger.Warn("CancellationService", "Failed to send cancellation summary", map[string]interface{}{"membership_id": record.MembershipId, "error": err.Error()})
		}
	}
}

func toCancellationRecordResponse(r *entity.CancellationRecord) dto.CancellationRecordResponse {
	return dto.CancellationRecordResponse{
		Id:               r.Id,
		MembershipId:     r.MembershipId,
		GroupId:          r.GroupId,
		Reason:           string(r.Reason),
		DaysMember:       r.DaysMember,
		RefundCents:      r.RefundAmountCents,
		FeeCents:         r.ProcessingFeeCents,
		FinalRefundCents: r.FinalRefundCents,
		RestrictedUntil:  r.RestrictionUntil,
		CancelledAt:      r.CreatedAt,
	}
}
