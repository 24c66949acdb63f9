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
	"juntaplay-be/pkg/events"
	pktNats "juntaplay-be/pkg/nats"

	"github.com/google/uuid"
)

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrComplaintExists   = errors.New("an open complaint already exists for this group")
	ErrNotAMember        = errors.New("only group members can open complaints")
)

type IComplaintService interface {
	Open(ctx context.Context, userId uuid.UUID, req *dto.OpenComplaintRequest) (*dto.ComplaintResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID) ([]dto.ComplaintResponse, error)
	// Close resolves a complaint, admin only. Member complaints also close
	// automatically when the membership is cancelled.
	Close(ctx context.Context, complaintId uuid.UUID, req *dto.CloseComplaintRequest) (*dto.ComplaintResponse, error)
}

type complaintService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewComplaintService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) IComplaintService {
	return &complaintService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *complaintService) Open(ctx context.Context, userId uuid.UUID, req *dto.OpenComplaintRequest) (*dto.ComplaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	membership, err := uow.MembershipRepository().FindOne(ctx,
		specification.MembershipOf{UserID: userId, GroupID: req.GroupId},
		specification.Filter("status", string(entity.MembershipStatusActive)),
	)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, ErrNotAMember
	}

	existing, err := uow.ComplaintRepository().FindOne(ctx,
		specification.MembershipOf{UserID: userId, GroupID: req.GroupId},
		specification.Filter("status", string(entity.ComplaintStatusOpen)),
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrComplaintExists
	}

	now := time.Now()
	complaint := &entity.Complaint{
		Id:          uuid.New(),
		UserId:      userId,
		GroupId:     req.GroupId,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      entity.ComplaintStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uow.ComplaintRepository().Create(ctx, complaint); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeComplaintOpened,
			Data: map[string]interface{}{
				"user_id":      userId.String(),
				"group_id":     req.GroupId.String(),
				"complaint_id": complaint.Id.String(),
				"subject":      complaint.Subject,
				"entity_type":  "complaint",
				"entity_id":    complaint.Id.String(),
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ComplaintService", "Failed to publish complaint opened", map[string]interface{}{"complaint_id": complaint.Id, "error": err.Error()})
		}
	}

	resp := toComplaintResponse(complaint)
	return &resp, nil
}

func (s *complaintService) ListMine(ctx context.Context, userId uuid.UUID) ([]dto.ComplaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaints, err := uow.ComplaintRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		resp = append(resp, toComplaintResponse(c))
	}
	return resp, nil
}

func (s *complaintService) Close(ctx context.Context, complaintId uuid.UUID, req *dto.CloseComplaintRequest) (*dto.ComplaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	complaint, err := uow.ComplaintRepository().FindOne(ctx, specification.ByID{ID: complaintId})
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, ErrComplaintNotFound
	}
	if complaint.Status == entity.ComplaintStatusClosed {
		return nil, errors.New("complaint already closed")
	}

	now := time.Now()
	complaint.Status = entity.ComplaintStatusClosed
	complaint.Resolution = &req.Resolution
	complaint.ClosedAt = &now
	complaint.UpdatedAt = now
	if err := uow.ComplaintRepository().Update(ctx, complaint); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeComplaintClosed,
			Data: map[string]interface{}{
				"user_id":      complaint.UserId.String(),
				"complaint_id": complaint.Id.String(),
				"resolution":   req.Resolution,
				"entity_type":  "complaint",
				"entity_id":    complaint.Id.String(),
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ComplaintService", "Failed to publish complaint closed", map[string]interface{}{"complaint_id": complaint.Id, "error": err.Error()})
		}
	}

	resp := toComplaintResponse(complaint)
	return &resp, nil
}

func toComplaintResponse(c *entity.Complaint) dto.ComplaintResponse {
	return dto.ComplaintResponse{
		Id:          c.Id,
		GroupId:     c.GroupId,
		Subject:     c.Subject,
		Description: c.Description,
		Status:      string(c.Status),
		Resolution:  c.Resolution,
		CreatedAt:   c.CreatedAt,
		ClosedAt:    c.ClosedAt,
	}
}
