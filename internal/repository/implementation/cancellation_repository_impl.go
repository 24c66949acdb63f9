package implementation

import (
	"context"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/model"
	"juntaplay-be/internal/repository/contract"
	"juntaplay-be/internal/repository/specification"

	"gorm.io/gorm"
)

type cancellationRepositoryImpl struct {
	db *gorm.DB
}

// NewCancellationRepository creates the append-only cancellation store.
func NewCancellationRepository(db *gorm.DB) contract.CancellationRepository {
	return &cancellationRepositoryImpl{db: db}
}

func (r *cancellationRepositoryImpl) Create(ctx context.Context, record *entity.CancellationRecord) error {
	m := &model.CancellationRecord{
		Id:                 record.Id,
		MembershipId:       record.MembershipId,
		UserId:             record.UserId,
		GroupId:            record.GroupId,
		Reason:             string(record.Reason),
		DaysMember:         record.DaysMember,
		RefundAmountCents:  record.RefundAmountCents,
		ProcessingFeeCents: record.ProcessingFeeCents,
		FinalRefundCents:   record.FinalRefundCents,
		RestrictionDays:    record.RestrictionDays,
		RestrictionUntil:   record.RestrictionUntil,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *cancellationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CancellationRecord, error) {
	var m model.CancellationRecord
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

	return r.mapToEntity(&m), nil
}

func (r *cancellationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CancellationRecord, error) {
	var ms []*model.CancellationRecord
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	var records []*entity.CancellationRecord
	for _, m := range ms {
		records = append(records, r.mapToEntity(m))
	}
	return records, nil
}

func (r *cancellationRepositoryImpl) mapToEntity(m *model.CancellationRecord) *entity.CancellationRecord {
	return &entity.CancellationRecord{
		Id:                 m.Id,
		MembershipId:       m.MembershipId,
		UserId:             m.UserId,
		GroupId:            m.GroupId,
		Reason:             entity.CancellationReason(m.Reason),
		DaysMember:         m.DaysMember,
		RefundAmountCents:  m.RefundAmountCents,
		ProcessingFeeCents: m.ProcessingFeeCents,
		FinalRefundCents:   m.FinalRefundCents,
		RestrictionDays:    m.RestrictionDays,
		RestrictionUntil:   m.RestrictionUntil,
		CreatedAt:          m.CreatedAt,
	}
}
