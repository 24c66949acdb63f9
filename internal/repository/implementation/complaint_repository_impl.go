package implementation

import (
	"context"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/model"
	"juntaplay-be/internal/repository/contract"
	"juntaplay-be/internal/repository/specification"

	"gorm.io/gorm"
)

type complaintRepositoryImpl struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) contract.ComplaintRepository {
	return &complaintRepositoryImpl{db: db}
}

func (r *complaintRepositoryImpl) Create(ctx context.Context, complaint *entity.Complaint) error {
	m := &model.Complaint{
		Id:          complaint.Id,
		UserId:      complaint.UserId,
		GroupId:     complaint.GroupId,
		Subject:     complaint.Subject,
		Description: complaint.Description,
		Status:      string(complaint.Status),
		Resolution:  complaint.Resolution,
		ClosedAt:    complaint.ClosedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *complaintRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error) {
	var m model.Complaint
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

func (r *complaintRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Complaint, error) {
	var ms []*model.Complaint
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	var complaints []*entity.Complaint
	for _, m := range ms {
		complaints = append(complaints, r.mapToEntity(m))
	}
	return complaints, nil
}

func (r *complaintRepositoryImpl) Update(ctx context.Context, complaint *entity.Complaint) error {
	return r.db.WithContext(ctx).Model(&model.Complaint{}).
		Where("id = ?", complaint.Id).
		Updates(map[string]interface{}{
			"subject":     complaint.Subject,
			"description": complaint.Description,
			"status":      string(complaint.Status),
			"resolution":  complaint.Resolution,
			"closed_at":   complaint.ClosedAt,
		}).Error
}

func (r *complaintRepositoryImpl) mapToEntity(m *model.Complaint) *entity.Complaint {
	return &entity.Complaint{
		Id:          m.Id,
		UserId:      m.UserId,
		GroupId:     m.GroupId,
		Subject:     m.Subject,
		Description: m.Description,
		Status:      entity.ComplaintStatus(m.Status),
		Resolution:  m.Resolution,
		ClosedAt:    m.ClosedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
