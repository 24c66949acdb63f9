package contract

import (
	"context"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/repository/specification"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Complaint, error)
	Update(ctx context.Context, complaint *entity.Complaint) error
}
