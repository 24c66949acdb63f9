package contract

import (
	"context"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/repository/specification"
)

// CancellationRepository persists the immutable cancellation outcome rows.
// There is deliberately no Update or Delete: records are append-only.
type CancellationRepository interface {
	Create(ctx context.Context, record *entity.CancellationRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CancellationRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CancellationRecord, error)
}
