package contract

import (
	"context"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/repository/specification"
)

type RoomChangeRepository interface {
	Create(ctx context.Context, request *entity.RoomChangeRequest) error
	Update(ctx context.Context, request *entity.RoomChangeRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoomChangeRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoomChangeRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindActiveByStudent returns the request blocking a new submission, if
	// any (pending, pending_payment or under_review).
	FindActiveByStudent(ctx context.Context, studentId uuid.UUID) (*entity.RoomChangeRequest, error)
}
