package contract

import (
	"context"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/repository/specification"
)

type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	Update(ctx context.Context, student *entity.Student) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Student, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Student, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Student, error)

	// RoomOccupancy counts live room references from the student table. This
	// is the authoritative occupancy for allocation decisions; the denormalized
	// room counter is display only.
	RoomOccupancy(ctx context.Context, roomId uuid.UUID) (*entity.Occupancy, error)
}
