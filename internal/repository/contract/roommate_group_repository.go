package contract

import (
	"context"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/repository/specification"
)

type RoommateGroupRepository interface {
	Create(ctx context.Context, group *entity.RoommateGroup) error
	Update(ctx context.Context, group *entity.RoommateGroup) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoommateGroup, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoommateGroup, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindActiveByMember returns the group currently claiming the student,
	// or nil if they are free to join one.
	FindActiveByMember(ctx context.Context, studentId uuid.UUID) (*entity.RoommateGroup, error)
}

type RoommateRequestRepository interface {
	Create(ctx context.Context, request *entity.RoommateRequest) error
	Update(ctx context.Context, request *entity.RoommateRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoommateRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoommateRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
