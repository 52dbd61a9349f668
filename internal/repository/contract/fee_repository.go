package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/repository/specification"
)

type FeeRepository interface {
	Create(ctx context.Context, fee *entity.Fee) error
	Update(ctx context.Context, fee *entity.Fee) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Fee, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Fee, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// HasOutstanding reports whether the student owes any fee of the type.
	HasOutstanding(ctx context.Context, studentId uuid.UUID, feeType entity.FeeType) (bool, error)

	// TotalPaidForRoom sums the student's settled rent payments toward a room,
	// feeding the already-paid adjustment on room changes.
	TotalPaidForRoom(ctx context.Context, studentId, roomId uuid.UUID) (float64, error)

	// SumPaidSince totals all payments settled on or after the given time.
	SumPaidSince(ctx context.Context, since time.Time) (float64, error)
}
