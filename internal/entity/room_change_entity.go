// FILE: internal/entity/room_change_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
)

type RoomChangeStatus string
type ChangeDirection string

const (
	RoomChangePending        RoomChangeStatus = "pending"
	RoomChangePendingPayment RoomChangeStatus = "pending_payment"
	RoomChangeUnderReview    RoomChangeStatus = "under_review"
	RoomChangeApproved       RoomChangeStatus = "approved"
	RoomChangeRejected       RoomChangeStatus = "rejected"
	RoomChangeCompleted      RoomChangeStatus = "completed"
	RoomChangeCancelled      RoomChangeStatus = "cancelled"

	DirectionUpgrade   ChangeDirection = "upgrade"
	DirectionDowngrade ChangeDirection = "downgrade"
	DirectionLateral   ChangeDirection = "lateral"
)

// ActiveRoomChangeStatuses block a student from filing another request.
var ActiveRoomChangeStatuses = []RoomChangeStatus{
	RoomChangePending,
	RoomChangePendingPayment,
	RoomChangeUnderReview,
}

// PriceAdjustment is the pro-rated money movement a room change implies,
// computed at request time and frozen on the request record.
type PriceAdjustment struct {
	CurrentYearlyPrice float64
	NewYearlyPrice     float64
	YearlyDifference   float64
	MonthlyDifference  float64
	RemainingMonths    int
	ProRatedDifference float64
	AlreadyPaid        float64
	AdditionalPayment  float64 // owed by the student on an upgrade
	RefundAmount       float64 // credited to the wallet on a downgrade
	Direction          ChangeDirection
	CalculatedAt       time.Time
}

// RoomChangeRequest tracks a student's move from their allocated room to a
// requested one, including the money side of it.
type RoomChangeRequest struct {
	Id              uuid.UUID
	StudentId       uuid.UUID
	CurrentRoomId   uuid.UUID
	RequestedRoomId uuid.UUID
	Reason          string
	Status          RoomChangeStatus
	Adjustment      PriceAdjustment

	PaymentFeeId *uuid.UUID // upgrade fee, when AdditionalPayment > 0
	ReviewedById *uuid.UUID
	ReviewedAt   *time.Time
	ReviewNote   string
	CompletedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *RoomChangeRequest) IsActive() bool {
	switch r.Status {
	case RoomChangePending, RoomChangePendingPayment, RoomChangeUnderReview:
		return true
	}
	return false
}

// RequiresPayment reports whether approval is gated on an upgrade fee.
func (r *RoomChangeRequest) RequiresPayment() bool {
	return r.Adjustment.AdditionalPayment > 0
}

// MarkPaid moves the request out of pending_payment once the upgrade fee
// clears, putting it in the admin review queue.
func (r *RoomChangeRequest) MarkPaid() error {
	if r.Status != RoomChangePendingPayment {
		return apperror.InvalidTransition("request is not awaiting payment, current status %s", r.Status)
	}
	r.Status = RoomChangePending
	return nil
}

// Approve records the admin decision. Payment gating is enforced here: an
// unpaid upgrade request cannot be approved.
func (r *RoomChangeRequest) Approve(adminId uuid.UUID, note string, at time.Time) error {
	if r.Status != RoomChangePending && r.Status != RoomChangeUnderReview {
		return apperror.InvalidTransition("cannot approve a request in status %s", r.Status)
	}
	r.Status = RoomChangeApproved
	r.ReviewedById = &adminId
	r.ReviewedAt = &at
	r.ReviewNote = note
	return nil
}

func (r *RoomChangeRequest) Reject(adminId uuid.UUID, note string, at time.Time) error {
	if r.Status != RoomChangePending && r.Status != RoomChangePendingPayment && r.Status != RoomChangeUnderReview {
		return apperror.InvalidTransition("cannot reject a request in status %s", r.Status)
	}
	r.Status = RoomChangeRejected
	r.ReviewedById = &adminId
	r.ReviewedAt = &at
	r.ReviewNote = note
	return nil
}

// Complete marks the physical move done after approval.
func (r *RoomChangeRequest) Complete(at time.Time) error {
	if r.Status != RoomChangeApproved {
		return apperror.InvalidTransition("cannot complete a request in status %s", r.Status)
	}
	r.Status = RoomChangeCompleted
	r.CompletedAt = &at
	return nil
}

// Cancel lets the student withdraw before review.
func (r *RoomChangeRequest) Cancel() error {
	if r.Status != RoomChangePending && r.Status != RoomChangePendingPayment {
		return apperror.InvalidTransition("cannot cancel a request in status %s", r.Status)
	}
	r.Status = RoomChangeCancelled
	return nil
}
