// FILE: internal/dto/room_change_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type RoomChangeEligibilityResponse struct {
	Eligible bool     `json:"eligible"`
	Reasons  []string `json:"reasons,omitempty"`
}

type CreateRoomChangeRequest struct {
	RequestedRoomId uuid.UUID `json:"requested_room_id" validate:"required"`
	Reason          string    `json:"reason" validate:"required,min=10,max=1000"`
}

type PriceAdjustmentResponse struct {
	CurrentYearlyPrice float64   `json:"current_yearly_price"`
	NewYearlyPrice     float64   `json:"new_yearly_price"`
	YearlyDifference   float64   `json:"yearly_difference"`
	MonthlyDifference  float64   `json:"monthly_difference"`
	RemainingMonths    int       `json:"remaining_months"`
	ProRatedDifference float64   `json:"pro_rated_difference"`
	AlreadyPaid        float64   `json:"already_paid"`
	AdditionalPayment  float64   `json:"additional_payment"`
	RefundAmount       float64   `json:"refund_amount"`
	Direction          string    `json:"direction"`
	CalculatedAt       time.Time `json:"calculated_at"`
}

type RoomChangeResponse struct {
	Id              uuid.UUID               `json:"id"`
	StudentId       uuid.UUID               `json:"student_id"`
	CurrentRoomId   uuid.UUID               `json:"current_room_id"`
	RequestedRoomId uuid.UUID               `json:"requested_room_id"`
	Reason          string                  `json:"reason"`
	Status          string                  `json:"status"`
	Adjustment      PriceAdjustmentResponse `json:"adjustment"`
	PaymentFeeId    *uuid.UUID              `json:"payment_fee_id,omitempty"`
	ReviewedById    *uuid.UUID              `json:"reviewed_by_id,omitempty"`
	ReviewedAt      *time.Time              `json:"reviewed_at,omitempty"`
	ReviewNote      string                  `json:"review_note,omitempty"`
	CompletedAt     *time.Time              `json:"completed_at,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

type RoomChangeDecisionRequest struct {
	Note string `json:"note" validate:"max=1000"`
}
