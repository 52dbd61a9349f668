// FILE: internal/dto/roommate_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendRoommateRequestRequest struct {
	TargetStudentId uuid.UUID `json:"target_student_id" validate:"required"`
	RoomType        string    `json:"room_type" validate:"omitempty,oneof=Single Double Triple Quad"`
	Message         string    `json:"message" validate:"max=500"`
}

type RespondRoommateRequestRequest struct {
	Accept bool `json:"accept"`
}

type RoommateRequestResponse struct {
	Id          uuid.UUID              `json:"id"`
	Requester   StudentSummaryResponse `json:"requester"`
	Target      StudentSummaryResponse `json:"target"`
	GroupId     uuid.UUID              `json:"group_id"`
	RoomType    string                 `json:"room_type,omitempty"`
	Status      string                 `json:"status"`
	Message     string                 `json:"message,omitempty"`
	MatchScore  *int                   `json:"match_score,omitempty"`
	RespondedAt *time.Time             `json:"responded_at,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

type GroupResponse struct {
	Id                 uuid.UUID                `json:"id"`
	Members            []StudentSummaryResponse `json:"members"`
	CreatedById        uuid.UUID                `json:"created_by_id"`
	Status             string                   `json:"status"`
	RoomType           string                   `json:"room_type"`
	SelectedRoomId     *uuid.UUID               `json:"selected_room_id,omitempty"`
	RoomSelectedAt     *time.Time               `json:"room_selected_at,omitempty"`
	PaymentConfirmedAt *time.Time               `json:"payment_confirmed_at,omitempty"`
	FormationMethod    string                   `json:"formation_method"`
	MatchScore         *int                     `json:"match_score,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
}

type SelectRoomRequest struct {
	RoomId uuid.UUID `json:"room_id" validate:"required"`
}

type CancelGroupRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}
