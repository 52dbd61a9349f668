// FILE: internal/entity/roommate_request_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
)

type RoommateRequestStatus string

const (
	RoommateRequestPending  RoommateRequestStatus = "pending"
	RoommateRequestAccepted RoommateRequestStatus = "accepted"
	RoommateRequestRejected RoommateRequestStatus = "rejected"
	RoommateRequestExpired  RoommateRequestStatus = "expired"

	// Cancelled marks an invitation voided because its group was torn down
	// before the target responded.
	RoommateRequestCancelled RoommateRequestStatus = "cancelled"
)

// RoommateRequest is an invitation from one student to another to share a
// room. Accepting it confirms (or grows) the sender's group.
type RoommateRequest struct {
	Id          uuid.UUID
	RequesterId uuid.UUID
	TargetId    uuid.UUID
	GroupId     uuid.UUID
	RoomType    RoomType
	Status      RoommateRequestStatus
	Message     string
	RespondedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRoommateRequest(requesterId, targetId, groupId uuid.UUID, roomType RoomType, message string) *RoommateRequest {
	return &RoommateRequest{
		Id:          uuid.New(),
		RequesterId: requesterId,
		TargetId:    targetId,
		GroupId:     groupId,
		RoomType:    roomType,
		Status:      RoommateRequestPending,
		Message:     message,
	}
}

func (r *RoommateRequest) IsPending() bool {
	return r.Status == RoommateRequestPending
}

// Accept resolves the invitation; only the target may respond and only once.
func (r *RoommateRequest) Accept(studentId uuid.UUID, at time.Time) error {
	if err := r.respondable(studentId); err != nil {
		return err
	}
	r.Status = RoommateRequestAccepted
	r.RespondedAt = &at
	return nil
}

func (r *RoommateRequest) Reject(studentId uuid.UUID, at time.Time) error {
	if err := r.respondable(studentId); err != nil {
		return err
	}
	r.Status = RoommateRequestRejected
	r.RespondedAt = &at
	return nil
}

// Cancel voids a still-pending invitation when its group is cancelled. It is
// not a response, so no actor check applies and resolved requests are left
// untouched.
func (r *RoommateRequest) Cancel(at time.Time) {
	if r.Status != RoommateRequestPending {
		return
	}
	r.Status = RoommateRequestCancelled
	r.RespondedAt = &at
}

func (r *RoommateRequest) respondable(studentId uuid.UUID) error {
	if r.TargetId != studentId {
		return apperror.Forbidden("only the invited student can respond to this request")
	}
	if r.Status != RoommateRequestPending {
		return apperror.InvalidTransition("request already %s", r.Status)
	}
	return nil
}
