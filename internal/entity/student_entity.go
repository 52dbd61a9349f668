// FILE: internal/entity/student_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Gender string
type StudentStatus string
type StudentPaymentState string

const (
	GenderBoys  Gender = "Boys"
	GenderGirls Gender = "Girls"

	StudentStatusActive    StudentStatus = "active"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusSuspended StudentStatus = "suspended"

	PaymentStateNotStarted StudentPaymentState = "NOT_STARTED"
	PaymentStatePending    StudentPaymentState = "PAYMENT_PENDING"
	PaymentStatePaid       StudentPaymentState = "PAID"
	PaymentStateFailed     StudentPaymentState = "FAILED"
)

// PersonalityAttributes is the structured preference scheme. Every field is
// optional; nil means the student never answered that question.
type PersonalityAttributes struct {
	SleepingHabits   *string // "early" | "late"
	StudyPreference  *string // "quiet" | "music"
	CleanlinessLevel *string // "low" | "medium" | "high"
	Sociability      *string // "introvert" | "ambivert" | "extrovert"
	AcFanPreference  *string // "ac" | "fan" | "both"
	NoiseTolerance   *string // "low" | "medium" | "high"
}

// AiPreferences is the free-form preference scheme collected by the onboarding
// questionnaire. It overlaps with PersonalityAttributes; the scorer resolves
// the overlap (structured fields win).
type AiPreferences struct {
	SleepSchedule  *string
	Cleanliness    *int // 1..10
	StudyHabits    *string
	NoiseTolerance *int // 1..10
	Lifestyle      *string
}

type Student struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	StudentId string // admission number
	Email     string
	Phone     string
	Gender    Gender
	Course    string
	Year      int
	BatchYear int
	Status    StudentStatus

	// Room allocation. RoomId is the confirmed room; TemporaryRoomId is held
	// while payment is pending and must never coexist with RoomId.
	RoomId           *uuid.UUID
	TemporaryRoomId  *uuid.UUID
	RoomAllocatedAt  *time.Time
	RoomConfirmedAt  *time.Time
	SelectedRoomType *RoomType
	RoommateGroupId  *uuid.UUID

	PreferredRoommateIds []uuid.UUID

	Personality PersonalityAttributes
	AiPrefs     AiPreferences

	PaymentState StudentPaymentState
	AmountToPay  float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasRoom reports whether the student holds any room reference, confirmed or
// temporary. Students holding a room are excluded from matching.
func (s *Student) HasRoom() bool {
	return s.RoomId != nil || s.TemporaryRoomId != nil
}

func (s *Student) IsActive() bool {
	return s.Status == StudentStatusActive
}
