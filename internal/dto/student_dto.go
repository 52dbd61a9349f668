// FILE: internal/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type PersonalityAttributesDTO struct {
	SleepingHabits   *string `json:"sleeping_habits" validate:"omitempty,oneof=early late"`
	StudyPreference  *string `json:"study_preference" validate:"omitempty,oneof=quiet music"`
	CleanlinessLevel *string `json:"cleanliness_level" validate:"omitempty,oneof=low medium high"`
	Sociability      *string `json:"sociability" validate:"omitempty,oneof=introvert ambivert extrovert"`
	AcFanPreference  *string `json:"ac_fan_preference" validate:"omitempty,oneof=ac fan both"`
	NoiseTolerance   *string `json:"noise_tolerance" validate:"omitempty,oneof=low medium high"`
}

type AiPreferencesDTO struct {
	SleepSchedule  *string `json:"sleep_schedule"`
	Cleanliness    *int    `json:"cleanliness" validate:"omitempty,min=1,max=10"`
	StudyHabits    *string `json:"study_habits"`
	NoiseTolerance *int    `json:"noise_tolerance" validate:"omitempty,min=1,max=10"`
	Lifestyle      *string `json:"lifestyle"`
}

type UpdatePreferencesRequest struct {
	Personality          *PersonalityAttributesDTO `json:"personality"`
	AiPreferences        *AiPreferencesDTO         `json:"ai_preferences"`
	PreferredRoommateIds []uuid.UUID               `json:"preferred_roommate_ids"`
	SelectedRoomType     *string                   `json:"selected_room_type" validate:"omitempty,oneof=Single Double Triple Quad"`
}

type StudentSummaryResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StudentId string    `json:"student_id"`
	Course    string    `json:"course"`
	Year      int       `json:"year"`
	Gender    string    `json:"gender"`
}

type StudentProfileResponse struct {
	Id               uuid.UUID                `json:"id"`
	Name             string                   `json:"name"`
	StudentId        string                   `json:"student_id"`
	Email            string                   `json:"email"`
	Phone            string                   `json:"phone,omitempty"`
	Gender           string                   `json:"gender"`
	Course           string                   `json:"course"`
	Year             int                      `json:"year"`
	Status           string                   `json:"status"`
	RoomId           *uuid.UUID               `json:"room_id,omitempty"`
	TemporaryRoomId  *uuid.UUID               `json:"temporary_room_id,omitempty"`
	RoommateGroupId  *uuid.UUID               `json:"roommate_group_id,omitempty"`
	SelectedRoomType *string                  `json:"selected_room_type,omitempty"`
	PaymentState     string                   `json:"payment_state"`
	AmountToPay      float64                  `json:"amount_to_pay"`
	Personality      PersonalityAttributesDTO `json:"personality"`
	AiPreferences    AiPreferencesDTO         `json:"ai_preferences"`
	CreatedAt        time.Time                `json:"created_at"`
}
