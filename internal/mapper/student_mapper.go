package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/model"
)

type StudentMapper struct{}

func NewStudentMapper() *StudentMapper {
	return &StudentMapper{}
}

func (m *StudentMapper) ToEntity(s *model.Student) *entity.Student {
	if s == nil {
		return nil
	}

	var personality entity.PersonalityAttributes
	if len(s.PersonalityAttrs) > 0 {
		_ = json.Unmarshal(s.PersonalityAttrs, &personality)
	}
	var aiPrefs entity.AiPreferences
	if len(s.AiPreferences) > 0 {
		_ = json.Unmarshal(s.AiPreferences, &aiPrefs)
	}

	var roomType *entity.RoomType
	if s.SelectedRoomType != nil {
		rt := entity.RoomType(*s.SelectedRoomType)
		roomType = &rt
	}

	return &entity.Student{
		Id:                   s.Id,
		UserId:               s.UserId,
		Name:                 s.Name,
		StudentId:            s.StudentId,
		Email:                s.Email,
		Phone:                s.Phone,
		Gender:               entity.Gender(s.Gender),
		Course:               s.Course,
		Year:                 s.Year,
		BatchYear:            s.BatchYear,
		Status:               entity.StudentStatus(s.Status),
		RoomId:               s.RoomId,
		TemporaryRoomId:      s.TemporaryRoomId,
		RoomAllocatedAt:      s.RoomAllocatedAt,
		RoomConfirmedAt:      s.RoomConfirmedAt,
		SelectedRoomType:     roomType,
		RoommateGroupId:      s.RoommateGroupId,
		PreferredRoommateIds: s.PreferredRoommateIds,
		Personality:          personality,
		AiPrefs:              aiPrefs,
		PaymentState:         entity.StudentPaymentState(s.PaymentStatus),
		AmountToPay:          s.AmountToPay,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (m *StudentMapper) ToModel(s *entity.Student) *model.Student {
	if s == nil {
		return nil
	}

	personality, _ := json.Marshal(s.Personality)
	aiPrefs, _ := json.Marshal(s.AiPrefs)

	var roomType *string
	if s.SelectedRoomType != nil {
		rt := string(*s.SelectedRoomType)
		roomType = &rt
	}

	return &model.Student{
		Id:                   s.Id,
		UserId:               s.UserId,
		Name:                 s.Name,
		StudentId:            s.StudentId,
		Email:                s.Email,
		Phone:                s.Phone,
		Gender:               string(s.Gender),
		Course:               s.Course,
		Year:                 s.Year,
		BatchYear:            s.BatchYear,
		Status:               string(s.Status),
		RoomId:               s.RoomId,
		TemporaryRoomId:      s.TemporaryRoomId,
		RoomAllocatedAt:      s.RoomAllocatedAt,
		RoomConfirmedAt:      s.RoomConfirmedAt,
		SelectedRoomType:     roomType,
		RoommateGroupId:      s.RoommateGroupId,
		PreferredRoommateIds: s.PreferredRoommateIds,
		PersonalityAttrs:     datatypes.JSON(personality),
		AiPreferences:        datatypes.JSON(aiPrefs),
		PaymentStatus:        string(s.PaymentState),
		AmountToPay:          s.AmountToPay,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
