// FILE: internal/service/student_service.go
package service

import (
	"context"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/repository/specification"
	"hostel-mgmt-be/internal/repository/unitofwork"
)

type IStudentService interface {
	GetProfileByUser(ctx context.Context, userId uuid.UUID) (*dto.StudentProfileResponse, error)
	GetProfile(ctx context.Context, studentId uuid.UUID) (*dto.StudentProfileResponse, error)
	ListStudents(ctx context.Context, gender string, unassignedOnly bool) ([]*dto.StudentSummaryResponse, error)
}

type studentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStudentService(uowFactory unitofwork.RepositoryFactory) IStudentService {
	return &studentService{uowFactory: uowFactory}
}

// GetProfileByUser resolves the student profile behind an authenticated user.
func (s *studentService) GetProfileByUser(ctx context.Context, userId uuid.UUID) (*dto.StudentProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	student, err := uow.StudentRepository().FindOne(ctx, specification.Filter("user_id", userId))
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student profile")
	}
	return toStudentProfile(student), nil
}

func (s *studentService) GetProfile(ctx context.Context, studentId uuid.UUID) (*dto.StudentProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}
	return toStudentProfile(student), nil
}

func (s *studentService) ListStudents(ctx context.Context, gender string, unassignedOnly bool) ([]*dto.StudentSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.OrderBy{Field: "name", Desc: false},
	}
	if gender != "" {
		specs = append(specs, specification.Filter("gender", gender))
	}
	if unassignedOnly {
		specs = append(specs, specification.Unassigned{})
	}
	students, err := uow.StudentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.StudentSummaryResponse, 0, len(students))
	for _, st := range students {
		summary := toStudentSummary(st)
		res = append(res, &summary)
	}
	return res, nil
}

func toStudentProfile(st *entity.Student) *dto.StudentProfileResponse {
	var roomType *string
	if st.SelectedRoomType != nil {
		rt := string(*st.SelectedRoomType)
		roomType = &rt
	}
	return &dto.StudentProfileResponse{
		Id:               st.Id,
		Name:             st.Name,
		StudentId:        st.StudentId,
		Email:            st.Email,
		Phone:            st.Phone,
		Gender:           string(st.Gender),
		Course:           st.Course,
		Year:             st.Year,
		Status:           string(st.Status),
		RoomId:           st.RoomId,
		TemporaryRoomId:  st.TemporaryRoomId,
		RoommateGroupId:  st.RoommateGroupId,
		SelectedRoomType: roomType,
		PaymentState:     string(st.PaymentState),
		AmountToPay:      st.AmountToPay,
		Personality: dto.PersonalityAttributesDTO{
			SleepingHabits:   st.Personality.SleepingHabits,
			StudyPreference:  st.Personality.StudyPreference,
			CleanlinessLevel: st.Personality.CleanlinessLevel,
			Sociability:      st.Personality.Sociability,
			AcFanPreference:  st.Personality.AcFanPreference,
			NoiseTolerance:   st.Personality.NoiseTolerance,
		},
		AiPreferences: dto.AiPreferencesDTO{
			SleepSchedule:  st.AiPrefs.SleepSchedule,
			Cleanliness:    st.AiPrefs.Cleanliness,
			StudyHabits:    st.AiPrefs.StudyHabits,
			NoiseTolerance: st.AiPrefs.NoiseTolerance,
			Lifestyle:      st.AiPrefs.Lifestyle,
		},
		CreatedAt: st.CreatedAt,
	}
}
