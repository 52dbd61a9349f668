// FILE: internal/service/matching_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
	"hostel-mgmt-be/internal/constant"
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/matching"
	"hostel-mgmt-be/internal/pkg/logger"
	"hostel-mgmt-be/internal/repository/memory"
	"hostel-mgmt-be/internal/repository/specification"
	"hostel-mgmt-be/internal/repository/unitofwork"
)

type IMatchingService interface {
	GetSuggestions(ctx context.Context, studentId uuid.UUID, refresh bool) (*dto.MatchSuggestionsResponse, error)
	GetRoomTypeMatches(ctx context.Context, studentId uuid.UUID, roomType string) (*dto.RoomTypeMatchesResponse, error)
	CheckCompatibility(ctx context.Context, studentA, studentB uuid.UUID) (*dto.CompatibilityCheckResponse, error)
	FormGroups(ctx context.Context, req *dto.FormGroupsRequest) (*dto.FormGroupsResponse, error)
	UpdatePreferences(ctx context.Context, studentId uuid.UUID, req *dto.UpdatePreferencesRequest) error
}

type matchingService struct {
	uowFactory      unitofwork.RepositoryFactory
	suggestionCache *memory.SuggestionCache
	logger          logger.ILogger
}

func NewMatchingService(uowFactory unitofwork.RepositoryFactory, suggestionCache *memory.SuggestionCache, log logger.ILogger) IMatchingService {
	return &matchingService{
		uowFactory:      uowFactory,
		suggestionCache: suggestionCache,
		logger:          log,
	}
}

func (s *matchingService) GetSuggestions(ctx context.Context, studentId uuid.UUID, refresh bool) (*dto.MatchSuggestionsResponse, error) {
	if !refresh {
		if matches, found := s.suggestionCache.Get(studentId); found {
			return &dto.MatchSuggestionsResponse{
				Suggestions: toSuggestionDTOs(matches),
				FromCache:   true,
			}, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}

	pool, err := s.matchingPool(ctx, uow, student.Gender)
	if err != nil {
		return nil, err
	}

	matches := matching.FindBestMatches(student, pool, constant.MinMatchScore, constant.MaxMatchResults)
	s.suggestionCache.Save(studentId, matches)

	s.logger.Debug("MatchingService", "Computed match suggestions", map[string]interface{}{
		"student_id": studentId,
		"pool_size":  len(pool),
		"matches":    len(matches),
	})

	return &dto.MatchSuggestionsResponse{
		Suggestions: toSuggestionDTOs(matches),
		FromCache:   false,
	}, nil
}

// GetRoomTypeMatches proposes a full roommate lineup for the given room type:
// the student's preferred roommates claim seats first, best-match suggestions
// fill the rest. Students already claimed by an active group are left out of
// the pool.
func (s *matchingService) GetRoomTypeMatches(ctx context.Context, studentId uuid.UUID, roomType string) (*dto.RoomTypeMatchesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}

	resolved := entity.RoomType(roomType)
	if roomType == "" {
		if student.SelectedRoomType != nil && student.SelectedRoomType.Valid() {
			resolved = *student.SelectedRoomType
		} else {
			resolved = entity.RoomTypeDouble
		}
	}
	if !resolved.Valid() {
		return nil, apperror.Newf(apperror.CodeBadRequest, "unknown room type %s", roomType)
	}

	pool, err := s.matchingPool(ctx, uow, student.Gender)
	if err != nil {
		return nil, err
	}

	claimed, err := s.activeGroupMembers(ctx, uow)
	if err != nil {
		return nil, err
	}
	free := make([]*entity.Student, 0, len(pool))
	for _, candidate := range pool {
		if !claimed[candidate.Id] {
			free = append(free, candidate)
		}
	}

	matches := matching.FindRoomTypeAwareMatches(student, free, resolved, constant.MinMatchScore)

	s.logger.Debug("MatchingService", "Computed room type matches", map[string]interface{}{
		"student_id": studentId,
		"room_type":  string(resolved),
		"preferred":  len(matches.Preferred),
		"suggested":  len(matches.Suggested),
	})

	return &dto.RoomTypeMatchesResponse{
		RoomType:           string(matches.RoomType),
		RequiredRoommates:  matches.Required,
		PreferredRoommates: toSuggestionDTOs(matches.Preferred),
		AiMatches:          toSuggestionDTOs(matches.Suggested),
		TotalMatches:       matches.Total(),
	}, nil
}

// activeGroupMembers collects every student currently claimed by a group in
// an active status.
func (s *matchingService) activeGroupMembers(ctx context.Context, uow unitofwork.UnitOfWork) (map[uuid.UUID]bool, error) {
	statuses := make([]string, 0, len(entity.ActiveGroupStatuses))
	for _, st := range entity.ActiveGroupStatuses {
		statuses = append(statuses, string(st))
	}
	groups, err := uow.RoommateGroupRepository().FindAll(ctx, specification.ByStatusIn{Statuses: statuses})
	if err != nil {
		return nil, err
	}
	claimed := make(map[uuid.UUID]bool)
	for _, g := range groups {
		for _, id := range g.MemberIds {
			claimed[id] = true
		}
	}
	return claimed, nil
}

func (s *matchingService) CheckCompatibility(ctx context.Context, studentA, studentB uuid.UUID) (*dto.CompatibilityCheckResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	students, err := uow.StudentRepository().FindByIds(ctx, []uuid.UUID{studentA, studentB})
	if err != nil {
		return nil, err
	}
	if len(students) != 2 {
		return nil, apperror.NotFound("student")
	}

	return &dto.CompatibilityCheckResponse{
		StudentA: studentA,
		StudentB: studentB,
		Score:    matching.CompatibilityScore(students[0], students[1]),
	}, nil
}

// FormGroups runs the batch partitioner over all unassigned students of the
// given gender. Proposals are returned to the admin, not persisted; creating
// real groups stays an explicit member-driven flow.
func (s *matchingService) FormGroups(ctx context.Context, req *dto.FormGroupsRequest) (*dto.FormGroupsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pool, err := s.matchingPool(ctx, uow, entity.Gender(req.Gender))
	if err != nil {
		return nil, err
	}

	minScore := constant.MinMatchScore
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	groups := matching.FormGroups(pool, req.RoomCapacity, minScore)

	res := &dto.FormGroupsResponse{
		Groups:   make([]dto.FormedGroupResponse, 0, len(groups)),
		PoolSize: len(pool),
	}
	grouped := 0
	for _, g := range groups {
		members := make([]dto.StudentSummaryResponse, 0, len(g.Students))
		for _, st := range g.Students {
			members = append(members, toStudentSummary(st))
		}
		grouped += len(g.Students)
		res.Groups = append(res.Groups, dto.FormedGroupResponse{
			Members:      members,
			AverageScore: g.AverageScore,
			PairScores:   g.PairScores,
		})
	}
	res.Leftovers = len(pool) - grouped

	s.logger.Info("MatchingService", "Formed group proposals", map[string]interface{}{
		"pool_size": len(pool),
		"groups":    len(res.Groups),
		"leftovers": res.Leftovers,
	})
	return res, nil
}

func (s *matchingService) UpdatePreferences(ctx context.Context, studentId uuid.UUID, req *dto.UpdatePreferencesRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.StudentRepository()

	student, err := repo.FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return err
	}
	if student == nil {
		return apperror.NotFound("student")
	}

	if req.Personality != nil {
		student.Personality = entity.PersonalityAttributes{
			SleepingHabits:   req.Personality.SleepingHabits,
			StudyPreference:  req.Personality.StudyPreference,
			CleanlinessLevel: req.Personality.CleanlinessLevel,
			Sociability:      req.Personality.Sociability,
			AcFanPreference:  req.Personality.AcFanPreference,
			NoiseTolerance:   req.Personality.NoiseTolerance,
		}
	}
	if req.AiPreferences != nil {
		student.AiPrefs = entity.AiPreferences{
			SleepSchedule:  req.AiPreferences.SleepSchedule,
			Cleanliness:    req.AiPreferences.Cleanliness,
			StudyHabits:    req.AiPreferences.StudyHabits,
			NoiseTolerance: req.AiPreferences.NoiseTolerance,
			Lifestyle:      req.AiPreferences.Lifestyle,
		}
	}
	if req.PreferredRoommateIds != nil {
		student.PreferredRoommateIds = req.PreferredRoommateIds
	}
	if req.SelectedRoomType != nil {
		rt := entity.RoomType(*req.SelectedRoomType)
		student.SelectedRoomType = &rt
	}
	student.UpdatedAt = time.Now()

	if err := repo.Update(ctx, student); err != nil {
		return err
	}

	// Changed preferences change everyone's scores against this student, but
	// only their own cached list is guaranteed stale right now.
	s.suggestionCache.Invalidate(studentId)
	return nil
}

// matchingPool loads active, unassigned students of one gender.
func (s *matchingService) matchingPool(ctx context.Context, uow unitofwork.UnitOfWork, gender entity.Gender) ([]*entity.Student, error) {
	return uow.StudentRepository().FindAll(ctx,
		specification.Filter("gender", string(gender)),
		specification.Filter("status", string(entity.StudentStatusActive)),
		specification.Unassigned{},
	)
}

func toSuggestionDTOs(matches []matching.Match) []dto.MatchSuggestionResponse {
	res := make([]dto.MatchSuggestionResponse, 0, len(matches))
	for _, m := range matches {
		res = append(res, dto.MatchSuggestionResponse{
			Student: toStudentSummary(m.Student),
			Score:   m.Score,
		})
	}
	return res
}

func toStudentSummary(st *entity.Student) dto.StudentSummaryResponse {
	return dto.StudentSummaryResponse{
		Id:        st.Id,
		Name:      st.Name,
		StudentId: st.StudentId,
		Course:    st.Course,
		Year:      st.Year,
		Gender:    string(st.Gender),
	}
}
