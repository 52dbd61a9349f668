package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/repository/memory"
)

func newMatchingHarness() (*stubStudentRepo, *stubGroupRepo, IMatchingService) {
	students := &stubStudentRepo{}
	groups := &stubGroupRepo{}
	uow := &stubUnitOfWork{
		students: students,
		groups:   groups,
		rooms:    &stubRoomRepo{},
		requests: &stubRequestRepo{},
	}
	svc := NewMatchingService(&stubFactory{uow: uow}, memory.NewSuggestionCache(), nopLogger{})
	return students, groups, svc
}

func profiledStudent(name string, gender entity.Gender) *entity.Student {
	s := activeStudent(name, gender)
	early, quiet, high := "early", "quiet", "high"
	s.Personality = entity.PersonalityAttributes{
		SleepingHabits:   &early,
		StudyPreference:  &quiet,
		CleanlinessLevel: &high,
	}
	return s
}

func TestGetRoomTypeMatchesSeatsPreferredFirst(t *testing.T) {
	students, groups, svc := newMatchingHarness()

	seeker := profiledStudent("Arun", entity.GenderBoys)
	chosen := profiledStudent("Vikram", entity.GenderBoys)
	other := profiledStudent("Rahul", entity.GenderBoys)
	claimed := profiledStudent("Suresh", entity.GenderBoys)
	seeker.PreferredRoommateIds = []uuid.UUID{chosen.Id}
	students.add(seeker, chosen, other, claimed)

	// A pending group claims one candidate; he must stay out of the lineup.
	groups.add(entity.NewRoommateGroup(claimed.Id, entity.RoomTypeDouble, entity.FormationManual))

	res, err := svc.GetRoomTypeMatches(context.Background(), seeker.Id, "Triple")
	if err != nil {
		t.Fatalf("GetRoomTypeMatches failed: %v", err)
	}
	if res.RequiredRoommates != 2 {
		t.Fatalf("required roommates = %d, want 2", res.RequiredRoommates)
	}
	if len(res.PreferredRoommates) != 1 || res.PreferredRoommates[0].Student.Id != chosen.Id {
		t.Fatalf("preferred roommate not seated first: %+v", res.PreferredRoommates)
	}
	if len(res.AiMatches) != 1 || res.AiMatches[0].Student.Id != other.Id {
		t.Fatalf("remaining seat should go to the unclaimed candidate: %+v", res.AiMatches)
	}
	if res.TotalMatches != 2 {
		t.Errorf("total matches = %d, want 2", res.TotalMatches)
	}
}

func TestGetRoomTypeMatchesFallsBackToSelectedType(t *testing.T) {
	students, _, svc := newMatchingHarness()

	seeker := profiledStudent("Arun", entity.GenderBoys)
	single := entity.RoomTypeSingle
	seeker.SelectedRoomType = &single
	students.add(seeker)

	res, err := svc.GetRoomTypeMatches(context.Background(), seeker.Id, "")
	if err != nil {
		t.Fatalf("GetRoomTypeMatches failed: %v", err)
	}
	if res.RoomType != string(entity.RoomTypeSingle) {
		t.Errorf("room type = %s, want the student's selected %s", res.RoomType, entity.RoomTypeSingle)
	}
	if res.RequiredRoommates != 0 || res.TotalMatches != 0 {
		t.Errorf("single room produced a lineup: %+v", res)
	}
}

func TestGetRoomTypeMatchesRejectsUnknownType(t *testing.T) {
	students, _, svc := newMatchingHarness()
	seeker := profiledStudent("Arun", entity.GenderBoys)
	students.add(seeker)

	_, err := svc.GetRoomTypeMatches(context.Background(), seeker.Id, "Penthouse")
	if !apperror.Is(err, apperror.CodeBadRequest) {
		t.Fatalf("unknown room type error = %v, want BAD_REQUEST", err)
	}
}
