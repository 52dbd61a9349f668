package matching

import (
	"testing"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/entity"
)

func TestFindRoomTypeAwareMatchesPreferredFirst(t *testing.T) {
	seeker := compatibleStudent(entity.GenderBoys)
	chosen := compatibleStudent(entity.GenderBoys)
	other := compatibleStudent(entity.GenderBoys)
	seeker.PreferredRoommateIds = []uuid.UUID{chosen.Id}

	res := FindRoomTypeAwareMatches(seeker, []*entity.Student{other, chosen}, entity.RoomTypeTriple, 50)

	if res.Required != 2 {
		t.Fatalf("required = %d, want 2", res.Required)
	}
	if len(res.Preferred) != 1 || res.Preferred[0].Student.Id != chosen.Id {
		t.Fatalf("preferred roommate not seated first: %+v", res.Preferred)
	}
	if len(res.Suggested) != 1 || res.Suggested[0].Student.Id != other.Id {
		t.Fatalf("remaining seat not filled from the pool: %+v", res.Suggested)
	}
	if res.Total() != 2 {
		t.Errorf("total = %d, want 2", res.Total())
	}
}

func TestFindRoomTypeAwareMatchesSkipsIneligiblePreferred(t *testing.T) {
	seeker := compatibleStudent(entity.GenderBoys)

	roomed := compatibleStudent(entity.GenderBoys)
	roomId := uuid.New()
	roomed.RoomId = &roomId
	seeker.PreferredRoommateIds = []uuid.UUID{roomed.Id}

	fallback := compatibleStudent(entity.GenderBoys)

	res := FindRoomTypeAwareMatches(seeker, []*entity.Student{roomed, fallback}, entity.RoomTypeDouble, 50)

	if len(res.Preferred) != 0 {
		t.Fatalf("roomed student seated as preferred roommate")
	}
	if len(res.Suggested) != 1 || res.Suggested[0].Student.Id != fallback.Id {
		t.Fatalf("seat not given to the eligible candidate: %+v", res.Suggested)
	}
}

func TestFindRoomTypeAwareMatchesCapsPreferredAtSeats(t *testing.T) {
	seeker := compatibleStudent(entity.GenderBoys)
	first := compatibleStudent(entity.GenderBoys)
	second := compatibleStudent(entity.GenderBoys)
	seeker.PreferredRoommateIds = []uuid.UUID{first.Id, second.Id}

	res := FindRoomTypeAwareMatches(seeker, []*entity.Student{first, second}, entity.RoomTypeDouble, 50)

	if len(res.Preferred) != 1 {
		t.Fatalf("got %d preferred roommates for one seat", len(res.Preferred))
	}
	if res.Preferred[0].Student.Id != first.Id {
		t.Errorf("candidate order not kept for preferred roommates")
	}
	if len(res.Suggested) != 0 {
		t.Errorf("suggestions produced with no seats left: %+v", res.Suggested)
	}
}

func TestFindRoomTypeAwareMatchesSingleRoom(t *testing.T) {
	seeker := compatibleStudent(entity.GenderBoys)
	candidate := compatibleStudent(entity.GenderBoys)
	seeker.PreferredRoommateIds = []uuid.UUID{candidate.Id}

	res := FindRoomTypeAwareMatches(seeker, []*entity.Student{candidate}, entity.RoomTypeSingle, 50)

	if res.Required != 0 || res.Total() != 0 {
		t.Fatalf("single room produced a lineup: required %d, total %d", res.Required, res.Total())
	}
}

func TestFindRoomTypeAwareMatchesScoreFloorOnSuggestionsOnly(t *testing.T) {
	seeker := compatibleStudent(entity.GenderBoys)

	// A chosen roommate keeps the seat even when scoring below the floor.
	clashing := newStudent(entity.GenderBoys)
	clashing.Personality = entity.PersonalityAttributes{
		SleepingHabits:   strPtr("late"),
		StudyPreference:  strPtr("music"),
		CleanlinessLevel: strPtr("low"),
	}
	seeker.PreferredRoommateIds = []uuid.UUID{clashing.Id}

	weak := newStudent(entity.GenderBoys)
	weak.Personality = entity.PersonalityAttributes{SleepingHabits: strPtr("late")}

	res := FindRoomTypeAwareMatches(seeker, []*entity.Student{clashing, weak}, entity.RoomTypeTriple, 90)

	if len(res.Preferred) != 1 || res.Preferred[0].Student.Id != clashing.Id {
		t.Fatalf("low-scoring preferred roommate lost the seat: %+v", res.Preferred)
	}
	for _, m := range res.Suggested {
		if m.Score < 90 {
			t.Errorf("suggestion below the score floor leaked through: %d", m.Score)
		}
	}
}
