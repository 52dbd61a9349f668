package matching

import (
	"testing"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/entity"
)

func compatibleStudent(gender entity.Gender) *entity.Student {
	s := newStudent(gender)
	s.Personality = fullProfile()
	return s
}

func TestFindBestMatchesFiltering(t *testing.T) {
	seeker := compatibleStudent(entity.GenderBoys)

	otherGender := compatibleStudent(entity.GenderGirls)

	inactive := compatibleStudent(entity.GenderBoys)
	inactive.Status = entity.StudentStatusGraduated

	roomed := compatibleStudent(entity.GenderBoys)
	roomId := uuid.New()
	roomed.RoomId = &roomId

	tempRoomed := compatibleStudent(entity.GenderBoys)
	tempId := uuid.New()
	tempRoomed.TemporaryRoomId = &tempId

	eligible := compatibleStudent(entity.GenderBoys)

	matches := FindBestMatches(seeker, []*entity.Student{
		seeker, // self must be excluded
		otherGender,
		inactive,
		roomed,
		tempRoomed,
		eligible,
	}, 50, 10)

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Student.Id != eligible.Id {
		t.Errorf("matched wrong student")
	}
}

func TestFindBestMatchesOrderingAndTruncation(t *testing.T) {
	seeker := compatibleStudent(entity.GenderBoys)

	perfect := compatibleStudent(entity.GenderBoys)

	decent := newStudent(entity.GenderBoys)
	decent.Personality = entity.PersonalityAttributes{
		SleepingHabits:   strPtr("early"),
		StudyPreference:  strPtr("music"),
		CleanlinessLevel: strPtr("high"),
	}

	poor := newStudent(entity.GenderBoys)
	poor.Personality = entity.PersonalityAttributes{
		SleepingHabits: strPtr("late"),
	}

	matches := FindBestMatches(seeker, []*entity.Student{poor, decent, perfect}, 50, 10)

	if len(matches) < 2 {
		t.Fatalf("got %d matches, want at least 2", len(matches))
	}
	if matches[0].Student.Id != perfect.Id {
		t.Errorf("best match should come first")
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches not sorted descending at index %d", i)
		}
	}
	for _, m := range matches {
		if m.Score < 50 {
			t.Errorf("match below minScore leaked through: %d", m.Score)
		}
	}

	truncated := FindBestMatches(seeker, []*entity.Student{poor, decent, perfect}, 0, 1)
	if len(truncated) != 1 {
		t.Errorf("maxResults not honored: got %d", len(truncated))
	}
}

func TestFindBestMatchesStableTies(t *testing.T) {
	seeker := compatibleStudent(entity.GenderBoys)
	first := compatibleStudent(entity.GenderBoys)
	second := compatibleStudent(entity.GenderBoys)

	matches := FindBestMatches(seeker, []*entity.Student{first, second}, 50, 10)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Student.Id != first.Id || matches[1].Student.Id != second.Id {
		t.Errorf("equal scores must keep input order")
	}
}

func TestFormGroupsCapacity(t *testing.T) {
	students := make([]*entity.Student, 0, 6)
	for i := 0; i < 6; i++ {
		students = append(students, compatibleStudent(entity.GenderBoys))
	}

	for _, capacity := range []int{1, 2, 3, 4} {
		groups := FormGroups(students, capacity, 50)
		if len(groups) == 0 {
			t.Fatalf("capacity %d produced no groups", capacity)
		}
		for _, g := range groups {
			if len(g.Students) < 1 || len(g.Students) > capacity {
				t.Errorf("capacity %d: group size %d out of range", capacity, len(g.Students))
			}
		}
	}
}

func TestFormGroupsNoStudentReused(t *testing.T) {
	students := make([]*entity.Student, 0, 5)
	for i := 0; i < 5; i++ {
		students = append(students, compatibleStudent(entity.GenderGirls))
	}

	groups := FormGroups(students, 2, 50)
	seen := make(map[uuid.UUID]bool)
	for _, g := range groups {
		for _, s := range g.Students {
			if seen[s.Id] {
				t.Fatalf("student %s appears in two groups", s.Id)
			}
			seen[s.Id] = true
		}
	}
}

func TestFormGroupsSingletonForSingleRooms(t *testing.T) {
	lone := compatibleStudent(entity.GenderBoys)

	groups := FormGroups([]*entity.Student{lone}, 1, 50)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].AverageScore != 100 {
		t.Errorf("singleton average = %d, want 100", groups[0].AverageScore)
	}

	// With no candidates and a multi-bed room, the lone student stays
	// ungrouped for a later pass.
	groups = FormGroups([]*entity.Student{lone}, 2, 50)
	if len(groups) != 0 {
		t.Errorf("lone student grouped into a double: %d groups", len(groups))
	}
}

func TestFormGroupsRichProfilesSeedFirst(t *testing.T) {
	rich := compatibleStudent(entity.GenderBoys)
	sparse := newStudent(entity.GenderBoys)
	sparse.Personality.SleepingHabits = strPtr("early")
	sparser := newStudent(entity.GenderBoys)

	groups := FormGroups([]*entity.Student{sparser, sparse, rich}, 2, 0)
	if len(groups) == 0 {
		t.Fatal("no groups formed")
	}
	if groups[0].Students[0].Id != rich.Id {
		t.Errorf("richest profile should seed the first group")
	}
}

func TestFormGroupsPairScores(t *testing.T) {
	a := compatibleStudent(entity.GenderBoys)
	b := compatibleStudent(entity.GenderBoys)

	groups := FormGroups([]*entity.Student{a, b}, 2, 50)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	g := groups[0]
	if len(g.Students) != 2 {
		t.Fatalf("group size = %d, want 2", len(g.Students))
	}
	if len(g.PairScores) != 1 {
		t.Errorf("pair scores = %d entries, want 1", len(g.PairScores))
	}
	if g.AverageScore != 100 {
		t.Errorf("average = %d, want 100 for identical profiles", g.AverageScore)
	}
}
