package matching

import (
	"testing"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/entity"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func fullProfile() entity.PersonalityAttributes {
	return entity.PersonalityAttributes{
		SleepingHabits:   strPtr("early"),
		StudyPreference:  strPtr("quiet"),
		CleanlinessLevel: strPtr("high"),
		Sociability:      strPtr("introvert"),
		AcFanPreference:  strPtr("ac"),
		NoiseTolerance:   strPtr("low"),
	}
}

func newStudent(gender entity.Gender) *entity.Student {
	return &entity.Student{
		Id:     uuid.New(),
		Gender: gender,
		Status: entity.StudentStatusActive,
	}
}

func TestCompatibilityScoreIdenticalProfiles(t *testing.T) {
	a := newStudent(entity.GenderBoys)
	b := newStudent(entity.GenderBoys)
	a.Personality = fullProfile()
	b.Personality = fullProfile()
	a.Course, b.Course = "CSE", "CSE"
	a.Year, b.Year = 2, 2

	if got := CompatibilityScore(a, b); got != 100 {
		t.Errorf("identical profiles with same course/year: score = %d, want 100", got)
	}
}

func TestCompatibilityScoreNoPreferences(t *testing.T) {
	a := newStudent(entity.GenderBoys)
	b := newStudent(entity.GenderBoys)

	if got := CompatibilityScore(a, b); got != 30 {
		t.Errorf("no preferences: score = %d, want base 30", got)
	}
}

func TestCompatibilityScoreBounds(t *testing.T) {
	tests := []struct {
		name string
		a, b func() *entity.Student
	}{
		{
			name: "opposite personalities",
			a: func() *entity.Student {
				s := newStudent(entity.GenderBoys)
				s.Personality = fullProfile()
				return s
			},
			b: func() *entity.Student {
				s := newStudent(entity.GenderBoys)
				s.Personality = entity.PersonalityAttributes{
					SleepingHabits:   strPtr("late"),
					StudyPreference:  strPtr("music"),
					CleanlinessLevel: strPtr("low"),
					Sociability:      strPtr("extrovert"),
					AcFanPreference:  strPtr("fan"),
					NoiseTolerance:   strPtr("high"),
				}
				return s
			},
		},
		{
			name: "ai preferences only",
			a: func() *entity.Student {
				s := newStudent(entity.GenderGirls)
				s.AiPrefs = entity.AiPreferences{
					SleepSchedule:  strPtr("early riser"),
					Cleanliness:    intPtr(9),
					NoiseTolerance: intPtr(2),
					Lifestyle:      strPtr("quiet and reserved"),
				}
				return s
			},
			b: func() *entity.Student {
				s := newStudent(entity.GenderGirls)
				s.AiPrefs = entity.AiPreferences{
					SleepSchedule:  strPtr("late night owl"),
					Cleanliness:    intPtr(3),
					NoiseTolerance: intPtr(8),
					Lifestyle:      strPtr("party animal"),
				}
				return s
			},
		},
		{
			name: "mixed schemes",
			a: func() *entity.Student {
				s := newStudent(entity.GenderBoys)
				s.Personality = entity.PersonalityAttributes{SleepingHabits: strPtr("early")}
				s.AiPrefs = entity.AiPreferences{Cleanliness: intPtr(5)}
				return s
			},
			b: func() *entity.Student {
				s := newStudent(entity.GenderBoys)
				s.Personality = fullProfile()
				s.AiPrefs = entity.AiPreferences{Cleanliness: intPtr(5)}
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a(), tt.b()
			got := CompatibilityScore(a, b)
			if got < 0 || got > 100 {
				t.Errorf("score = %d, want within [0, 100]", got)
			}
		})
	}
}

func TestCompatibilityScoreSymmetry(t *testing.T) {
	a := newStudent(entity.GenderBoys)
	a.Personality = entity.PersonalityAttributes{
		SleepingHabits:   strPtr("early"),
		CleanlinessLevel: strPtr("medium"),
		Sociability:      strPtr("ambivert"),
	}
	a.AiPrefs = entity.AiPreferences{NoiseTolerance: intPtr(4), StudyHabits: strPtr("quiet solo study")}

	b := newStudent(entity.GenderBoys)
	b.Personality = entity.PersonalityAttributes{
		SleepingHabits:   strPtr("late"),
		CleanlinessLevel: strPtr("high"),
		Sociability:      strPtr("extrovert"),
	}
	b.AiPrefs = entity.AiPreferences{NoiseTolerance: intPtr(7), StudyHabits: strPtr("group study")}

	ab := CompatibilityScore(a, b)
	ba := CompatibilityScore(b, a)
	if diff := absInt(ab - ba); diff > 1 {
		t.Errorf("score(a,b)=%d score(b,a)=%d, want difference <= 1", ab, ba)
	}
}

func TestCompatibilityScoreCategoricalPriority(t *testing.T) {
	// Both schemes present: the categorical fields must decide the factor,
	// so the contradictory numeric values change nothing.
	a := newStudent(entity.GenderBoys)
	b := newStudent(entity.GenderBoys)
	a.Personality.CleanlinessLevel = strPtr("high")
	b.Personality.CleanlinessLevel = strPtr("high")
	a.AiPrefs.Cleanliness = intPtr(1)
	b.AiPrefs.Cleanliness = intPtr(10)

	if got := CompatibilityScore(a, b); got != 100 {
		t.Errorf("matching categorical with clashing numeric fallback: score = %d, want 100", got)
	}
}

func TestCompatibilityScoreAiFallbackTiers(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 string
		want   int
	}{
		{"exact sleep schedule", "early bird", "early bird", 100},
		{"both early variants", "early riser", "wakes early", 75},
		{"opposite schedules", "early riser", "late night", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newStudent(entity.GenderBoys)
			b := newStudent(entity.GenderBoys)
			a.AiPrefs.SleepSchedule = strPtr(tt.s1)
			b.AiPrefs.SleepSchedule = strPtr(tt.s2)
			if got := CompatibilityScore(a, b); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompatibilityScoreCourseYearBonus(t *testing.T) {
	a := newStudent(entity.GenderBoys)
	b := newStudent(entity.GenderBoys)
	a.Personality.SleepingHabits = strPtr("early")
	b.Personality.SleepingHabits = strPtr("late")

	base := CompatibilityScore(a, b)

	a.Course, b.Course = "ECE", "ECE"
	a.Year, b.Year = 3, 3
	boosted := CompatibilityScore(a, b)

	if boosted <= base {
		t.Errorf("course/year bonus did not raise score: base=%d boosted=%d", base, boosted)
	}
}
