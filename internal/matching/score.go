// FILE: internal/matching/score.go
package matching

import (
	"math"
	"strings"

	"hostel-mgmt-be/internal/constant"
	"hostel-mgmt-be/internal/entity"
)

// Factor weights. The final score is normalized against the sum of the
// weights of the factors actually compared, so two fully matching profiles
// score 100 no matter how many questions they answered.
const (
	weightSleep       = 20
	weightStudy       = 20
	weightCleanliness = 15
	weightNoise       = 15
	weightSociability = 10
	weightAcFan       = 10
	weightCourse      = 5
	weightYear        = 5
)

// CompatibilityScore rates two students in [0, 100]. Structured personality
// attributes take priority; free-form AI preferences are the fallback per
// factor. Students with no overlapping preferences at all get a low base
// score rather than zero so they still surface in suggestions.
func CompatibilityScore(a, b *entity.Student) int {
	score := 0.0
	factors := 0
	maxPossible := 0.0

	pa, pb := a.Personality, b.Personality
	aa, ab := a.AiPrefs, b.AiPrefs

	// Sleeping habits.
	if pa.SleepingHabits != nil && pb.SleepingHabits != nil {
		factors++
		maxPossible += weightSleep
		if *pa.SleepingHabits == *pb.SleepingHabits {
			score += weightSleep
		} else {
			score += 5
		}
	} else if aa.SleepSchedule != nil && ab.SleepSchedule != nil {
		factors++
		maxPossible += weightSleep
		s1 := strings.ToLower(*aa.SleepSchedule)
		s2 := strings.ToLower(*ab.SleepSchedule)
		switch {
		case s1 == s2:
			score += weightSleep
		case (strings.Contains(s1, "early") && strings.Contains(s2, "early")) ||
			(strings.Contains(s1, "late") && strings.Contains(s2, "late")):
			score += 15
		default:
			score += 5
		}
	}

	// Study preference.
	if pa.StudyPreference != nil && pb.StudyPreference != nil {
		factors++
		maxPossible += weightStudy
		if *pa.StudyPreference == *pb.StudyPreference {
			score += weightStudy
		} else {
			score += 8
		}
	} else if aa.StudyHabits != nil && ab.StudyHabits != nil {
		factors++
		maxPossible += weightStudy
		h1 := strings.ToLower(*aa.StudyHabits)
		h2 := strings.ToLower(*ab.StudyHabits)
		switch {
		case h1 == h2:
			score += weightStudy
		case (strings.Contains(h1, "quiet") && strings.Contains(h2, "quiet")) ||
			(strings.Contains(h1, "group") && strings.Contains(h2, "group")):
			score += 15
		default:
			score += 8
		}
	}

	// Cleanliness.
	if pa.CleanlinessLevel != nil && pb.CleanlinessLevel != nil {
		factors++
		maxPossible += weightCleanliness
		diff := absInt(levelIndex(*pa.CleanlinessLevel) - levelIndex(*pb.CleanlinessLevel))
		switch {
		case diff == 0:
			score += weightCleanliness
		case diff == 1:
			score += 10
		default:
			score += 3
		}
	} else if aa.Cleanliness != nil && ab.Cleanliness != nil {
		factors++
		maxPossible += weightCleanliness
		score += scaleScore(absInt(*aa.Cleanliness - *ab.Cleanliness))
	}

	// Noise tolerance.
	if pa.NoiseTolerance != nil && pb.NoiseTolerance != nil {
		factors++
		maxPossible += weightNoise
		if *pa.NoiseTolerance == *pb.NoiseTolerance {
			score += weightNoise
		} else if absInt(levelIndex(*pa.NoiseTolerance)-levelIndex(*pb.NoiseTolerance)) == 1 {
			score += 10
		} else {
			score += 3
		}
	} else if aa.NoiseTolerance != nil && ab.NoiseTolerance != nil {
		factors++
		maxPossible += weightNoise
		score += scaleScore(absInt(*aa.NoiseTolerance - *ab.NoiseTolerance))
	}

	// Sociability / lifestyle.
	if pa.Sociability != nil && pb.Sociability != nil {
		factors++
		maxPossible += weightSociability
		switch {
		case *pa.Sociability == *pb.Sociability:
			score += weightSociability
		case *pa.Sociability == "ambivert" || *pb.Sociability == "ambivert":
			score += 8
		default:
			score += 5
		}
	} else if aa.Lifestyle != nil && ab.Lifestyle != nil {
		factors++
		maxPossible += weightSociability
		score += lifestyleScore(strings.ToLower(*aa.Lifestyle), strings.ToLower(*ab.Lifestyle))
	}

	// AC/fan preference. No free-form fallback exists for this one.
	if pa.AcFanPreference != nil && pb.AcFanPreference != nil {
		factors++
		maxPossible += weightAcFan
		switch {
		case *pa.AcFanPreference == *pb.AcFanPreference:
			score += weightAcFan
		case *pa.AcFanPreference == "both" || *pb.AcFanPreference == "both":
			score += 7
		default:
			score += 2
		}
	}

	// Course and year similarity are bonuses on top, not counted as factors.
	if a.Course != "" && b.Course != "" && a.Course == b.Course {
		score += weightCourse
	}
	if a.Year != 0 && b.Year != 0 && a.Year == b.Year {
		score += weightYear
	}

	if factors == 0 {
		return constant.BaseScoreNoPrefs
	}
	normalized := int(math.Round(score / maxPossible * 100))
	if normalized > 100 {
		return 100
	}
	return normalized
}

// scaleScore maps a distance on a 1..10 numeric scale onto factor points.
func scaleScore(diff int) float64 {
	switch {
	case diff == 0:
		return 15
	case diff <= 2:
		return 12
	case diff <= 4:
		return 8
	default:
		return 3
	}
}

var quietTerms = []string{"quiet", "reserved", "introvert"}
var socialTerms = []string{"social", "outgoing", "extrovert", "party"}
var balancedTerms = []string{"balanced", "ambivert", "moderate"}

func lifestyleScore(l1, l2 string) float64 {
	if l1 == l2 {
		return weightSociability
	}
	containsAny := func(s string, terms []string) bool {
		for _, t := range terms {
			if strings.Contains(s, t) {
				return true
			}
		}
		return false
	}
	switch {
	case (containsAny(l1, quietTerms) && containsAny(l2, quietTerms)) ||
		(containsAny(l1, socialTerms) && containsAny(l2, socialTerms)):
		return 8
	case containsAny(l1, balancedTerms) || containsAny(l2, balancedTerms):
		return 7
	default:
		return 5
	}
}

// levelIndex orders the low/medium/high scale; unknown values map to -1 just
// like a missing array entry would.
func levelIndex(level string) int {
	switch level {
	case "low":
		return 0
	case "medium":
		return 1
	case "high":
		return 2
	default:
		return -1
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
