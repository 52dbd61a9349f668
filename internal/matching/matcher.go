// FILE: internal/matching/matcher.go
package matching

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/entity"
)

// Match pairs a candidate with the score against the seeking student.
type Match struct {
	Student *entity.Student
	Score   int
}

// Group is a proposed set of roommates with its pairwise score breakdown.
type Group struct {
	Students     []*entity.Student
	AverageScore int
	PairScores   map[string]int // "id1-id2" keys
}

// Eligible reports whether candidate can be matched with student at all:
// same gender, active, and not already holding a room.
func Eligible(student, candidate *entity.Student) bool {
	if candidate.Id == student.Id {
		return false
	}
	if candidate.Gender != student.Gender {
		return false
	}
	if !candidate.IsActive() {
		return false
	}
	return !candidate.HasRoom()
}

// FindBestMatches scores every eligible candidate and returns the top
// maxResults with score >= minScore, best first. The sort is stable so equal
// scores keep the caller's candidate order.
func FindBestMatches(student *entity.Student, candidates []*entity.Student, minScore, maxResults int) []Match {
	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		if !Eligible(student, candidate) {
			continue
		}
		score := CompatibilityScore(student, candidate)
		if score < minScore || score > 100 {
			continue
		}
		matches = append(matches, Match{Student: candidate, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// FormGroups greedily partitions students into room-sized groups. Students
// with richer preference profiles seed groups first since they score more
// reliably. Students left over without a qualifying group are simply not
// grouped; the caller decides what to do with them.
func FormGroups(students []*entity.Student, roomCapacity, minGroupScore int) []Group {
	sorted := make([]*entity.Student, len(students))
	copy(sorted, students)
	sort.SliceStable(sorted, func(i, j int) bool {
		return preferenceRichness(sorted[i]) > preferenceRichness(sorted[j])
	})

	groups := make([]Group, 0)
	used := make(map[uuid.UUID]bool, len(sorted))

	for _, seed := range sorted {
		if used[seed.Id] {
			continue
		}
		members := []*entity.Student{seed}
		used[seed.Id] = true

		candidates := make([]*entity.Student, 0, len(sorted))
		for _, s := range sorted {
			if !used[s.Id] && Eligible(seed, s) {
				candidates = append(candidates, s)
			}
		}

		if len(candidates) == 0 {
			// A lone student only forms a group when the room holds one.
			if roomCapacity == 1 {
				groups = append(groups, Group{
					Students:     members,
					AverageScore: 100,
					PairScores:   map[string]int{},
				})
			}
			continue
		}

		for _, match := range FindBestMatches(seed, candidates, minGroupScore, roomCapacity-1) {
			if len(members) >= roomCapacity {
				break
			}
			members = append(members, match.Student)
			used[match.Student.Id] = true
		}

		total, pairs := 0, 0
		pairScores := make(map[string]int)
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				s := CompatibilityScore(members[i], members[j])
				total += s
				pairs++
				pairScores[fmt.Sprintf("%s-%s", members[i].Id, members[j].Id)] = s
			}
		}
		average := 100.0
		if pairs > 0 {
			average = float64(total) / float64(pairs)
		}

		if (average >= float64(minGroupScore) && average <= 100) || len(members) == 1 {
			groups = append(groups, Group{
				Students:     members,
				AverageScore: roundScore(average),
				PairScores:   pairScores,
			})
		}
	}

	return groups
}

// preferenceRichness counts how many preference fields a student answered.
func preferenceRichness(s *entity.Student) int {
	n := 0
	p := s.Personality
	for _, f := range []*string{p.SleepingHabits, p.StudyPreference, p.CleanlinessLevel, p.Sociability, p.AcFanPreference, p.NoiseTolerance} {
		if f != nil {
			n++
		}
	}
	a := s.AiPrefs
	for _, f := range []*string{a.SleepSchedule, a.StudyHabits, a.Lifestyle} {
		if f != nil {
			n++
		}
	}
	for _, f := range []*int{a.Cleanliness, a.NoiseTolerance} {
		if f != nil {
			n++
		}
	}
	return n
}

func roundScore(v float64) int {
	return int(v + 0.5)
}
