// FILE: internal/matching/room_type.go
package matching

import (
	"github.com/google/uuid"

	"hostel-mgmt-be/internal/entity"
)

// RoomTypeMatches is the roommate lineup proposed for one room type: the
// student's own picks first, algorithmic suggestions filling the rest.
// Required is the room capacity minus the seeking student's own bed.
type RoomTypeMatches struct {
	RoomType  entity.RoomType
	Required  int
	Preferred []Match
	Suggested []Match
}

func (r RoomTypeMatches) Total() int {
	return len(r.Preferred) + len(r.Suggested)
}

// FindRoomTypeAwareMatches fills the seats of a room of the given type around
// student. Eligible candidates named in student.PreferredRoommateIds take
// seats first, in the candidate order, capped at the seat count. Whatever
// seats remain are filled by FindBestMatches over the rest of the pool. A
// Single room needs no roommates and yields an empty lineup.
func FindRoomTypeAwareMatches(student *entity.Student, candidates []*entity.Student, roomType entity.RoomType, minScore int) RoomTypeMatches {
	res := RoomTypeMatches{
		RoomType: roomType,
		Required: roomType.Capacity() - 1,
	}
	if res.Required <= 0 {
		return res
	}

	wanted := make(map[uuid.UUID]bool, len(student.PreferredRoommateIds))
	for _, id := range student.PreferredRoommateIds {
		wanted[id] = true
	}

	taken := make(map[uuid.UUID]bool, res.Required)
	for _, candidate := range candidates {
		if len(res.Preferred) == res.Required {
			break
		}
		if !wanted[candidate.Id] || !Eligible(student, candidate) {
			continue
		}
		res.Preferred = append(res.Preferred, Match{
			Student: candidate,
			Score:   CompatibilityScore(student, candidate),
		})
		taken[candidate.Id] = true
	}

	remaining := res.Required - len(res.Preferred)
	if remaining == 0 {
		return res
	}

	rest := make([]*entity.Student, 0, len(candidates))
	for _, candidate := range candidates {
		if !taken[candidate.Id] {
			rest = append(rest, candidate)
		}
	}
	res.Suggested = FindBestMatches(student, rest, minScore, remaining)
	return res
}
