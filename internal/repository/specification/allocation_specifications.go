package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByStatusIn filters records whose status is one of the given values.
type ByStatusIn struct {
	Statuses []string
}

func (s ByStatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

// GroupMemberContains matches roommate groups whose jsonb member list holds
// the given student.
type GroupMemberContains struct {
	StudentId uuid.UUID
}

func (s GroupMemberContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("member_ids @> ?", fmt.Sprintf(`["%s"]`, s.StudentId))
}

// ByConfirmedRoom matches students whose confirmed room is the given one.
type ByConfirmedRoom struct {
	RoomId uuid.UUID
}

func (s ByConfirmedRoom) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("room_id = ?", s.RoomId)
}

// ByTemporaryRoom matches students holding the room pending payment.
type ByTemporaryRoom struct {
	RoomId uuid.UUID
}

func (s ByTemporaryRoom) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("temporary_room_id = ?", s.RoomId)
}

// Unassigned matches students holding no room reference at all, the pool
// eligible for matching.
type Unassigned struct{}

func (s Unassigned) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("room_id IS NULL AND temporary_room_id IS NULL")
}

// OutstandingFees matches fees still owed.
type OutstandingFees struct{}

func (s OutstandingFees) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", []string{"pending", "overdue"})
}
