// FILE: internal/entity/room_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type RoomType string
type RoomStatus string
type MaintenanceStatus string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeTriple RoomType = "Triple"
	RoomTypeQuad   RoomType = "Quad"

	RoomStatusAvailable RoomStatus = "available"
	RoomStatusOccupied  RoomStatus = "occupied"
	RoomStatusReserved  RoomStatus = "reserved"
	RoomStatusBlocked   RoomStatus = "blocked"

	MaintenanceNone     MaintenanceStatus = "none"
	MaintenanceUnderway MaintenanceStatus = "under_maintenance"
	MaintenanceBlocked  MaintenanceStatus = "blocked"
)

// Capacity returns the number of beds implied by the room type.
func (t RoomType) Capacity() int {
	switch t {
	case RoomTypeSingle:
		return 1
	case RoomTypeDouble:
		return 2
	case RoomTypeTriple:
		return 3
	case RoomTypeQuad:
		return 4
	default:
		return 1
	}
}

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeTriple, RoomTypeQuad:
		return true
	}
	return false
}

// RoomTypeForCapacity is the inverse of Capacity; zero value for unknown sizes.
func RoomTypeForCapacity(capacity int) RoomType {
	switch capacity {
	case 1:
		return RoomTypeSingle
	case 2:
		return RoomTypeDouble
	case 3:
		return RoomTypeTriple
	case 4:
		return RoomTypeQuad
	default:
		return ""
	}
}

type Room struct {
	Id         uuid.UUID
	RoomNumber string
	Block      string
	Floor      int
	RoomType   RoomType
	Gender     Gender
	Capacity   int

	// Prices are yearly and PER STUDENT: each occupant of a Double pays the
	// full TotalPrice, it is not split.
	BasePrice      float64
	AmenitiesPrice float64
	TotalPrice     float64

	// CurrentOccupancy is a denormalized counter kept for display. Allocation
	// decisions must use live counts from the student collection instead.
	CurrentOccupancy int

	Status            RoomStatus
	MaintenanceStatus MaintenanceStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Selectable reports whether the room can be picked for a new allocation.
func (r *Room) Selectable() bool {
	if r.Status != RoomStatusAvailable && r.Status != RoomStatusReserved {
		return false
	}
	return r.MaintenanceStatus == MaintenanceNone
}

// UnderMaintenance covers both the maintenance and blocked states.
func (r *Room) UnderMaintenance() bool {
	return r.MaintenanceStatus == MaintenanceUnderway || r.MaintenanceStatus == MaintenanceBlocked
}

// Occupancy is the live occupant picture of a room, derived by counting
// students that reference it, never from the cached counter.
type Occupancy struct {
	RoomId    uuid.UUID
	Confirmed int // students with RoomId set to this room
	Temporary int // students with TemporaryRoomId set (payment pending)
}

func (o Occupancy) Total() int {
	return o.Confirmed + o.Temporary
}

func (o Occupancy) AvailableSlots(capacity int) int {
	slots := capacity - o.Total()
	if slots < 0 {
		return 0
	}
	return slots
}
