// FILE: internal/entity/roommate_group_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
)

type GroupStatus string
type FormationMethod string

const (
	GroupStatusPending        GroupStatus = "pending"
	GroupStatusConfirmed      GroupStatus = "confirmed"
	GroupStatusRoomSelected   GroupStatus = "room_selected"
	GroupStatusPaymentPending GroupStatus = "payment_pending"
	GroupStatusCancelled      GroupStatus = "cancelled"

	FormationManual    FormationMethod = "manual"
	FormationAiMatched FormationMethod = "ai_matched"
	FormationMixed     FormationMethod = "mixed"
)

// ActiveGroupStatuses are the states in which a group claims its members: a
// student in a group with one of these statuses cannot join another group.
var ActiveGroupStatuses = []GroupStatus{
	GroupStatusPending,
	GroupStatusConfirmed,
	GroupStatusRoomSelected,
	GroupStatusPaymentPending,
}

// RoommateGroup is a set of students jointly selecting one shared room. The
// creator is the leader and the only member allowed to select the room.
type RoommateGroup struct {
	Id          uuid.UUID
	MemberIds   []uuid.UUID
	CreatedById uuid.UUID
	Status      GroupStatus
	RoomType    RoomType

	SelectedRoomId     *uuid.UUID
	RoomSelectedAt     *time.Time
	PaymentConfirmedAt *time.Time

	CancellationReason string
	FormationMethod    FormationMethod
	MatchScore         *int // average pairwise compatibility, when AI formed

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRoommateGroup creates a pending group with the founder as sole member.
func NewRoommateGroup(founder uuid.UUID, roomType RoomType, method FormationMethod) *RoommateGroup {
	return &RoommateGroup{
		Id:              uuid.New(),
		MemberIds:       []uuid.UUID{founder},
		CreatedById:     founder,
		Status:          GroupStatusPending,
		RoomType:        roomType,
		FormationMethod: method,
	}
}

func (g *RoommateGroup) Size() int {
	return len(g.MemberIds)
}

func (g *RoommateGroup) IsMember(studentId uuid.UUID) bool {
	for _, id := range g.MemberIds {
		if id == studentId {
			return true
		}
	}
	return false
}

func (g *RoommateGroup) IsLeader(studentId uuid.UUID) bool {
	return g.CreatedById == studentId
}

func (g *RoommateGroup) IsActive() bool {
	switch g.Status {
	case GroupStatusPending, GroupStatusConfirmed, GroupStatusRoomSelected, GroupStatusPaymentPending:
		return true
	}
	return false
}

// EnsureCreatorMembership re-adds the creator to the member list if an older
// record violates the invariant. Returns true when a heal was applied.
func (g *RoommateGroup) EnsureCreatorMembership() bool {
	if g.IsMember(g.CreatedById) {
		return false
	}
	g.MemberIds = append(g.MemberIds, g.CreatedById)
	return true
}

// AddMember appends a student; only legal while the group is still pending.
func (g *RoommateGroup) AddMember(studentId uuid.UUID) error {
	if g.Status != GroupStatusPending {
		return apperror.InvalidTransition("cannot add members to a %s group", g.Status)
	}
	if g.IsMember(studentId) {
		return apperror.New(apperror.CodeDuplicateMember, "student is already a member of this group")
	}
	g.MemberIds = append(g.MemberIds, studentId)
	return nil
}

// Confirm moves pending → confirmed once the invitee(s) accepted.
func (g *RoommateGroup) Confirm() error {
	if g.Status != GroupStatusPending {
		return apperror.InvalidTransition("group is not pending, current status %s", g.Status)
	}
	g.Status = GroupStatusConfirmed
	return nil
}

// MarkRoomSelected records the leader's room choice. The caller is expected to
// have run the full validation ladder (leader, capacity, gender, live
// availability); this only guards the state machine itself.
func (g *RoommateGroup) MarkRoomSelected(roomId uuid.UUID, at time.Time) error {
	if g.Status != GroupStatusConfirmed {
		return apperror.InvalidTransition("group must be confirmed before selecting a room, current status %s", g.Status)
	}
	if g.SelectedRoomId != nil {
		return apperror.New(apperror.CodeAlreadySelected, "room already selected for this group")
	}
	g.SelectedRoomId = &roomId
	g.Status = GroupStatusRoomSelected
	g.RoomSelectedAt = &at
	return nil
}

// ClearRoomSelection is the compensating rollback: drop the selection and
// return to confirmed so the leader can retry.
func (g *RoommateGroup) ClearRoomSelection() {
	g.SelectedRoomId = nil
	g.RoomSelectedAt = nil
	g.Status = GroupStatusConfirmed
}

// Cancel is idempotent and reachable only before a room is locked in.
func (g *RoommateGroup) Cancel(reason string) error {
	if g.Status == GroupStatusCancelled {
		return nil
	}
	if g.Status != GroupStatusPending && g.Status != GroupStatusConfirmed {
		return apperror.InvalidTransition("cannot cancel a group in status %s", g.Status)
	}
	g.Status = GroupStatusCancelled
	if reason == "" {
		reason = "Group cancelled"
	}
	g.CancellationReason = reason
	g.SelectedRoomId = nil
	g.RoomSelectedAt = nil
	return nil
}

// Finalize records that every member's payment cleared.
func (g *RoommateGroup) Finalize(at time.Time) {
	g.Status = GroupStatusConfirmed
	g.PaymentConfirmedAt = &at
}
