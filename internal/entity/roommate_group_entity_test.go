package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
)

func TestGroupLifecycleHappyPath(t *testing.T) {
	founder := uuid.New()
	invitee := uuid.New()
	g := NewRoommateGroup(founder, RoomTypeDouble, FormationManual)

	if g.Status != GroupStatusPending {
		t.Fatalf("new group status = %s, want pending", g.Status)
	}
	if !g.IsLeader(founder) || !g.IsMember(founder) {
		t.Fatal("founder must be leader and member")
	}

	if err := g.AddMember(invitee); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if g.Size() != 2 {
		t.Fatalf("Size = %d, want 2", g.Size())
	}
	if err := g.Confirm(); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	roomId := uuid.New()
	now := time.Now()
	if err := g.MarkRoomSelected(roomId, now); err != nil {
		t.Fatalf("MarkRoomSelected: %v", err)
	}
	if g.Status != GroupStatusRoomSelected || g.SelectedRoomId == nil || *g.SelectedRoomId != roomId {
		t.Fatalf("room selection not recorded: status=%s", g.Status)
	}

	g.Finalize(now)
	if g.Status != GroupStatusConfirmed || g.PaymentConfirmedAt == nil {
		t.Fatalf("Finalize: status=%s, confirmedAt=%v", g.Status, g.PaymentConfirmedAt)
	}
}

func TestGroupAddMemberRules(t *testing.T) {
	founder := uuid.New()
	invitee := uuid.New()
	g := NewRoommateGroup(founder, RoomTypeDouble, FormationManual)

	if err := g.AddMember(founder); !apperror.Is(err, apperror.CodeDuplicateMember) {
		t.Errorf("adding founder twice: err = %v, want DUPLICATE_MEMBER", err)
	}

	if err := g.AddMember(invitee); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if err := g.Confirm(); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if err := g.AddMember(uuid.New()); !apperror.Is(err, apperror.CodeInvalidTransition) {
		t.Errorf("adding member to confirmed group: err = %v, want INVALID_TRANSITION", err)
	}
}

func TestGroupMarkRoomSelectedGuards(t *testing.T) {
	g := NewRoommateGroup(uuid.New(), RoomTypeDouble, FormationManual)
	now := time.Now()

	if err := g.MarkRoomSelected(uuid.New(), now); !apperror.Is(err, apperror.CodeInvalidTransition) {
		t.Errorf("selecting room while pending: err = %v, want INVALID_TRANSITION", err)
	}

	if err := g.Confirm(); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if err := g.MarkRoomSelected(uuid.New(), now); err != nil {
		t.Fatalf("MarkRoomSelected: %v", err)
	}
	g.ClearRoomSelection()
	if g.Status != GroupStatusConfirmed || g.SelectedRoomId != nil {
		t.Fatalf("ClearRoomSelection did not reset: status=%s", g.Status)
	}

	// Selecting again after the rollback must work.
	if err := g.MarkRoomSelected(uuid.New(), now); err != nil {
		t.Fatalf("reselect after rollback: %v", err)
	}
	if err := g.MarkRoomSelected(uuid.New(), now); !apperror.Is(err, apperror.CodeInvalidTransition) && !apperror.Is(err, apperror.CodeAlreadySelected) {
		t.Errorf("double selection: err = %v, want state error", err)
	}
}

func TestGroupCancelRules(t *testing.T) {
	g := NewRoommateGroup(uuid.New(), RoomTypeDouble, FormationManual)

	if err := g.Cancel(""); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if g.Status != GroupStatusCancelled || g.CancellationReason == "" {
		t.Fatalf("cancel not recorded: status=%s reason=%q", g.Status, g.CancellationReason)
	}
	// Idempotent.
	if err := g.Cancel("again"); err != nil {
		t.Errorf("second Cancel: %v", err)
	}

	locked := NewRoommateGroup(uuid.New(), RoomTypeDouble, FormationManual)
	if err := locked.Confirm(); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if err := locked.MarkRoomSelected(uuid.New(), time.Now()); err != nil {
		t.Fatalf("MarkRoomSelected: %v", err)
	}
	if err := locked.Cancel("too late"); !apperror.Is(err, apperror.CodeInvalidTransition) {
		t.Errorf("cancel after room lock: err = %v, want INVALID_TRANSITION", err)
	}
}

func TestGroupEnsureCreatorMembership(t *testing.T) {
	g := NewRoommateGroup(uuid.New(), RoomTypeDouble, FormationManual)
	if g.EnsureCreatorMembership() {
		t.Error("heal reported on a consistent group")
	}

	g.MemberIds = nil
	if !g.EnsureCreatorMembership() {
		t.Error("heal not applied to a broken group")
	}
	if !g.IsMember(g.CreatedById) {
		t.Error("creator still missing after heal")
	}
}
