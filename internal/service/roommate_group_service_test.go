package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/repository/memory"
)

type groupServiceHarness struct {
	students *stubStudentRepo
	rooms    *stubRoomRepo
	groups   *stubGroupRepo
	requests *stubRequestRepo
	queue    *stubQueuePublisher
	svc      IRoommateGroupService
}

func newGroupServiceHarness() *groupServiceHarness {
	h := &groupServiceHarness{
		students: &stubStudentRepo{},
		rooms:    &stubRoomRepo{},
		groups:   &stubGroupRepo{},
		requests: &stubRequestRepo{},
		queue:    &stubQueuePublisher{},
	}
	uow := &stubUnitOfWork{
		students: h.students,
		rooms:    h.rooms,
		groups:   h.groups,
		requests: h.requests,
	}
	h.svc = NewRoommateGroupService(&stubFactory{uow: uow}, h.queue, nil, memory.NewSuggestionCache(), nopLogger{})
	return h
}

// confirmedGroup seeds a confirmed group claiming every given student, with
// the first one as leader.
func (h *groupServiceHarness) confirmedGroup(roomType entity.RoomType, members ...*entity.Student) *entity.RoommateGroup {
	group := entity.NewRoommateGroup(members[0].Id, roomType, entity.FormationManual)
	for _, m := range members[1:] {
		group.MemberIds = append(group.MemberIds, m.Id)
	}
	group.Status = entity.GroupStatusConfirmed
	h.groups.add(group)
	for _, m := range members {
		m.RoommateGroupId = &group.Id
	}
	return group
}

func TestSelectRoomLeaderOnly(t *testing.T) {
	h := newGroupServiceHarness()
	leader := activeStudent("Arun", entity.GenderBoys)
	mate := activeStudent("Vikram", entity.GenderBoys)
	h.students.add(leader, mate)
	group := h.confirmedGroup(entity.RoomTypeDouble, leader, mate)

	room := availableRoom(entity.RoomTypeDouble, entity.GenderBoys)
	h.rooms.add(room)

	_, err := h.svc.SelectRoom(context.Background(), mate.Id, &dto.SelectRoomRequest{RoomId: room.Id})
	if !apperror.Is(err, apperror.CodeForbidden) {
		t.Fatalf("non-leader selection error = %v, want FORBIDDEN", err)
	}
	if group.Status != entity.GroupStatusConfirmed {
		t.Fatalf("rejected selection moved the group to %s", group.Status)
	}
	if mate.TemporaryRoomId != nil {
		t.Errorf("rejected selection put a hold on the room")
	}

	res, err := h.svc.SelectRoom(context.Background(), leader.Id, &dto.SelectRoomRequest{RoomId: room.Id})
	if err != nil {
		t.Fatalf("leader selection failed: %v", err)
	}
	if res.Status != string(entity.GroupStatusRoomSelected) {
		t.Errorf("group status = %s, want %s", res.Status, entity.GroupStatusRoomSelected)
	}
	for _, m := range []*entity.Student{leader, mate} {
		if m.TemporaryRoomId == nil || *m.TemporaryRoomId != room.Id {
			t.Errorf("member %s not holding the room", m.Name)
		}
		if m.PaymentState != entity.PaymentStatePending {
			t.Errorf("member %s payment state = %s, want %s", m.Name, m.PaymentState, entity.PaymentStatePending)
		}
		if m.AmountToPay != room.TotalPrice {
			t.Errorf("member %s owes %.0f, want %.0f", m.Name, m.AmountToPay, room.TotalPrice)
		}
	}
	if len(h.queue.payloads) != 1 {
		t.Errorf("fee generation queued %d times, want 1", len(h.queue.payloads))
	}
}

func TestFinalizeWaitsForEveryMemberPayment(t *testing.T) {
	h := newGroupServiceHarness()
	room := availableRoom(entity.RoomTypeTriple, entity.GenderBoys)
	h.rooms.add(room)

	a := activeStudent("Arun", entity.GenderBoys)
	b := activeStudent("Vikram", entity.GenderBoys)
	c := activeStudent("Rahul", entity.GenderBoys)
	h.students.add(a, b, c)

	group := h.confirmedGroup(entity.RoomTypeTriple, a, b, c)
	now := time.Now()
	if err := group.MarkRoomSelected(room.Id, now); err != nil {
		t.Fatalf("seeding room selection: %v", err)
	}

	// Two of three payments cleared.
	for _, m := range []*entity.Student{a, b} {
		m.RoomId = &room.Id
		m.PaymentState = entity.PaymentStatePaid
	}
	c.TemporaryRoomId = &room.Id
	c.PaymentState = entity.PaymentStatePending

	done, err := h.svc.FinalizeIfAllPaid(context.Background(), group.Id)
	if err != nil {
		t.Fatalf("partial payment check failed: %v", err)
	}
	if done {
		t.Fatal("group finalized with an unpaid member")
	}
	if group.Status != entity.GroupStatusRoomSelected || group.PaymentConfirmedAt != nil {
		t.Fatalf("partial payment mutated the group: status %s", group.Status)
	}
	if room.Status != entity.RoomStatusAvailable {
		t.Errorf("room marked %s before all payments cleared", room.Status)
	}

	// The last payment clears.
	c.RoomId = &room.Id
	c.TemporaryRoomId = nil
	c.PaymentState = entity.PaymentStatePaid

	done, err = h.svc.FinalizeIfAllPaid(context.Background(), group.Id)
	if err != nil {
		t.Fatalf("final payment check failed: %v", err)
	}
	if !done {
		t.Fatal("fully paid group not finalized")
	}
	if group.PaymentConfirmedAt == nil {
		t.Error("payment confirmation time not recorded")
	}
	if room.CurrentOccupancy != 3 {
		t.Errorf("room occupancy = %d, want 3", room.CurrentOccupancy)
	}
	if room.Status != entity.RoomStatusOccupied {
		t.Errorf("full room status = %s, want %s", room.Status, entity.RoomStatusOccupied)
	}
}

func TestRoomHoldersCannotFormOrJoinGroups(t *testing.T) {
	h := newGroupServiceHarness()
	requester := activeStudent("Arun", entity.GenderBoys)
	roomed := activeStudent("Vikram", entity.GenderBoys)
	roomId := uuid.New()
	roomed.RoomId = &roomId
	h.students.add(requester, roomed)

	_, err := h.svc.SendRequest(context.Background(), requester.Id, &dto.SendRoommateRequestRequest{
		TargetStudentId: roomed.Id,
		RoomType:        "Double",
	})
	if !apperror.Is(err, apperror.CodeBadRequest) {
		t.Fatalf("request to a roomed student error = %v, want BAD_REQUEST", err)
	}

	// A target who gains a room between invite and accept is rejected at
	// accept time.
	free := activeStudent("Rahul", entity.GenderBoys)
	h.students.add(free)
	sent, err := h.svc.SendRequest(context.Background(), requester.Id, &dto.SendRoommateRequestRequest{
		TargetStudentId: free.Id,
		RoomType:        "Double",
	})
	if err != nil {
		t.Fatalf("request to a free student failed: %v", err)
	}

	confirmedRoom := uuid.New()
	free.RoomId = &confirmedRoom

	_, err = h.svc.RespondToRequest(context.Background(), free.Id, sent.Id, &dto.RespondRoommateRequestRequest{Accept: true})
	if !apperror.Is(err, apperror.CodeBadRequest) {
		t.Fatalf("accept with a room held error = %v, want BAD_REQUEST", err)
	}
	if group := h.groups.byId(sent.GroupId); group.Status != entity.GroupStatusPending {
		t.Errorf("blocked accept moved the group to %s", group.Status)
	}
}

func TestCancelGroupVoidsPendingInvitations(t *testing.T) {
	h := newGroupServiceHarness()
	leader := activeStudent("Arun", entity.GenderBoys)
	invitee := activeStudent("Vikram", entity.GenderBoys)
	h.students.add(leader, invitee)

	sent, err := h.svc.SendRequest(context.Background(), leader.Id, &dto.SendRoommateRequestRequest{
		TargetStudentId: invitee.Id,
		RoomType:        "Double",
	})
	if err != nil {
		t.Fatalf("sending request failed: %v", err)
	}

	if err := h.svc.CancelGroup(context.Background(), leader.Id, &dto.CancelGroupRequest{Reason: "changed plans"}); err != nil {
		t.Fatalf("cancelling group failed: %v", err)
	}

	request := h.requests.byId(sent.Id)
	if request.Status != entity.RoommateRequestCancelled {
		t.Fatalf("invitation status = %s, want %s", request.Status, entity.RoommateRequestCancelled)
	}
	if leader.RoommateGroupId != nil {
		t.Errorf("leader still attached to the cancelled group")
	}

	// The stale invitation can no longer revive the group.
	_, err = h.svc.RespondToRequest(context.Background(), invitee.Id, sent.Id, &dto.RespondRoommateRequestRequest{Accept: true})
	if !apperror.Is(err, apperror.CodeInvalidTransition) {
		t.Fatalf("accept of a cancelled invitation error = %v, want INVALID_TRANSITION", err)
	}
	if group := h.groups.byId(sent.GroupId); group.Status != entity.GroupStatusCancelled {
		t.Errorf("stale accept revived the group: status %s", group.Status)
	}
}
