package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
)

func newChangeRequest(status RoomChangeStatus, additional float64) *RoomChangeRequest {
	return &RoomChangeRequest{
		Id:              uuid.New(),
		StudentId:       uuid.New(),
		CurrentRoomId:   uuid.New(),
		RequestedRoomId: uuid.New(),
		Status:          status,
		Adjustment:      PriceAdjustment{AdditionalPayment: additional},
	}
}

func TestRoomChangeApproveGatedOnPayment(t *testing.T) {
	admin := uuid.New()
	now := time.Now()

	unpaid := newChangeRequest(RoomChangePendingPayment, 5000)
	if err := unpaid.Approve(admin, "", now); !apperror.Is(err, apperror.CodeInvalidTransition) {
		t.Errorf("approving unpaid upgrade: err = %v, want INVALID_TRANSITION", err)
	}

	if err := unpaid.MarkPaid(); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if unpaid.Status != RoomChangePending {
		t.Fatalf("after MarkPaid status = %s, want pending", unpaid.Status)
	}
	if err := unpaid.Approve(admin, "ok", now); err != nil {
		t.Fatalf("Approve after payment: %v", err)
	}
	if unpaid.ReviewedById == nil || *unpaid.ReviewedById != admin {
		t.Error("reviewer not recorded")
	}
}

func TestRoomChangeMarkPaidOnlyFromPendingPayment(t *testing.T) {
	r := newChangeRequest(RoomChangePending, 0)
	if err := r.MarkPaid(); !apperror.Is(err, apperror.CodeInvalidTransition) {
		t.Errorf("MarkPaid on pending request: err = %v, want INVALID_TRANSITION", err)
	}
}

func TestRoomChangeRejectAllowedWhileAwaitingPayment(t *testing.T) {
	r := newChangeRequest(RoomChangePendingPayment, 5000)
	if err := r.Reject(uuid.New(), "room no longer available", time.Now()); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if r.Status != RoomChangeRejected {
		t.Fatalf("status = %s, want rejected", r.Status)
	}
}

func TestRoomChangeCompleteRequiresApproval(t *testing.T) {
	now := time.Now()

	r := newChangeRequest(RoomChangePending, 0)
	if err := r.Complete(now); !apperror.Is(err, apperror.CodeInvalidTransition) {
		t.Errorf("Complete before approval: err = %v, want INVALID_TRANSITION", err)
	}

	if err := r.Approve(uuid.New(), "", now); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if err := r.Complete(now); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if r.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
}

func TestRoomChangeCancelRules(t *testing.T) {
	cancellable := []RoomChangeStatus{RoomChangePending, RoomChangePendingPayment}
	for _, status := range cancellable {
		r := newChangeRequest(status, 0)
		if err := r.Cancel(); err != nil {
			t.Errorf("Cancel from %s: %v", status, err)
		}
	}

	frozen := []RoomChangeStatus{RoomChangeApproved, RoomChangeRejected, RoomChangeCompleted, RoomChangeCancelled}
	for _, status := range frozen {
		r := newChangeRequest(status, 0)
		if err := r.Cancel(); !apperror.Is(err, apperror.CodeInvalidTransition) {
			t.Errorf("Cancel from %s: err = %v, want INVALID_TRANSITION", status, err)
		}
	}
}

func TestRoomChangeRequiresPayment(t *testing.T) {
	if newChangeRequest(RoomChangePending, 0).RequiresPayment() {
		t.Error("lateral move should not require payment")
	}
	if !newChangeRequest(RoomChangePending, 1).RequiresPayment() {
		t.Error("upgrade with additional payment should require payment")
	}
}
