package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
)

func TestRoommateRequestRespondRules(t *testing.T) {
	requester := uuid.New()
	target := uuid.New()
	req := NewRoommateRequest(requester, target, uuid.New(), RoomTypeDouble, "join us")

	if !req.IsPending() {
		t.Fatal("new request must be pending")
	}

	// Only the invited student can respond.
	if err := req.Accept(requester, time.Now()); !apperror.Is(err, apperror.CodeForbidden) {
		t.Errorf("requester answering own invite: err = %v, want FORBIDDEN", err)
	}

	if err := req.Accept(target, time.Now()); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if req.Status != RoommateRequestAccepted || req.RespondedAt == nil {
		t.Fatalf("acceptance not recorded: status=%s", req.Status)
	}

	// Responses are one-shot.
	if err := req.Reject(target, time.Now()); !apperror.Is(err, apperror.CodeInvalidTransition) {
		t.Errorf("responding twice: err = %v, want INVALID_TRANSITION", err)
	}
}

func TestRoommateRequestReject(t *testing.T) {
	target := uuid.New()
	req := NewRoommateRequest(uuid.New(), target, uuid.New(), RoomTypeTriple, "")

	if err := req.Reject(target, time.Now()); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if req.Status != RoommateRequestRejected {
		t.Fatalf("status = %s, want rejected", req.Status)
	}
}
