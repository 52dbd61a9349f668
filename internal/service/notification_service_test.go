package service

import (
	"testing"
	"time"

	"hostel-mgmt-be/internal/entity"
)

func TestRenderNotificationCoversAllEventCodes(t *testing.T) {
	payload := map[string]interface{}{
		"requester_name": "Arjun Mehta",
		"member_name":    "Rohan Iyer",
		"room_type":      "Double",
		"room_number":    "A-101",
		"reason":         "Roommate request rejected",
		"direction":      "upgrade",
		"note":           "No free beds in the requested block",
		"description":    "Room rent",
		"amount":         54000.0,
		"due_date":       time.Date(2026, 9, 3, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}

	tests := []struct {
		code     string
		wantType entity.NotificationType
		wantBody string
	}{
		{"GROUP_REQUEST_SENT", entity.NotifGroupRequestSent, "Arjun Mehta wants to be your roommate"},
		{"GROUP_CONFIRMED", entity.NotifGroupConfirmed, "Your Double group is confirmed. The leader can now pick a room."},
		{"GROUP_CANCELLED", entity.NotifGroupCancelled, "Roommate request rejected"},
		{"ROOM_SELECTED", entity.NotifRoomSelected, "Room A-101 is reserved for your group. Pay 54000.00 to confirm your bed."},
		{"MEMBER_PAID", entity.NotifMemberPaid, "Rohan Iyer has paid their share"},
		{"GROUP_FINALIZED", entity.NotifGroupFinalized, "Everyone has paid. Your room allocation is final."},
		{"ROOM_CHANGE_REQUESTED", entity.NotifRoomChangeCreated, "Your upgrade request was submitted"},
		{"ROOM_CHANGE_APPROVED", entity.NotifRoomChangeOutcome, "You have been moved to room A-101"},
		{"ROOM_CHANGE_REJECTED", entity.NotifRoomChangeOutcome, "No free beds in the requested block"},
		{"FEE_PAID", entity.NotifFeePaid, "Payment of 54000.00 received for Room rent"},
		{"FEE_DUE", entity.NotifFeeDue, "A fee of 54000.00 is due on 03 Sep 2026"},
	}

	for _, tc := range tests {
		gotType, title, body := renderNotification(tc.code, payload)
		if gotType != tc.wantType {
			t.Errorf("%s: type = %s, want %s", tc.code, gotType, tc.wantType)
		}
		if title == "" {
			t.Errorf("%s: empty title", tc.code)
		}
		if body != tc.wantBody {
			t.Errorf("%s: body = %q, want %q", tc.code, body, tc.wantBody)
		}
	}
}

func TestRenderNotificationUnknownCode(t *testing.T) {
	gotType, title, body := renderNotification("SOMETHING_ELSE", nil)
	if gotType != "" || title != "" || body != "" {
		t.Errorf("unknown code rendered: %q %q %q", gotType, title, body)
	}
}

func TestDueDateHintFallback(t *testing.T) {
	if got := dueDateHint(map[string]interface{}{"due_date": "not-a-date"}); got != "the due date" {
		t.Errorf("malformed due_date hint = %q", got)
	}
	if got := dueDateHint(nil); got != "the due date" {
		t.Errorf("missing due_date hint = %q", got)
	}
}
