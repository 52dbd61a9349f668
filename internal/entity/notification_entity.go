// FILE: internal/entity/notification_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifGroupRequestSent  NotificationType = "GROUP_REQUEST_SENT"
	NotifGroupConfirmed    NotificationType = "GROUP_CONFIRMED"
	NotifGroupCancelled    NotificationType = "GROUP_CANCELLED"
	NotifRoomSelected      NotificationType = "ROOM_SELECTED"
	NotifMemberPaid        NotificationType = "MEMBER_PAID"
	NotifGroupFinalized    NotificationType = "GROUP_FINALIZED"
	NotifRoomChangeCreated NotificationType = "ROOM_CHANGE_REQUESTED"
	NotifRoomChangeOutcome NotificationType = "ROOM_CHANGE_DECIDED"
	NotifFeePaid           NotificationType = "FEE_PAID"
	NotifFeeDue            NotificationType = "FEE_DUE"
	NotifSystemBroadcast   NotificationType = "SYSTEM_BROADCAST"
)

// Notification is a per-user message persisted for the in-app inbox and
// pushed over the websocket hub when the user is connected.
type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      NotificationType
	Title     string
	Body      string
	Data      map[string]interface{}
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}

func NewNotification(userId uuid.UUID, typ NotificationType, title, body string, data map[string]interface{}) *Notification {
	return &Notification{
		Id:     uuid.New(),
		UserId: userId,
		Type:   typ,
		Title:  title,
		Body:   body,
		Data:   data,
	}
}

func (n *Notification) MarkRead(at time.Time) {
	if n.IsRead {
		return
	}
	n.IsRead = true
	n.ReadAt = &at
}
