package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification stores the per-user notification history backing the in-app
// inbox. Delivery over the websocket hub is best-effort; this row is the
// durable record.
type Notification struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1;index:idx_notifications_user_unread,priority:1"`
	Type      string         `gorm:"type:varchar(50);not null;index"`
	Title     string         `gorm:"type:varchar(200);not null"`
	Body      string         `gorm:"type:text;not null"`
	Data      datatypes.JSON `gorm:"type:jsonb"`
	IsRead    bool           `gorm:"default:false;index:idx_notifications_user_unread,priority:2"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_notifications_user_created,priority:2"`
}

func (Notification) TableName() string {
	return "notifications"
}
