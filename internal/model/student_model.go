package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Student struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	StudentId string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(20)"`
	Gender    string    `gorm:"type:varchar(10);not null;index"`
	Course    string    `gorm:"type:varchar(100)"`
	Year      int       `gorm:"default:0"`
	BatchYear int       `gorm:"default:0"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active';index"`

	RoomId           *uuid.UUID `gorm:"type:uuid;index"`
	TemporaryRoomId  *uuid.UUID `gorm:"type:uuid;index"`
	RoomAllocatedAt  *time.Time
	RoomConfirmedAt  *time.Time
	SelectedRoomType *string    `gorm:"type:varchar(20)"`
	RoommateGroupId  *uuid.UUID `gorm:"type:uuid;index"`

	PreferredRoommateIds datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb"`
	PersonalityAttrs     datatypes.JSON                 `gorm:"type:jsonb"`
	AiPreferences        datatypes.JSON                 `gorm:"type:jsonb"`

	PaymentStatus string  `gorm:"type:varchar(20);not null;default:'NOT_STARTED'"`
	AmountToPay   float64 `gorm:"type:decimal(12,2);default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Student) TableName() string {
	return "students"
}
