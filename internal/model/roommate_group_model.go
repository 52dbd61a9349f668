package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RoommateGroup struct {
	Id          uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MemberIds   datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb;not null"`
	CreatedById uuid.UUID                      `gorm:"type:uuid;not null;index"`
	Status      string                         `gorm:"type:varchar(20);not null;default:'pending';index"`
	RoomType    string                         `gorm:"type:varchar(20);not null"`

	SelectedRoomId     *uuid.UUID `gorm:"type:uuid;index"`
	RoomSelectedAt     *time.Time
	PaymentConfirmedAt *time.Time

	CancellationReason string `gorm:"type:text"`
	FormationMethod    string `gorm:"type:varchar(20);not null;default:'manual'"`
	MatchScore         *int

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (RoommateGroup) TableName() string {
	return "roommate_groups"
}

type RoommateRequest struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequesterId uuid.UUID `gorm:"type:uuid;not null;index"`
	TargetId    uuid.UUID `gorm:"type:uuid;not null;index"`
	GroupId     uuid.UUID `gorm:"type:uuid;not null;index"`
	RoomType    string    `gorm:"type:varchar(20);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Message     string    `gorm:"type:text"`
	RespondedAt *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (RoommateRequest) TableName() string {
	return "roommate_requests"
}
