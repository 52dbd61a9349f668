package model

import (
	"time"

	"github.com/google/uuid"
)

type Fee struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(30);not null;index"`
	Amount      float64   `gorm:"type:decimal(12,2);not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	DueDate     time.Time `gorm:"not null"`

	PaidAt        *time.Time
	PaidAmount    float64    `gorm:"type:decimal(12,2);default:0"`
	Method        string     `gorm:"type:varchar(20)"`
	TransactionId string     `gorm:"type:varchar(255)"`
	RoomId        *uuid.UUID `gorm:"type:uuid"`
	GroupId       *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Fee) TableName() string {
	return "fees"
}
