package model

import (
	"time"

	"github.com/google/uuid"
)

type RoomChangeRequest struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId       uuid.UUID `gorm:"type:uuid;not null;index"`
	CurrentRoomId   uuid.UUID `gorm:"type:uuid;not null"`
	RequestedRoomId uuid.UUID `gorm:"type:uuid;not null"`
	Reason          string    `gorm:"type:text;not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`

	CurrentYearlyPrice float64 `gorm:"type:decimal(12,2);not null"`
	NewYearlyPrice     float64 `gorm:"type:decimal(12,2);not null"`
	YearlyDifference   float64 `gorm:"type:decimal(12,2);not null"`
	MonthlyDifference  float64 `gorm:"type:decimal(12,2);default:0"`
	RemainingMonths    int     `gorm:"default:0"`
	ProRatedDifference float64 `gorm:"type:decimal(12,2);default:0"`
	AlreadyPaid        float64 `gorm:"type:decimal(12,2);default:0"`
	AdditionalPayment  float64 `gorm:"type:decimal(12,2);default:0"`
	RefundAmount       float64 `gorm:"type:decimal(12,2);default:0"`
	Direction          string  `gorm:"type:varchar(10);not null"`
	CalculatedAt       time.Time

	PaymentFeeId *uuid.UUID `gorm:"type:uuid"`
	ReviewedById *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt   *time.Time
	ReviewNote   string `gorm:"type:text"`
	CompletedAt  *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (RoomChangeRequest) TableName() string {
	return "room_change_requests"
}
