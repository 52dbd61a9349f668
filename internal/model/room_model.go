package model

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoomNumber string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Block      string    `gorm:"type:varchar(50);index"`
	Floor      int       `gorm:"default:0"`
	RoomType   string    `gorm:"type:varchar(20);not null;index"`
	Gender     string    `gorm:"type:varchar(10);not null;index"`
	Capacity   int       `gorm:"not null"`

	BasePrice      float64 `gorm:"type:decimal(12,2);not null"`
	AmenitiesPrice float64 `gorm:"type:decimal(12,2);default:0"`
	TotalPrice     float64 `gorm:"type:decimal(12,2);not null"`

	CurrentOccupancy  int    `gorm:"default:0"`
	Status            string `gorm:"type:varchar(20);not null;default:'available';index"`
	MaintenanceStatus string `gorm:"type:varchar(30);not null;default:'none'"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Room) TableName() string {
	return "rooms"
}
