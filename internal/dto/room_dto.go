// FILE: internal/dto/room_dto.go
package dto

import "github.com/google/uuid"

type RoomResponse struct {
	Id                uuid.UUID `json:"id"`
	RoomNumber        string    `json:"room_number"`
	Block             string    `json:"block"`
	Floor             int       `json:"floor"`
	RoomType          string    `json:"room_type"`
	Gender            string    `json:"gender"`
	Capacity          int       `json:"capacity"`
	BasePrice         float64   `json:"base_price"`
	AmenitiesPrice    float64   `json:"amenities_price"`
	TotalPrice        float64   `json:"total_price"`
	Status            string    `json:"status"`
	MaintenanceStatus string    `json:"maintenance_status"`
	AvailableSlots    int       `json:"available_slots"`
}

type CreateRoomRequest struct {
	RoomNumber     string  `json:"room_number" validate:"required"`
	Block          string  `json:"block" validate:"required"`
	Floor          int     `json:"floor" validate:"min=0"`
	RoomType       string  `json:"room_type" validate:"required,oneof=Single Double Triple Quad"`
	Gender         string  `json:"gender" validate:"required,oneof=Boys Girls"`
	BasePrice      float64 `json:"base_price" validate:"required,gt=0"`
	AmenitiesPrice float64 `json:"amenities_price" validate:"min=0"`
}

type UpdateRoomRequest struct {
	BasePrice         *float64 `json:"base_price" validate:"omitempty,gt=0"`
	AmenitiesPrice    *float64 `json:"amenities_price" validate:"omitempty,min=0"`
	Status            *string  `json:"status" validate:"omitempty,oneof=available occupied reserved blocked"`
	MaintenanceStatus *string  `json:"maintenance_status" validate:"omitempty,oneof=none under_maintenance blocked"`
}
