package mapper

import (
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/model"
)

type RoomMapper struct{}

func NewRoomMapper() *RoomMapper {
	return &RoomMapper{}
}

func (m *RoomMapper) ToEntity(r *model.Room) *entity.Room {
	if r == nil {
		return nil
	}
	return &entity.Room{
		Id:                r.Id,
		RoomNumber:        r.RoomNumber,
		Block:             r.Block,
		Floor:             r.Floor,
		RoomType:          entity.RoomType(r.RoomType),
		Gender:            entity.Gender(r.Gender),
		Capacity:          r.Capacity,
		BasePrice:         r.BasePrice,
		AmenitiesPrice:    r.AmenitiesPrice,
		TotalPrice:        r.TotalPrice,
		CurrentOccupancy:  r.CurrentOccupancy,
		Status:            entity.RoomStatus(r.Status),
		MaintenanceStatus: entity.MaintenanceStatus(r.MaintenanceStatus),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func (m *RoomMapper) ToModel(r *entity.Room) *model.Room {
	if r == nil {
		return nil
	}
	return &model.Room{
		Id:                r.Id,
		RoomNumber:        r.RoomNumber,
		Block:             r.Block,
		Floor:             r.Floor,
		RoomType:          string(r.RoomType),
		Gender:            string(r.Gender),
		Capacity:          r.Capacity,
		BasePrice:         r.BasePrice,
		AmenitiesPrice:    r.AmenitiesPrice,
		TotalPrice:        r.TotalPrice,
		CurrentOccupancy:  r.CurrentOccupancy,
		Status:            string(r.Status),
		MaintenanceStatus: string(r.MaintenanceStatus),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
