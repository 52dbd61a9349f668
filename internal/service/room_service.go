// FILE: internal/service/room_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/repository/specification"
	"hostel-mgmt-be/internal/repository/unitofwork"
)

type IRoomService interface {
	ListRooms(ctx context.Context, gender, roomType string) ([]*dto.RoomResponse, error)
	GetRoom(ctx context.Context, roomId uuid.UUID) (*dto.RoomResponse, error)
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomId uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
}

type roomService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRoomService(uowFactory unitofwork.RepositoryFactory) IRoomService {
	return &roomService{uowFactory: uowFactory}
}

func (s *roomService) ListRooms(ctx context.Context, gender, roomType string) ([]*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.OrderBy{Field: "room_number", Desc: false},
	}
	if gender != "" {
		specs = append(specs, specification.Filter("gender", gender))
	}
	if roomType != "" {
		specs = append(specs, specification.Filter("room_type", roomType))
	}
	rooms, err := uow.RoomRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		occ, err := uow.StudentRepository().RoomOccupancy(ctx, room.Id)
		if err != nil {
			return nil, err
		}
		res = append(res, toRoomDTO(room, occ.AvailableSlots(room.Capacity)))
	}
	return res, nil
}

func (s *roomService) GetRoom(ctx context.Context, roomId uuid.UUID) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	room, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: roomId})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NotFound("room")
	}
	occ, err := uow.StudentRepository().RoomOccupancy(ctx, room.Id)
	if err != nil {
		return nil, err
	}
	return toRoomDTO(room, occ.AvailableSlots(room.Capacity)), nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.RoomRepository().FindOne(ctx, specification.Filter("room_number", req.RoomNumber))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Newf(apperror.CodeBadRequest, "room %s already exists", req.RoomNumber)
	}

	roomType := entity.RoomType(req.RoomType)
	room := &entity.Room{
		Id:                uuid.New(),
		RoomNumber:        req.RoomNumber,
		Block:             req.Block,
		Floor:             req.Floor,
		RoomType:          roomType,
		Gender:            entity.Gender(req.Gender),
		Capacity:          roomType.Capacity(),
		BasePrice:         req.BasePrice,
		AmenitiesPrice:    req.AmenitiesPrice,
		TotalPrice:        req.BasePrice + req.AmenitiesPrice,
		Status:            entity.RoomStatusAvailable,
		MaintenanceStatus: entity.MaintenanceNone,
		CreatedAt:         time.Now(),
	}
	if err := uow.RoomRepository().Create(ctx, room); err != nil {
		return nil, err
	}
	return toRoomDTO(room, room.Capacity), nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomId uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	room, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: roomId})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NotFound("room")
	}

	if req.BasePrice != nil {
		room.BasePrice = *req.BasePrice
	}
	if req.AmenitiesPrice != nil {
		room.AmenitiesPrice = *req.AmenitiesPrice
	}
	room.TotalPrice = room.BasePrice + room.AmenitiesPrice
	if req.Status != nil {
		room.Status = entity.RoomStatus(*req.Status)
	}
	if req.MaintenanceStatus != nil {
		room.MaintenanceStatus = entity.MaintenanceStatus(*req.MaintenanceStatus)
	}
	room.UpdatedAt = time.Now()

	if err := uow.RoomRepository().Update(ctx, room); err != nil {
		return nil, err
	}
	occ, err := uow.StudentRepository().RoomOccupancy(ctx, room.Id)
	if err != nil {
		return nil, err
	}
	return toRoomDTO(room, occ.AvailableSlots(room.Capacity)), nil
}
