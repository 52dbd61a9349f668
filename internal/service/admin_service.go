// FILE: internal/service/admin_service.go
package service

import (
	"context"
	"time"

	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/pkg/logger"
	"hostel-mgmt-be/internal/repository/specification"
	"hostel-mgmt-be/internal/repository/unitofwork"
)

type IAdminService interface {
	Dashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
	Logs(level string, limit, offset int) ([]logger.LogEntry, error)
	LogById(id string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{uowFactory: uowFactory, logger: log}
}

// Logs reads back the system log file for the staff dashboard.
func (s *adminService) Logs(level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(level, limit, offset)
}

func (s *adminService) LogById(id string) (*logger.LogEntry, error) {
	return s.logger.GetLogById(id)
}

func (s *adminService) Dashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	res := &dto.AdminDashboardResponse{}

	var err error
	if res.TotalStudents, err = uow.StudentRepository().Count(ctx); err != nil {
		return nil, err
	}
	if res.UnassignedStudents, err = uow.StudentRepository().Count(ctx, specification.Unassigned{}); err != nil {
		return nil, err
	}
	res.AssignedStudents = res.TotalStudents - res.UnassignedStudents

	if res.TotalRooms, err = uow.RoomRepository().Count(ctx); err != nil {
		return nil, err
	}
	if res.OccupiedRooms, err = uow.RoomRepository().Count(ctx,
		specification.Filter("status", string(entity.RoomStatusOccupied)),
	); err != nil {
		return nil, err
	}

	activeStatuses := make([]string, 0, len(entity.ActiveGroupStatuses))
	for _, st := range entity.ActiveGroupStatuses {
		activeStatuses = append(activeStatuses, string(st))
	}
	if res.ActiveGroups, err = uow.RoommateGroupRepository().Count(ctx,
		specification.ByStatusIn{Statuses: activeStatuses},
	); err != nil {
		return nil, err
	}

	pendingStatuses := make([]string, 0, len(entity.ActiveRoomChangeStatuses))
	for _, st := range entity.ActiveRoomChangeStatuses {
		pendingStatuses = append(pendingStatuses, string(st))
	}
	if res.PendingRoomChanges, err = uow.RoomChangeRepository().Count(ctx,
		specification.ByStatusIn{Statuses: pendingStatuses},
	); err != nil {
		return nil, err
	}

	if res.OutstandingFees, err = uow.FeeRepository().Count(ctx, specification.OutstandingFees{}); err != nil {
		return nil, err
	}

	monthStart := time.Now().AddDate(0, 0, -30)
	if res.CollectedThisMonth, err = uow.FeeRepository().SumPaidSince(ctx, monthStart); err != nil {
		return nil, err
	}

	return res, nil
}
