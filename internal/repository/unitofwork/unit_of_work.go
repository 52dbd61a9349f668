package unitofwork

import (
	"context"

	"hostel-mgmt-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	StudentRepository() contract.StudentRepository
	RoomRepository() contract.RoomRepository
	RoommateGroupRepository() contract.RoommateGroupRepository
	RoommateRequestRepository() contract.RoommateRequestRepository
	RoomChangeRepository() contract.RoomChangeRepository
	FeeRepository() contract.FeeRepository
	WalletRepository() contract.WalletRepository
	NotificationRepository() contract.NotificationRepository
}
