package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hostel-mgmt-be/internal/repository/contract"
	"hostel-mgmt-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StudentRepository() contract.StudentRepository {
	return implementation.NewStudentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RoomRepository() contract.RoomRepository {
	return implementation.NewRoomRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RoommateGroupRepository() contract.RoommateGroupRepository {
	return implementation.NewRoommateGroupRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RoommateRequestRepository() contract.RoommateRequestRepository {
	return implementation.NewRoommateRequestRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RoomChangeRepository() contract.RoomChangeRepository {
	return implementation.NewRoomChangeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FeeRepository() contract.FeeRepository {
	return implementation.NewFeeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WalletRepository() contract.WalletRepository {
	return implementation.NewWalletRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NotificationRepository() contract.NotificationRepository {
	return implementation.NewNotificationRepository(u.getDB())
}
