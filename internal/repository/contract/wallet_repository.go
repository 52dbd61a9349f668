package contract

import (
	"context"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/repository/specification"
)

type WalletRepository interface {
	Create(ctx context.Context, wallet *entity.Wallet) error
	Update(ctx context.Context, wallet *entity.Wallet) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Wallet, error)

	// FindOrCreateByStudent returns the student's wallet, creating an empty
	// one on first touch.
	FindOrCreateByStudent(ctx context.Context, studentId uuid.UUID) (*entity.Wallet, error)

	CreateTransaction(ctx context.Context, txn *entity.WalletTransaction) error
	FindTransactions(ctx context.Context, walletId uuid.UUID, specs ...specification.Specification) ([]*entity.WalletTransaction, error)
}
