// FILE: internal/entity/fee_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
)

type FeeType string
type FeeStatus string
type PaymentMethod string

const (
	FeeTypeRent        FeeType = "rent"
	FeeTypeLateFee     FeeType = "late_fee"
	FeeTypeRoomUpgrade FeeType = "room_upgrade"
	FeeTypeSecurity    FeeType = "security_deposit"

	FeeStatusPending   FeeStatus = "pending"
	FeeStatusPaid      FeeStatus = "paid"
	FeeStatusOverdue   FeeStatus = "overdue"
	FeeStatusWaived    FeeStatus = "waived"
	FeeStatusCancelled FeeStatus = "cancelled"

	PaymentMethodMidtrans PaymentMethod = "midtrans"
	PaymentMethodWallet   PaymentMethod = "wallet"
	PaymentMethodCash     PaymentMethod = "cash"
)

// Fee is one line in the student's ledger. Rent fees are generated when a
// group locks a room; upgrade fees when a room change needs topping up.
type Fee struct {
	Id          uuid.UUID
	StudentId   uuid.UUID
	Type        FeeType
	Amount      float64
	Description string
	Status      FeeStatus
	DueDate     time.Time

	// Payment details, set when the fee clears.
	PaidAt        *time.Time
	PaidAmount    float64
	Method        PaymentMethod
	TransactionId string // midtrans order id or wallet movement id
	RoomId        *uuid.UUID
	GroupId       *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRentFee(studentId uuid.UUID, roomId, groupId *uuid.UUID, amount float64, dueDate time.Time) *Fee {
	return &Fee{
		Id:          uuid.New(),
		StudentId:   studentId,
		Type:        FeeTypeRent,
		Amount:      amount,
		Description: "Room rent",
		Status:      FeeStatusPending,
		DueDate:     dueDate,
		RoomId:      roomId,
		GroupId:     groupId,
	}
}

func NewUpgradeFee(studentId uuid.UUID, amount float64, dueDate time.Time) *Fee {
	return &Fee{
		Id:          uuid.New(),
		StudentId:   studentId,
		Type:        FeeTypeRoomUpgrade,
		Amount:      amount,
		Description: "Room change price difference",
		Status:      FeeStatusPending,
		DueDate:     dueDate,
	}
}

func (f *Fee) IsOutstanding() bool {
	return f.Status == FeeStatusPending || f.Status == FeeStatusOverdue
}

// MarkPaid settles the fee. Paying an already-paid fee is an error so webhook
// retries surface instead of double-crediting.
func (f *Fee) MarkPaid(amount float64, method PaymentMethod, txnId string, at time.Time) error {
	if f.Status == FeeStatusPaid {
		return apperror.InvalidTransition("fee already paid")
	}
	if f.Status == FeeStatusWaived || f.Status == FeeStatusCancelled {
		return apperror.InvalidTransition("cannot pay a %s fee", f.Status)
	}
	f.Status = FeeStatusPaid
	f.PaidAmount = amount
	f.Method = method
	f.TransactionId = txnId
	f.PaidAt = &at
	return nil
}

func (f *Fee) Waive() error {
	if !f.IsOutstanding() {
		return apperror.InvalidTransition("cannot waive a %s fee", f.Status)
	}
	f.Status = FeeStatusWaived
	return nil
}
