// FILE: internal/entity/wallet_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
)

type WalletTxnType string

const (
	WalletCredit WalletTxnType = "credit"
	WalletDebit  WalletTxnType = "debit"
)

// Wallet holds a student's credit balance. Downgrade refunds land here and
// can later be applied against fees.
type Wallet struct {
	Id        uuid.UUID
	StudentId uuid.UUID
	Balance   float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WalletTransaction is the audit trail for every balance movement.
type WalletTransaction struct {
	Id           uuid.UUID
	WalletId     uuid.UUID
	Type         WalletTxnType
	Amount       float64
	Description  string
	ReferenceId  *uuid.UUID // fee or room change request that caused it
	BalanceAfter float64
	CreatedAt    time.Time
}

// Credit adds to the balance and returns the transaction record.
func (w *Wallet) Credit(amount float64, description string, refId *uuid.UUID) (*WalletTransaction, error) {
	if amount <= 0 {
		return nil, apperror.Newf(apperror.CodeBadRequest, "credit amount must be positive, got %.2f", amount)
	}
	w.Balance += amount
	return &WalletTransaction{
		Id:           uuid.New(),
		WalletId:     w.Id,
		Type:         WalletCredit,
		Amount:       amount,
		Description:  description,
		ReferenceId:  refId,
		BalanceAfter: w.Balance,
	}, nil
}

// Debit removes from the balance; overdrafts are rejected.
func (w *Wallet) Debit(amount float64, description string, refId *uuid.UUID) (*WalletTransaction, error) {
	if amount <= 0 {
		return nil, apperror.Newf(apperror.CodeBadRequest, "debit amount must be positive, got %.2f", amount)
	}
	if amount > w.Balance {
		return nil, apperror.Newf(apperror.CodeBadRequest, "insufficient wallet balance: have %.2f, need %.2f", w.Balance, amount)
	}
	w.Balance -= amount
	return &WalletTransaction{
		Id:           uuid.New(),
		WalletId:     w.Id,
		Type:         WalletDebit,
		Amount:       amount,
		Description:  description,
		ReferenceId:  refId,
		BalanceAfter: w.Balance,
	}, nil
}
