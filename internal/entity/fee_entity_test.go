package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
)

func TestFeeMarkPaid(t *testing.T) {
	roomId := uuid.New()
	groupId := uuid.New()
	fee := NewRentFee(uuid.New(), &roomId, &groupId, 54000, time.Now().Add(72*time.Hour))

	if !fee.IsOutstanding() {
		t.Fatal("new rent fee must be outstanding")
	}

	now := time.Now()
	if err := fee.MarkPaid(54000, PaymentMethodMidtrans, "order-1", now); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if fee.Status != FeeStatusPaid || fee.PaidAmount != 54000 || fee.PaidAt == nil {
		t.Fatalf("payment not recorded: status=%s paid=%.2f", fee.Status, fee.PaidAmount)
	}

	// Webhook redeliveries must surface, not double-credit.
	if err := fee.MarkPaid(54000, PaymentMethodMidtrans, "order-1", now); !apperror.Is(err, apperror.CodeInvalidTransition) {
		t.Errorf("double MarkPaid: err = %v, want INVALID_TRANSITION", err)
	}
}

func TestFeeMarkPaidOnVoidedFee(t *testing.T) {
	fee := NewUpgradeFee(uuid.New(), 8000, time.Now())
	if err := fee.Waive(); err != nil {
		t.Fatalf("Waive: %v", err)
	}
	if err := fee.MarkPaid(8000, PaymentMethodWallet, "wallet-1", time.Now()); !apperror.Is(err, apperror.CodeInvalidTransition) {
		t.Errorf("paying a waived fee: err = %v, want INVALID_TRANSITION", err)
	}
}

func TestWalletCreditAndDebit(t *testing.T) {
	w := &Wallet{Id: uuid.New(), StudentId: uuid.New()}

	txn, err := w.Credit(1500, "Room downgrade refund", nil)
	if err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if w.Balance != 1500 || txn.BalanceAfter != 1500 || txn.Type != WalletCredit {
		t.Fatalf("credit not applied: balance=%.2f", w.Balance)
	}

	txn, err = w.Debit(500, "Fee payment", nil)
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if w.Balance != 1000 || txn.BalanceAfter != 1000 {
		t.Fatalf("debit not applied: balance=%.2f", w.Balance)
	}
}

func TestWalletRejectsOverdraftAndBadAmounts(t *testing.T) {
	w := &Wallet{Id: uuid.New(), StudentId: uuid.New(), Balance: 100}

	if _, err := w.Debit(200, "too much", nil); !apperror.Is(err, apperror.CodeBadRequest) {
		t.Errorf("overdraft: err = %v, want BAD_REQUEST", err)
	}
	if _, err := w.Debit(0, "zero", nil); !apperror.Is(err, apperror.CodeBadRequest) {
		t.Errorf("zero debit: err = %v, want BAD_REQUEST", err)
	}
	if _, err := w.Credit(-5, "negative", nil); !apperror.Is(err, apperror.CodeBadRequest) {
		t.Errorf("negative credit: err = %v, want BAD_REQUEST", err)
	}
	if w.Balance != 100 {
		t.Errorf("balance mutated on rejected movement: %.2f", w.Balance)
	}
}
