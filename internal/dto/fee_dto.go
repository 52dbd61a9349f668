// FILE: internal/dto/fee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type FeeResponse struct {
	Id            uuid.UUID  `json:"id"`
	StudentId     uuid.UUID  `json:"student_id"`
	Type          string     `json:"type"`
	Amount        float64    `json:"amount"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	DueDate       time.Time  `json:"due_date"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	PaidAmount    float64    `json:"paid_amount,omitempty"`
	Method        string     `json:"method,omitempty"`
	TransactionId string     `json:"transaction_id,omitempty"`
	RoomId        *uuid.UUID `json:"room_id,omitempty"`
	GroupId       *uuid.UUID `json:"group_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type FeeCheckoutRequest struct {
	FeeId uuid.UUID `json:"fee_id" validate:"required"`
}

type FeeCheckoutResponse struct {
	FeeId           uuid.UUID `json:"fee_id"`
	OrderId         string    `json:"order_id"`
	SnapToken       string    `json:"snap_token"`
	SnapRedirectUrl string    `json:"snap_redirect_url"`
}

type WalletPaymentRequest struct {
	FeeId uuid.UUID `json:"fee_id" validate:"required"`
}

type MidtransWebhookRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	// Signature validation fields
	SignatureKey string `json:"signature_key"`
	StatusCode   string `json:"status_code"`
	GrossAmount  string `json:"gross_amount"`
}

type WalletResponse struct {
	Id        uuid.UUID `json:"id"`
	StudentId uuid.UUID `json:"student_id"`
	Balance   float64   `json:"balance"`
}

type WalletTransactionResponse struct {
	Id           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Amount       float64    `json:"amount"`
	Description  string     `json:"description"`
	ReferenceId  *uuid.UUID `json:"reference_id,omitempty"`
	BalanceAfter float64    `json:"balance_after"`
	CreatedAt    time.Time  `json:"created_at"`
}
