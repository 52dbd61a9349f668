package model

import (
	"time"

	"github.com/google/uuid"
)

type Wallet struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Balance   float64   `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Wallet) TableName() string {
	return "wallets"
}

type WalletTransaction struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WalletId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type         string     `gorm:"type:varchar(10);not null"`
	Amount       float64    `gorm:"type:decimal(12,2);not null"`
	Description  string     `gorm:"type:text"`
	ReferenceId  *uuid.UUID `gorm:"type:uuid"`
	BalanceAfter float64    `gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
