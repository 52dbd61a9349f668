package mapper

import (
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/model"
)

type WalletMapper struct{}

func NewWalletMapper() *WalletMapper {
	return &WalletMapper{}
}

func (m *WalletMapper) ToEntity(w *model.Wallet) *entity.Wallet {
	if w == nil {
		return nil
	}
	return &entity.Wallet{
		Id:        w.Id,
		StudentId: w.StudentId,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func (m *WalletMapper) ToModel(w *entity.Wallet) *model.Wallet {
	if w == nil {
		return nil
	}
	return &model.Wallet{
		Id:        w.Id,
		StudentId: w.StudentId,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func (m *WalletMapper) TxnToEntity(t *model.WalletTransaction) *entity.WalletTransaction {
	if t == nil {
		return nil
	}
	return &entity.WalletTransaction{
		Id:           t.Id,
		WalletId:     t.WalletId,
		Type:         entity.WalletTxnType(t.Type),
		Amount:       t.Amount,
		Description:  t.Description,
		ReferenceId:  t.ReferenceId,
		BalanceAfter: t.BalanceAfter,
		CreatedAt:    t.CreatedAt,
	}
}

func (m *WalletMapper) TxnToModel(t *entity.WalletTransaction) *model.WalletTransaction {
	if t == nil {
		return nil
	}
	return &model.WalletTransaction{
		Id:           t.Id,
		WalletId:     t.WalletId,
		Type:         string(t.Type),
		Amount:       t.Amount,
		Description:  t.Description,
		ReferenceId:  t.ReferenceId,
		BalanceAfter: t.BalanceAfter,
		CreatedAt:    t.CreatedAt,
	}
}
