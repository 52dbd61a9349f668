package mapper

import (
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/model"
)

type FeeMapper struct{}

func NewFeeMapper() *FeeMapper {
	return &FeeMapper{}
}

func (m *FeeMapper) ToEntity(f *model.Fee) *entity.Fee {
	if f == nil {
		return nil
	}
	return &entity.Fee{
		Id:            f.Id,
		StudentId:     f.StudentId,
		Type:          entity.FeeType(f.Type),
		Amount:        f.Amount,
		Description:   f.Description,
		Status:        entity.FeeStatus(f.Status),
		DueDate:       f.DueDate,
		PaidAt:        f.PaidAt,
		PaidAmount:    f.PaidAmount,
		Method:        entity.PaymentMethod(f.Method),
		TransactionId: f.TransactionId,
		RoomId:        f.RoomId,
		GroupId:       f.GroupId,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func (m *FeeMapper) ToModel(f *entity.Fee) *model.Fee {
	if f == nil {
		return nil
	}
	return &model.Fee{
		Id:            f.Id,
		StudentId:     f.StudentId,
		Type:          string(f.Type),
		Amount:        f.Amount,
		Description:   f.Description,
		Status:        string(f.Status),
		DueDate:       f.DueDate,
		PaidAt:        f.PaidAt,
		PaidAmount:    f.PaidAmount,
		Method:        string(f.Method),
		TransactionId: f.TransactionId,
		RoomId:        f.RoomId,
		GroupId:       f.GroupId,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
