package mapper

import (
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/model"
)

type RoomChangeMapper struct{}

func NewRoomChangeMapper() *RoomChangeMapper {
	return &RoomChangeMapper{}
}

func (m *RoomChangeMapper) ToEntity(r *model.RoomChangeRequest) *entity.RoomChangeRequest {
	if r == nil {
		return nil
	}
	return &entity.RoomChangeRequest{
		Id:              r.Id,
		StudentId:       r.StudentId,
		CurrentRoomId:   r.CurrentRoomId,
		RequestedRoomId: r.RequestedRoomId,
		Reason:          r.Reason,
		Status:          entity.RoomChangeStatus(r.Status),
		Adjustment: entity.PriceAdjustment{
			CurrentYearlyPrice: r.CurrentYearlyPrice,
			NewYearlyPrice:     r.NewYearlyPrice,
			YearlyDifference:   r.YearlyDifference,
			MonthlyDifference:  r.MonthlyDifference,
			RemainingMonths:    r.RemainingMonths,
			ProRatedDifference: r.ProRatedDifference,
			AlreadyPaid:        r.AlreadyPaid,
			AdditionalPayment:  r.AdditionalPayment,
			RefundAmount:       r.RefundAmount,
			Direction:          entity.ChangeDirection(r.Direction),
			CalculatedAt:       r.CalculatedAt,
		},
		PaymentFeeId: r.PaymentFeeId,
		ReviewedById: r.ReviewedById,
		ReviewedAt:   r.ReviewedAt,
		ReviewNote:   r.ReviewNote,
		CompletedAt:  r.CompletedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (m *RoomChangeMapper) ToModel(r *entity.RoomChangeRequest) *model.RoomChangeRequest {
	if r == nil {
		return nil
	}
	return &model.RoomChangeRequest{
		Id:                 r.Id,
		StudentId:          r.StudentId,
		CurrentRoomId:      r.CurrentRoomId,
		RequestedRoomId:    r.RequestedRoomId,
		Reason:             r.Reason,
		Status:             string(r.Status),
		CurrentYearlyPrice: r.Adjustment.CurrentYearlyPrice,
		NewYearlyPrice:     r.Adjustment.NewYearlyPrice,
		YearlyDifference:   r.Adjustment.YearlyDifference,
		MonthlyDifference:  r.Adjustment.MonthlyDifference,
		RemainingMonths:    r.Adjustment.RemainingMonths,
		ProRatedDifference: r.Adjustment.ProRatedDifference,
		AlreadyPaid:        r.Adjustment.AlreadyPaid,
		AdditionalPayment:  r.Adjustment.AdditionalPayment,
		RefundAmount:       r.Adjustment.RefundAmount,
		Direction:          string(r.Adjustment.Direction),
		CalculatedAt:       r.Adjustment.CalculatedAt,
		PaymentFeeId:       r.PaymentFeeId,
		ReviewedById:       r.ReviewedById,
		ReviewedAt:         r.ReviewedAt,
		ReviewNote:         r.ReviewNote,
		CompletedAt:        r.CompletedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
