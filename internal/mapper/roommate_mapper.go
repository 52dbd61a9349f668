package mapper

import (
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/model"
)

type RoommateGroupMapper struct{}

func NewRoommateGroupMapper() *RoommateGroupMapper {
	return &RoommateGroupMapper{}
}

func (m *RoommateGroupMapper) ToEntity(g *model.RoommateGroup) *entity.RoommateGroup {
	if g == nil {
		return nil
	}
	return &entity.RoommateGroup{
		Id:                 g.Id,
		MemberIds:          g.MemberIds,
		CreatedById:        g.CreatedById,
		Status:             entity.GroupStatus(g.Status),
		RoomType:           entity.RoomType(g.RoomType),
		SelectedRoomId:     g.SelectedRoomId,
		RoomSelectedAt:     g.RoomSelectedAt,
		PaymentConfirmedAt: g.PaymentConfirmedAt,
		CancellationReason: g.CancellationReason,
		FormationMethod:    entity.FormationMethod(g.FormationMethod),
		MatchScore:         g.MatchScore,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

func (m *RoommateGroupMapper) ToModel(g *entity.RoommateGroup) *model.RoommateGroup {
	if g == nil {
		return nil
	}
	return &model.RoommateGroup{
		Id:                 g.Id,
		MemberIds:          g.MemberIds,
		CreatedById:        g.CreatedById,
		Status:             string(g.Status),
		RoomType:           string(g.RoomType),
		SelectedRoomId:     g.SelectedRoomId,
		RoomSelectedAt:     g.RoomSelectedAt,
		PaymentConfirmedAt: g.PaymentConfirmedAt,
		CancellationReason: g.CancellationReason,
		FormationMethod:    string(g.FormationMethod),
		MatchScore:         g.MatchScore,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

type RoommateRequestMapper struct{}

func NewRoommateRequestMapper() *RoommateRequestMapper {
	return &RoommateRequestMapper{}
}

func (m *RoommateRequestMapper) ToEntity(r *model.RoommateRequest) *entity.RoommateRequest {
	if r == nil {
		return nil
	}
	return &entity.RoommateRequest{
		Id:          r.Id,
		RequesterId: r.RequesterId,
		TargetId:    r.TargetId,
		GroupId:     r.GroupId,
		RoomType:    entity.RoomType(r.RoomType),
		Status:      entity.RoommateRequestStatus(r.Status),
		Message:     r.Message,
		RespondedAt: r.RespondedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *RoommateRequestMapper) ToModel(r *entity.RoommateRequest) *model.RoommateRequest {
	if r == nil {
		return nil
	}
	return &model.RoommateRequest{
		Id:          r.Id,
		RequesterId: r.RequesterId,
		TargetId:    r.TargetId,
		GroupId:     r.GroupId,
		RoomType:    string(r.RoomType),
		Status:      string(r.Status),
		Message:     r.Message,
		RespondedAt: r.RespondedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
