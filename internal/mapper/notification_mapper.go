package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/model"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	var data map[string]interface{}
	if len(n.Data) > 0 {
		_ = json.Unmarshal(n.Data, &data)
	}
	return &entity.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Type:      entity.NotificationType(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		Data:      data,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}
	var data datatypes.JSON
	if n.Data != nil {
		raw, _ := json.Marshal(n.Data)
		data = datatypes.JSON(raw)
	}
	return &model.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		Data:      data,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}
