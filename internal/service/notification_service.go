// FILE: internal/service/notification_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/pkg/logger"
	"hostel-mgmt-be/internal/repository/specification"
	"hostel-mgmt-be/internal/repository/unitofwork"
	"hostel-mgmt-be/pkg/events"
	pktNats "hostel-mgmt-be/pkg/nats" // Renamed to avoid collision
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification *entity.Notification)
	Broadcast(notification *entity.Notification)
}

type INotificationService interface {
	Start()
	List(ctx context.Context, userId uuid.UUID, limit int) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, notificationId uuid.UUID) error
	MarkAllRead(ctx context.Context, userId uuid.UUID) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *notificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *notificationService) handleEvent(ctx context.Context, event events.Event) error {
	// Strip "events." prefix from type if present (NATS subject includes stream name)
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	payload := event.Payload()

	notifType, title, body := renderNotification(typeCode, payload)
	if notifType == "" {
		// Events without a notification mapping are consumed silently.
		return nil
	}

	userId, ok := payloadUUID(payload, "user_id")
	if !ok {
		s.logger.Warn("NotificationService", fmt.Sprintf("Event %s carries no user_id, skipping", typeCode), nil)
		return nil
	}

	notification := entity.NewNotification(userId, notifType, title, body, payload)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userId), map[string]interface{}{"error": err})
		return err // NATS will retry if we return error
	}

	if s.delivery != nil {
		s.delivery.Send(userId, notification)
	}
	return nil
}

func (s *notificationService) List(ctx context.Context, userId uuid.UUID, limit int) (*dto.NotificationListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.Filter("user_id", userId),
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}
	unread, err := uow.NotificationRepository().CountUnread(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := &dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for _, n := range notifications {
		res.Notifications = append(res.Notifications, dto.NotificationResponse{
			Id:        n.Id,
			Type:      string(n.Type),
			Title:     n.Title,
			Body:      n.Body,
			Data:      n.Data,
			IsRead:    n.IsRead,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}
	return res, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userId uuid.UUID, notificationId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, notificationId, userId)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllRead(ctx, userId)
}

// renderNotification maps an event code to the user-facing message. Unmapped
// codes return an empty type.
func renderNotification(code string, payload map[string]interface{}) (entity.NotificationType, string, string) {
	str := func(key string) string {
		v, _ := payload[key].(string)
		return v
	}
	num := func(key string) float64 {
		v, _ := payload[key].(float64)
		return v
	}

	switch code {
	case "GROUP_REQUEST_SENT":
		return entity.NotifGroupRequestSent, "New roommate request",
			fmt.Sprintf("%s wants to be your roommate", str("requester_name"))
	case "GROUP_CONFIRMED":
		return entity.NotifGroupConfirmed, "Roommate group confirmed",
			fmt.Sprintf("Your %s group is confirmed. The leader can now pick a room.", str("room_type"))
	case "GROUP_CANCELLED":
		return entity.NotifGroupCancelled, "Roommate group cancelled", str("reason")
	case "ROOM_SELECTED":
		return entity.NotifRoomSelected, "Room selected",
			fmt.Sprintf("Room %s is reserved for your group. Pay %.2f to confirm your bed.", str("room_number"), num("amount"))
	case "MEMBER_PAID":
		return entity.NotifMemberPaid, "Roommate paid",
			fmt.Sprintf("%s has paid their share", str("member_name"))
	case "GROUP_FINALIZED":
		return entity.NotifGroupFinalized, "Room confirmed",
			"Everyone has paid. Your room allocation is final."
	case "ROOM_CHANGE_REQUESTED":
		return entity.NotifRoomChangeCreated, "Room change request filed",
			fmt.Sprintf("Your %s request was submitted", str("direction"))
	case "ROOM_CHANGE_APPROVED":
		return entity.NotifRoomChangeOutcome, "Room change approved",
			fmt.Sprintf("You have been moved to room %s", str("room_number"))
	case "ROOM_CHANGE_REJECTED":
		return entity.NotifRoomChangeOutcome, "Room change rejected", str("note")
	case "FEE_PAID":
		return entity.NotifFeePaid, "Payment received",
			fmt.Sprintf("Payment of %.2f received for %s", num("amount"), str("description"))
	case "FEE_DUE":
		return entity.NotifFeeDue, "Payment due",
			fmt.Sprintf("A fee of %.2f is due on %s", num("amount"), dueDateHint(payload))
	}
	return "", "", ""
}

func dueDateHint(payload map[string]interface{}) string {
	if raw, ok := payload["due_date"].(string); ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return "the due date"
}

func payloadUUID(payload map[string]interface{}, key string) (uuid.UUID, bool) {
	raw, ok := payload[key]
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(fmt.Sprintf("%v", raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
