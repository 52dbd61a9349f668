// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"hostel-mgmt-be/internal/constant"
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/repository/specification"
	"hostel-mgmt-be/internal/repository/unitofwork"
	"hostel-mgmt-be/pkg/events"
	pktNats "hostel-mgmt-be/pkg/nats" // Renamed to avoid collision
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the fee-generation queue: each message names a group
// that just locked a room, and every member gets a rent fee.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishFeeGenerationMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Generating rent fees for GroupId: %s", payload.GroupId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.RoommateGroupRepository().FindOne(ctx, specification.ByID{ID: payload.GroupId})
	if err != nil {
		log.Printf("[ERROR] Failed to get group %s: %v", payload.GroupId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if group == nil {
		log.Printf("[ERROR] Group not found: %s", payload.GroupId)
		msg.Ack() // Group cancelled in the meantime? Ack.
		return
	}
	if group.Status != entity.GroupStatusRoomSelected || group.SelectedRoomId == nil {
		log.Printf("[WARN] Group %s no longer holds a room selection, skipping fee generation", group.Id)
		msg.Ack()
		return
	}

	room, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: payload.RoomId})
	if err != nil {
		log.Printf("[ERROR] Failed to get room %s: %v", payload.RoomId, err)
		msg.Nack()
		return
	}
	if room == nil {
		log.Printf("[ERROR] Room not found: %s", payload.RoomId)
		msg.Ack()
		return
	}

	members, err := uow.StudentRepository().FindByIds(ctx, group.MemberIds)
	if err != nil {
		log.Printf("[ERROR] Failed to load group members: %v", err)
		msg.Nack()
		return
	}

	dueDate := time.Now().AddDate(0, 0, constant.RentFeeDueDays)
	for _, member := range members {
		// Idempotency guard: a member with an open rent fee is not billed
		// again on message redelivery.
		outstanding, err := uow.FeeRepository().HasOutstanding(ctx, member.Id, entity.FeeTypeRent)
		if err != nil {
			log.Printf("[ERROR] Failed to check outstanding fees for %s: %v", member.Id, err)
			msg.Nack()
			return
		}
		if outstanding {
			log.Printf("[INFO] Member %s already has an open rent fee, skipping", member.Id)
			continue
		}

		fee := entity.NewRentFee(member.Id, group.SelectedRoomId, &group.Id, room.TotalPrice, dueDate)
		if err := uow.FeeRepository().Create(ctx, fee); err != nil {
			log.Printf("[ERROR] Failed to create rent fee for %s: %v", member.Id, err)
			msg.Nack()
			return
		}

		if cs.eventPublisher != nil {
			evt := events.New("FEE_DUE", map[string]interface{}{
				"user_id":    member.UserId,
				"student_id": member.Id,
				"fee_id":     fee.Id,
				"amount":     fee.Amount,
				"due_date":   fee.DueDate,
				"group_id":   group.Id,
			})
			if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
				log.Printf("[WARN] Failed to publish FEE_DUE event: %v", err)
			}
		}
	}

	log.Printf("[INFO] Rent fee generation done for GroupId: %s", group.Id)
	msg.Ack()
}
