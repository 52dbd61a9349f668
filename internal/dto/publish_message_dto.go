// FILE: internal/dto/publish_message_dto.go
package dto

import "github.com/google/uuid"

// PublishFeeGenerationMessage is the payload queued when a group locks a
// room; the consumer generates the per-member rent fees.
type PublishFeeGenerationMessage struct {
	GroupId uuid.UUID `json:"group_id"`
	RoomId  uuid.UUID `json:"room_id"`
}
