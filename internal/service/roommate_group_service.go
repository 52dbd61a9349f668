// FILE: internal/service/roommate_group_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/matching"
	"hostel-mgmt-be/internal/pkg/logger"
	"hostel-mgmt-be/internal/repository/memory"
	"hostel-mgmt-be/internal/repository/specification"
	"hostel-mgmt-be/internal/repository/unitofwork"
	"hostel-mgmt-be/pkg/events"
	pktNats "hostel-mgmt-be/pkg/nats" // Renamed to avoid collision
)

type IRoommateGroupService interface {
	SendRequest(ctx context.Context, requesterId uuid.UUID, req *dto.SendRoommateRequestRequest) (*dto.RoommateRequestResponse, error)
	ListRequests(ctx context.Context, studentId uuid.UUID) ([]*dto.RoommateRequestResponse, error)
	RespondToRequest(ctx context.Context, studentId uuid.UUID, requestId uuid.UUID, req *dto.RespondRoommateRequestRequest) (*dto.GroupResponse, error)
	GetMyGroup(ctx context.Context, studentId uuid.UUID) (*dto.GroupResponse, error)
	AvailableRooms(ctx context.Context, studentId uuid.UUID) ([]*dto.RoomResponse, error)
	SelectRoom(ctx context.Context, studentId uuid.UUID, req *dto.SelectRoomRequest) (*dto.GroupResponse, error)
	CancelGroup(ctx context.Context, studentId uuid.UUID, req *dto.CancelGroupRequest) error

	// FinalizeIfAllPaid re-derives the group payment picture from its members
	// and finalizes when every one of them has paid. Called after each member
	// payment clears; safe to call repeatedly.
	FinalizeIfAllPaid(ctx context.Context, groupId uuid.UUID) (bool, error)
}

type roommateGroupService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	suggestionCache  *memory.SuggestionCache
	logger           logger.ILogger
}

func NewRoommateGroupService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	suggestionCache *memory.SuggestionCache,
	log logger.ILogger,
) IRoommateGroupService {
	return &roommateGroupService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		suggestionCache:  suggestionCache,
		logger:           log,
	}
}

func (s *roommateGroupService) SendRequest(ctx context.Context, requesterId uuid.UUID, req *dto.SendRoommateRequestRequest) (*dto.RoommateRequestResponse, error) {
	if requesterId == req.TargetStudentId {
		return nil, apperror.Newf(apperror.CodeBadRequest, "cannot send a roommate request to yourself")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	students, err := uow.StudentRepository().FindByIds(ctx, []uuid.UUID{requesterId, req.TargetStudentId})
	if err != nil {
		return nil, err
	}
	var requester, target *entity.Student
	for _, st := range students {
		switch st.Id {
		case requesterId:
			requester = st
		case req.TargetStudentId:
			target = st
		}
	}
	if requester == nil {
		return nil, apperror.NotFound("student")
	}
	if target == nil {
		return nil, apperror.NotFound("target student")
	}

	if requester.Gender != target.Gender {
		return nil, apperror.New(apperror.CodeGenderMismatch, "roommates must be of the same gender")
	}
	if !requester.IsActive() || !target.IsActive() {
		return nil, apperror.Newf(apperror.CodeBadRequest, "both students must be active")
	}
	if requester.HasRoom() || target.HasRoom() {
		return nil, apperror.Newf(apperror.CodeBadRequest, "students with an allocated room cannot form a group")
	}

	for _, st := range []*entity.Student{requester, target} {
		existing, err := uow.RoommateGroupRepository().FindActiveByMember(ctx, st.Id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Newf(apperror.CodeBadRequest, "student %s is already in an active group", st.Name)
		}
	}

	dup, err := uow.RoommateRequestRepository().FindOne(ctx,
		specification.Filter("requester_id", requesterId),
		specification.Filter("target_id", req.TargetStudentId),
		specification.Filter("status", string(entity.RoommateRequestPending)),
	)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, apperror.Newf(apperror.CodeBadRequest, "a pending request to this student already exists")
	}

	roomType := s.resolveRoomType(req.RoomType, requester)
	group := entity.NewRoommateGroup(requesterId, roomType, entity.FormationManual)
	request := entity.NewRoommateRequest(requesterId, req.TargetStudentId, group.Id, roomType, req.Message)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RoommateGroupRepository().Create(ctx, group); err != nil {
		return nil, err
	}
	if err := uow.RoommateRequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}
	requester.RoommateGroupId = &group.Id
	if err := uow.StudentRepository().Update(ctx, requester); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "GROUP_REQUEST_SENT", map[string]interface{}{
		"user_id":        target.UserId,
		"student_id":     target.Id,
		"requester_name": requester.Name,
		"request_id":     request.Id,
		"group_id":       group.Id,
	})

	score := matching.CompatibilityScore(requester, target)
	return s.toRequestDTO(request, requester, target, &score), nil
}

func (s *roommateGroupService) ListRequests(ctx context.Context, studentId uuid.UUID) ([]*dto.RoommateRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	requests, err := uow.RoommateRequestRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RoommateRequestResponse, 0)
	for _, r := range requests {
		if r.RequesterId != studentId && r.TargetId != studentId {
			continue
		}
		students, err := uow.StudentRepository().FindByIds(ctx, []uuid.UUID{r.RequesterId, r.TargetId})
		if err != nil {
			return nil, err
		}
		var requester, target *entity.Student
		for _, st := range students {
			if st.Id == r.RequesterId {
				requester = st
			}
			if st.Id == r.TargetId {
				target = st
			}
		}
		if requester == nil || target == nil {
			continue
		}
		score := matching.CompatibilityScore(requester, target)
		res = append(res, s.toRequestDTO(r, requester, target, &score))
	}
	return res, nil
}

func (s *roommateGroupService) RespondToRequest(ctx context.Context, studentId uuid.UUID, requestId uuid.UUID, req *dto.RespondRoommateRequestRequest) (*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RoommateRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NotFound("roommate request")
	}

	group, err := uow.RoommateGroupRepository().FindOne(ctx, specification.ByID{ID: request.GroupId})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NotFound("roommate group")
	}

	if !req.Accept {
		return nil, s.rejectRequest(ctx, uow, studentId, request, group)
	}
	return s.acceptRequest(ctx, uow, studentId, request, group)
}

func (s *roommateGroupService) acceptRequest(ctx context.Context, uow unitofwork.UnitOfWork, studentId uuid.UUID, request *entity.RoommateRequest, group *entity.RoommateGroup) (*dto.GroupResponse, error) {
	now := time.Now()
	if err := request.Accept(studentId, now); err != nil {
		return nil, err
	}

	target, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NotFound("student")
	}
	if target.HasRoom() {
		return nil, apperror.Newf(apperror.CodeBadRequest, "students with an allocated room cannot join a group")
	}
	existing, err := uow.RoommateGroupRepository().FindActiveByMember(ctx, studentId)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Id != group.Id {
		return nil, apperror.Newf(apperror.CodeBadRequest, "you are already in an active group")
	}

	if err := group.AddMember(studentId); err != nil {
		return nil, err
	}
	if err := group.Confirm(); err != nil {
		return nil, err
	}
	// Backfill the room type from the group size when the requester never
	// picked one.
	if group.RoomType == "" || !group.RoomType.Valid() {
		group.RoomType = entity.RoomTypeForCapacity(group.Size())
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RoommateRequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}
	if err := uow.RoommateGroupRepository().Update(ctx, group); err != nil {
		return nil, err
	}
	target.RoommateGroupId = &group.Id
	if err := uow.StudentRepository().Update(ctx, target); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	members, err := s.loadMembers(ctx, uow, group)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		s.suggestionCache.Invalidate(m.Id)
		s.publishEvent(ctx, "GROUP_CONFIRMED", map[string]interface{}{
			"user_id":    m.UserId,
			"student_id": m.Id,
			"group_id":   group.Id,
			"room_type":  string(group.RoomType),
		})
	}
	return s.toGroupDTO(group, members), nil
}

func (s *roommateGroupService) rejectRequest(ctx context.Context, uow unitofwork.UnitOfWork, studentId uuid.UUID, request *entity.RoommateRequest, group *entity.RoommateGroup) error {
	now := time.Now()
	if err := request.Reject(studentId, now); err != nil {
		return err
	}
	if err := group.Cancel("Roommate request rejected"); err != nil {
		return err
	}

	requester, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: request.RequesterId})
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.RoommateRequestRepository().Update(ctx, request); err != nil {
		return err
	}
	if err := uow.RoommateGroupRepository().Update(ctx, group); err != nil {
		return err
	}
	if requester != nil && requester.RoommateGroupId != nil && *requester.RoommateGroupId == group.Id {
		requester.RoommateGroupId = nil
		if err := uow.StudentRepository().Update(ctx, requester); err != nil {
			return err
		}
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if requester != nil {
		s.publishEvent(ctx, "GROUP_CANCELLED", map[string]interface{}{
			"user_id":    requester.UserId,
			"student_id": requester.Id,
			"group_id":   group.Id,
			"reason":     group.CancellationReason,
		})
	}
	return nil
}

func (s *roommateGroupService) GetMyGroup(ctx context.Context, studentId uuid.UUID) (*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	group, err := uow.RoommateGroupRepository().FindActiveByMember(ctx, studentId)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NotFound("active roommate group")
	}

	// Older records can miss the creator in the member list; heal on read.
	if group.EnsureCreatorMembership() {
		if err := uow.RoommateGroupRepository().Update(ctx, group); err != nil {
			return nil, err
		}
	}

	members, err := s.loadMembers(ctx, uow, group)
	if err != nil {
		return nil, err
	}
	return s.toGroupDTO(group, members), nil
}

func (s *roommateGroupService) AvailableRooms(ctx context.Context, studentId uuid.UUID) ([]*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	group, err := uow.RoommateGroupRepository().FindActiveByMember(ctx, studentId)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NotFound("active roommate group")
	}

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}

	rooms, err := uow.RoomRepository().FindAll(ctx,
		specification.Filter("gender", string(student.Gender)),
		specification.Filter("room_type", string(group.RoomType)),
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RoomResponse, 0)
	for _, room := range rooms {
		if !room.Selectable() || room.Capacity != group.Size() {
			continue
		}
		occ, err := uow.StudentRepository().RoomOccupancy(ctx, room.Id)
		if err != nil {
			return nil, err
		}
		slots := occ.AvailableSlots(room.Capacity)
		if slots < group.Size() {
			continue
		}
		res = append(res, toRoomDTO(room, slots))
	}
	return res, nil
}

// SelectRoom runs the full validation ladder, locks the room for the group
// and puts every member into the payment-pending holding state. Rent fees are
// generated asynchronously by the fee worker.
func (s *roommateGroupService) SelectRoom(ctx context.Context, studentId uuid.UUID, req *dto.SelectRoomRequest) (*dto.GroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.RoommateGroupRepository().FindActiveByMember(ctx, studentId)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NotFound("active roommate group")
	}
	if !group.IsLeader(studentId) {
		return nil, apperror.Forbidden("only the group leader can select the room")
	}

	room, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: req.RoomId})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NotFound("room")
	}

	members, err := s.loadMembers(ctx, uow, group)
	if err != nil {
		return nil, err
	}
	if len(members) != group.Size() {
		return nil, apperror.Newf(apperror.CodeBadRequest, "group member records are inconsistent")
	}

	if room.RoomType != group.RoomType {
		return nil, apperror.Newf(apperror.CodeBadRequest, "room type %s does not match the group's %s", room.RoomType, group.RoomType)
	}
	if room.Capacity != group.Size() {
		return nil, apperror.Newf(apperror.CodeCapacityMismatch, "room holds %d students but the group has %d", room.Capacity, group.Size())
	}
	for _, m := range members {
		if m.Gender != room.Gender {
			return nil, apperror.New(apperror.CodeGenderMismatch, "room gender does not match all group members")
		}
		if m.HasRoom() {
			return nil, apperror.Newf(apperror.CodeBadRequest, "member %s already holds a room", m.Name)
		}
	}
	if !room.Selectable() {
		return nil, apperror.New(apperror.CodeRoomUnavailable, "room is not available for selection")
	}

	// Availability is decided from live member counts, never the cached
	// occupancy column.
	occ, err := uow.StudentRepository().RoomOccupancy(ctx, room.Id)
	if err != nil {
		return nil, err
	}
	if occ.AvailableSlots(room.Capacity) < group.Size() {
		return nil, apperror.Newf(apperror.CodeRoomUnavailable, "room has %d free slots, group needs %d", occ.AvailableSlots(room.Capacity), group.Size())
	}

	now := time.Now()
	if err := group.MarkRoomSelected(room.Id, now); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RoommateGroupRepository().Update(ctx, group); err != nil {
		return nil, err
	}
	for _, m := range members {
		m.TemporaryRoomId = &room.Id
		m.RoomAllocatedAt = &now
		m.PaymentState = entity.PaymentStatePending
		m.AmountToPay = room.TotalPrice
		rt := room.RoomType
		m.SelectedRoomType = &rt
		if err := uow.StudentRepository().Update(ctx, m); err != nil {
			// The transaction rollback undoes the group row; the entity is
			// compensated too so the returned state matches the store.
			group.ClearRoomSelection()
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		group.ClearRoomSelection()
		return nil, err
	}

	// Queue rent fee generation for the workers. The consumer is idempotent,
	// so a redelivery cannot double-bill a member.
	msgPayload := dto.PublishFeeGenerationMessage{GroupId: group.Id, RoomId: room.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err == nil {
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			s.logger.Error("RoommateGroupService", "Failed to queue fee generation", map[string]interface{}{
				"group_id": group.Id,
				"error":    err.Error(),
			})
		}
	}

	for _, m := range members {
		s.suggestionCache.Invalidate(m.Id)
		s.publishEvent(ctx, "ROOM_SELECTED", map[string]interface{}{
			"user_id":     m.UserId,
			"student_id":  m.Id,
			"group_id":    group.Id,
			"room_id":     room.Id,
			"room_number": room.RoomNumber,
			"amount":      room.TotalPrice,
		})
	}
	return s.toGroupDTO(group, members), nil
}

func (s *roommateGroupService) CancelGroup(ctx context.Context, studentId uuid.UUID, req *dto.CancelGroupRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	group, err := uow.RoommateGroupRepository().FindActiveByMember(ctx, studentId)
	if err != nil {
		return err
	}
	if group == nil {
		return apperror.NotFound("active roommate group")
	}
	if !group.IsLeader(studentId) {
		return apperror.Forbidden("only the group leader can cancel the group")
	}

	if err := group.Cancel(req.Reason); err != nil {
		return err
	}

	members, err := s.loadMembers(ctx, uow, group)
	if err != nil {
		return err
	}

	// Void the group's open invitations too, so a late accept cannot revive
	// the cancelled group.
	pending, err := uow.RoommateRequestRepository().FindAll(ctx,
		specification.Filter("group_id", group.Id),
		specification.Filter("status", string(entity.RoommateRequestPending)),
	)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.RoommateGroupRepository().Update(ctx, group); err != nil {
		return err
	}
	now := time.Now()
	for _, r := range pending {
		r.Cancel(now)
		if err := uow.RoommateRequestRepository().Update(ctx, r); err != nil {
			return err
		}
	}
	for _, m := range members {
		if m.RoommateGroupId != nil && *m.RoommateGroupId == group.Id {
			m.RoommateGroupId = nil
			if err := uow.StudentRepository().Update(ctx, m); err != nil {
				return err
			}
		}
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	for _, m := range members {
		s.publishEvent(ctx, "GROUP_CANCELLED", map[string]interface{}{
			"user_id":    m.UserId,
			"student_id": m.Id,
			"group_id":   group.Id,
			"reason":     group.CancellationReason,
		})
	}
	return nil
}

func (s *roommateGroupService) FinalizeIfAllPaid(ctx context.Context, groupId uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	group, err := uow.RoommateGroupRepository().FindOne(ctx, specification.ByID{ID: groupId})
	if err != nil {
		return false, err
	}
	if group == nil {
		return false, apperror.NotFound("roommate group")
	}
	if group.Status != entity.GroupStatusRoomSelected || group.SelectedRoomId == nil {
		return false, nil
	}

	members, err := s.loadMembers(ctx, uow, group)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m.PaymentState != entity.PaymentStatePaid {
			return false, nil
		}
	}

	room, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: *group.SelectedRoomId})
	if err != nil {
		return false, err
	}

	now := time.Now()
	group.Finalize(now)

	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	if err := uow.RoommateGroupRepository().Update(ctx, group); err != nil {
		return false, err
	}
	if room != nil {
		occ, err := uow.StudentRepository().RoomOccupancy(ctx, room.Id)
		if err != nil {
			return false, err
		}
		room.CurrentOccupancy = occ.Confirmed
		if occ.AvailableSlots(room.Capacity) == 0 {
			room.Status = entity.RoomStatusOccupied
		}
		if err := uow.RoomRepository().Update(ctx, room); err != nil {
			return false, err
		}
	}
	if err := uow.Commit(); err != nil {
		return false, err
	}

	for _, m := range members {
		s.publishEvent(ctx, "GROUP_FINALIZED", map[string]interface{}{
			"user_id":    m.UserId,
			"student_id": m.Id,
			"group_id":   group.Id,
			"room_id":    group.SelectedRoomId,
		})
	}
	s.logger.Info("RoommateGroupService", "Group finalized, all members paid", map[string]interface{}{
		"group_id": group.Id,
	})
	return true, nil
}

func (s *roommateGroupService) resolveRoomType(requested string, requester *entity.Student) entity.RoomType {
	if requested != "" {
		return entity.RoomType(requested)
	}
	if requester.SelectedRoomType != nil && requester.SelectedRoomType.Valid() {
		return *requester.SelectedRoomType
	}
	return entity.RoomTypeDouble
}

func (s *roommateGroupService) loadMembers(ctx context.Context, uow unitofwork.UnitOfWork, group *entity.RoommateGroup) ([]*entity.Student, error) {
	return uow.StudentRepository().FindByIds(ctx, group.MemberIds)
}

func (s *roommateGroupService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func (s *roommateGroupService) toRequestDTO(r *entity.RoommateRequest, requester, target *entity.Student, score *int) *dto.RoommateRequestResponse {
	return &dto.RoommateRequestResponse{
		Id:          r.Id,
		Requester:   toStudentSummary(requester),
		Target:      toStudentSummary(target),
		GroupId:     r.GroupId,
		RoomType:    string(r.RoomType),
		Status:      string(r.Status),
		Message:     r.Message,
		MatchScore:  score,
		RespondedAt: r.RespondedAt,
		CreatedAt:   r.CreatedAt,
	}
}

func (s *roommateGroupService) toGroupDTO(g *entity.RoommateGroup, members []*entity.Student) *dto.GroupResponse {
	memberDTOs := make([]dto.StudentSummaryResponse, 0, len(members))
	for _, m := range members {
		memberDTOs = append(memberDTOs, toStudentSummary(m))
	}
	return &dto.GroupResponse{
		Id:                 g.Id,
		Members:            memberDTOs,
		CreatedById:        g.CreatedById,
		Status:             string(g.Status),
		RoomType:           string(g.RoomType),
		SelectedRoomId:     g.SelectedRoomId,
		RoomSelectedAt:     g.RoomSelectedAt,
		PaymentConfirmedAt: g.PaymentConfirmedAt,
		FormationMethod:    string(g.FormationMethod),
		MatchScore:         g.MatchScore,
		CreatedAt:          g.CreatedAt,
	}
}

func toRoomDTO(r *entity.Room, availableSlots int) *dto.RoomResponse {
	return &dto.RoomResponse{
		Id:                r.Id,
		RoomNumber:        r.RoomNumber,
		Block:             r.Block,
		Floor:             r.Floor,
		RoomType:          string(r.RoomType),
		Gender:            string(r.Gender),
		Capacity:          r.Capacity,
		BasePrice:         r.BasePrice,
		AmenitiesPrice:    r.AmenitiesPrice,
		TotalPrice:        r.TotalPrice,
		Status:            string(r.Status),
		MaintenanceStatus: string(r.MaintenanceStatus),
		AvailableSlots:    availableSlots,
	}
}
