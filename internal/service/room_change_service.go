// FILE: internal/service/room_change_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/apperror"
	"hostel-mgmt-be/internal/constant"
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/pkg/logger"
	"hostel-mgmt-be/internal/pricing"
	"hostel-mgmt-be/internal/repository/specification"
	"hostel-mgmt-be/internal/repository/unitofwork"
	"hostel-mgmt-be/pkg/events"
	pktNats "hostel-mgmt-be/pkg/nats" // Renamed to avoid collision
)

type IRoomChangeService interface {
	CheckEligibility(ctx context.Context, studentId uuid.UUID) (*dto.RoomChangeEligibilityResponse, error)
	AvailableRooms(ctx context.Context, studentId uuid.UUID) ([]*dto.RoomResponse, error)
	CreateRequest(ctx context.Context, studentId uuid.UUID, req *dto.CreateRoomChangeRequest) (*dto.RoomChangeResponse, error)
	GetMyRequests(ctx context.Context, studentId uuid.UUID) ([]*dto.RoomChangeResponse, error)
	CancelRequest(ctx context.Context, studentId uuid.UUID, requestId uuid.UUID) error

	// Admin surface.
	ListRequests(ctx context.Context, status string) ([]*dto.RoomChangeResponse, error)
	GetRequest(ctx context.Context, requestId uuid.UUID) (*dto.RoomChangeResponse, error)
	Approve(ctx context.Context, adminId uuid.UUID, requestId uuid.UUID, req *dto.RoomChangeDecisionRequest) (*dto.RoomChangeResponse, error)
	Reject(ctx context.Context, adminId uuid.UUID, requestId uuid.UUID, req *dto.RoomChangeDecisionRequest) (*dto.RoomChangeResponse, error)
	Complete(ctx context.Context, adminId uuid.UUID, requestId uuid.UUID) (*dto.RoomChangeResponse, error)

	// MarkUpgradeFeePaid moves the request owning the fee out of
	// pending_payment. Called by the fee engine when an upgrade fee clears.
	MarkUpgradeFeePaid(ctx context.Context, feeId uuid.UUID) error
}

type roomChangeService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewRoomChangeService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) IRoomChangeService {
	return &roomChangeService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *roomChangeService) CheckEligibility(ctx context.Context, studentId uuid.UUID) (*dto.RoomChangeEligibilityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	reasons, _, err := s.eligibilityReasons(ctx, uow, studentId)
	if err != nil {
		return nil, err
	}
	return &dto.RoomChangeEligibilityResponse{
		Eligible: len(reasons) == 0,
		Reasons:  reasons,
	}, nil
}

// eligibilityReasons collects every failed precondition instead of stopping
// at the first, so the student sees the whole list at once.
func (s *roomChangeService) eligibilityReasons(ctx context.Context, uow unitofwork.UnitOfWork, studentId uuid.UUID) ([]string, *entity.Student, error) {
	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, nil, err
	}
	if student == nil {
		return nil, nil, apperror.NotFound("student")
	}

	reasons := make([]string, 0)
	if student.RoomId == nil {
		reasons = append(reasons, "no room is currently allocated")
	}

	active, err := uow.RoomChangeRepository().FindActiveByStudent(ctx, studentId)
	if err != nil {
		return nil, nil, err
	}
	if active != nil {
		reasons = append(reasons, "an active room change request already exists")
	}

	outstandingRent, err := uow.FeeRepository().HasOutstanding(ctx, studentId, entity.FeeTypeRent)
	if err != nil {
		return nil, nil, err
	}
	if outstandingRent {
		reasons = append(reasons, "outstanding rent fees must be settled first")
	}

	outstandingLate, err := uow.FeeRepository().HasOutstanding(ctx, studentId, entity.FeeTypeLateFee)
	if err != nil {
		return nil, nil, err
	}
	if outstandingLate {
		reasons = append(reasons, "outstanding late fees must be settled first")
	}

	return reasons, student, nil
}

func (s *roomChangeService) AvailableRooms(ctx context.Context, studentId uuid.UUID) ([]*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}
	if student.RoomId == nil {
		return nil, apperror.New(apperror.CodeNotEligible, "no room is currently allocated")
	}

	rooms, err := uow.RoomRepository().FindAll(ctx,
		specification.Filter("gender", string(student.Gender)),
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RoomResponse, 0)
	for _, room := range rooms {
		if room.Id == *student.RoomId || !room.Selectable() {
			continue
		}
		occ, err := uow.StudentRepository().RoomOccupancy(ctx, room.Id)
		if err != nil {
			return nil, err
		}
		slots := occ.AvailableSlots(room.Capacity)
		if slots < 1 {
			continue
		}
		res = append(res, toRoomDTO(room, slots))
	}
	return res, nil
}

func (s *roomChangeService) CreateRequest(ctx context.Context, studentId uuid.UUID, req *dto.CreateRoomChangeRequest) (*dto.RoomChangeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reasons, student, err := s.eligibilityReasons(ctx, uow, studentId)
	if err != nil {
		return nil, err
	}
	if len(reasons) > 0 {
		return nil, apperror.NotEligible(reasons)
	}

	currentRoom, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: *student.RoomId})
	if err != nil {
		return nil, err
	}
	if currentRoom == nil {
		return nil, apperror.NotFound("current room")
	}
	if req.RequestedRoomId == currentRoom.Id {
		return nil, apperror.Newf(apperror.CodeBadRequest, "requested room is the current room")
	}

	requested, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: req.RequestedRoomId})
	if err != nil {
		return nil, err
	}
	if requested == nil {
		return nil, apperror.NotFound("requested room")
	}
	if requested.Gender != student.Gender {
		return nil, apperror.New(apperror.CodeGenderMismatch, "requested room is not for this student's gender")
	}
	if !requested.Selectable() {
		return nil, apperror.New(apperror.CodeRoomUnavailable, "requested room is not available")
	}
	occ, err := uow.StudentRepository().RoomOccupancy(ctx, requested.Id)
	if err != nil {
		return nil, err
	}
	if occ.AvailableSlots(requested.Capacity) < 1 {
		return nil, apperror.New(apperror.CodeRoomUnavailable, "requested room has no free slot")
	}

	now := time.Now()
	months := pricing.RemainingMonths()
	quote := pricing.Calculate(currentRoom.TotalPrice, requested.TotalPrice, months)

	alreadyPaid, err := uow.FeeRepository().TotalPaidForRoom(ctx, studentId, currentRoom.Id)
	if err != nil {
		return nil, err
	}
	additional := pricing.AdjustUpgradeForPaid(quote, currentRoom.TotalPrice, alreadyPaid)

	adjustment := entity.PriceAdjustment{
		CurrentYearlyPrice: currentRoom.TotalPrice,
		NewYearlyPrice:     requested.TotalPrice,
		YearlyDifference:   quote.YearlyDifference,
		MonthlyDifference:  quote.MonthlyRequested - quote.MonthlyCurrent,
		RemainingMonths:    months,
		ProRatedDifference: quote.ProRatedDifference,
		AlreadyPaid:        alreadyPaid,
		AdditionalPayment:  additional,
		RefundAmount:       quote.DowngradeWalletCredit,
		Direction:          changeDirection(quote),
		CalculatedAt:       now,
	}

	request := &entity.RoomChangeRequest{
		Id:              uuid.New(),
		StudentId:       studentId,
		CurrentRoomId:   currentRoom.Id,
		RequestedRoomId: requested.Id,
		Reason:          req.Reason,
		Status:          entity.RoomChangePending,
		Adjustment:      adjustment,
	}

	// Upgrades are gated on payment: the request sits in pending_payment with
	// an upgrade fee until the student settles it.
	var upgradeFee *entity.Fee
	if adjustment.AdditionalPayment > 0 {
		request.Status = entity.RoomChangePendingPayment
		upgradeFee = entity.NewUpgradeFee(studentId, adjustment.AdditionalPayment, now.AddDate(0, 0, constant.RentFeeDueDays))
		request.PaymentFeeId = &upgradeFee.Id
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if upgradeFee != nil {
		if err := uow.FeeRepository().Create(ctx, upgradeFee); err != nil {
			return nil, err
		}
	}
	if err := uow.RoomChangeRepository().Create(ctx, request); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "ROOM_CHANGE_REQUESTED", map[string]interface{}{
		"user_id":    student.UserId,
		"student_id": student.Id,
		"request_id": request.Id,
		"direction":  string(adjustment.Direction),
		"additional": adjustment.AdditionalPayment,
		"refund":     adjustment.RefundAmount,
	})

	return toRoomChangeDTO(request), nil
}

func (s *roomChangeService) GetMyRequests(ctx context.Context, studentId uuid.UUID) ([]*dto.RoomChangeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	requests, err := uow.RoomChangeRepository().FindAll(ctx,
		specification.Filter("student_id", studentId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toRoomChangeDTOs(requests), nil
}

func (s *roomChangeService) CancelRequest(ctx context.Context, studentId uuid.UUID, requestId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	request, err := uow.RoomChangeRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return err
	}
	if request == nil {
		return apperror.NotFound("room change request")
	}
	if request.StudentId != studentId {
		return apperror.Forbidden("not your room change request")
	}
	if err := request.Cancel(); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.RoomChangeRepository().Update(ctx, request); err != nil {
		return err
	}
	if err := s.cancelLinkedFee(ctx, uow, request); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *roomChangeService) ListRequests(ctx context.Context, status string) ([]*dto.RoomChangeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if status != "" {
		specs = append(specs, specification.Filter("status", status))
	}
	requests, err := uow.RoomChangeRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toRoomChangeDTOs(requests), nil
}

func (s *roomChangeService) GetRequest(ctx context.Context, requestId uuid.UUID) (*dto.RoomChangeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	request, err := uow.RoomChangeRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NotFound("room change request")
	}
	return toRoomChangeDTO(request), nil
}

// Approve moves the student into the requested room. Availability is
// re-validated against live counts at decision time, not request time.
func (s *roomChangeService) Approve(ctx context.Context, adminId uuid.UUID, requestId uuid.UUID, req *dto.RoomChangeDecisionRequest) (*dto.RoomChangeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	request, err := uow.RoomChangeRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NotFound("room change request")
	}

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: request.StudentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}

	requested, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: request.RequestedRoomId})
	if err != nil {
		return nil, err
	}
	if requested == nil {
		return nil, apperror.NotFound("requested room")
	}
	occ, err := uow.StudentRepository().RoomOccupancy(ctx, requested.Id)
	if err != nil {
		return nil, err
	}
	if !requested.Selectable() || occ.AvailableSlots(requested.Capacity) < 1 {
		return nil, apperror.New(apperror.CodeRoomUnavailable, "requested room is no longer available")
	}

	now := time.Now()
	if err := request.Approve(adminId, req.Note, now); err != nil {
		return nil, err
	}

	currentRoom, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: request.CurrentRoomId})
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RoomChangeRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	newRoomId := requested.Id
	student.RoomId = &newRoomId
	student.TemporaryRoomId = nil
	rt := requested.RoomType
	student.SelectedRoomType = &rt
	student.RoomConfirmedAt = &now
	if err := uow.StudentRepository().Update(ctx, student); err != nil {
		return nil, err
	}

	// Refresh the denormalized counters on both rooms from live counts, now
	// that the student row has moved inside this transaction.
	for _, room := range []*entity.Room{currentRoom, requested} {
		if room == nil {
			continue
		}
		liveOcc, err := uow.StudentRepository().RoomOccupancy(ctx, room.Id)
		if err != nil {
			return nil, err
		}
		room.CurrentOccupancy = liveOcc.Confirmed
		if liveOcc.AvailableSlots(room.Capacity) == 0 {
			room.Status = entity.RoomStatusOccupied
		} else if room.Status == entity.RoomStatusOccupied {
			room.Status = entity.RoomStatusAvailable
		}
		if err := uow.RoomRepository().Update(ctx, room); err != nil {
			return nil, err
		}
	}

	// Downgrades credit the pro-rated difference to the student's wallet.
	if request.Adjustment.RefundAmount > 0 {
		wallet, err := uow.WalletRepository().FindOrCreateByStudent(ctx, student.Id)
		if err != nil {
			return nil, err
		}
		txn, err := wallet.Credit(request.Adjustment.RefundAmount, "Room downgrade refund", &request.Id)
		if err != nil {
			return nil, err
		}
		if err := uow.WalletRepository().Update(ctx, wallet); err != nil {
			return nil, err
		}
		if err := uow.WalletRepository().CreateTransaction(ctx, txn); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "ROOM_CHANGE_APPROVED", map[string]interface{}{
		"user_id":     student.UserId,
		"student_id":  student.Id,
		"request_id":  request.Id,
		"room_id":     requested.Id,
		"room_number": requested.RoomNumber,
		"refund":      request.Adjustment.RefundAmount,
	})
	return toRoomChangeDTO(request), nil
}

func (s *roomChangeService) Reject(ctx context.Context, adminId uuid.UUID, requestId uuid.UUID, req *dto.RoomChangeDecisionRequest) (*dto.RoomChangeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	request, err := uow.RoomChangeRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NotFound("room change request")
	}

	now := time.Now()
	if err := request.Reject(adminId, req.Note, now); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RoomChangeRepository().Update(ctx, request); err != nil {
		return nil, err
	}
	if err := s.cancelLinkedFee(ctx, uow, request); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: request.StudentId})
	if err == nil && student != nil {
		s.publishEvent(ctx, "ROOM_CHANGE_REJECTED", map[string]interface{}{
			"user_id":    student.UserId,
			"student_id": student.Id,
			"request_id": request.Id,
			"note":       req.Note,
		})
	}
	return toRoomChangeDTO(request), nil
}

func (s *roomChangeService) Complete(ctx context.Context, adminId uuid.UUID, requestId uuid.UUID) (*dto.RoomChangeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	request, err := uow.RoomChangeRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NotFound("room change request")
	}
	if err := request.Complete(time.Now()); err != nil {
		return nil, err
	}
	if err := uow.RoomChangeRepository().Update(ctx, request); err != nil {
		return nil, err
	}
	return toRoomChangeDTO(request), nil
}

func (s *roomChangeService) MarkUpgradeFeePaid(ctx context.Context, feeId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	request, err := uow.RoomChangeRepository().FindOne(ctx,
		specification.Filter("payment_fee_id", feeId),
	)
	if err != nil {
		return err
	}
	if request == nil {
		return nil
	}
	if err := request.MarkPaid(); err != nil {
		return err
	}
	if err := uow.RoomChangeRepository().Update(ctx, request); err != nil {
		return err
	}
	s.logger.Info("RoomChangeService", "Upgrade fee settled, request queued for review", map[string]interface{}{
		"request_id": request.Id,
		"fee_id":     feeId,
	})
	return nil
}

// cancelLinkedFee voids an unpaid upgrade fee when its request dies.
func (s *roomChangeService) cancelLinkedFee(ctx context.Context, uow unitofwork.UnitOfWork, request *entity.RoomChangeRequest) error {
	if request.PaymentFeeId == nil {
		return nil
	}
	fee, err := uow.FeeRepository().FindOne(ctx, specification.ByID{ID: *request.PaymentFeeId})
	if err != nil {
		return err
	}
	if fee == nil || !fee.IsOutstanding() {
		return nil
	}
	fee.Status = entity.FeeStatusCancelled
	return uow.FeeRepository().Update(ctx, fee)
}

func (s *roomChangeService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func changeDirection(q pricing.Quote) entity.ChangeDirection {
	switch {
	case q.IsUpgrade:
		return entity.DirectionUpgrade
	case q.IsDowngrade:
		return entity.DirectionDowngrade
	default:
		return entity.DirectionLateral
	}
}

func toRoomChangeDTO(r *entity.RoomChangeRequest) *dto.RoomChangeResponse {
	return &dto.RoomChangeResponse{
		Id:              r.Id,
		StudentId:       r.StudentId,
		CurrentRoomId:   r.CurrentRoomId,
		RequestedRoomId: r.RequestedRoomId,
		Reason:          r.Reason,
		Status:          string(r.Status),
		Adjustment: dto.PriceAdjustmentResponse{
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
		},
		PaymentFeeId: r.PaymentFeeId,
		ReviewedById: r.ReviewedById,
		ReviewedAt:   r.ReviewedAt,
		ReviewNote:   r.ReviewNote,
		CompletedAt:  r.CompletedAt,
		CreatedAt:    r.CreatedAt,
	}
}

func toRoomChangeDTOs(requests []*entity.RoomChangeRequest) []*dto.RoomChangeResponse {
	res := make([]*dto.RoomChangeResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, toRoomChangeDTO(r))
	}
	return res
}
