// FILE: internal/service/fee_service.go
package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"hostel-mgmt-be/internal/apperror"
	"hostel-mgmt-be/internal/dto"
	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/pkg/logger"
	"hostel-mgmt-be/internal/pkg/mailer"
	"hostel-mgmt-be/internal/repository/specification"
	"hostel-mgmt-be/internal/repository/unitofwork"
	"hostel-mgmt-be/pkg/events"
	pktNats "hostel-mgmt-be/pkg/nats" // Renamed to avoid collision
)

type IFeeService interface {
	GetStudentFees(ctx context.Context, studentId uuid.UUID) ([]*dto.FeeResponse, error)
	GetWallet(ctx context.Context, studentId uuid.UUID) (*dto.WalletResponse, []*dto.WalletTransactionResponse, error)
	Checkout(ctx context.Context, studentId uuid.UUID, req *dto.FeeCheckoutRequest) (*dto.FeeCheckoutResponse, error)
	PayWithWallet(ctx context.Context, studentId uuid.UUID, req *dto.WalletPaymentRequest) (*dto.FeeResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
}

type feeService struct {
	uowFactory        unitofwork.RepositoryFactory
	groupService      IRoommateGroupService
	roomChangeService IRoomChangeService
	eventPublisher    *pktNats.Publisher
	emailService      mailer.IEmailService
	logger            logger.ILogger
}

func NewFeeService(
	uowFactory unitofwork.RepositoryFactory,
	groupService IRoommateGroupService,
	roomChangeService IRoomChangeService,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IFeeService {
	return &feeService{
		uowFactory:        uowFactory,
		groupService:      groupService,
		roomChangeService: roomChangeService,
		eventPublisher:    eventPublisher,
		emailService:      emailService,
		logger:            log,
	}
}

func (s *feeService) GetStudentFees(ctx context.Context, studentId uuid.UUID) ([]*dto.FeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	fees, err := uow.FeeRepository().FindAll(ctx,
		specification.Filter("student_id", studentId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.FeeResponse, 0, len(fees))
	for _, f := range fees {
		res = append(res, toFeeDTO(f))
	}
	return res, nil
}

func (s *feeService) GetWallet(ctx context.Context, studentId uuid.UUID) (*dto.WalletResponse, []*dto.WalletTransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	wallet, err := uow.WalletRepository().FindOrCreateByStudent(ctx, studentId)
	if err != nil {
		return nil, nil, err
	}
	txns, err := uow.WalletRepository().FindTransactions(ctx, wallet.Id,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, nil, err
	}

	txnDTOs := make([]*dto.WalletTransactionResponse, 0, len(txns))
	for _, t := range txns {
		txnDTOs = append(txnDTOs, &dto.WalletTransactionResponse{
			Id:           t.Id,
			Type:         string(t.Type),
			Amount:       t.Amount,
			Description:  t.Description,
			ReferenceId:  t.ReferenceId,
			BalanceAfter: t.BalanceAfter,
			CreatedAt:    t.CreatedAt,
		})
	}
	return &dto.WalletResponse{
		Id:        wallet.Id,
		StudentId: wallet.StudentId,
		Balance:   wallet.Balance,
	}, txnDTOs, nil
}

func (s *feeService) Checkout(ctx context.Context, studentId uuid.UUID, req *dto.FeeCheckoutRequest) (*dto.FeeCheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	fee, err := uow.FeeRepository().FindOne(ctx, specification.ByID{ID: req.FeeId})
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, apperror.NotFound("fee")
	}
	if fee.StudentId != studentId {
		return nil, apperror.Forbidden("not your fee")
	}
	if !fee.IsOutstanding() {
		return nil, apperror.InvalidTransition("fee is %s, nothing to pay", fee.Status)
	}

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}

	// -- Midtrans Logic (External Service calls outside DB tx) --
	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	frontendURL := os.Getenv("FRONTEND_URL")
	finishRedirectURL := fmt.Sprintf("%s/app/fees?payment=success", frontendURL)

	orderId := fee.Id.String()
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: int64(fee.Amount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: student.Name,
			Email: student.Email,
			Phone: student.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    fee.Id.String(),
				Price: int64(fee.Amount),
				Qty:   1,
				Name:  fee.Description,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	return &dto.FeeCheckoutResponse{
		FeeId:           fee.Id,
		OrderId:         orderId,
		SnapToken:       snapResp.Token,
		SnapRedirectUrl: snapResp.RedirectURL,
	}, nil
}

func (s *feeService) PayWithWallet(ctx context.Context, studentId uuid.UUID, req *dto.WalletPaymentRequest) (*dto.FeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	fee, err := uow.FeeRepository().FindOne(ctx, specification.ByID{ID: req.FeeId})
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, apperror.NotFound("fee")
	}
	if fee.StudentId != studentId {
		return nil, apperror.Forbidden("not your fee")
	}

	wallet, err := uow.WalletRepository().FindOrCreateByStudent(ctx, studentId)
	if err != nil {
		return nil, err
	}
	txn, err := wallet.Debit(fee.Amount, fmt.Sprintf("Payment for %s", fee.Description), &fee.Id)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.WalletRepository().Update(ctx, wallet); err != nil {
		return nil, err
	}
	if err := uow.WalletRepository().CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	if err := s.settleFee(ctx, uow, fee, fee.Amount, entity.PaymentMethodWallet, txn.Id.String()); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.afterSettlement(ctx, fee)
	return toFeeDTO(fee), nil
}

func (s *feeService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	s.logger.Info("FeeService", "Processing payment webhook", map[string]interface{}{
		"order_id": req.OrderId,
		"status":   req.TransactionStatus,
	})

	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		s.logger.Warn("FeeService", "Webhook signature mismatch", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return fmt.Errorf("invalid signature")
	}

	feeId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return fmt.Errorf("invalid order id format")
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		// fall through to settlement below
	case "deny", "cancel", "expire":
		s.logger.Info("FeeService", "Payment attempt failed, fee stays outstanding", map[string]interface{}{
			"fee_id": feeId,
			"status": req.TransactionStatus,
		})
		return nil
	default:
		// "pending" and anything unknown: wait for the final callback.
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	fee, err := uow.FeeRepository().FindOne(ctx, specification.ByID{ID: feeId})
	if err != nil {
		return err
	}
	if fee == nil {
		return fmt.Errorf("fee not found for order %s", req.OrderId)
	}
	if fee.Status == entity.FeeStatusPaid {
		// Webhook redelivery after a successful settlement.
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := s.settleFee(ctx, uow, fee, fee.Amount, entity.PaymentMethodMidtrans, req.OrderId); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.afterSettlement(ctx, fee)
	return nil
}

// settleFee marks the fee paid inside the caller's transaction and, for rent
// fees, confirms the student's individual room hold (temporary → confirmed).
func (s *feeService) settleFee(ctx context.Context, uow unitofwork.UnitOfWork, fee *entity.Fee, amount float64, method entity.PaymentMethod, txnId string) error {
	now := time.Now()
	if err := fee.MarkPaid(amount, method, txnId, now); err != nil {
		return err
	}
	if err := uow.FeeRepository().Update(ctx, fee); err != nil {
		return err
	}

	if fee.Type != entity.FeeTypeRent {
		return nil
	}

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: fee.StudentId})
	if err != nil {
		return err
	}
	if student == nil {
		return apperror.NotFound("student")
	}

	student.PaymentState = entity.PaymentStatePaid
	student.AmountToPay = 0
	if student.TemporaryRoomId != nil {
		student.RoomId = student.TemporaryRoomId
		student.TemporaryRoomId = nil
		student.RoomConfirmedAt = &now
	}
	return uow.StudentRepository().Update(ctx, student)
}

// afterSettlement runs the cross-aggregate consequences of a cleared fee:
// group finalization recheck, room change unblocking, notifications, email.
// All best-effort; the payment itself is already committed.
func (s *feeService) afterSettlement(ctx context.Context, fee *entity.Fee) {
	if fee.Type == entity.FeeTypeRent && fee.GroupId != nil {
		if _, err := s.groupService.FinalizeIfAllPaid(ctx, *fee.GroupId); err != nil {
			s.logger.Error("FeeService", "Group finalization recheck failed", map[string]interface{}{
				"group_id": fee.GroupId,
				"error":    err.Error(),
			})
		}
	}
	if fee.Type == entity.FeeTypeRoomUpgrade {
		if err := s.roomChangeService.MarkUpgradeFeePaid(ctx, fee.Id); err != nil {
			s.logger.Error("FeeService", "Failed to unblock room change request", map[string]interface{}{
				"fee_id": fee.Id,
				"error":  err.Error(),
			})
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: fee.StudentId})
	if err != nil || student == nil {
		return
	}

	s.publishEvent(ctx, "FEE_PAID", map[string]interface{}{
		"user_id":     student.UserId,
		"student_id":  student.Id,
		"fee_id":      fee.Id,
		"fee_type":    string(fee.Type),
		"amount":      fee.PaidAmount,
		"description": fee.Description,
	})

	// Tell the rest of the group a member cleared their rent.
	if fee.Type == entity.FeeTypeRent && fee.GroupId != nil {
		group, err := uow.RoommateGroupRepository().FindOne(ctx, specification.ByID{ID: *fee.GroupId})
		if err == nil && group != nil {
			members, err := uow.StudentRepository().FindByIds(ctx, group.MemberIds)
			if err == nil {
				for _, m := range members {
					if m.Id == student.Id {
						continue
					}
					s.publishEvent(ctx, "MEMBER_PAID", map[string]interface{}{
						"user_id":     m.UserId,
						"student_id":  m.Id,
						"group_id":    group.Id,
						"member_name": student.Name,
					})
				}
			}
		}
	}

	if s.emailService != nil && student.Email != "" {
		go func() {
			_ = s.emailService.SendPaymentConfirmation(student.Email, student.Name, fee.Description, fee.PaidAmount)
		}()
	}
}

func (s *feeService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func toFeeDTO(f *entity.Fee) *dto.FeeResponse {
	return &dto.FeeResponse{
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
	}
}
