package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"restaurant-ordering/internal/data/entity"
	"restaurant-ordering/internal/data/repository"
	"restaurant-ordering/internal/dto/request"
	"restaurant-ordering/internal/dto/response"
	"restaurant-ordering/internal/policy"
	"restaurant-ordering/pkg/apperr"
	"restaurant-ordering/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService is the only writer of payment records. Every mutation runs
// through the transition policy, and mutations on the same record are
// serialized so load-decide-write never interleaves.
type PaymentService interface {
	Create(ctx context.Context, actor entity.Actor, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	UpdateContent(ctx context.Context, actor entity.Actor, paymentID string, req *request.UpdatePaymentRequest) (*response.PaymentResponse, error)
	UpdateStatus(ctx context.Context, actor entity.Actor, paymentID string, newStatus entity.PaymentStatus) (*response.PaymentResponse, error)
	Delete(ctx context.Context, actor entity.Actor, paymentID string) error
	GetByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
	List(ctx context.Context, status *entity.PaymentStatus) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger

	// one mutex per payment id; guards the load-decide-write section
	locks sync.Map
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) recordLock(id uuid.UUID) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *paymentService) Create(ctx context.Context, actor entity.Actor, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, apperr.Validation(fmt.Sprintf("invalid order ID %s", req.OrderID))
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, apperr.Storage("find order", err)
	}
	if order == nil {
		return nil, apperr.NotFound("order", req.OrderID)
	}

	// A payment is created by the owning actor of the referenced order.
	if order.UserID != actor.ID {
		return nil, fmt.Errorf("%w: order %s belongs to another user", apperr.ErrForbidden, req.OrderID)
	}

	existing, err := s.repo.Payment.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperr.Storage("find payment by order", err)
	}
	if existing != nil {
		return nil, apperr.Validation(fmt.Sprintf("order %s already has a payment", req.OrderID))
	}

	now := time.Now()
	payment := &entity.Payment{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:       orderID,
		Amount:        req.Amount,
		Method:        entity.PaymentMethod(req.PaymentMethod),
		Status:        entity.PaymentStatusPending,
		TransactionID: utils.GenerateTransactionID(),
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("order_id", req.OrderID),
		)
		return nil, apperr.Storage("create payment", err)
	}

	s.log.Info("Payment created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("order_id", req.OrderID),
		zap.String("transaction_id", payment.TransactionID),
		zap.Float64("amount", payment.Amount),
		zap.String("method", string(payment.Method)),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) UpdateContent(ctx context.Context, actor entity.Actor, paymentID string, req *request.UpdatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update payment validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, apperr.Validation(fmt.Sprintf("invalid payment ID %s", paymentID))
	}

	mu := s.recordLock(id)
	mu.Lock()
	defer mu.Unlock()

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage("find payment", err)
	}
	if payment == nil {
		return nil, apperr.NotFound("payment", paymentID)
	}

	ownerID, err := s.resolveOwner(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}

	if err := policy.AuthorizeContentEdit(actor, ownerID, payment.Status); err != nil {
		s.log.Warn("Content edit denied",
			zap.Error(err),
			zap.String("payment_id", paymentID),
			zap.String("actor_role", string(actor.Role)),
		)
		return nil, err
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		payment.Method = entity.PaymentMethod(*req.PaymentMethod)
	}
	payment.UpdatedAt = time.Now()

	if err := s.repo.Payment.Update(ctx, payment); err != nil {
		s.log.Error("Failed to update payment content",
			zap.Error(err),
			zap.String("payment_id", paymentID),
		)
		return nil, apperr.Storage("update payment", err)
	}

	s.log.Info("Payment content updated",
		zap.String("payment_id", paymentID),
		zap.Float64("amount", payment.Amount),
		zap.String("method", string(payment.Method)),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) UpdateStatus(ctx context.Context, actor entity.Actor, paymentID string, newStatus entity.PaymentStatus) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, apperr.Validation(fmt.Sprintf("invalid payment ID %s", paymentID))
	}

	mu := s.recordLock(id)
	mu.Lock()
	defer mu.Unlock()

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage("find payment", err)
	}
	if payment == nil {
		return nil, apperr.NotFound("payment", paymentID)
	}

	if err := policy.AuthorizeStatusChange(actor, payment.Status, newStatus); err != nil {
		s.log.Warn("Status change denied",
			zap.Error(err),
			zap.String("payment_id", paymentID),
			zap.String("actor_role", string(actor.Role)),
			zap.String("from", string(payment.Status)),
			zap.String("to", string(newStatus)),
		)
		return nil, err
	}

	payment.Status = newStatus
	payment.UpdatedAt = time.Now()

	if err := s.repo.Payment.Update(ctx, payment); err != nil {
		s.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", paymentID),
		)
		return nil, apperr.Storage("update payment", err)
	}

	s.log.Info("Payment status updated",
		zap.String("payment_id", paymentID),
		zap.String("status", string(newStatus)),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) Delete(ctx context.Context, actor entity.Actor, paymentID string) error {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return apperr.Validation(fmt.Sprintf("invalid payment ID %s", paymentID))
	}

	mu := s.recordLock(id)
	mu.Lock()
	defer mu.Unlock()

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return apperr.Storage("find payment", err)
	}
	if payment == nil {
		return apperr.NotFound("payment", paymentID)
	}

	ownerID, err := s.resolveOwner(ctx, payment.OrderID)
	if err != nil {
		return err
	}

	if err := policy.AuthorizeDelete(actor, ownerID, payment.Status); err != nil {
		s.log.Warn("Delete denied",
			zap.Error(err),
			zap.String("payment_id", paymentID),
			zap.String("actor_role", string(actor.Role)),
		)
		return err
	}

	if err := s.repo.Payment.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete payment",
			zap.Error(err),
			zap.String("payment_id", paymentID),
		)
		return apperr.Storage("delete payment", err)
	}

	s.locks.Delete(id)

	s.log.Info("Payment deleted",
		zap.String("payment_id", paymentID),
		zap.String("actor_role", string(actor.Role)),
	)

	return nil
}

func (s *paymentService) GetByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, apperr.Validation(fmt.Sprintf("invalid payment ID %s", paymentID))
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage("find payment", err)
	}
	if payment == nil {
		return nil, apperr.NotFound("payment", paymentID)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) List(ctx context.Context, status *entity.PaymentStatus) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx, status)
	if err != nil {
		return nil, apperr.Storage("list payments", err)
	}

	responses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = response.PaymentToResponse(payment)
	}

	return responses, nil
}

// resolveOwner maps a payment's order reference to the owning user id.
func (s *paymentService) resolveOwner(ctx context.Context, orderID uuid.UUID) (uuid.UUID, error) {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return uuid.Nil, apperr.Storage("find order", err)
	}
	if order == nil {
		return uuid.Nil, apperr.NotFound("order", orderID.String())
	}
	return order.UserID, nil
}
