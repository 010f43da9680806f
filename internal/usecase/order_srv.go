package usecase

import (
	"context"
	"fmt"
	"time"

	"restaurant-ordering/internal/data/entity"
	"restaurant-ordering/internal/data/repository"
	"restaurant-ordering/internal/dto/request"
	"restaurant-ordering/internal/dto/response"
	"restaurant-ordering/pkg/apperr"
	"restaurant-ordering/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, actor entity.Actor, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetUserOrders(ctx context.Context, actor entity.Actor, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetOrderByID(ctx context.Context, actor entity.Actor, orderID string) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, actor entity.Actor, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	// Resolve every menu line before writing anything
	type line struct {
		item     *entity.MenuItem
		quantity int
	}

	lines := make([]line, len(req.Items))
	var totalPrice float64

	for i, reqLine := range req.Items {
		itemID, err := uuid.Parse(reqLine.MenuItemID)
		if err != nil {
			return nil, apperr.Validation(fmt.Sprintf("invalid menu item ID %s", reqLine.MenuItemID))
		}

		item, err := s.repo.MenuItem.FindByID(ctx, itemID)
		if err != nil {
			return nil, apperr.Storage("find menu item", err)
		}
		if item == nil {
			return nil, apperr.NotFound("menu item", reqLine.MenuItemID)
		}
		if !item.IsAvailable {
			return nil, apperr.Validation(fmt.Sprintf("menu item %s is not available", item.Name))
		}

		lines[i] = line{item: item, quantity: reqLine.Quantity}
		totalPrice += item.Price * float64(reqLine.Quantity)
	}

	now := time.Now()
	order := &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderNumber: utils.GenerateOrderNumber(),
		UserID:      actor.ID,
		TableNumber: req.TableNumber,
		Notes:       req.Notes,
		TotalPrice:  totalPrice,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", actor.ID.String()),
		)
		return nil, apperr.Storage("create order", err)
	}

	orderItems := make([]*entity.OrderItem, len(lines))
	for i, l := range lines {
		orderItems[i] = &entity.OrderItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			OrderID:    order.ID,
			MenuItemID: l.item.ID,
			Quantity:   l.quantity,
			UnitPrice:  l.item.Price,
		}
	}

	if err := s.repo.OrderItem.CreateBatch(ctx, orderItems); err != nil {
		// Rollback: delete the order header
		s.repo.Order.Delete(ctx, order.ID)
		return nil, apperr.Storage("create order items", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("user_id", actor.ID.String()),
		zap.Int("line_count", len(lines)),
		zap.Float64("total_price", totalPrice),
	)

	lineResponses := make([]response.OrderLineResponse, len(lines))
	for i, l := range lines {
		lineResponses[i] = response.OrderLineResponse{
			MenuItemID: l.item.ID.String(),
			Name:       l.item.Name,
			Quantity:   l.quantity,
			UnitPrice:  l.item.Price,
		}
	}

	resp := response.OrderToResponse(order, lineResponses, nil)
	return &resp, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, actor entity.Actor, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	orders, err := s.repo.Order.FindByUserID(ctx, actor.ID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user orders",
			zap.Error(err),
			zap.String("user_id", actor.ID.String()),
		)
		return nil, apperr.Storage("list user orders", err)
	}

	total, err := s.repo.Order.CountByUserID(ctx, actor.ID)
	if err != nil {
		return nil, apperr.Storage("count user orders", err)
	}

	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = s.buildOrderResponse(ctx, order)
	}

	s.log.Info("User orders retrieved",
		zap.String("user_id", actor.ID.String()),
		zap.Int("count", len(orders)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(orderResponses, req.Page, req.PerPage, total), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, actor entity.Actor, orderID string) (*response.OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, apperr.Validation(fmt.Sprintf("invalid order ID %s", orderID))
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage("find order", err)
	}
	if order == nil {
		return nil, apperr.NotFound("order", orderID)
	}

	// Owner sees their own order; staff see any
	if order.UserID != actor.ID && !actor.Role.Staff() {
		return nil, fmt.Errorf("%w: order %s belongs to another user", apperr.ErrForbidden, orderID)
	}

	resp := s.buildOrderResponse(ctx, order)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *orderService) buildOrderResponse(ctx context.Context, order *entity.Order) response.OrderResponse {
	var lineResponses []response.OrderLineResponse

	items, _ := s.repo.OrderItem.FindByOrderID(ctx, order.ID)
	for _, item := range items {
		lineResp := response.OrderLineResponse{
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		}

		menuItem, _ := s.repo.MenuItem.FindByID(ctx, item.MenuItemID)
		if menuItem != nil {
			lineResp.Name = menuItem.Name
		}

		lineResponses = append(lineResponses, lineResp)
	}

	var paymentResp *response.PaymentResponse
	payment, _ := s.repo.Payment.FindByOrderID(ctx, order.ID)
	if payment != nil {
		paymentRespValue := response.PaymentToResponse(payment)
		paymentResp = &paymentRespValue
	}

	return response.OrderToResponse(order, lineResponses, paymentResp)
}
