package adaptor

import (
	"restaurant-ordering/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Menu    *MenuHandler
	Order   *OrderHandler
	Payment *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Menu:    NewMenuHandler(service.Menu, log),
		Order:   NewOrderHandler(service.Order, log),
		Payment: NewPaymentHandler(service.Payment, service.Report, log),
	}
}
