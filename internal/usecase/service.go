package usecase

import (
	"restaurant-ordering/internal/data/repository"
	"restaurant-ordering/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Menu    MenuService
	Order   OrderService
	Payment PaymentService
	Report  ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Menu:    NewMenuService(repo, log),
		Order:   NewOrderService(repo, log),
		Payment: NewPaymentService(repo, log),
		Report:  NewReportService(repo.Payment, log),
	}
}
