package repository

import (
	"restaurant-ordering/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	MenuItem  MenuItemRepository
	Order     OrderRepository
	OrderItem OrderItemRepository
	Payment   PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		MenuItem:  NewMenuItemRepository(db, log),
		Order:     NewOrderRepository(db, log),
		OrderItem: NewOrderItemRepository(db, log),
		Payment:   NewPaymentRepository(db, log),
	}
}
