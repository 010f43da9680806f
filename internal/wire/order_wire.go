package wire

import (
	"restaurant-ordering/internal/adaptor"
	"restaurant-ordering/internal/data/repository"
	"restaurant-ordering/pkg/middleware"
	"restaurant-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// All order routes require an authenticated actor.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/orders", orderHandler.CreateOrder)       // POST /api/orders
		r.Get("/api/orders/{id}", orderHandler.GetOrderByID)  // GET /api/orders/{id}
		r.Get("/api/user/orders", orderHandler.GetUserOrders) // GET /api/user/orders
	})
}
