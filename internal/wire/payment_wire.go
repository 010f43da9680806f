package wire

import (
	"restaurant-ordering/internal/adaptor"
	"restaurant-ordering/internal/data/entity"
	"restaurant-ordering/internal/data/repository"
	"restaurant-ordering/pkg/middleware"
	"restaurant-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// Report route is registered before /{id} so chi matches the
		// literal path first. Staff only.
		r.With(middleware.RequireRole(log, entity.RoleManager, entity.RoleAdmin)).
			Get("/report/completed", paymentHandler.CompletedReport)

		r.Post("/", paymentHandler.CreatePayment)       // POST /api/payments
		r.Get("/", paymentHandler.ListPayments)         // GET /api/payments
		r.Get("/{id}", paymentHandler.GetPayment)       // GET /api/payments/{id}
		r.Put("/{id}", paymentHandler.UpdatePayment)    // PUT /api/payments/{id}
		r.Delete("/{id}", paymentHandler.DeletePayment) // DELETE /api/payments/{id}
	})
}
