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

func wireMenu(
	r chi.Router,
	menuHandler *adaptor.MenuHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/menu - browse the menu (public, anyone can view)
	r.Get("/api/menu", menuHandler.ListItems)

	// GET /api/menu/{id} - menu item details (public)
	r.Get("/api/menu/{id}", menuHandler.GetItem)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/staff/menu", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleManager, entity.RoleAdmin))

		r.Post("/", menuHandler.CreateItem)       // POST /api/staff/menu
		r.Put("/{id}", menuHandler.UpdateItem)    // PUT /api/staff/menu/{id}
		r.Delete("/{id}", menuHandler.DeleteItem) // DELETE /api/staff/menu/{id}
	})
}
