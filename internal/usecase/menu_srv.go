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

type MenuService interface {
	CreateItem(ctx context.Context, actor entity.Actor, req *request.CreateMenuItemRequest) (*response.MenuItemResponse, error)
	UpdateItem(ctx context.Context, actor entity.Actor, itemID string, req *request.UpdateMenuItemRequest) (*response.MenuItemResponse, error)
	DeleteItem(ctx context.Context, actor entity.Actor, itemID string) error
	GetItem(ctx context.Context, itemID string) (*response.MenuItemResponse, error)
	ListItems(ctx context.Context, req *request.PaginatedRequest, category *string) (*response.PaginatedResponse[response.MenuItemResponse], error)
}

type menuService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMenuService(repo *repository.Repository, log *zap.Logger) MenuService {
	return &menuService{
		repo: repo,
		log:  log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) CreateItem(ctx context.Context, actor entity.Actor, req *request.CreateMenuItemRequest) (*response.MenuItemResponse, error) {
	if !actor.Role.Staff() {
		return nil, fmt.Errorf("%w: only staff may manage the menu", apperr.ErrForbidden)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create menu item validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	now := time.Now()
	item := &entity.MenuItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IsAvailable: available,
	}

	if err := s.repo.MenuItem.Create(ctx, item); err != nil {
		s.log.Error("Failed to create menu item", zap.Error(err), zap.String("name", req.Name))
		return nil, apperr.Storage("create menu item", err)
	}

	s.log.Info("Menu item created",
		zap.String("menu_item_id", item.ID.String()),
		zap.String("name", item.Name),
		zap.Float64("price", item.Price),
	)

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) UpdateItem(ctx context.Context, actor entity.Actor, itemID string, req *request.UpdateMenuItemRequest) (*response.MenuItemResponse, error) {
	if !actor.Role.Staff() {
		return nil, fmt.Errorf("%w: only staff may manage the menu", apperr.ErrForbidden)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update menu item validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, apperr.Validation(fmt.Sprintf("invalid menu item ID %s", itemID))
	}

	item, err := s.repo.MenuItem.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage("find menu item", err)
	}
	if item == nil {
		return nil, apperr.NotFound("menu item", itemID)
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	item.UpdatedAt = time.Now()

	if err := s.repo.MenuItem.Update(ctx, item); err != nil {
		s.log.Error("Failed to update menu item", zap.Error(err), zap.String("menu_item_id", itemID))
		return nil, apperr.Storage("update menu item", err)
	}

	s.log.Info("Menu item updated", zap.String("menu_item_id", itemID))

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) DeleteItem(ctx context.Context, actor entity.Actor, itemID string) error {
	if !actor.Role.Staff() {
		return fmt.Errorf("%w: only staff may manage the menu", apperr.ErrForbidden)
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		return apperr.Validation(fmt.Sprintf("invalid menu item ID %s", itemID))
	}

	item, err := s.repo.MenuItem.FindByID(ctx, id)
	if err != nil {
		return apperr.Storage("find menu item", err)
	}
	if item == nil {
		return apperr.NotFound("menu item", itemID)
	}

	if err := s.repo.MenuItem.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete menu item", zap.Error(err), zap.String("menu_item_id", itemID))
		return apperr.Storage("delete menu item", err)
	}

	s.log.Info("Menu item deleted", zap.String("menu_item_id", itemID))
	return nil
}

func (s *menuService) GetItem(ctx context.Context, itemID string) (*response.MenuItemResponse, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, apperr.Validation(fmt.Sprintf("invalid menu item ID %s", itemID))
	}

	item, err := s.repo.MenuItem.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage("find menu item", err)
	}
	if item == nil {
		return nil, apperr.NotFound("menu item", itemID)
	}

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) ListItems(ctx context.Context, req *request.PaginatedRequest, category *string) (*response.PaginatedResponse[response.MenuItemResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	items, err := s.repo.MenuItem.FindAll(ctx, offset, limit, category)
	if err != nil {
		return nil, apperr.Storage("list menu items", err)
	}

	total, err := s.repo.MenuItem.CountAll(ctx, category)
	if err != nil {
		return nil, apperr.Storage("count menu items", err)
	}

	itemResponses := make([]response.MenuItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = response.MenuItemToResponse(item)
	}

	return response.NewPaginatedResponse(itemResponses, req.Page, req.PerPage, total), nil
}
