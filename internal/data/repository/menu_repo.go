package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant-ordering/internal/data/entity"
	"restaurant-ordering/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	FindAll(ctx context.Context, offset, limit int, category *string) ([]*entity.MenuItem, error)
	CountAll(ctx context.Context, category *string) (int64, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuItemRepository(db database.PgxIface, log *zap.Logger) MenuItemRepository {
	return &menuItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu_item")),
	}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, name, description, price, category, is_available,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.Category,
		item.IsAvailable,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create menu item",
			zap.Error(err),
			zap.String("name", item.Name),
		)
		return fmt.Errorf("create menu item %s: %w", item.Name, err)
	}

	return nil
}

func (r *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	query := `
		SELECT id, name, description, price, category, is_available,
		       created_at, updated_at, deleted_at
		FROM menu_items
		WHERE id = $1 AND deleted_at IS NULL
	`

	var item entity.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.IsAvailable,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find menu item by ID",
			zap.Error(err),
			zap.String("menu_item_id", id.String()),
		)
		return nil, fmt.Errorf("find menu item %s: %w", id.String(), err)
	}

	return &item, nil
}

func (r *menuItemRepository) FindAll(ctx context.Context, offset, limit int, category *string) ([]*entity.MenuItem, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, description, price, category, is_available,
		       created_at, updated_at
		FROM menu_items
		WHERE deleted_at IS NULL
	`)

	args := []interface{}{}
	argCount := 1

	if category != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND category = $%d", argCount))
		args = append(args, *category)
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to list menu items", zap.Error(err))
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.IsAvailable,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu item rows: %w", err)
	}

	return items, nil
}

func (r *menuItemRepository) CountAll(ctx context.Context, category *string) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM menu_items WHERE deleted_at IS NULL`)

	args := []interface{}{}
	if category != nil {
		queryBuilder.WriteString(" AND category = $1")
		args = append(args, *category)
	}

	var total int64
	if err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&total); err != nil {
		r.log.Error("Failed to count menu items", zap.Error(err))
		return 0, fmt.Errorf("count menu items: %w", err)
	}

	return total, nil
}

func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, category = $5,
		    is_available = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.Category,
		item.IsAvailable,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update menu item",
			zap.Error(err),
			zap.String("menu_item_id", item.ID.String()),
		)
		return fmt.Errorf("update menu item %s: %w", item.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s not found", item.ID.String())
	}

	return nil
}

func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE menu_items
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		r.log.Error("Failed to delete menu item",
			zap.Error(err),
			zap.String("menu_item_id", id.String()),
		)
		return fmt.Errorf("delete menu item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s not found", id.String())
	}

	return nil
}
