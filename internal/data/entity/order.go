package entity

import (
	"github.com/google/uuid"
)

type Order struct {
	BaseNoDelete
	OrderNumber string    `db:"order_number"`
	UserID      uuid.UUID `db:"user_id"`
	TableNumber *int      `db:"table_number"`
	Notes       *string   `db:"notes"`
	TotalPrice  float64   `db:"total_price"`
}

// OrderItem is one line of an order. UnitPrice is a snapshot of the menu
// price at ordering time.
type OrderItem struct {
	BaseSimple
	OrderID    uuid.UUID `db:"order_id"`
	MenuItemID uuid.UUID `db:"menu_item_id"`
	Quantity   int       `db:"quantity"`
	UnitPrice  float64   `db:"unit_price"`
}
