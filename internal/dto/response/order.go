package response

import (
	"time"

	"restaurant-ordering/internal/data/entity"
)

type OrderLineResponse struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	UserID      string              `json:"user_id"`
	TableNumber *int                `json:"table_number,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
	TotalPrice  float64             `json:"total_price"`
	Items       []OrderLineResponse `json:"items,omitempty"`
	Payment     *PaymentResponse    `json:"payment,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func OrderToResponse(order *entity.Order, items []OrderLineResponse, payment *PaymentResponse) OrderResponse {
	return OrderResponse{
		ID:          order.ID.String(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID.String(),
		TableNumber: order.TableNumber,
		Notes:       order.Notes,
		TotalPrice:  order.TotalPrice,
		Items:       items,
		Payment:     payment,
		CreatedAt:   order.CreatedAt,
	}
}
