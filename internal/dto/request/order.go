package request

type OrderLineRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid4"`
	Quantity   int    `json:"quantity" validate:"required,min=1,max=50"`
}

type CreateOrderRequest struct {
	Items       []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	TableNumber *int               `json:"table_number,omitempty" validate:"omitempty,min=1"`
	Notes       *string            `json:"notes,omitempty" validate:"omitempty,max=500"`
}
