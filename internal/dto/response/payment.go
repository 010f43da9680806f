package response

import (
	"time"

	"restaurant-ordering/internal/data/entity"
)

type PaymentResponse struct {
	ID            string               `json:"id"`
	OrderID       string               `json:"order_id"`
	Amount        float64              `json:"amount"`
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID string               `json:"transaction_id"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		OrderID:       payment.OrderID.String(),
		Amount:        payment.Amount,
		PaymentMethod: payment.Method,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}
