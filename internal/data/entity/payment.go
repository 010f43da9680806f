package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Terminal reports whether no further status transition is defined.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// Payment is the persisted payment record. OrderID is immutable after
// creation; Amount and Method are content fields mutable only while pending;
// TransactionID is assigned by the service at creation and never changed by a
// client.
type Payment struct {
	BaseNoDelete
	OrderID       uuid.UUID     `db:"order_id"`
	Amount        float64       `db:"amount"`
	Method        PaymentMethod `db:"payment_method"`
	Status        PaymentStatus `db:"status"`
	TransactionID string        `db:"transaction_id"`
}
