package request

type CreatePaymentRequest struct {
	OrderID       string  `json:"order_id" validate:"required,uuid4"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=card cash"`
}

// UpdatePaymentRequest is the PUT body. It carries either a content patch
// (amount/payment_method) or a status patch, never both; the handler rejects
// mixed bodies before dispatching.
type UpdatePaymentRequest struct {
	Amount        *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	PaymentMethod *string  `json:"payment_method,omitempty" validate:"omitempty,oneof=card cash"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=pending completed failed"`
}

// IsStatusPatch reports whether the body requests a status transition.
func (r UpdatePaymentRequest) IsStatusPatch() bool {
	return r.Status != nil
}

// IsContentPatch reports whether the body edits content fields.
func (r UpdatePaymentRequest) IsContentPatch() bool {
	return r.Amount != nil || r.PaymentMethod != nil
}
