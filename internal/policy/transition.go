// Package policy holds the pure decision functions that gate every payment
// mutation. Same inputs always yield the same decision; nothing here touches
// storage or the clock.
package policy

import (
	"fmt"

	"restaurant-ordering/internal/data/entity"
	"restaurant-ordering/pkg/apperr"

	"github.com/google/uuid"
)

// allowedTransitions maps a current status to the statuses it may move to.
// Completed and failed are terminal: no outgoing edges, not even to self.
var allowedTransitions = map[entity.PaymentStatus][]entity.PaymentStatus{
	entity.PaymentStatusPending: {
		entity.PaymentStatusCompleted,
		entity.PaymentStatusFailed,
	},
	entity.PaymentStatusCompleted: {},
	entity.PaymentStatusFailed:    {},
}

// CanTransition checks if a transition from one status to another is allowed.
func CanTransition(from, to entity.PaymentStatus) bool {
	allowed, exists := allowedTransitions[from]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// AuthorizeStatusChange decides whether actor may move a payment from current
// to requested. Role is checked before the edge: the owning user role may
// never change status, regardless of the current state.
func AuthorizeStatusChange(actor entity.Actor, current, requested entity.PaymentStatus) error {
	if !actor.Role.Staff() {
		return fmt.Errorf("%w: role %s may not change payment status", apperr.ErrForbidden, actor.Role)
	}

	if !CanTransition(current, requested) {
		return fmt.Errorf("%w: %s -> %s", apperr.ErrIllegalTransition, current, requested)
	}

	return nil
}

// AuthorizeContentEdit decides whether actor may change amount/paymentMethod.
// Only the owning user may edit content, and only while the record is pending.
// Staff roles transition status but never touch content fields.
func AuthorizeContentEdit(actor entity.Actor, ownerID uuid.UUID, current entity.PaymentStatus) error {
	if actor.Role != entity.RoleUser || actor.ID != ownerID {
		return fmt.Errorf("%w: only the payment owner may edit content fields", apperr.ErrForbidden)
	}

	if current != entity.PaymentStatusPending {
		return fmt.Errorf("%w: payment is %s", apperr.ErrInvalidStateForEdit, current)
	}

	return nil
}

// AuthorizeDelete decides whether actor may remove the record. Staff may
// delete in any state; the owning user only while the record is still
// pending, since content is locked for the owner past that point.
func AuthorizeDelete(actor entity.Actor, ownerID uuid.UUID, current entity.PaymentStatus) error {
	if actor.Role.Staff() {
		return nil
	}

	if actor.ID != ownerID {
		return fmt.Errorf("%w: only staff or the payment owner may delete a payment", apperr.ErrForbidden)
	}

	if current != entity.PaymentStatusPending {
		return fmt.Errorf("%w: payment is %s", apperr.ErrInvalidStateForEdit, current)
	}

	return nil
}
