package policy

import (
	"errors"
	"testing"

	"restaurant-ordering/internal/data/entity"
	"restaurant-ordering/pkg/apperr"

	"github.com/google/uuid"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entity.PaymentStatus
		to   entity.PaymentStatus
		want bool
	}{
		{"pending to completed", entity.PaymentStatusPending, entity.PaymentStatusCompleted, true},
		{"pending to failed", entity.PaymentStatusPending, entity.PaymentStatusFailed, true},
		{"pending to pending", entity.PaymentStatusPending, entity.PaymentStatusPending, false},
		{"completed to pending", entity.PaymentStatusCompleted, entity.PaymentStatusPending, false},
		{"completed to failed", entity.PaymentStatusCompleted, entity.PaymentStatusFailed, false},
		{"completed to completed", entity.PaymentStatusCompleted, entity.PaymentStatusCompleted, false},
		{"failed to pending", entity.PaymentStatusFailed, entity.PaymentStatusPending, false},
		{"failed to completed", entity.PaymentStatusFailed, entity.PaymentStatusCompleted, false},
		{"failed to failed", entity.PaymentStatusFailed, entity.PaymentStatusFailed, false},
		{"unknown status", entity.PaymentStatus("refunded"), entity.PaymentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestAuthorizeStatusChange(t *testing.T) {
	tests := []struct {
		name      string
		role      entity.Role
		current   entity.PaymentStatus
		requested entity.PaymentStatus
		wantErr   error
	}{
		{"manager completes pending", entity.RoleManager, entity.PaymentStatusPending, entity.PaymentStatusCompleted, nil},
		{"manager fails pending", entity.RoleManager, entity.PaymentStatusPending, entity.PaymentStatusFailed, nil},
		{"admin completes pending", entity.RoleAdmin, entity.PaymentStatusPending, entity.PaymentStatusCompleted, nil},
		{"admin fails pending", entity.RoleAdmin, entity.PaymentStatusPending, entity.PaymentStatusFailed, nil},
		{"user may not complete", entity.RoleUser, entity.PaymentStatusPending, entity.PaymentStatusCompleted, apperr.ErrForbidden},
		{"user may not fail", entity.RoleUser, entity.PaymentStatusPending, entity.PaymentStatusFailed, apperr.ErrForbidden},
		// Role is checked before the edge: a user hitting a terminal
		// record still gets forbidden, not an illegal transition.
		{"user on terminal record", entity.RoleUser, entity.PaymentStatusCompleted, entity.PaymentStatusPending, apperr.ErrForbidden},
		{"manager reopens completed", entity.RoleManager, entity.PaymentStatusCompleted, entity.PaymentStatusPending, apperr.ErrIllegalTransition},
		{"manager flips failed to completed", entity.RoleManager, entity.PaymentStatusFailed, entity.PaymentStatusCompleted, apperr.ErrIllegalTransition},
		{"admin self transition", entity.RoleAdmin, entity.PaymentStatusPending, entity.PaymentStatusPending, apperr.ErrIllegalTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := entity.Actor{ID: uuid.New(), Role: tt.role}
			err := AuthorizeStatusChange(actor, tt.current, tt.requested)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("AuthorizeStatusChange() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AuthorizeStatusChange() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeContentEdit(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		actor   entity.Actor
		current entity.PaymentStatus
		wantErr error
	}{
		{"owner edits pending", entity.Actor{ID: ownerID, Role: entity.RoleUser}, entity.PaymentStatusPending, nil},
		{"other user edits pending", entity.Actor{ID: uuid.New(), Role: entity.RoleUser}, entity.PaymentStatusPending, apperr.ErrForbidden},
		{"manager edits pending", entity.Actor{ID: uuid.New(), Role: entity.RoleManager}, entity.PaymentStatusPending, apperr.ErrForbidden},
		{"admin edits pending", entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, entity.PaymentStatusPending, apperr.ErrForbidden},
		{"owner edits completed", entity.Actor{ID: ownerID, Role: entity.RoleUser}, entity.PaymentStatusCompleted, apperr.ErrInvalidStateForEdit},
		{"owner edits failed", entity.Actor{ID: ownerID, Role: entity.RoleUser}, entity.PaymentStatusFailed, apperr.ErrInvalidStateForEdit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeContentEdit(tt.actor, ownerID, tt.current)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("AuthorizeContentEdit() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AuthorizeContentEdit() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeDelete(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		actor   entity.Actor
		current entity.PaymentStatus
		wantErr error
	}{
		{"manager deletes pending", entity.Actor{ID: uuid.New(), Role: entity.RoleManager}, entity.PaymentStatusPending, nil},
		{"manager deletes completed", entity.Actor{ID: uuid.New(), Role: entity.RoleManager}, entity.PaymentStatusCompleted, nil},
		{"admin deletes failed", entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, entity.PaymentStatusFailed, nil},
		{"owner deletes pending", entity.Actor{ID: ownerID, Role: entity.RoleUser}, entity.PaymentStatusPending, nil},
		{"owner deletes completed", entity.Actor{ID: ownerID, Role: entity.RoleUser}, entity.PaymentStatusCompleted, apperr.ErrInvalidStateForEdit},
		{"other user deletes pending", entity.Actor{ID: uuid.New(), Role: entity.RoleUser}, entity.PaymentStatusPending, apperr.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeDelete(tt.actor, ownerID, tt.current)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("AuthorizeDelete() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AuthorizeDelete() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
