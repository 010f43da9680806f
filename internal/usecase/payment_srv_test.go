package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"restaurant-ordering/internal/data/entity"
	"restaurant-ordering/internal/dto/request"
	"restaurant-ordering/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newPaymentFixture(t *testing.T) (PaymentService, *memPaymentRepo, *memOrderRepo, entity.Actor) {
	t.Helper()

	payments := newMemPaymentRepo()
	orders := newMemOrderRepo()
	svc := NewPaymentService(newTestRepository(payments, orders), zap.NewNop())

	owner := entity.Actor{ID: uuid.New(), Role: entity.RoleUser}
	return svc, payments, orders, owner
}

func seedOrder(orders *memOrderRepo, userID uuid.UUID) uuid.UUID {
	order := &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrderNumber: "ORD-TEST",
		UserID:      userID,
		TotalPrice:  25.50,
	}
	orders.add(order)
	return order.ID
}

func TestPaymentCreateAndGet(t *testing.T) {
	svc, _, orders, owner := newPaymentFixture(t)
	orderID := seedOrder(orders, owner.ID)

	created, err := svc.Create(context.Background(), owner, &request.CreatePaymentRequest{
		OrderID:       orderID.String(),
		Amount:        25.50,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.Status != entity.PaymentStatusPending {
		t.Errorf("new payment status = %s, want pending", created.Status)
	}
	if created.TransactionID == "" {
		t.Error("new payment has no transaction id")
	}
	if created.OrderID != orderID.String() {
		t.Errorf("payment order id = %s, want %s", created.OrderID, orderID)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Amount != 25.50 || got.PaymentMethod != entity.PaymentMethodCard {
		t.Errorf("round-trip mismatch: amount=%v method=%s", got.Amount, got.PaymentMethod)
	}
	if got.TransactionID != created.TransactionID {
		t.Errorf("transaction id changed on read: %s vs %s", got.TransactionID, created.TransactionID)
	}
}

func TestPaymentCreateRejectsInvalidInput(t *testing.T) {
	svc, _, orders, owner := newPaymentFixture(t)
	orderID := seedOrder(orders, owner.ID)

	tests := []struct {
		name string
		req  request.CreatePaymentRequest
	}{
		{"zero amount", request.CreatePaymentRequest{OrderID: orderID.String(), Amount: 0, PaymentMethod: "card"}},
		{"negative amount", request.CreatePaymentRequest{OrderID: orderID.String(), Amount: -5, PaymentMethod: "card"}},
		{"unknown method", request.CreatePaymentRequest{OrderID: orderID.String(), Amount: 10, PaymentMethod: "crypto"}},
		{"malformed order id", request.CreatePaymentRequest{OrderID: "not-a-uuid", Amount: 10, PaymentMethod: "card"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), owner, &tt.req)
			if !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("Create() error = %v, want validation error", err)
			}
		})
	}
}

func TestPaymentCreateUnknownOrder(t *testing.T) {
	svc, _, _, owner := newPaymentFixture(t)

	_, err := svc.Create(context.Background(), owner, &request.CreatePaymentRequest{
		OrderID:       uuid.New().String(),
		Amount:        10,
		PaymentMethod: "cash",
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Create() error = %v, want not found", err)
	}
}

func TestPaymentCreateForeignOrder(t *testing.T) {
	svc, _, orders, owner := newPaymentFixture(t)
	orderID := seedOrder(orders, uuid.New()) // someone else's order

	_, err := svc.Create(context.Background(), owner, &request.CreatePaymentRequest{
		OrderID:       orderID.String(),
		Amount:        10,
		PaymentMethod: "cash",
	})
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("Create() error = %v, want forbidden", err)
	}
}

func TestPaymentCreateDuplicateOrder(t *testing.T) {
	svc, _, orders, owner := newPaymentFixture(t)
	orderID := seedOrder(orders, owner.ID)

	req := &request.CreatePaymentRequest{OrderID: orderID.String(), Amount: 10, PaymentMethod: "card"}
	if _, err := svc.Create(context.Background(), owner, req); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err := svc.Create(context.Background(), owner, req)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("second Create() error = %v, want validation error", err)
	}
}

func TestPaymentOwnerEditsPendingContent(t *testing.T) {
	svc, _, orders, owner := newPaymentFixture(t)
	orderID := seedOrder(orders, owner.ID)

	created, err := svc.Create(context.Background(), owner, &request.CreatePaymentRequest{
		OrderID:       orderID.String(),
		Amount:        25.50,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	cash := "cash"
	updated, err := svc.UpdateContent(context.Background(), owner, created.ID, &request.UpdatePaymentRequest{
		PaymentMethod: &cash,
	})
	if err != nil {
		t.Fatalf("UpdateContent() error = %v", err)
	}
	if updated.PaymentMethod != entity.PaymentMethodCash {
		t.Errorf("method = %s, want cash", updated.PaymentMethod)
	}
	if updated.Amount != 25.50 {
		t.Errorf("amount changed on method-only edit: %v", updated.Amount)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.PaymentMethod != entity.PaymentMethodCash {
		t.Errorf("edit not persisted, method = %s", got.PaymentMethod)
	}
}

func TestPaymentContentLockedAfterCompletion(t *testing.T) {
	svc, _, orders, owner := newPaymentFixture(t)
	orderID := seedOrder(orders, owner.ID)
	manager := entity.Actor{ID: uuid.New(), Role: entity.RoleManager}

	created, err := svc.Create(context.Background(), owner, &request.CreatePaymentRequest{
		OrderID:       orderID.String(),
		Amount:        25.50,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), manager, created.ID, entity.PaymentStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	newAmount := 99.99
	_, err = svc.UpdateContent(context.Background(), owner, created.ID, &request.UpdatePaymentRequest{
		Amount: &newAmount,
	})
	if !errors.Is(err, apperr.ErrInvalidStateForEdit) {
		t.Fatalf("UpdateContent() after completion error = %v, want invalid-state-for-edit", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Amount != 25.50 {
		t.Errorf("amount mutated by rejected edit: %v, want 25.50", got.Amount)
	}
	if got.Status != entity.PaymentStatusCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}
}

func TestPaymentUserCannotChangeStatus(t *testing.T) {
	svc, _, orders, owner := newPaymentFixture(t)
	orderID := seedOrder(orders, owner.ID)

	created, err := svc.Create(context.Background(), owner, &request.CreatePaymentRequest{
		OrderID:       orderID.String(),
		Amount:        10,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for _, target := range []entity.PaymentStatus{
		entity.PaymentStatusCompleted,
		entity.PaymentStatusFailed,
	} {
		_, err := svc.UpdateStatus(context.Background(), owner, created.ID, target)
		if !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("UpdateStatus(%s) by owner error = %v, want forbidden", target, err)
		}
	}

	got, _ := svc.GetByID(context.Background(), created.ID)
	if got.Status != entity.PaymentStatusPending {
		t.Errorf("status = %s, want pending after rejected transitions", got.Status)
	}
}

func TestPaymentTerminalStateImmutable(t *testing.T) {
	svc, _, orders, owner := newPaymentFixture(t)
	orderID := seedOrder(orders, owner.ID)
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	created, err := svc.Create(context.Background(), owner, &request.CreatePaymentRequest{
		OrderID:       orderID.String(),
		Amount:        10,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), admin, created.ID, entity.PaymentStatusFailed); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	for _, target := range []entity.PaymentStatus{
		entity.PaymentStatusPending,
		entity.PaymentStatusCompleted,
		entity.PaymentStatusFailed,
	} {
		_, err := svc.UpdateStatus(context.Background(), admin, created.ID, target)
		if !errors.Is(err, apperr.ErrIllegalTransition) {
			t.Errorf("UpdateStatus(%s) on failed record error = %v, want illegal transition", target, err)
		}
	}
}

// Two staff members race to resolve the same pending payment in opposite
// directions. Exactly one transition wins; the loser sees an illegal
// transition against the already-terminal record.
func TestPaymentConcurrentStatusRace(t *testing.T) {
	svc, _, orders, owner := newPaymentFixture(t)
	orderID := seedOrder(orders, owner.ID)
	manager := entity.Actor{ID: uuid.New(), Role: entity.RoleManager}
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	created, err := svc.Create(context.Background(), owner, &request.CreatePaymentRequest{
		OrderID:       orderID.String(),
		Amount:        42,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = svc.UpdateStatus(context.Background(), manager, created.ID, entity.PaymentStatusCompleted)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = svc.UpdateStatus(context.Background(), admin, created.ID, entity.PaymentStatusFailed)
	}()
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, apperr.ErrIllegalTransition):
			lost++
		default:
			t.Fatalf("unexpected race outcome: %v", err)
		}
	}
	if won != 1 || lost != 1 {
		t.Fatalf("race outcomes: %d winners, %d illegal-transition losers; want exactly 1 each", won, lost)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.Status.Terminal() {
		t.Errorf("final status = %s, want a terminal state", got.Status)
	}
	switch {
	case errs[0] == nil && got.Status != entity.PaymentStatusCompleted:
		t.Errorf("completed won the race but final status = %s", got.Status)
	case errs[1] == nil && got.Status != entity.PaymentStatusFailed:
		t.Errorf("failed won the race but final status = %s", got.Status)
	}
}

func TestPaymentDelete(t *testing.T) {
	svc, _, orders, owner := newPaymentFixture(t)
	orderID := seedOrder(orders, owner.ID)
	stranger := entity.Actor{ID: uuid.New(), Role: entity.RoleUser}

	created, err := svc.Create(context.Background(), owner, &request.CreatePaymentRequest{
		OrderID:       orderID.String(),
		Amount:        10,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(context.Background(), stranger, created.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("Delete() by stranger error = %v, want forbidden", err)
	}

	if err := svc.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("Delete() by owner error = %v", err)
	}

	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want not found", err)
	}

	if err := svc.Delete(context.Background(), owner, created.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want not found", err)
	}
}

func TestPaymentListFiltersByStatus(t *testing.T) {
	svc, _, orders, owner := newPaymentFixture(t)
	manager := entity.Actor{ID: uuid.New(), Role: entity.RoleManager}

	var ids []string
	for i := 0; i < 3; i++ {
		orderID := seedOrder(orders, owner.ID)
		created, err := svc.Create(context.Background(), owner, &request.CreatePaymentRequest{
			OrderID:       orderID.String(),
			Amount:        float64(10 * (i + 1)),
			PaymentMethod: "card",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		ids = append(ids, created.ID)
	}

	if _, err := svc.UpdateStatus(context.Background(), manager, ids[1], entity.PaymentStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	all, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List(nil) error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List(nil) returned %d payments, want 3", len(all))
	}
	// creation order preserved
	for i, p := range all {
		if p.ID != ids[i] {
			t.Errorf("list position %d = %s, want %s", i, p.ID, ids[i])
		}
	}

	completed := entity.PaymentStatusCompleted
	only, err := svc.List(context.Background(), &completed)
	if err != nil {
		t.Fatalf("List(completed) error = %v", err)
	}
	if len(only) != 1 || only[0].ID != ids[1] {
		t.Fatalf("List(completed) = %d rows, want the single completed payment", len(only))
	}
}

func TestPaymentStorageFailureIsOpaque(t *testing.T) {
	svc, payments, orders, owner := newPaymentFixture(t)
	orderID := seedOrder(orders, owner.ID)

	created, err := svc.Create(context.Background(), owner, &request.CreatePaymentRequest{
		OrderID:       orderID.String(),
		Amount:        10,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	payments.failNext = errors.New("connection reset")

	_, err = svc.GetByID(context.Background(), created.ID)
	if err == nil {
		t.Fatal("GetByID() with failing store returned nil error")
	}
	if !apperr.IsStorage(err) {
		t.Errorf("GetByID() error = %v, want storage error", err)
	}
	for _, sentinel := range []error{
		apperr.ErrValidation, apperr.ErrNotFound, apperr.ErrForbidden,
		apperr.ErrIllegalTransition, apperr.ErrInvalidStateForEdit,
	} {
		if errors.Is(err, sentinel) {
			t.Errorf("storage failure leaked as %v", sentinel)
		}
	}
}
