package usecase

import (
	"context"
	"sync"

	"restaurant-ordering/internal/data/entity"
	"restaurant-ordering/internal/data/repository"

	"github.com/google/uuid"
)

// memPaymentRepo is an in-memory PaymentRepository. A mutex guards the map so
// concurrent service calls exercise real interleaving instead of data races.
type memPaymentRepo struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*entity.Payment
	order    []uuid.UUID // insertion order, FindAll preserves it

	failNext error // next call returns this error, then resets
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (m *memPaymentRepo) takeFailure() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func (m *memPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}
	cp := *payment
	m.payments[payment.ID] = &cp
	m.order = append(m.order, payment.ID)
	return nil
}

func (m *memPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}
	p, ok := m.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memPaymentRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}
	for _, id := range m.order {
		if p, ok := m.payments[id]; ok && p.OrderID == orderID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPaymentRepo) FindAll(ctx context.Context, status *entity.PaymentStatus) ([]*entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}
	var out []*entity.Payment
	for _, id := range m.order {
		p, ok := m.payments[id]
		if !ok {
			continue
		}
		if status != nil && p.Status != *status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memPaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}
	cp := *payment
	m.payments[payment.ID] = &cp
	return nil
}

func (m *memPaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}
	delete(m.payments, id)
	return nil
}

// memOrderRepo is an in-memory OrderRepository; only the lookups the payment
// service needs are backed by data.
type memOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (m *memOrderRepo) add(order *entity.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *order
	m.orders[order.ID] = &cp
}

func (m *memOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	m.add(order)
	return nil
}

func (m *memOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	return nil, nil
}

func (m *memOrderRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (m *memOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, id)
	return nil
}

func newTestRepository(payments *memPaymentRepo, orders *memOrderRepo) *repository.Repository {
	return &repository.Repository{
		Payment: payments,
		Order:   orders,
	}
}
