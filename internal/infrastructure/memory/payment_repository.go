package memory

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/mfcastilho/payment-gateway-go/internal/domain/payment"
)

// PaymentRepository is a mutex-guarded map store keyed by payment id.
// Entities are cloned on the way in and out so callers never share state
// with the map.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[domain.ID]*domain.Payment
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[domain.ID]*domain.Payment),
	}
}

func (r *PaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	_ = ctx
	if payment == nil || payment.ID == "" {
		return fmt.Errorf("payment repository: id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments[payment.ID] = payment.Clone()
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	_ = ctx
	if payment == nil || payment.ID == "" {
		return fmt.Errorf("payment repository: id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.payments[payment.ID]; !exists {
		return domain.ErrNotFound
	}

	r.payments[payment.ID] = payment.Clone()
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Payment, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return payment.Clone(), nil
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.Payment, 0, len(r.payments))
	for _, payment := range r.payments {
		all = append(all, payment.Clone())
	}
	return all, nil
}
