package payment

import "context"

type Repository interface {
	Save(ctx context.Context, payment *Payment) error
	// Update persists a mutated payment and fails with ErrNotFound when no
	// record with that id was ever saved. Blind upserts are rejected.
	Update(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id ID) (*Payment, error)
	FindAll(ctx context.Context) ([]*Payment, error)
}
