package payment

import (
	"context"

	domain "github.com/mfcastilho/payment-gateway-go/internal/domain/payment"
)

// ProviderResult is the gateway's acknowledgement for both operations. The
// gateway's own status vocabulary is a plain string; only the success marker
// has meaning to the workflows.
type ProviderResult struct {
	Status string
	TxID   string
}

type InitiateRequest struct {
	Amount    float64
	Currency  domain.Currency
	Method    domain.Method
	ProductID string
}

// Provider is the outbound port to the external payment gateway.
type Provider interface {
	Initiate(ctx context.Context, req InitiateRequest) (*ProviderResult, error)
	// GetStatus is read-only; it must not create or mutate gateway state.
	GetStatus(ctx context.Context, txID string) (*ProviderResult, error)
}

type IDGenerator interface {
	NewID() domain.ID
}
