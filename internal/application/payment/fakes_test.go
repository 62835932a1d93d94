package payment_test

import (
	"context"

	app "github.com/mfcastilho/payment-gateway-go/internal/application/payment"
	domain "github.com/mfcastilho/payment-gateway-go/internal/domain/payment"
)

// fakeProvider scripts gateway responses and counts calls.
type fakeProvider struct {
	initiateResp *app.ProviderResult
	initiateErr  error
	statusResp   *app.ProviderResult
	statusErr    error

	initiateCalls int
	statusCalls   int
	lastTxID      string
}

func (f *fakeProvider) Initiate(ctx context.Context, req app.InitiateRequest) (*app.ProviderResult, error) {
	_ = ctx
	f.initiateCalls++
	return f.initiateResp, f.initiateErr
}

func (f *fakeProvider) GetStatus(ctx context.Context, txID string) (*app.ProviderResult, error) {
	_ = ctx
	f.statusCalls++
	f.lastTxID = txID
	return f.statusResp, f.statusErr
}

type staticIDGenerator struct {
	id domain.ID
}

func (g staticIDGenerator) NewID() domain.ID {
	return g.id
}
