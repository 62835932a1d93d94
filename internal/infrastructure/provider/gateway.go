package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	app "github.com/mfcastilho/payment-gateway-go/internal/application/payment"
	"github.com/mfcastilho/payment-gateway-go/internal/pkg/metrics"
)

const (
	initiateEndpoint = "init-payment"
	statusEndpoint   = "list-payment"
)

type initiateRequest struct {
	Money         money  `json:"money"`
	PaymentMethod string `json:"payment_method"`
	ProductID     string `json:"product_id"`
}

type money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type gatewayResponse struct {
	Status string `json:"status"`
	TxID   string `json:"tx_id"`
}

// Gateway talks to the external payment provider over its REST API. All
// calls run through a circuit breaker so a dead gateway fails fast instead
// of tying up request handlers; there are no retries.
type Gateway struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewGateway(baseURL string, timeout time.Duration, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "payment_provider"))

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "payment-provider",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
			logger.Info("circuit_breaker_state_changed",
				zap.String("circuit", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	metrics.CircuitBreakerState.WithLabelValues("payment-provider").Set(0)

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &Gateway{
		client:  client,
		breaker: breaker,
		logger:  logger,
	}
}

func (g *Gateway) Initiate(ctx context.Context, req app.InitiateRequest) (*app.ProviderResult, error) {
	body := initiateRequest{
		Money: money{
			Amount:   req.Amount,
			Currency: string(req.Currency),
		},
		PaymentMethod: string(req.Method),
		ProductID:     req.ProductID,
	}

	return g.call(initiateEndpoint, func() (*resty.Response, error) {
		var out gatewayResponse
		return g.client.R().
			SetContext(ctx).
			SetBody(body).
			SetResult(&out).
			Post("/init-payment")
	})
}

func (g *Gateway) GetStatus(ctx context.Context, txID string) (*app.ProviderResult, error) {
	return g.call(statusEndpoint, func() (*resty.Response, error) {
		var out gatewayResponse
		return g.client.R().
			SetContext(ctx).
			SetResult(&out).
			Get("/list-payment/" + txID)
	})
}

// call runs one request through the breaker and collapses every failure
// mode into a single provider error.
func (g *Gateway) call(endpoint string, do func() (*resty.Response, error)) (*app.ProviderResult, error) {
	start := time.Now()
	outcome := "success"
	defer func() {
		metrics.ProviderRequests.WithLabelValues(endpoint, outcome).Inc()
		metrics.ProviderRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	result, err := g.breaker.Execute(func() (interface{}, error) {
		resp, err := do()
		if err != nil {
			return nil, fmt.Errorf("provider: request: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("provider: unexpected status %d", resp.StatusCode())
		}

		out, ok := resp.Result().(*gatewayResponse)
		if !ok || out == nil || out.Status == "" {
			return nil, fmt.Errorf("provider: unusable response payload")
		}
		return out, nil
	})
	if err != nil {
		outcome = "error"
		g.logger.Warn("provider_call_failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil, err
	}

	out := result.(*gatewayResponse)
	return &app.ProviderResult{Status: out.Status, TxID: out.TxID}, nil
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
