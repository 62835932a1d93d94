package payment

import (
	"context"
	"fmt"

	domain "github.com/mfcastilho/payment-gateway-go/internal/domain/payment"
	"github.com/mfcastilho/payment-gateway-go/internal/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// providerAccepted is the gateway's success marker on initiate. It means the
// gateway accepted the transaction, not that funds cleared; the stored status
// stays pending until a status check says otherwise.
const providerAccepted = "processed"

type InitiateInput struct {
	Amount    float64
	Currency  domain.Currency
	Method    domain.Method
	ProductID string
}

type InitiateResult struct {
	PaymentID domain.ID
	Status    domain.Status
}

// InitiateUseCase opens a transaction with the gateway and records it.
type InitiateUseCase struct {
	provider Provider
	repo     domain.Repository
	idGen    IDGenerator
	logger   *zap.Logger
	tracer   trace.Tracer
}

func NewInitiateUseCase(provider Provider, repo domain.Repository, idGen IDGenerator, logger *zap.Logger) *InitiateUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InitiateUseCase{
		provider: provider,
		repo:     repo,
		idGen:    idGen,
		logger:   logger.With(zap.String("use_case", "payment.initiate")),
		tracer:   otel.Tracer("application/payment"),
	}
}

func (uc *InitiateUseCase) Execute(ctx context.Context, input InitiateInput) (_ *InitiateResult, err error) {
	ctx, span := uc.tracer.Start(ctx, "InitiatePayment",
		trace.WithAttributes(
			attribute.Float64("payment.amount", input.Amount),
			attribute.String("payment.currency", string(input.Currency)),
			attribute.String("payment.method", string(input.Method)),
			attribute.String("payment.product_id", input.ProductID),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.PaymentsInitiated.WithLabelValues("error").Inc()
		} else {
			span.SetStatus(codes.Ok, "")
			metrics.PaymentsInitiated.WithLabelValues("success").Inc()
		}
		span.End()
	}()

	resp, err := uc.provider.Initiate(ctx, InitiateRequest{
		Amount:    input.Amount,
		Currency:  input.Currency,
		Method:    input.Method,
		ProductID: input.ProductID,
	})
	if err != nil {
		uc.logger.Error("provider_initiate_failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrExternalProvider, err)
	}
	if resp == nil || resp.Status != providerAccepted {
		uc.logger.Error("provider_rejected_payment",
			zap.String("provider_status", providerStatus(resp)),
		)
		return nil, ErrExternalProvider
	}

	entity, err := domain.New(uc.idGen.NewID(), input.Amount, input.Currency, input.Method, input.ProductID, resp.TxID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("payment.id", entity.ID.String()))

	if err := uc.repo.Save(ctx, entity); err != nil {
		uc.logger.Error("payment_save_failed",
			zap.String("payment_id", entity.ID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("payment: save: %w", err)
	}

	uc.logger.Info("payment_initiated",
		zap.String("payment_id", entity.ID.String()),
		zap.String("tx_id", entity.TxID),
		zap.Float64("amount", entity.Amount),
		zap.String("currency", string(entity.Currency)),
		zap.String("method", string(entity.Method)),
	)

	return &InitiateResult{PaymentID: entity.ID, Status: entity.Status}, nil
}

func providerStatus(resp *ProviderResult) string {
	if resp == nil {
		return "<absent>"
	}
	return resp.Status
}
