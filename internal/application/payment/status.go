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

type CheckStatusInput struct {
	PaymentID domain.ID
}

type CheckStatusResult struct {
	PaymentID domain.ID
	// Status echoes what the gateway reported, which is wider than the
	// stored vocabulary: anything other than "processed" passes through
	// without touching the record.
	Status string
}

// CheckStatusUseCase reconciles a stored payment against the gateway.
type CheckStatusUseCase struct {
	provider Provider
	repo     domain.Repository
	logger   *zap.Logger
	tracer   trace.Tracer
}

func NewCheckStatusUseCase(provider Provider, repo domain.Repository, logger *zap.Logger) *CheckStatusUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckStatusUseCase{
		provider: provider,
		repo:     repo,
		logger:   logger.With(zap.String("use_case", "payment.check_status")),
		tracer:   otel.Tracer("application/payment"),
	}
}

func (uc *CheckStatusUseCase) Execute(ctx context.Context, input CheckStatusInput) (_ *CheckStatusResult, err error) {
	ctx, span := uc.tracer.Start(ctx, "CheckPaymentStatus",
		trace.WithAttributes(attribute.String("payment.id", input.PaymentID.String())),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.StatusChecks.WithLabelValues("error").Inc()
		} else {
			span.SetStatus(codes.Ok, "")
			metrics.StatusChecks.WithLabelValues("success").Inc()
		}
		span.End()
	}()

	entity, err := uc.repo.FindByID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}

	// Processed is terminal: the record is the source of truth and the
	// gateway is not consulted again.
	if entity.Processed() {
		span.AddEvent("payment.already_processed")
		return &CheckStatusResult{PaymentID: entity.ID, Status: string(entity.Status)}, nil
	}

	resp, err := uc.provider.GetStatus(ctx, entity.TxID)
	if err != nil {
		uc.logger.Error("provider_get_status_failed",
			zap.String("payment_id", entity.ID.String()),
			zap.String("tx_id", entity.TxID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrExternalProvider, err)
	}
	if resp == nil {
		return nil, ErrExternalProvider
	}

	if resp.Status == providerAccepted {
		entity.MarkAsProcessed()
		if err := uc.repo.Update(ctx, entity); err != nil {
			uc.logger.Error("payment_update_failed",
				zap.String("payment_id", entity.ID.String()),
				zap.Error(err),
			)
			return nil, fmt.Errorf("payment: update: %w", err)
		}
		uc.logger.Info("payment_processed",
			zap.String("payment_id", entity.ID.String()),
			zap.String("tx_id", entity.TxID),
		)
	}

	span.SetAttributes(attribute.String("payment.provider_status", resp.Status))
	return &CheckStatusResult{PaymentID: entity.ID, Status: resp.Status}, nil
}
