package httptransport

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	app "github.com/mfcastilho/payment-gateway-go/internal/application/payment"
	domain "github.com/mfcastilho/payment-gateway-go/internal/domain/payment"
	"github.com/mfcastilho/payment-gateway-go/internal/pkg/metrics"
)

type PaymentInitiator interface {
	Execute(ctx context.Context, input app.InitiateInput) (*app.InitiateResult, error)
}

type PaymentStatusChecker interface {
	Execute(ctx context.Context, input app.CheckStatusInput) (*app.CheckStatusResult, error)
}

type Handler struct {
	initiate    PaymentInitiator
	checkStatus PaymentStatusChecker
}

func NewHandler(initiate PaymentInitiator, checkStatus PaymentStatusChecker) *Handler {
	return &Handler{
		initiate:    initiate,
		checkStatus: checkStatus,
	}
}

func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), metrics.GinMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.POST("/payments", h.handleCreatePayment)
	v1.GET("/payments/:paymentId", h.handleGetPaymentStatus)

	return router
}

type createPaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Currency  string  `json:"currency" binding:"required,oneof=BRL USD EUR"`
	Method    string  `json:"method" binding:"required,oneof=PIX PAYPAL CREDIT_CARD"`
	ProductID string  `json:"product_id" binding:"required,uuid"`
}

type paymentResponse struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

func (h *Handler) handleCreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.initiate.Execute(c.Request.Context(), app.InitiateInput{
		Amount:    req.Amount,
		Currency:  domain.Currency(req.Currency),
		Method:    domain.Method(req.Method),
		ProductID: req.ProductID,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, paymentResponse{
		PaymentID: result.PaymentID.String(),
		Status:    string(result.Status),
	})
}

func (h *Handler) handleGetPaymentStatus(c *gin.Context) {
	paymentID, err := domain.ParseID(c.Param("paymentId"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.checkStatus.Execute(c.Request.Context(), app.CheckStatusInput{
		PaymentID: paymentID,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, paymentResponse{
		PaymentID: result.PaymentID.String(),
		Status:    result.Status,
	})
}

func writeError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, http.StatusNotFound, err)
	case errors.Is(err, app.ErrExternalProvider):
		writeError(c, http.StatusBadGateway, err)
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrInvalidMethod),
		errors.Is(err, domain.ErrMissingProduct):
		writeError(c, http.StatusBadRequest, err)
	default:
		writeError(c, http.StatusInternalServerError, err)
	}
}
