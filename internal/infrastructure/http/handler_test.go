package httptransport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/mfcastilho/payment-gateway-go/internal/application/payment"
	domain "github.com/mfcastilho/payment-gateway-go/internal/domain/payment"
	httptransport "github.com/mfcastilho/payment-gateway-go/internal/infrastructure/http"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubInitiator struct {
	result *app.InitiateResult
	err    error
	input  app.InitiateInput
}

func (s *stubInitiator) Execute(ctx context.Context, input app.InitiateInput) (*app.InitiateResult, error) {
	_ = ctx
	s.input = input
	return s.result, s.err
}

type stubChecker struct {
	result *app.CheckStatusResult
	err    error
}

func (s *stubChecker) Execute(ctx context.Context, input app.CheckStatusInput) (*app.CheckStatusResult, error) {
	_ = ctx
	return s.result, s.err
}

func doRequest(t *testing.T, handler *httptransport.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Router().ServeHTTP(rec, req)
	return rec
}

func TestCreatePayment(t *testing.T) {
	paymentID := domain.ID(uuid.NewString())
	initiator := &stubInitiator{
		result: &app.InitiateResult{PaymentID: paymentID, Status: domain.StatusPending},
	}
	handler := httptransport.NewHandler(initiator, &stubChecker{})

	productID := uuid.NewString()
	rec := doRequest(t, handler, http.MethodPost, "/api/v1/payments",
		`{"amount":150,"currency":"BRL","method":"PIX","product_id":"`+productID+`"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, paymentID.String(), resp["paymentId"])
	assert.Equal(t, "pending", resp["status"])

	assert.Equal(t, 150.0, initiator.input.Amount)
	assert.Equal(t, domain.CurrencyBRL, initiator.input.Currency)
	assert.Equal(t, domain.MethodPix, initiator.input.Method)
	assert.Equal(t, productID, initiator.input.ProductID)
}

func TestCreatePaymentValidation(t *testing.T) {
	handler := httptransport.NewHandler(&stubInitiator{}, &stubChecker{})
	productID := uuid.NewString()

	cases := []struct {
		name string
		body string
	}{
		{"missing amount", `{"currency":"BRL","method":"PIX","product_id":"` + productID + `"}`},
		{"negative amount", `{"amount":-1,"currency":"BRL","method":"PIX","product_id":"` + productID + `"}`},
		{"unknown currency", `{"amount":10,"currency":"GBP","method":"PIX","product_id":"` + productID + `"}`},
		{"unknown method", `{"amount":10,"currency":"BRL","method":"BOLETO","product_id":"` + productID + `"}`},
		{"product id not uuid", `{"amount":10,"currency":"BRL","method":"PIX","product_id":"abc"}`},
		{"malformed json", `{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, handler, http.MethodPost, "/api/v1/payments", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreatePaymentProviderFailure(t *testing.T) {
	initiator := &stubInitiator{err: app.ErrExternalProvider}
	handler := httptransport.NewHandler(initiator, &stubChecker{})

	rec := doRequest(t, handler, http.MethodPost, "/api/v1/payments",
		`{"amount":150,"currency":"BRL","method":"PIX","product_id":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetPaymentStatus(t *testing.T) {
	paymentID := domain.ID(uuid.NewString())
	checker := &stubChecker{
		result: &app.CheckStatusResult{PaymentID: paymentID, Status: "processed"},
	}
	handler := httptransport.NewHandler(&stubInitiator{}, checker)

	rec := doRequest(t, handler, http.MethodGet, "/api/v1/payments/"+paymentID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, paymentID.String(), resp["paymentId"])
	assert.Equal(t, "processed", resp["status"])
}

func TestGetPaymentStatusNotFound(t *testing.T) {
	checker := &stubChecker{err: domain.ErrNotFound}
	handler := httptransport.NewHandler(&stubInitiator{}, checker)

	rec := doRequest(t, handler, http.MethodGet, "/api/v1/payments/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPaymentStatusMalformedID(t *testing.T) {
	handler := httptransport.NewHandler(&stubInitiator{}, &stubChecker{})

	rec := doRequest(t, handler, http.MethodGet, "/api/v1/payments/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	handler := httptransport.NewHandler(&stubInitiator{}, &stubChecker{})

	rec := doRequest(t, handler, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
