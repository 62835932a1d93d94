package payment

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("payment: not found")
	ErrInvalidAmount   = errors.New("payment: amount must be greater than zero")
	ErrInvalidCurrency = errors.New("payment: unsupported currency")
	ErrInvalidMethod   = errors.New("payment: unsupported method")
	ErrMissingProduct  = errors.New("payment: product id is required")
	ErrMissingTxID     = errors.New("payment: transaction id is required")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
)

type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

type Method string

const (
	MethodPix        Method = "PIX"
	MethodPaypal     Method = "PAYPAL"
	MethodCreditCard Method = "CREDIT_CARD"
)

// Payment is the transactional record for a single charge against the
// external gateway. TxID is the gateway's reference; ID is ours.
type Payment struct {
	ID        ID
	Amount    float64
	Currency  Currency
	Method    Method
	ProductID string
	TxID      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New builds a pending payment. A payment only exists once the gateway has
// assigned a transaction id, so txID is mandatory.
func New(id ID, amount float64, currency Currency, method Method, productID, txID string) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !currency.Valid() {
		return nil, ErrInvalidCurrency
	}
	if !method.Valid() {
		return nil, ErrInvalidMethod
	}
	if productID == "" {
		return nil, ErrMissingProduct
	}
	if txID == "" {
		return nil, ErrMissingTxID
	}

	now := time.Now().UTC()
	return &Payment{
		ID:        id,
		Amount:    amount,
		Currency:  currency,
		Method:    method,
		ProductID: productID,
		TxID:      txID,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MarkAsProcessed moves the payment to its terminal status. The transition
// is monotonic; calling it on an already processed payment only refreshes
// UpdatedAt.
func (p *Payment) MarkAsProcessed() {
	p.Status = StatusProcessed
	p.touch()
}

func (p *Payment) Processed() bool {
	return p.Status == StatusProcessed
}

func (p *Payment) Clone() *Payment {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (p *Payment) touch() {
	p.UpdatedAt = time.Now().UTC()
}

func (c Currency) Valid() bool {
	switch c {
	case CurrencyBRL, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

func (m Method) Valid() bool {
	switch m {
	case MethodPix, MethodPaypal, MethodCreditCard:
		return true
	}
	return false
}
