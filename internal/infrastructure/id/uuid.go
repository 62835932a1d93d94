package id

import (
	"github.com/google/uuid"

	domain "github.com/mfcastilho/payment-gateway-go/internal/domain/payment"
)

// UUIDGenerator issues random v4 payment ids.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() domain.ID {
	return domain.ID(uuid.NewString())
}
