package payment

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("payment: id is not a valid uuid")

// ID is the service-assigned payment identifier, always a valid UUID.
type ID string

// ParseID validates an externally supplied identifier.
func ParseID(s string) (ID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", ErrInvalidID
	}
	return ID(s), nil
}

func (id ID) String() string {
	return string(id)
}
