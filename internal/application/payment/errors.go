package payment

import "errors"

// ErrExternalProvider covers every way a gateway call can fail: transport
// errors, non-2xx responses, and unusable payloads. The workflows make no
// attempt to tell retryable failures apart; each call is attempted once.
var ErrExternalProvider = errors.New("payment: external provider failure")
