package ecdh

import "errors"

// Common errors returned by the ECDH library
var (
	ErrEntropy        = errors.New("ecdh: entropy source unavailable")
	ErrInvalidPeerKey = errors.New("ecdh: invalid peer public key")
)
