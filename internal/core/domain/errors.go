package domain

import "errors"

var (
	// ErrInvalidKey is returned when the configured encryption key is missing,
	// not valid hex, or not exactly 32 bytes. Fatal at startup — the service
	// must never come up without usable key material.
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrAuthenticationFailed is returned when GCM tag verification fails on
	// decrypt. The envelope was tampered with or corrupted; this is a security
	// event, not a client formatting mistake, and is never auto-retried.
	ErrAuthenticationFailed = errors.New("authentication failed: envelope tampered or corrupted")

	// ErrMalformedEnvelope is returned when an envelope field is not valid
	// base64 or has the wrong decoded length. A client input error, distinct
	// from ErrAuthenticationFailed.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrBreachServiceUnavailable is returned when the range lookup times out,
	// fails to connect, or answers with a non-success status. Callers must not
	// treat it as "not breached".
	ErrBreachServiceUnavailable = errors.New("breach lookup service unavailable")
)
