package domain

import "context"

// BreachResult is the outcome of a k-anonymity breach lookup.
// It is derived locally and never persisted.
type BreachResult struct {
	Breached bool `json:"breached"`
	Count    int  `json:"count"`
}

// BreachChecker reports whether a password appears in known breach corpora
// without ever transmitting the password or its full digest.
type BreachChecker interface {
	// Check hashes the password, queries the range API with the 5-character
	// digest prefix only, and matches the suffix locally. A lookup failure is
	// ErrBreachServiceUnavailable — never a silent "not breached".
	Check(ctx context.Context, password string) (BreachResult, error)
}
