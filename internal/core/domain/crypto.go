package domain

import "context"

// Envelope is the three-part result of one authenticated encryption call.
// All fields are standard base64. The three parts must come from the same
// Encrypt call — mixing nonces or tags across calls fails verification.
type Envelope struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	Tag        string `json:"tag"`
}

// VaultCipher defines the hardened contract for vault entry encryption.
// It enforces AEAD (Authenticated Encryption with Associated Data) semantics:
// any tampering with ciphertext, IV or tag is detected on Decrypt.
type VaultCipher interface {
	// Encrypt produces a fresh envelope for the plaintext. Each call consumes
	// a new random nonce, so identical plaintexts never share ciphertext.
	Encrypt(ctx context.Context, plaintext []byte) (Envelope, error)

	// Decrypt verifies authenticity and returns the original plaintext.
	// Returns ErrAuthenticationFailed if the envelope was tampered with,
	// ErrMalformedEnvelope if it cannot even be decoded.
	Decrypt(ctx context.Context, env Envelope) ([]byte, error)
}
