package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/securevault/security-service/internal/core/domain"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// NonceSize is the GCM nonce length in bytes. Never reuse a nonce under
	// the same key — reuse with GCM is catastrophic for confidentiality.
	NonceSize = 12
	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16
)

// AESCipherService implements domain.VaultCipher with AES-256-GCM.
// The key is validated once at construction and the AEAD is pre-built;
// after that the service is immutable and safe for concurrent use.
type AESCipherService struct {
	aead cipher.AEAD
}

// NewAESCipherService decodes and validates the hex-encoded 256-bit key.
// Any problem with the key material is domain.ErrInvalidKey — callers are
// expected to treat it as startup-fatal, not a per-request condition.
func NewAESCipherService(hexKey string) (*AESCipherService, error) {
	if hexKey == "" {
		return nil, fmt.Errorf("%w: key not set", domain.ErrInvalidKey)
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid hex", domain.ErrInvalidKey)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d (64 hex chars)", domain.ErrInvalidKey, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKey, err)
	}

	// Zeroize the temporary key slice once the AEAD owns its key schedule.
	defer func() {
		for i := range key {
			key[i] = 0
		}
	}()

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypto: GCM construction failed: %w", err)
	}

	return &AESCipherService{aead: aesGCM}, nil
}

// Encrypt seals the plaintext under a fresh random nonce and returns the
// three-part envelope. The tag is computed over the ciphertext only (no AAD),
// matching the storage format the backend expects.
func (s *AESCipherService) Encrypt(ctx context.Context, plaintext []byte) (domain.Envelope, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return domain.Envelope{}, fmt.Errorf("crypto: nonce generation failed: %w", err)
	}

	// Seal appends the 16-byte tag to the ciphertext; split them back out so
	// each envelope field travels independently.
	sealed := s.aead.Seal(nil, nonce, plaintext, nil)
	ciphertext, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	return domain.Envelope{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         base64.StdEncoding.EncodeToString(nonce),
		Tag:        base64.StdEncoding.EncodeToString(tag),
	}, nil
}

// Decrypt verifies and opens an envelope. Decode problems surface as
// domain.ErrMalformedEnvelope; a failed tag check is the distinct
// domain.ErrAuthenticationFailed so the boundary can flag tampering.
func (s *AESCipherService) Decrypt(ctx context.Context, env domain.Envelope) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext is not valid base64", domain.ErrMalformedEnvelope)
	}

	nonce, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: iv is not valid base64", domain.ErrMalformedEnvelope)
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", domain.ErrMalformedEnvelope, NonceSize, len(nonce))
	}

	tag, err := base64.StdEncoding.DecodeString(env.Tag)
	if err != nil {
		return nil, fmt.Errorf("%w: tag is not valid base64", domain.ErrMalformedEnvelope)
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: tag must be %d bytes, got %d", domain.ErrMalformedEnvelope, TagSize, len(tag))
	}

	// GCM verifies over ciphertext||tag; if any byte of the three parts was
	// altered, Open rejects the whole envelope.
	plaintext, err := s.aead.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return nil, domain.ErrAuthenticationFailed
	}

	return plaintext, nil
}
