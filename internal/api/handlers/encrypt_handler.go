package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/securevault/security-service/internal/core/domain"
)

// ==============================================================================
// 1. Request Payloads (Input Validation)
// ==============================================================================

type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
}

type DecryptRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required,base64"`
	IV         string `json:"iv" validate:"required,base64"`
	Tag        string `json:"tag" validate:"required,base64"`
}

type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// ==============================================================================
// 2. The Handler Struct (Dependency Injection)
// ==============================================================================

type EncryptHandler struct {
	Cipher domain.VaultCipher
}

func NewEncryptHandler(cipher domain.VaultCipher) *EncryptHandler {
	return &EncryptHandler{Cipher: cipher}
}

// ==============================================================================
// 3. HTTP Methods
// ==============================================================================

// Encrypt handles POST /encrypt
func (h *EncryptHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	var req EncryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	// Boundary rule: the cipher itself accepts any length, but an empty vault
	// entry is a caller bug.
	if req.Plaintext == "" {
		writeError(w, http.StatusBadRequest, "Plaintext cannot be empty")
		return
	}

	env, err := h.Cipher.Encrypt(r.Context(), []byte(req.Plaintext))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Encryption failed")
		return
	}

	writeJSON(w, http.StatusOK, env)
}

// Decrypt handles POST /decrypt. A failed authentication tag is answered with
// 422 — the payload is well-formed but its integrity is broken, which callers
// must treat as a tamper signal, not a formatting mistake.
func (h *EncryptHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	var req DecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "ciphertext, iv and tag must all be present and base64-encoded")
		return
	}

	plaintext, err := h.Cipher.Decrypt(r.Context(), domain.Envelope{
		Ciphertext: req.Ciphertext,
		IV:         req.IV,
		Tag:        req.Tag,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthenticationFailed):
			writeError(w, http.StatusUnprocessableEntity,
				"Decryption failed: authentication tag invalid. Data may have been tampered with.")
		case errors.Is(err, domain.ErrMalformedEnvelope):
			writeError(w, http.StatusBadRequest, "Decryption error: "+err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Decryption failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, DecryptResponse{Plaintext: string(plaintext)})
}
