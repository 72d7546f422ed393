package handlers_test

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securevault/security-service/internal/api/handlers"
	"github.com/securevault/security-service/internal/core/domain"
	"github.com/securevault/security-service/internal/infrastructure/crypto"
)

func newTestEncryptHandler(t *testing.T) *handlers.EncryptHandler {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	cipher, err := crypto.NewAESCipherService(hex.EncodeToString(key))
	require.NoError(t, err)

	return handlers.NewEncryptHandler(cipher)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestEncrypt_Then_Decrypt_RoundTrip(t *testing.T) {
	h := newTestEncryptHandler(t)

	rec := postJSON(t, h.Encrypt, handlers.EncryptRequest{Plaintext: "vault entry secret"})
	require.Equal(t, http.StatusOK, rec.Code)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.NotEmpty(t, env.Ciphertext)
	assert.NotEmpty(t, env.IV)
	assert.NotEmpty(t, env.Tag)

	rec = postJSON(t, h.Decrypt, handlers.DecryptRequest{
		Ciphertext: env.Ciphertext,
		IV:         env.IV,
		Tag:        env.Tag,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.DecryptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "vault entry secret", resp.Plaintext)
}

func TestEncrypt_EmptyPlaintext_Is400(t *testing.T) {
	h := newTestEncryptHandler(t)

	rec := postJSON(t, h.Encrypt, handlers.EncryptRequest{Plaintext: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEncrypt_InvalidJSON_Is400(t *testing.T) {
	h := newTestEncryptHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Encrypt(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecrypt_TamperedTag_Is422(t *testing.T) {
	h := newTestEncryptHandler(t)

	rec := postJSON(t, h.Encrypt, handlers.EncryptRequest{Plaintext: "tamper me"})
	require.Equal(t, http.StatusOK, rec.Code)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	tag, err := base64.StdEncoding.DecodeString(env.Tag)
	require.NoError(t, err)
	tag[0] ^= 0x01

	rec = postJSON(t, h.Decrypt, handlers.DecryptRequest{
		Ciphertext: env.Ciphertext,
		IV:         env.IV,
		Tag:        base64.StdEncoding.EncodeToString(tag),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "tamper signal must be 422, not 400")
	assert.Contains(t, rec.Body.String(), "tampered")
}

func TestDecrypt_MissingFields_Is400(t *testing.T) {
	h := newTestEncryptHandler(t)

	rec := postJSON(t, h.Decrypt, handlers.DecryptRequest{Ciphertext: "QUFB"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecrypt_InvalidBase64_Is400(t *testing.T) {
	h := newTestEncryptHandler(t)

	rec := postJSON(t, h.Decrypt, handlers.DecryptRequest{
		Ciphertext: "!!!not-base64!!!",
		IV:         "!!!not-base64!!!",
		Tag:        "!!!not-base64!!!",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "decode errors are client input bugs, not tamper signals")
}

func TestDecrypt_WrongLengthIV_Is400(t *testing.T) {
	h := newTestEncryptHandler(t)

	rec := postJSON(t, h.Encrypt, handlers.EncryptRequest{Plaintext: "short iv"})
	require.Equal(t, http.StatusOK, rec.Code)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	rec = postJSON(t, h.Decrypt, handlers.DecryptRequest{
		Ciphertext: env.Ciphertext,
		IV:         base64.StdEncoding.EncodeToString([]byte("tooshort")),
		Tag:        env.Tag,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
