package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securevault/security-service/internal/api/handlers"
	"github.com/securevault/security-service/internal/core/domain"
)

// stubChecker returns a canned result without touching the network.
type stubChecker struct {
	result domain.BreachResult
	err    error
}

func (s *stubChecker) Check(ctx context.Context, password string) (domain.BreachResult, error) {
	return s.result, s.err
}

func doBreachCheck(t *testing.T, checker domain.BreachChecker, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := handlers.NewBreachHandler(checker)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)
	return rec
}

func TestBreachCheck_Breached_FormatsCount(t *testing.T) {
	rec := doBreachCheck(t, &stubChecker{result: domain.BreachResult{Breached: true, Count: 1234567}},
		"/breach-check?password=hunter2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.BreachResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Breached)
	assert.Equal(t, 1234567, resp.Count)
	assert.Contains(t, resp.Message, "1,234,567")
	assert.Contains(t, resp.Message, "Change it immediately")
}

func TestBreachCheck_Clean(t *testing.T) {
	rec := doBreachCheck(t, &stubChecker{result: domain.BreachResult{}},
		"/breach-check?password=definitely-unique")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.BreachResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Breached)
	assert.Equal(t, 0, resp.Count)
	assert.Contains(t, resp.Message, "not appeared")
}

func TestBreachCheck_MissingPassword_Is400(t *testing.T) {
	rec := doBreachCheck(t, &stubChecker{}, "/breach-check")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBreachCheck_Unavailable_Is503_NeverClean(t *testing.T) {
	rec := doBreachCheck(t, &stubChecker{err: domain.ErrBreachServiceUnavailable},
		"/breach-check?password=whatever")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"breached":false`,
		"an outage must never read as a clean verdict")
}
