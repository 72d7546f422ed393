package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/securevault/security-service/internal/core/domain"
)

type BreachResponse struct {
	Breached bool   `json:"breached"`
	Count    int    `json:"count"`
	Message  string `json:"message"`
}

type BreachHandler struct {
	Checker domain.BreachChecker
}

func NewBreachHandler(checker domain.BreachChecker) *BreachHandler {
	return &BreachHandler{Checker: checker}
}

// Check handles GET /breach-check?password=...
//
// The password arrives over the trusted internal link, is hashed in-process,
// and never travels further than the 5-char digest prefix. An unavailable
// range service is 503 — NEVER a reassuring "not breached".
func (h *BreachHandler) Check(w http.ResponseWriter, r *http.Request) {
	password := r.URL.Query().Get("password")
	if password == "" {
		writeError(w, http.StatusBadRequest, "Query parameter 'password' is required")
		return
	}

	result, err := h.Checker.Check(r.Context(), password)
	if err != nil {
		if errors.Is(err, domain.ErrBreachServiceUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "Breach check service unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, "Breach check failed")
		return
	}

	resp := BreachResponse{Breached: result.Breached, Count: result.Count}
	if result.Breached {
		resp.Message = fmt.Sprintf("⚠️ This password has appeared in %s data breaches. Change it immediately.", groupDigits(result.Count))
	} else {
		resp.Message = "✅ This password has not appeared in any known data breaches."
	}

	writeJSON(w, http.StatusOK, resp)
}

// groupDigits renders 1234567 as "1,234,567".
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return string(out)
}
