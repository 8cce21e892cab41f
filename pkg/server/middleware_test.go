package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	cberrors "github.com/factorlab/craftbench/pkg/errors"
)

func TestRequestIDMiddleware(t *testing.T) {
	s := newTestServer(t)

	// A valid caller-supplied ID is kept.
	supplied := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
	req.Header.Set("X-Request-Id", supplied)
	rec := serve(t, s, req)
	if got := rec.Header().Get("X-Request-Id"); got != supplied {
		t.Errorf("X-Request-Id = %q, want %q", got, supplied)
	}

	// A malformed ID is replaced with a fresh one.
	req = httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid")
	rec = serve(t, s, req)
	got := rec.Header().Get("X-Request-Id")
	if got == "not-a-uuid" || got == "" {
		t.Errorf("X-Request-Id = %q, want replacement UUID", got)
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("replacement ID %q is not a UUID: %v", got, err)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	s := newTestServer(t)
	// Exhausted limiter: every request is rejected.
	s.rateLimiter.SetLimit(0)
	s.rateLimiter.SetBurst(0)

	rec := serve(t, s, httptest.NewRequest(http.MethodGet, "/v1/recipes", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}

func TestRateLimitHeaders(t *testing.T) {
	s := newTestServer(t)

	rec := serve(t, s, httptest.NewRequest(http.MethodGet, "/v1/recipes", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("missing %s header", h)
		}
	}
}

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code cberrors.ErrorCode
		want int
	}{
		{code: cberrors.ErrCodeNotFound, want: http.StatusNotFound},
		{code: cberrors.ErrCodeInvalidChoice, want: http.StatusBadRequest},
		{code: cberrors.ErrCodeInvalidRequest, want: http.StatusBadRequest},
		{code: cberrors.ErrCodeRateLimitExceeded, want: http.StatusTooManyRequests},
		{code: cberrors.ErrCodeMethodNotAllowed, want: http.StatusMethodNotAllowed},
		{code: cberrors.ErrCodeUnavailable, want: http.StatusServiceUnavailable},
		{code: cberrors.ErrCodeInternal, want: http.StatusInternalServerError},
		{code: cberrors.ErrorCode("SOMETHING_ELSE"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusForCode(tt.code); got != tt.want {
			t.Errorf("statusForCode(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{name: "no header", accept: "", want: "v1"},
		{name: "plain json", accept: "application/json", want: "v1"},
		{name: "vendor v1", accept: "application/vnd.factorlab.craftbench.v1+json", want: "v1"},
		{name: "vendor v1 minor", accept: "application/vnd.factorlab.craftbench.v1.0+json", want: "v1.0"},
		{name: "unsupported major", accept: "application/vnd.factorlab.craftbench.v2+json", want: "v1"},
		{name: "garbage version", accept: "application/vnd.factorlab.craftbench.vX+json", want: "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/machines", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if got := negotiateAPIVersion(req); got != tt.want {
				t.Errorf("negotiateAPIVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionMiddlewareSetsHeader(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
	req.Header.Set("Accept", "application/vnd.factorlab.craftbench.v1+json")
	rec := serve(t, s, req)
	if got := rec.Header().Get("X-API-Version"); got != "v1" {
		t.Errorf("X-API-Version = %q, want v1", got)
	}
}
