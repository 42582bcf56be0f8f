package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vaultpass/passgen/internal/crypto"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireProfile(t *testing.T) {
	valid, err := crypto.IssueToken(5, "alice", "secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			h := RequireProfile("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, _ = ProfileIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && gotID != 5 {
				t.Errorf("profile id = %d, want 5", gotID)
			}
		})
	}
}

func TestProfileIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := ProfileIDFromContext(req.Context()); ok {
		t.Error("expected no profile id on a bare context")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	h := rl.Middleware(okHandler())
	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := do("10.0.0.1:1234"); got != http.StatusOK {
		t.Fatalf("first request status = %d", got)
	}
	if got := do("10.0.0.1:1235"); got != http.StatusOK {
		t.Fatalf("second request status = %d", got)
	}
	if got := do("10.0.0.1:1236"); got != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", got)
	}
	if got := do("10.0.0.2:1234"); got != http.StatusOK {
		t.Fatalf("other client status = %d, want 200", got)
	}

	now = now.Add(time.Second)
	if got := do("10.0.0.1:1237"); got != http.StatusOK {
		t.Fatalf("after refill status = %d, want 200", got)
	}
}

func TestRateLimiterPrune(t *testing.T) {
	rl := NewRateLimiter(5, 10)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("a")
	now = now.Add(visitorTTL / 2)
	rl.allow("b")
	now = now.Add(visitorTTL/2 + time.Second)

	if dropped := rl.Prune(); dropped != 1 {
		t.Errorf("Prune() dropped %d, want 1", dropped)
	}
	if _, ok := rl.visitors["b"]; !ok {
		t.Error("recent visitor should be kept")
	}
}

func TestLogger(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}
