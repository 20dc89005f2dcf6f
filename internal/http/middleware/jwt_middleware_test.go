package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpmw "github.com/victornavas/unified-api/internal/http/middleware"
	"github.com/victornavas/unified-api/internal/http/response"
	"github.com/victornavas/unified-api/pkg/auth"
)

const secret = "test-secret"

func protectedServer(t *testing.T) *httptest.Server {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := httpmw.Claims(r)
		if claims == nil {
			t.Error("claims missing inside protected handler")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mw := httpmw.RequireAuth(secret, response.New(false))
	server := httptest.NewServer(mw(handler))
	t.Cleanup(server.Close)
	return server
}

func request(t *testing.T, url, authorization string) int {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestRequireAuth(t *testing.T) {
	server := protectedServer(t)

	valid, err := auth.NewToken(1, "victor", secret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := auth.NewToken(1, "victor", secret, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusForbidden},
		{"expired token", "Bearer " + expired, http.StatusForbidden},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := request(t, server.URL, tt.header); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
