package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/victornavas/unified-api/internal/domain"
	"github.com/victornavas/unified-api/internal/http/handlers"
	"github.com/victornavas/unified-api/internal/http/response"
	"github.com/victornavas/unified-api/internal/service"
	"github.com/victornavas/unified-api/pkg/events"
)

type mockVisitRepo struct {
	visits []domain.Visit
}

func (m *mockVisitRepo) Create(_ context.Context, v *domain.Visit) (*domain.Visit, error) {
	out := *v
	out.ID = int64(len(m.visits) + 1)
	m.visits = append(m.visits, out)
	return &out, nil
}

type fixedGeo struct{ country string }

func (f fixedGeo) Country(context.Context, string) string { return f.country }

func setupLogsServer(t *testing.T) (*httptest.Server, *mockVisitRepo) {
	t.Helper()

	repo := &mockVisitRepo{}
	svc := service.NewVisitService(repo, fixedGeo{country: "Chile"}, events.NoopPublisher{})
	keys := map[string]string{"wedding": "sekrit"}
	h := handlers.NewLogsHandler(svc, keys, response.New(false))

	r := chi.NewRouter()
	r.Mount("/api/logs", h.Routes())

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, repo
}

func logRequest(t *testing.T, url, apiKey string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestRecordVisit_EnrichesAndStores(t *testing.T) {
	server, repo := setupLogsServer(t)

	resp := logRequest(t, server.URL+"/api/logs/wedding", "sekrit")

	var out domain.Visit
	decode(t, resp, &out)

	if out.Country != "Chile" || out.Browser != "Chrome" || out.OS != "Windows" || out.DeviceType != "Desktop" {
		t.Fatalf("unexpected enrichment: %+v", out)
	}
	if out.Message != "Visitor logged" {
		t.Fatalf("expected default message, got %q", out.Message)
	}
	if len(repo.visits) != 1 {
		t.Fatalf("expected 1 stored visit, got %d", len(repo.visits))
	}
}

func TestRecordVisit_UnknownSite_BadRequest(t *testing.T) {
	server, repo := setupLogsServer(t)

	resp := logRequest(t, server.URL+"/api/logs/portfolio", "sekrit")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if len(repo.visits) != 0 {
		t.Fatal("visit stored despite unknown site")
	}
}

func TestRecordVisit_WrongKey_Forbidden(t *testing.T) {
	server, repo := setupLogsServer(t)

	resp := logRequest(t, server.URL+"/api/logs/wedding", "nope")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if len(repo.visits) != 0 {
		t.Fatal("visit stored despite bad api key")
	}
}
