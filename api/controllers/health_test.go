package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/islandtracker/islandtracker-backend/pkg/config"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
)

type stubPinger struct {
	err   error
	calls int
}

func (s *stubPinger) Ping(ctx context.Context) error {
	s.calls++
	return s.err
}

func TestHealthLive(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}
	resp := httptest.NewRecorder()

	HealthLive(cfg).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("X-IslandTracker-Env"); got != "dev" {
		t.Fatalf("expected env header dev got %q", got)
	}
}

func TestHealthReady(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}

	database := &stubPinger{}
	resp := httptest.NewRecorder()
	HealthReady(cfg, database, nil, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if resp.Code != http.StatusOK || database.calls != 1 {
		t.Fatalf("expected ready without redis, code=%d calls=%d", resp.Code, database.calls)
	}

	cache := &stubPinger{err: errors.New("connection refused")}
	resp = httptest.NewRecorder()
	HealthReady(cfg, database, cache, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when redis is down got %d", resp.Code)
	}
	if env := decodeError(t, resp); env.Error.Code != string(pkgerrors.CodeDependency) {
		t.Fatalf("expected dependency error got %s", env.Error.Code)
	}

	resp = httptest.NewRecorder()
	HealthReady(cfg, &stubPinger{err: errors.New("db down")}, nil, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when database is down got %d", resp.Code)
	}
}
