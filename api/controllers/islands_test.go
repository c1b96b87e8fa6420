package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/islandtracker/islandtracker-backend/internal/islands"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
)

type stubIslandService struct {
	list       []islands.IslandDTO
	island     *islands.IslandDTO
	err        error
	lastFilter islands.ListFilter
	lastID     string
	lastInput  islands.IslandInput
}

func (s *stubIslandService) List(ctx context.Context, filter islands.ListFilter) ([]islands.IslandDTO, error) {
	s.lastFilter = filter
	return s.list, s.err
}

func (s *stubIslandService) Get(ctx context.Context, id string) (*islands.IslandDTO, error) {
	s.lastID = id
	return s.island, s.err
}

func (s *stubIslandService) Featured(ctx context.Context) ([]islands.IslandDTO, error) {
	return s.list, s.err
}

func (s *stubIslandService) Create(ctx context.Context, input islands.IslandInput) (*islands.IslandDTO, error) {
	s.lastInput = input
	return s.island, s.err
}

func (s *stubIslandService) Update(ctx context.Context, id string, input islands.IslandInput) (*islands.IslandDTO, error) {
	s.lastID = id
	s.lastInput = input
	return s.island, s.err
}

func (s *stubIslandService) Delete(ctx context.Context, id string) error {
	s.lastID = id
	return s.err
}

func TestIslandsListPassesFilters(t *testing.T) {
	svc := &stubIslandService{list: []islands.IslandDTO{{ID: "i1", Name: "Malé"}}}
	req := httptest.NewRequest(http.MethodGet, "/api/islands?type=inhabited&atoll=Kaafu&search=%20beach%20", nil)
	resp := httptest.NewRecorder()

	IslandsList(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	want := islands.ListFilter{Type: "inhabited", Atoll: "Kaafu", Search: "beach"}
	if svc.lastFilter != want {
		t.Fatalf("expected filter %+v got %+v", want, svc.lastFilter)
	}
	var got []islands.IslandDTO
	decodeData(t, resp, &got)
	if len(got) != 1 || got[0].Name != "Malé" {
		t.Fatalf("unexpected islands %+v", got)
	}
}

func TestIslandsGetNotFound(t *testing.T) {
	svc := &stubIslandService{err: pkgerrors.New(pkgerrors.CodeNotFound, "Island not found")}
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/islands/missing", nil), "islandID", "missing")
	resp := httptest.NewRecorder()

	IslandsGet(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	if svc.lastID != "missing" {
		t.Fatalf("expected id from route got %q", svc.lastID)
	}
	if env := decodeError(t, resp); env.Error.Message != "Island not found" {
		t.Fatalf("unexpected message %q", env.Error.Message)
	}
}

func TestIslandsCreate(t *testing.T) {
	svc := &stubIslandService{island: &islands.IslandDTO{ID: "i1", Name: "Maafushi"}}
	body := `{"name":"Maafushi","atoll":"Kaafu","lat":3.94,"lng":73.49,"type":"inhabited","tags":["budget"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/islands", strings.NewReader(body))
	resp := httptest.NewRecorder()

	IslandsCreate(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if svc.lastInput.Name != "Maafushi" || len(svc.lastInput.Tags) != 1 {
		t.Fatalf("unexpected input %+v", svc.lastInput)
	}
}

func TestIslandsCreateRejectsOutOfRangeLatitude(t *testing.T) {
	svc := &stubIslandService{}
	body := `{"name":"Nowhere","atoll":"Kaafu","lat":123,"lng":73.49,"type":"inhabited"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/islands", strings.NewReader(body))
	resp := httptest.NewRecorder()

	IslandsCreate(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	env := decodeError(t, resp)
	if _, ok := env.Error.Details["lat"]; !ok {
		t.Fatalf("expected lat in details got %+v", env.Error.Details)
	}
}

func TestIslandsDelete(t *testing.T) {
	svc := &stubIslandService{}
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/admin/islands/i1", nil), "islandID", "i1")
	resp := httptest.NewRecorder()

	IslandsDelete(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", resp.Code)
	}
	if svc.lastID != "i1" {
		t.Fatalf("expected delete of i1 got %q", svc.lastID)
	}
}

func TestIslandsDeleteBlockedByVisits(t *testing.T) {
	svc := &stubIslandService{
		err: pkgerrors.Newf(pkgerrors.CodePrecondition, "Cannot delete island with %d visits", 2).WithDetails(map[string]any{"visits": 2}),
	}
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/admin/islands/i1", nil), "islandID", "i1")
	resp := httptest.NewRecorder()

	IslandsDelete(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	env := decodeError(t, resp)
	if env.Error.Code != string(pkgerrors.CodePrecondition) || env.Error.Message != "Cannot delete island with 2 visits" {
		t.Fatalf("unexpected error %+v", env.Error)
	}
}
