package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/islandtracker/islandtracker-backend/internal/users"
	"github.com/islandtracker/islandtracker-backend/pkg/pagination"
)

type stubUserService struct {
	list      []users.UserDTO
	err       error
	lastID    string
	lastAdmin *bool
	lastPage  pagination.Params
}

func (s *stubUserService) Get(ctx context.Context, id string) (*users.UserDTO, error) {
	return &users.UserDTO{ID: id}, s.err
}

func (s *stubUserService) List(ctx context.Context, page pagination.Params) ([]users.UserDTO, error) {
	s.lastPage = page
	return s.list, s.err
}

func (s *stubUserService) SetAdmin(ctx context.Context, id string, isAdmin bool) (*users.UserDTO, error) {
	s.lastID = id
	s.lastAdmin = &isAdmin
	return &users.UserDTO{ID: id, IsAdmin: isAdmin}, s.err
}

func TestAdminUsersSetAdminFromQuery(t *testing.T) {
	svc := &stubUserService{}
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/admin/users/u1?is_admin=true", nil), "userID", "u1")
	resp := httptest.NewRecorder()

	AdminUsersSetAdmin(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastID != "u1" || svc.lastAdmin == nil || !*svc.lastAdmin {
		t.Fatalf("expected u1 promoted, got id=%q admin=%v", svc.lastID, svc.lastAdmin)
	}
}

func TestAdminUsersSetAdminFromBody(t *testing.T) {
	svc := &stubUserService{}
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/admin/users/u1", strings.NewReader(`{"is_admin":false}`)), "userID", "u1")
	resp := httptest.NewRecorder()

	AdminUsersSetAdmin(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastAdmin == nil || *svc.lastAdmin {
		t.Fatalf("expected demotion, got %v", svc.lastAdmin)
	}
}

func TestAdminUsersSetAdminRequiresFlag(t *testing.T) {
	svc := &stubUserService{}
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/admin/users/u1", strings.NewReader(`{}`)), "userID", "u1")
	resp := httptest.NewRecorder()

	AdminUsersSetAdmin(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if svc.lastAdmin != nil {
		t.Fatal("service should not be called without is_admin")
	}
}

func TestAdminUsersList(t *testing.T) {
	svc := &stubUserService{list: []users.UserDTO{{ID: "u1"}, {ID: "u2"}}}
	resp := httptest.NewRecorder()

	AdminUsersList(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/admin/users?limit=2", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var got []users.UserDTO
	decodeData(t, resp, &got)
	if len(got) != 2 || svc.lastPage.Limit != 2 {
		t.Fatalf("unexpected result %+v page %+v", got, svc.lastPage)
	}
}
