package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/islandtracker/islandtracker-backend/api/responses"
	"github.com/islandtracker/islandtracker-backend/api/validators"
	"github.com/islandtracker/islandtracker-backend/internal/users"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
	"github.com/islandtracker/islandtracker-backend/pkg/logger"
)

type setAdminBody struct {
	IsAdmin *bool `json:"is_admin" validate:"required"`
}

func AdminUsersList(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		list, err := svc.List(r.Context(), page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AdminUsersSetAdmin toggles the admin flag; is_admin may come from the query or a JSON body.
func AdminUsersSetAdmin(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		var isAdmin bool
		if strings.TrimSpace(r.URL.Query().Get("is_admin")) != "" {
			value, err := validators.ParseQueryBool(r, "is_admin", false)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			isAdmin = value
		} else {
			var body setAdminBody
			if err := validators.DecodeJSONBody(r, &body); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			isAdmin = *body.IsAdmin
		}

		user, err := svc.SetAdmin(r.Context(), chi.URLParam(r, "userID"), isAdmin)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}
