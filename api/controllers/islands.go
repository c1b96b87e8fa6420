package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/islandtracker/islandtracker-backend/api/responses"
	"github.com/islandtracker/islandtracker-backend/api/validators"
	"github.com/islandtracker/islandtracker-backend/internal/islands"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
	"github.com/islandtracker/islandtracker-backend/pkg/logger"
)

const (
	maxFilterLen = 64
	maxSearchLen = 200
)

// IslandsList serves the catalog with optional type, atoll and search filters.
func IslandsList(svc islands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "island service unavailable"))
			return
		}

		filter := islands.ListFilter{
			Type:   validators.QueryString(r, "type", maxFilterLen),
			Atoll:  validators.QueryString(r, "atoll", maxFilterLen),
			Search: validators.QueryString(r, "search", maxSearchLen),
		}
		list, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func IslandsGet(svc islands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "island service unavailable"))
			return
		}

		island, err := svc.Get(r.Context(), chi.URLParam(r, "islandID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, island)
	}
}

// IslandsCreate is mounted both at /islands and /admin/islands, always behind RequireAdmin.
func IslandsCreate(svc islands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "island service unavailable"))
			return
		}

		var input islands.IslandInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		island, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, island)
	}
}

func IslandsUpdate(svc islands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "island service unavailable"))
			return
		}

		var input islands.IslandInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		island, err := svc.Update(r.Context(), chi.URLParam(r, "islandID"), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, island)
	}
}

func IslandsDelete(svc islands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "island service unavailable"))
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "islandID")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func FeaturedIslands(svc islands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "island service unavailable"))
			return
		}

		list, err := svc.Featured(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
