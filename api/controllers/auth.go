package controllers

import (
	"net/http"
	"strings"

	"github.com/islandtracker/islandtracker-backend/api/middleware"
	"github.com/islandtracker/islandtracker-backend/api/responses"
	"github.com/islandtracker/islandtracker-backend/api/validators"
	"github.com/islandtracker/islandtracker-backend/internal/auth"
	pkgerrors "github.com/islandtracker/islandtracker-backend/pkg/errors"
	"github.com/islandtracker/islandtracker-backend/pkg/logger"
)

// AuthRegister creates an ordinary account and returns it without credentials.
func AuthRegister(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

// loginBody is the JSON flavour of the login form; email is accepted in place of username.
type loginBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthLogin exchanges form-encoded (or JSON) credentials for a bearer token.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		req, err := decodeLogin(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func decodeLogin(r *http.Request) (auth.LoginRequest, error) {
	var req auth.LoginRequest
	if validators.IsFormRequest(r) {
		values, err := validators.DecodeForm(r)
		if err != nil {
			return req, err
		}
		req.Username = strings.TrimSpace(values.Get("username"))
		req.Password = values.Get("password")
	} else {
		var body loginBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			return req, err
		}
		req.Username = strings.TrimSpace(body.Username)
		if req.Username == "" {
			req.Username = strings.TrimSpace(body.Email)
		}
		req.Password = body.Password
	}
	if err := validators.Validate(&req); err != nil {
		return auth.LoginRequest{}, err
	}
	return req, nil
}

// UsersMe echoes the authenticated principal.
func UsersMe(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := middleware.PrincipalFromContext(r.Context())
		if principal == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Could not validate credentials"))
			return
		}
		responses.WriteSuccess(w, principal)
	}
}
