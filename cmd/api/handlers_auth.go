package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/applenx/shop-api/internal/helpers"
	"github.com/applenx/shop-api/internal/model"
	"github.com/applenx/shop-api/internal/repository"
	"github.com/applenx/shop-api/internal/service"
)

// login handles POST /api/auth
func (app *application) login(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	var req model.LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(req.Email) < 5 || !strings.Contains(req.Email, "@") {
		helpers.WriteError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if len(req.Password) < 5 {
		helpers.WriteError(w, http.StatusBadRequest, "password must be at least 5 characters")
		return
	}

	_, tok, err := app.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			helpers.WriteError(w, http.StatusBadRequest, "Invalid email or password.")
			return
		}
		app.logger.Error("login failed", "email", req.Email, "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]string{"token": tok})
}

// registerUser handles POST /api/users
func (app *application) registerUser(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	var req model.RegisterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(req.Name) < 3 || len(req.Name) > 50 {
		helpers.WriteError(w, http.StatusBadRequest, "name must be 3-50 characters")
		return
	}
	if len(req.Email) < 5 || len(req.Email) > 255 || !strings.Contains(req.Email, "@") {
		helpers.WriteError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if len(req.Password) < 5 || len(req.Password) > 255 {
		helpers.WriteError(w, http.StatusBadRequest, "password must be 5-255 characters")
		return
	}

	u, tok, err := app.users.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			helpers.WriteError(w, http.StatusBadRequest, "User already registered.")
			return
		}
		app.logger.Error("register failed", "email", req.Email, "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"token": tok,
	})
}
