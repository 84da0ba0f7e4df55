package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/applenx/shop-api/internal/helpers"
	"github.com/applenx/shop-api/internal/model"
	"github.com/applenx/shop-api/internal/repository"
	"github.com/applenx/shop-api/internal/service"
)

// listRedeems handles GET /api/redeem
func (app *application) listRedeems(w http.ResponseWriter, r *http.Request) {
	redeems, err := app.redemptions.Redeems(r.Context())
	if err != nil {
		app.logger.Error("redeem listing failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, redeems)
}

// createRedeem handles POST /api/redeem
func (app *application) createRedeem(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	var req struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(req.Name) < 3 || len(req.Name) > 255 {
		helpers.WriteError(w, http.StatusBadRequest, "name must be 3-255 characters")
		return
	}

	rm, err := app.redemptions.CreateRedeem(r.Context(), req.Name)
	if err != nil {
		app.logger.Error("create redeem failed", "name", req.Name, "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, rm)
}

// submitRedemption handles POST /api/redeem/{id}/request
func (app *application) submitRedemption(w http.ResponseWriter, r *http.Request) {
	claims := currentClaims(r)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		helpers.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	var req model.SubmitRedemptionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	red, err := app.redemptions.Submit(r.Context(), chi.URLParam(r, "id"), userID, req.Amount, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			helpers.WriteError(w, http.StatusBadRequest, "Invalid redeem ID")
		case errors.Is(err, service.ErrInvalidAmount):
			helpers.WriteError(w, http.StatusBadRequest, "amount must be positive")
		case errors.Is(err, repository.ErrRedeemNotFound):
			helpers.WriteError(w, http.StatusNotFound, "Redeem not found")
		default:
			app.logger.Error("submit redemption failed", "userID", userID, "error", err)
			helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, red)
}
