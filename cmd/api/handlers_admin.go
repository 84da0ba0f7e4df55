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

// adminDashboard handles GET /api/admin/dashboard
func (app *application) adminDashboard(w http.ResponseWriter, r *http.Request) {
	claims := currentClaims(r)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		helpers.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	u, err := app.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		app.logger.Error("dashboard user lookup failed", "userID", userID, "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	admins, err := app.users.ListAdmins(r.Context())
	if err != nil {
		app.logger.Error("dashboard admin listing failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to the Admin Dashboard",
		"user": map[string]any{
			"id":      u.ID,
			"name":    u.Name,
			"email":   u.Email,
			"isAdmin": u.IsAdmin,
		},
		"admins": admins,
	})
}

// listRedemptionInfo handles GET /api/admin/redemptionInfo
func (app *application) listRedemptionInfo(w http.ResponseWriter, r *http.Request) {
	entries, err := app.redemptions.List(r.Context())
	if err != nil {
		app.logger.Error("redemption listing failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, entries)
}

// acceptRedemption handles POST /api/admin/redemptionInfo/{id}/accept
func (app *application) acceptRedemption(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	newBalance, err := app.redemptions.Approve(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			helpers.WriteError(w, http.StatusBadRequest, "Invalid redemption ID")
		case errors.Is(err, repository.ErrRedemptionNotFound):
			helpers.WriteError(w, http.StatusNotFound, "Redemption info not found")
		case errors.Is(err, repository.ErrAlreadyApproved):
			helpers.WriteError(w, http.StatusBadRequest, "Redemption already approved")
		case errors.Is(err, repository.ErrAlreadyRejected):
			helpers.WriteError(w, http.StatusBadRequest, "Redemption already rejected")
		case errors.Is(err, repository.ErrUserNotFound):
			// A pending redemption pointing at a missing user means the
			// store is referentially broken, not a routine miss.
			app.logger.Error("redemption references missing user",
				"redemptionID", id)
			helpers.WriteError(w, http.StatusNotFound, "User not found")
		default:
			app.logger.Error("accept redemption failed", "redemptionID", id, "error", err)
			helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	app.logger.Info("redemption approved",
		"redemptionID", id, "admin", currentClaims(r).UserID, "newBalance", newBalance)

	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"message":    "Redemption approved",
		"newBalance": newBalance,
	})
}

// rejectRedemption handles POST /api/admin/redemptionInfo/{id}/reject
func (app *application) rejectRedemption(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	var req model.RejectRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
	}

	reason, err := app.redemptions.Reject(r.Context(), id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			helpers.WriteError(w, http.StatusBadRequest, "Invalid redemption ID")
		case errors.Is(err, repository.ErrRedemptionNotFound):
			helpers.WriteError(w, http.StatusNotFound, "Redemption info not found")
		case errors.Is(err, repository.ErrAlreadyRejected):
			helpers.WriteError(w, http.StatusBadRequest, "Redemption already rejected")
		case errors.Is(err, repository.ErrAlreadyApproved):
			helpers.WriteError(w, http.StatusBadRequest, "Redemption already approved")
		default:
			app.logger.Error("reject redemption failed", "redemptionID", id, "error", err)
			helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Redemption rejected",
		"reason":  reason,
	})
}
