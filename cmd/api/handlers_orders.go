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

// createOrder handles POST /api/orders
func (app *application) createOrder(w http.ResponseWriter, r *http.Request) {
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

	var req model.CreateOrderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Address == "" || req.City == "" || len(req.Items) == 0 || req.TotalAmount <= 0 {
		helpers.WriteError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	o, err := app.orders.Create(r.Context(), userID, req)
	if err != nil {
		app.logger.Error("create order failed", "userID", userID, "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Order created",
		"order":   o,
	})
}

// listOrders handles GET /api/orders
func (app *application) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orders.List(r.Context())
	if err != nil {
		app.logger.Error("order listing failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, orders)
}

// approveOrder handles PUT /api/orders/{id}/approve
func (app *application) approveOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	o, err := app.orders.Approve(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			helpers.WriteError(w, http.StatusBadRequest, "Invalid order ID")
		case errors.Is(err, repository.ErrOrderNotFound):
			helpers.WriteError(w, http.StatusNotFound, "Order with the given ID not found")
		default:
			app.logger.Error("approve order failed", "orderID", id, "error", err)
			helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	app.logger.Info("order approved", "orderID", id, "admin", currentClaims(r).UserID)

	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Order approved",
		"order":   o,
	})
}
