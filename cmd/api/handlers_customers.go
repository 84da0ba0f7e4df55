package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/applenx/shop-api/internal/helpers"
	"github.com/applenx/shop-api/internal/model"
	"github.com/applenx/shop-api/internal/repository"
	"github.com/applenx/shop-api/internal/service"
)

func (app *application) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := app.customers.List(r.Context())
	if err != nil {
		app.logger.Error("customer listing failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, customers)
}

func (app *application) getCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := app.customers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		app.writeCustomerError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, c)
}

func (app *application) createCustomer(w http.ResponseWriter, r *http.Request) {
	req, ok := app.readCustomerRequest(w, r)
	if !ok {
		return
	}

	c, err := app.customers.Create(r.Context(), req)
	if err != nil {
		app.writeCustomerError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, c)
}

func (app *application) updateCustomer(w http.ResponseWriter, r *http.Request) {
	req, ok := app.readCustomerRequest(w, r)
	if !ok {
		return
	}

	c, err := app.customers.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		app.writeCustomerError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, c)
}

func (app *application) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := app.customers.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		app.writeCustomerError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, c)
}

func (app *application) readCustomerRequest(w http.ResponseWriter, r *http.Request) (model.CustomerRequest, bool) {
	var req model.CustomerRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return req, false
	}
	defer r.Body.Close()

	if err := json.Unmarshal(body, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return req, false
	}
	if len(req.Name) < 3 || len(req.Name) > 50 {
		helpers.WriteError(w, http.StatusBadRequest, "name must be 3-50 characters")
		return req, false
	}
	if len(req.PhoneNumber) < 5 || len(req.PhoneNumber) > 15 {
		helpers.WriteError(w, http.StatusBadRequest, "phoneNumber must be 5-15 characters")
		return req, false
	}
	return req, true
}

func (app *application) writeCustomerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		helpers.WriteError(w, http.StatusBadRequest, "Invalid customer ID")
	case errors.Is(err, repository.ErrCustomerNotFound):
		helpers.WriteError(w, http.StatusNotFound, "The customer with the given ID not found")
	default:
		app.logger.Error("customer operation failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
