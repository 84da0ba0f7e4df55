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

func (app *application) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := app.products.List(r.Context())
	if err != nil {
		app.logger.Error("product listing failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, products)
}

func (app *application) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := app.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		app.writeProductError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, p)
}

func (app *application) createProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := app.readProductRequest(w, r)
	if !ok {
		return
	}

	p, err := app.products.Create(r.Context(), req)
	if err != nil {
		app.writeProductError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, p)
}

func (app *application) updateProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := app.readProductRequest(w, r)
	if !ok {
		return
	}

	p, err := app.products.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		app.writeProductError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, p)
}

func (app *application) deleteProduct(w http.ResponseWriter, r *http.Request) {
	p, err := app.products.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		app.writeProductError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, p)
}

func (app *application) readProductRequest(w http.ResponseWriter, r *http.Request) (model.ProductRequest, bool) {
	var req model.ProductRequest

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
	if len(req.Name) < 3 || len(req.Name) > 255 {
		helpers.WriteError(w, http.StatusBadRequest, "name must be 3-255 characters")
		return req, false
	}
	if req.CategoryID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "categoryId is required")
		return req, false
	}
	if req.Stock < 0 {
		helpers.WriteError(w, http.StatusBadRequest, "stock must not be negative")
		return req, false
	}
	if req.Description == "" || req.Image == "" {
		helpers.WriteError(w, http.StatusBadRequest, "description and image are required")
		return req, false
	}
	if req.Price < 0 {
		helpers.WriteError(w, http.StatusBadRequest, "price must not be negative")
		return req, false
	}
	if req.Ratings < 0 || req.Ratings > 5 {
		helpers.WriteError(w, http.StatusBadRequest, "ratings must be between 0 and 5")
		return req, false
	}
	return req, true
}

func (app *application) writeProductError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		helpers.WriteError(w, http.StatusBadRequest, "Invalid product ID")
	case errors.Is(err, repository.ErrCategoryNotFound):
		helpers.WriteError(w, http.StatusBadRequest, "Invalid category ID")
	case errors.Is(err, repository.ErrProductNotFound):
		helpers.WriteError(w, http.StatusNotFound, "The product with the given ID was not found")
	default:
		app.logger.Error("product operation failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
