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

func (app *application) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := app.categories.List(r.Context())
	if err != nil {
		app.logger.Error("category listing failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, categories)
}

func (app *application) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := app.categories.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		app.writeCategoryError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, c)
}

func (app *application) createCategory(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()

	var req model.CategoryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(req.Name) < 3 || len(req.Name) > 50 {
		helpers.WriteError(w, http.StatusBadRequest, "name must be 3-50 characters")
		return
	}

	c, err := app.categories.Create(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryExists) {
			helpers.WriteError(w, http.StatusBadRequest, "category already exists")
			return
		}
		app.logger.Error("create category failed", "name", req.Name, "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, c)
}

func (app *application) deleteCategory(w http.ResponseWriter, r *http.Request) {
	c, err := app.categories.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		app.writeCategoryError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, c)
}

func (app *application) writeCategoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		helpers.WriteError(w, http.StatusBadRequest, "Invalid category ID")
	case errors.Is(err, repository.ErrCategoryNotFound):
		helpers.WriteError(w, http.StatusNotFound, "The category with the given ID was not found")
	default:
		app.logger.Error("category operation failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
