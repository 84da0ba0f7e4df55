package main

import (
	"net/http"

	"github.com/applenx/shop-api/internal/helpers"
)

func (app *application) healthCheck(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"env":    app.config.env,
	})
}
