package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/applenx/shop-api/internal/helpers"
	"github.com/applenx/shop-api/internal/token"
)

type contextKey string

const claimsKey contextKey = "claims"

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.logger.Info("received request",
			"method", r.Method, "uri", r.URL.RequestURI(), "ip", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

// requireAuth verifies the bearer token and stores its claims on the
// request context.
func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			helpers.WriteError(w, http.StatusUnauthorized, "access denied, no token provided")
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			helpers.WriteError(w, http.StatusUnauthorized, "access denied, token missing")
			return
		}

		claims, err := app.tokens.Verify(raw)
		if err != nil {
			helpers.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin must run after requireAuth.
func (app *application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := currentClaims(r)
		if claims == nil || !claims.IsAdmin {
			helpers.WriteError(w, http.StatusForbidden, "access denied, admins only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func currentClaims(r *http.Request) *token.Claims {
	claims, _ := r.Context().Value(claimsKey).(*token.Claims)
	return claims
}
