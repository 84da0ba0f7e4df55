package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "x-auth-token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(app.logRequest)

	r.Get("/health", app.healthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth", app.login)
		r.Post("/users", app.registerUser)

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", app.listCustomers)
			r.Post("/", app.createCustomer)
			r.Get("/{id}", app.getCustomer)
			r.Put("/{id}", app.updateCustomer)
			r.Delete("/{id}", app.deleteCustomer)
		})

		r.Route("/category", func(r chi.Router) {
			r.Get("/", app.listCategories)
			r.Get("/{id}", app.getCategory)
			r.Group(func(r chi.Router) {
				r.Use(app.requireAuth)
				r.Post("/", app.createCategory)
				r.Delete("/{id}", app.deleteCategory)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", app.listProducts)
			r.Post("/", app.createProduct)
			r.Get("/{id}", app.getProduct)
			r.Put("/{id}", app.updateProduct)
			r.Delete("/{id}", app.deleteProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", app.listOrders)
			r.With(app.requireAuth).Post("/", app.createOrder)
			r.With(app.requireAuth, app.requireAdmin).Put("/{id}/approve", app.approveOrder)
		})

		r.Route("/redeem", func(r chi.Router) {
			r.Get("/", app.listRedeems)
			r.With(app.requireAuth, app.requireAdmin).Post("/", app.createRedeem)
			r.With(app.requireAuth).Post("/{id}/request", app.submitRedemption)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(app.requireAuth)
			r.Use(app.requireAdmin)
			r.Get("/dashboard", app.adminDashboard)
			r.Get("/redemptionInfo", app.listRedemptionInfo)
			r.Post("/redemptionInfo/{id}/accept", app.acceptRedemption)
			r.Post("/redemptionInfo/{id}/reject", app.rejectRedemption)
		})
	})

	return r
}
