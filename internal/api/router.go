package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rutvikm/agri-price-be/internal/api/handlers"
	"github.com/rutvikm/agri-price-be/internal/auth"
	"github.com/rutvikm/agri-price-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(environment string, a *auth.Auth, priceService services.PriceServiceProvider, accountService services.AccountServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Initialize handlers
	priceHandler := handlers.NewPriceHandler(priceService)
	accountHandler := handlers.NewAccountHandler(accountService, a)
	adminHandler := handlers.NewAdminHandler(priceService)

	r.Get("/health", healthHandler(environment))

	r.Route("/api", func(r chi.Router) {
		r.Get("/markets", priceHandler.Markets)
		r.Get("/dropdown-data", priceHandler.DropdownData)
		r.Get("/search", priceHandler.Search)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", accountHandler.Register)
			r.Post("/login", accountHandler.Login)
			r.With(a.Middleware()).Get("/me", accountHandler.Me)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(a.Middleware())
			r.Get("/items", adminHandler.List)
			r.Post("/add", adminHandler.Add)
			r.Put("/update/{id}", adminHandler.Update)
			r.Delete("/delete/{id}", adminHandler.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Route not found"}` + "\n"))
	})

	return r
}

func healthHandler(environment string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","environment":"` + environment + `","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}` + "\n"))
	}
}
