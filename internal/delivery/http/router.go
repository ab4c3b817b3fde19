package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/delivery/http/middleware"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/config"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/jwt"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/logger"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	authHandler     *AuthHandler
	vehicleHandler  *VehicleHandler
	customerHandler *CustomerHandler
	rentalHandler   *RentalHandler
	tokenService    *jwt.TokenService
	config          *config.Config
	logger          logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(
	authHandler *AuthHandler,
	vehicleHandler *VehicleHandler,
	customerHandler *CustomerHandler,
	rentalHandler *RentalHandler,
	tokenService *jwt.TokenService,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		authHandler:     authHandler,
		vehicleHandler:  vehicleHandler,
		customerHandler: customerHandler,
		rentalHandler:   rentalHandler,
		tokenService:    tokenService,
		config:          config,
		logger:          logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: rt.config.CORS.AllowedOrigins,
		AllowedMethods: rt.config.CORS.AllowedMethods,
		AllowedHeaders: rt.config.CORS.AllowedHeaders,
	}))

	// Health check endpoint (публичный)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (без аутентификации)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", rt.authHandler.Login)
			r.Post("/refresh", rt.authHandler.Refresh)
		})

		// Витрина свободных транспортных средств и расчет стоимости
		r.Get("/vehicles", rt.vehicleHandler.ListAvailable)
		r.Get("/vehicles/{id}", rt.vehicleHandler.GetByID)
		r.Get("/vehicles/{id}/quote", rt.vehicleHandler.Quote)

		// Protected routes (только для оператора агентства)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(rt.tokenService))

			// Fleet management
			r.Post("/vehicles", rt.vehicleHandler.Create)
			r.Delete("/vehicles/{id}", rt.vehicleHandler.Delete)

			// Customer registry
			r.Route("/customers", func(r chi.Router) {
				r.Post("/", rt.customerHandler.Register)
				r.Get("/", rt.customerHandler.List)
				r.Get("/{id}", rt.customerHandler.GetByID)
				r.Post("/{id}/payments", rt.customerHandler.RecordPayment)
			})

			// Rental lifecycle
			r.Route("/rentals", func(r chi.Router) {
				r.Post("/", rt.rentalHandler.Create)
				r.Get("/", rt.rentalHandler.List)
				r.Get("/{id}", rt.rentalHandler.GetByID)
				r.Post("/{id}/extend", rt.rentalHandler.Extend)
				r.Post("/{id}/return", rt.rentalHandler.Return)
			})

			// Agency statistics
			r.Get("/stats", rt.rentalHandler.Statistics)
		})
	})

	return r
}
