package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/VaibhavvvMehta/oops-car-rental/internal/delivery/http"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/jobs"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/config"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/jwt"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/logger"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/scheduler"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/usecase/agency"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/usecase/auth"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	log.Info("Starting rental agency API server", map[string]interface{}{
		"agency": cfg.Agency.Name,
	})

	// =========================================================================
	// Создание агентства (in-memory, единственный владелец коллекций)
	// =========================================================================

	agencyService := agency.NewService(&cfg.Agency, log)

	if cfg.Agency.SeedDemoFleet {
		seedDemoFleet(agencyService, log)
	}

	// =========================================================================
	// Создание JWT token service и auth service
	// =========================================================================

	tokenService := jwt.NewTokenService(
		cfg.JWT.SecretKey,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	authService := auth.NewService(&cfg.Auth, tokenService, log)

	// =========================================================================
	// Создание HTTP handlers и router
	// =========================================================================

	authHandler := deliveryHTTP.NewAuthHandler(authService, log)
	vehicleHandler := deliveryHTTP.NewVehicleHandler(agencyService, log)
	customerHandler := deliveryHTTP.NewCustomerHandler(agencyService, log)
	rentalHandler := deliveryHTTP.NewRentalHandler(agencyService, log)

	router := deliveryHTTP.NewRouter(
		authHandler,
		vehicleHandler,
		customerHandler,
		rentalHandler,
		tokenService,
		cfg,
		log,
	)

	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Планировщик фоновых задач
	// =========================================================================

	if cfg.Scheduler.Enabled {
		jobRunner := jobs.NewJobRunner(agencyService, log)
		sched := scheduler.NewScheduler(&cfg.Scheduler, jobRunner, log)
		sched.Start()
		defer sched.Stop()
	}

	// =========================================================================
	// Создание HTTP сервера
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			if err := srv.Close(); err != nil {
				log.Fatal("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}

// seedDemoFleet наполняет парк демонстрационными транспортными средствами
// для локального запуска
func seedDemoFleet(svc *agency.Service, log logger.Logger) {
	demo := []*agency.AddVehicleRequest{
		{
			Brand: "Toyota", Model: "Camry", Year: 2022, Color: "Silver",
			Mileage: 15000, BasePricePerDay: 40.0, Category: domain.CategoryCar,
			Car: &domain.CarSpec{Doors: 4, FuelType: "Gasoline", Transmission: "Automatic", AirConditioning: true},
		},
		{
			Brand: "Honda", Model: "Civic", Year: 2021, Color: "Red",
			Mileage: 30000, BasePricePerDay: 35.0, Category: domain.CategoryCar,
			Car: &domain.CarSpec{Doors: 4, FuelType: "Gasoline", Transmission: "Manual", AirConditioning: false},
		},
		{
			Brand: "Yamaha", Model: "MT-07", Year: 2023, Color: "Black",
			Mileage: 5000, BasePricePerDay: 25.0, Category: domain.CategoryMotorcycle,
			Motorcycle: &domain.MotorcycleSpec{EngineSize: 689, Type: "Standard", Sidecar: false, RequiresSpecialLicense: false},
		},
		{
			Brand: "Harley-Davidson", Model: "Street 750", Year: 2022, Color: "Blue",
			Mileage: 8000, BasePricePerDay: 45.0, Category: domain.CategoryMotorcycle,
			Motorcycle: &domain.MotorcycleSpec{EngineSize: 749, Type: "Cruiser", Sidecar: false, RequiresSpecialLicense: true},
		},
	}

	for _, req := range demo {
		if _, err := svc.AddVehicle(req); err != nil {
			log.Warn("Failed to seed demo vehicle", map[string]interface{}{
				"brand": req.Brand,
				"model": req.Model,
				"error": err.Error(),
			})
		}
	}

	log.Info("Demo fleet seeded", map[string]interface{}{
		"vehicles": len(demo),
	})
}
