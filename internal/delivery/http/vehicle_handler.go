package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/logger"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/usecase/agency"
)

// VehicleService определяет интерфейс для операций с автопарком
type VehicleService interface {
	AddVehicle(req *agency.AddVehicleRequest) (*domain.Vehicle, error)
	RemoveVehicle(vehicleID string) error
	GetVehicle(vehicleID string) (*domain.Vehicle, error)
	AvailableVehicles(category domain.VehicleCategory) []*domain.Vehicle
	Quote(vehicleID string, days int) (float64, error)
}

// VehicleHandler обрабатывает запросы связанные с автопарком
type VehicleHandler struct {
	vehicleService VehicleService
	logger         logger.Logger
}

// NewVehicleHandler создает новый handler
func NewVehicleHandler(vehicleService VehicleService, logger logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
	}
}

// ListAvailable возвращает свободные транспортные средства,
// опционально по категории
// GET /api/v1/vehicles?category=car|motorcycle
func (h *VehicleHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	category := domain.VehicleCategory(r.URL.Query().Get("category"))
	if category != "" && category != domain.CategoryCar && category != domain.CategoryMotorcycle {
		respondError(w, http.StatusBadRequest, "Invalid vehicle category")
		return
	}

	vehicles := h.vehicleService.AvailableVehicles(category)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    vehicles,
	})
}

// GetByID возвращает транспортное средство по ID
// GET /api/v1/vehicles/{id}
func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")

	vehicle, err := h.vehicleService.GetVehicle(vehicleID)
	if err != nil {
		if respondDomainError(w, err) {
			return
		}
		h.logger.Error("Failed to get vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get vehicle")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    vehicle,
	})
}

// Quote возвращает стоимость аренды на указанное число дней
// GET /api/v1/vehicles/{id}/quote?days=N
func (h *VehicleHandler) Quote(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")

	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid days parameter")
		return
	}

	amount, err := h.vehicleService.Quote(vehicleID, days)
	if err != nil {
		if respondDomainError(w, err) {
			return
		}
		h.logger.Error("Failed to quote rental", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to quote rental")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"vehicle_id": vehicleID,
			"days":       days,
			"amount":     amount,
		},
	})
}

// Create добавляет транспортное средство в парк
// POST /api/v1/vehicles
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req agency.AddVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.AddVehicle(&req)
	if err != nil {
		if respondDomainError(w, err) {
			return
		}
		h.logger.Error("Failed to add vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to add vehicle")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    vehicle,
	})
}

// Delete удаляет транспортное средство из парка
// DELETE /api/v1/vehicles/{id}
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")

	if err := h.vehicleService.RemoveVehicle(vehicleID); err != nil {
		if respondDomainError(w, err) {
			return
		}
		h.logger.Error("Failed to remove vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to remove vehicle")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
