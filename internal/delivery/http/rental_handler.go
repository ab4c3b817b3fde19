package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/logger"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/usecase/agency"
)

// RentalService определяет интерфейс для жизненного цикла аренды
type RentalService interface {
	CreateRental(req *agency.CreateRentalRequest) (*domain.Rental, error)
	ExtendRental(rentalID string, newEndDate time.Time) (*domain.RentalSummary, error)
	CompleteRental(rentalID string) (*domain.RentalSummary, error)
	GetRental(rentalID string) (*domain.Rental, error)
	Rentals(activeOnly bool) []*domain.Rental
	Statistics() *domain.Statistics
	Now() time.Time
}

// RentalHandler обрабатывает запросы жизненного цикла аренды
type RentalHandler struct {
	rentalService RentalService
	logger        logger.Logger
}

// NewRentalHandler создает новый handler
func NewRentalHandler(rentalService RentalService, logger logger.Logger) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
		logger:        logger,
	}
}

// createRentalPayload - тело запроса на создание аренды; даты в формате yyyy-mm-dd
type createRentalPayload struct {
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// Create создает новую аренду
// POST /api/v1/rentals
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createRentalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	startDate, err := parseDate(payload.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid start_date, expected yyyy-mm-dd")
		return
	}
	endDate, err := parseDate(payload.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid end_date, expected yyyy-mm-dd")
		return
	}

	rental, err := h.rentalService.CreateRental(&agency.CreateRentalRequest{
		CustomerID: payload.CustomerID,
		VehicleID:  payload.VehicleID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		if respondDomainError(w, err) {
			return
		}
		h.logger.Error("Failed to create rental", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to create rental")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    rental,
	})
}

// List возвращает журнал аренд; при active=true - только незавершенные
// GET /api/v1/rentals?active=true
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	rentals := h.rentalService.Rentals(activeOnly)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    rentals,
	})
}

// GetByID возвращает аренду по ID вместе с производным статусом
// GET /api/v1/rentals/{id}
func (h *RentalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")

	rental, err := h.rentalService.GetRental(rentalID)
	if err != nil {
		if respondDomainError(w, err) {
			return
		}
		h.logger.Error("Failed to get rental", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get rental")
		return
	}

	now := h.rentalService.Now()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    rental,
		"status":  rental.StatusAt(now),
		"overdue": rental.IsOverdue(now),
	})
}

// Extend продлевает аренду до новой даты окончания
// POST /api/v1/rentals/{id}/extend
func (h *RentalHandler) Extend(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")

	var payload struct {
		NewEndDate string `json:"new_end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newEndDate, err := parseDate(payload.NewEndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid new_end_date, expected yyyy-mm-dd")
		return
	}

	summary, err := h.rentalService.ExtendRental(rentalID, newEndDate)
	if err != nil {
		if respondDomainError(w, err) {
			return
		}
		h.logger.Error("Failed to extend rental", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to extend rental")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    summary,
	})
}

// Return завершает аренду (возврат транспортного средства)
// POST /api/v1/rentals/{id}/return
func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")

	summary, err := h.rentalService.CompleteRental(rentalID)
	if err != nil {
		if respondDomainError(w, err) {
			return
		}
		h.logger.Error("Failed to complete rental", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to complete rental")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    summary,
	})
}

// Statistics возвращает агрегированную статистику агентства
// GET /api/v1/stats
func (h *RentalHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    h.rentalService.Statistics(),
	})
}
