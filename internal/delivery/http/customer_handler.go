package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/logger"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/usecase/agency"
)

// CustomerService определяет интерфейс для операций с реестром клиентов
type CustomerService interface {
	RegisterCustomer(req *agency.RegisterCustomerRequest) (*domain.Customer, error)
	GetCustomer(customerID string) (*domain.Customer, error)
	Customers() []*domain.Customer
	RecordPayment(customerID string, amount float64) (*domain.Customer, error)
}

// CustomerHandler обрабатывает запросы связанные с клиентами
type CustomerHandler struct {
	customerService CustomerService
	logger          logger.Logger
}

// NewCustomerHandler создает новый handler
func NewCustomerHandler(customerService CustomerService, logger logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// Register регистрирует нового клиента
// POST /api/v1/customers
func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req agency.RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.customerService.RegisterCustomer(&req)
	if err != nil {
		if respondDomainError(w, err) {
			return
		}
		h.logger.Error("Failed to register customer", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to register customer")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    customer,
	})
}

// List возвращает всех зарегистрированных клиентов
// GET /api/v1/customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    h.customerService.Customers(),
	})
}

// GetByID возвращает клиента по ID
// GET /api/v1/customers/{id}
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	customer, err := h.customerService.GetCustomer(customerID)
	if err != nil {
		if respondDomainError(w, err) {
			return
		}
		h.logger.Error("Failed to get customer", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get customer")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    customer,
	})
}

// RecordPayment принимает оплату и уменьшает баланс клиента
// POST /api/v1/customers/{id}/payments
func (h *CustomerHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.customerService.RecordPayment(customerID, req.Amount)
	if err != nil {
		if respondDomainError(w, err) {
			return
		}
		h.logger.Error("Failed to record payment", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    customer,
	})
}
