package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
)

// dateLayout - формат дат во входных данных API (без часового пояса)
const dateLayout = "2006-01-02"

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondError отправляет JSON ответ с ошибкой
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// respondDomainError отображает доменную ошибку на HTTP статус:
// NotFound - 404, занятость и повторное завершение - 409,
// отказ по праву на аренду - 422, неверные даты и данные - 400
func respondDomainError(w http.ResponseWriter, err error) bool {
	var eligibility *domain.EligibilityError
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrRentalNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrVehicleUnavailable),
		errors.Is(err, domain.ErrVehicleRented),
		errors.Is(err, domain.ErrRentalCompleted):
		respondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &eligibility):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidPayment),
		errors.Is(err, domain.ErrInvalidVehicleData),
		errors.Is(err, domain.ErrInvalidVehicleCategory),
		errors.Is(err, domain.ErrInvalidCustomerData):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		return false
	}
	return true
}

// parseDate разбирает календарную дату формата yyyy-mm-dd
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
