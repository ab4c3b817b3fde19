package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/logger"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/usecase/agency"
)

// MockRentalService - мок сервиса аренды
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(req *agency.CreateRentalRequest) (*domain.Rental, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) ExtendRental(rentalID string, newEndDate time.Time) (*domain.RentalSummary, error) {
	args := m.Called(rentalID, newEndDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalSummary), args.Error(1)
}

func (m *MockRentalService) CompleteRental(rentalID string) (*domain.RentalSummary, error) {
	args := m.Called(rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalSummary), args.Error(1)
}

func (m *MockRentalService) GetRental(rentalID string) (*domain.Rental, error) {
	args := m.Called(rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) Rentals(activeOnly bool) []*domain.Rental {
	args := m.Called(activeOnly)
	return args.Get(0).([]*domain.Rental)
}

func (m *MockRentalService) Statistics() *domain.Statistics {
	args := m.Called()
	return args.Get(0).(*domain.Statistics)
}

func (m *MockRentalService) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func testRental() *domain.Rental {
	return &domain.Rental{
		ID:        "R1001",
		Customer:  &domain.Customer{ID: "CUST001", FirstName: "John", LastName: "Doe"},
		Vehicle:   &domain.Vehicle{ID: "CAR001", Brand: "Toyota", Model: "Camry"},
		StartDate: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		TotalCost: 240.0,
		Status:    domain.RentalStatusActive,
	}
}

// withRouteParam добавляет параметр chi router в контекст запроса
func withRouteParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestRentalHandler_Create тестирует создание аренды
func TestRentalHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockRentalService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name: "успешное создание",
			requestBody: createRentalPayload{
				CustomerID: "CUST001",
				VehicleID:  "CAR001",
				StartDate:  "2024-01-05",
				EndDate:    "2024-01-10",
			},
			mockSetup: func(m *MockRentalService) {
				m.On("CreateRental", mock.AnythingOfType("*agency.CreateRentalRequest")).
					Return(testRental(), nil)
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				if success, ok := resp["success"].(bool); ok {
					assert.True(t, success)
				}
				if data, ok := resp["data"].(map[string]interface{}); ok {
					assert.Equal(t, "R1001", data["id"])
				}
			},
		},
		{
			name: "занятое транспортное средство",
			requestBody: createRentalPayload{
				CustomerID: "CUST001",
				VehicleID:  "CAR001",
				StartDate:  "2024-01-05",
				EndDate:    "2024-01-10",
			},
			mockSetup: func(m *MockRentalService) {
				m.On("CreateRental", mock.AnythingOfType("*agency.CreateRentalRequest")).
					Return(nil, domain.ErrVehicleUnavailable)
			},
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				if success, ok := resp["success"].(bool); ok {
					assert.False(t, success)
				}
			},
		},
		{
			name: "отказ по праву на аренду",
			requestBody: createRentalPayload{
				CustomerID: "CUST001",
				VehicleID:  "MOTO001",
				StartDate:  "2024-01-05",
				EndDate:    "2024-01-10",
			},
			mockSetup: func(m *MockRentalService) {
				m.On("CreateRental", mock.AnythingOfType("*agency.CreateRentalRequest")).
					Return(nil, &domain.EligibilityError{Reason: domain.ReasonNoLicense})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				if success, ok := resp["success"].(bool); ok {
					assert.False(t, success)
				}
			},
		},
		{
			name: "клиент не найден",
			requestBody: createRentalPayload{
				CustomerID: "CUST999",
				VehicleID:  "CAR001",
				StartDate:  "2024-01-05",
				EndDate:    "2024-01-10",
			},
			mockSetup: func(m *MockRentalService) {
				m.On("CreateRental", mock.AnythingOfType("*agency.CreateRentalRequest")).
					Return(nil, domain.ErrCustomerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				if success, ok := resp["success"].(bool); ok {
					assert.False(t, success)
				}
			},
		},
		{
			name: "неверный формат даты",
			requestBody: createRentalPayload{
				CustomerID: "CUST001",
				VehicleID:  "CAR001",
				StartDate:  "05.01.2024",
				EndDate:    "2024-01-10",
			},
			mockSetup:      func(m *MockRentalService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				if success, ok := resp["success"].(bool); ok {
					assert.False(t, success)
				}
			},
		},
		{
			name:           "невалидный JSON",
			requestBody:    "invalid",
			mockSetup:      func(m *MockRentalService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				if success, ok := resp["success"].(bool); ok {
					assert.False(t, success)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRentalService)
			tt.mockSetup(mockService)

			log := logger.NewDevelopment()
			handler := NewRentalHandler(mockService, log)

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestRentalHandler_GetByID тестирует получение аренды с производным статусом
func TestRentalHandler_GetByID(t *testing.T) {
	tests := []struct {
		name           string
		rentalID       string
		mockSetup      func(*MockRentalService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name:     "активная аренда",
			rentalID: "R1001",
			mockSetup: func(m *MockRentalService) {
				m.On("GetRental", "R1001").Return(testRental(), nil)
				m.On("Now").Return(time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC))
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, string(domain.RentalStatusActive), resp["status"])
				assert.Equal(t, false, resp["overdue"])
			},
		},
		{
			name:     "просроченная аренда",
			rentalID: "R1001",
			mockSetup: func(m *MockRentalService) {
				m.On("GetRental", "R1001").Return(testRental(), nil)
				m.On("Now").Return(time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC))
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, string(domain.RentalStatusOverdue), resp["status"])
				assert.Equal(t, true, resp["overdue"])
			},
		},
		{
			name:     "аренда не найдена",
			rentalID: "R9999",
			mockSetup: func(m *MockRentalService) {
				m.On("GetRental", "R9999").Return(nil, domain.ErrRentalNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				if success, ok := resp["success"].(bool); ok {
					assert.False(t, success)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRentalService)
			tt.mockSetup(mockService)

			log := logger.NewDevelopment()
			handler := NewRentalHandler(mockService, log)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals/"+tt.rentalID, nil)
			req = withRouteParam(req, "id", tt.rentalID)

			w := httptest.NewRecorder()
			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestRentalHandler_Extend тестирует продление аренды
func TestRentalHandler_Extend(t *testing.T) {
	newEnd := time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockRentalService)
		expectedStatus int
	}{
		{
			name:        "успешное продление",
			requestBody: map[string]string{"new_end_date": "2024-01-13"},
			mockSetup: func(m *MockRentalService) {
				m.On("ExtendRental", "R1001", newEnd).Return(&domain.RentalSummary{
					RentalID:  "R1001",
					TotalCost: 384.0,
					Status:    domain.RentalStatusActive,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "дата не позже текущего окончания",
			requestBody: map[string]string{"new_end_date": "2024-01-13"},
			mockSetup: func(m *MockRentalService) {
				m.On("ExtendRental", "R1001", newEnd).Return(nil, domain.ErrInvalidDateRange)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "завершенная аренда",
			requestBody: map[string]string{"new_end_date": "2024-01-13"},
			mockSetup: func(m *MockRentalService) {
				m.On("ExtendRental", "R1001", newEnd).Return(nil, domain.ErrRentalCompleted)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "неверный формат даты",
			requestBody:    map[string]string{"new_end_date": "13/01/2024"},
			mockSetup:      func(m *MockRentalService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRentalService)
			tt.mockSetup(mockService)

			log := logger.NewDevelopment()
			handler := NewRentalHandler(mockService, log)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/R1001/extend", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = withRouteParam(req, "id", "R1001")

			w := httptest.NewRecorder()
			handler.Extend(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// TestRentalHandler_Return тестирует возврат транспортного средства
func TestRentalHandler_Return(t *testing.T) {
	tests := []struct {
		name           string
		rentalID       string
		mockSetup      func(*MockRentalService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name:     "возврат с просрочкой",
			rentalID: "R1001",
			mockSetup: func(m *MockRentalService) {
				m.On("CompleteRental", "R1001").Return(&domain.RentalSummary{
					RentalID:  "R1001",
					LateDays:  3,
					LateFee:   75.0,
					TotalCost: 315.0,
					Status:    domain.RentalStatusCompleted,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				if data, ok := resp["data"].(map[string]interface{}); ok {
					assert.Equal(t, float64(3), data["late_days"])
					assert.Equal(t, 75.0, data["late_fee"])
					assert.Equal(t, 315.0, data["total_cost"])
				}
			},
		},
		{
			name:     "повторный возврат",
			rentalID: "R1001",
			mockSetup: func(m *MockRentalService) {
				m.On("CompleteRental", "R1001").Return(nil, domain.ErrRentalCompleted)
			},
			expectedStatus: http.StatusConflict,
			checkResponse:  func(t *testing.T, resp map[string]interface{}) {},
		},
		{
			name:     "аренда не найдена",
			rentalID: "R9999",
			mockSetup: func(m *MockRentalService) {
				m.On("CompleteRental", "R9999").Return(nil, domain.ErrRentalNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkResponse:  func(t *testing.T, resp map[string]interface{}) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRentalService)
			tt.mockSetup(mockService)

			log := logger.NewDevelopment()
			handler := NewRentalHandler(mockService, log)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/"+tt.rentalID+"/return", nil)
			req = withRouteParam(req, "id", tt.rentalID)

			w := httptest.NewRecorder()
			handler.Return(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestRentalHandler_List тестирует выборку журнала аренд
func TestRentalHandler_List(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		activeOnly bool
	}{
		{"весь журнал", "", false},
		{"только активные", "?active=true", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRentalService)
			mockService.On("Rentals", tt.activeOnly).Return([]*domain.Rental{testRental()})

			log := logger.NewDevelopment()
			handler := NewRentalHandler(mockService, log)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			if data, ok := response["data"].([]interface{}); ok {
				assert.Len(t, data, 1)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// TestRentalHandler_Statistics тестирует выдачу статистики
func TestRentalHandler_Statistics(t *testing.T) {
	mockService := new(MockRentalService)
	mockService.On("Statistics").Return(&domain.Statistics{
		TotalVehicles:     4,
		AvailableVehicles: 3,
		RentedVehicles:    1,
		TotalCustomers:    2,
		TotalRentals:      5,
		ActiveRentals:     1,
		TotalRevenue:      1240.0,
	})

	log := logger.NewDevelopment()
	handler := NewRentalHandler(mockService, log)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()

	handler.Statistics(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	if data, ok := response["data"].(map[string]interface{}); ok {
		assert.Equal(t, float64(4), data["total_vehicles"])
		assert.Equal(t, 1240.0, data["total_revenue"])
	}

	mockService.AssertExpectations(t)
}
