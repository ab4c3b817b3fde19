package agency

import (
	"fmt"
	"sync"
	"time"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/config"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/logger"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pricing"
)

// AddVehicleRequest - запрос на добавление транспортного средства в парк
type AddVehicleRequest struct {
	Brand           string                 `json:"brand" validate:"required"`
	Model           string                 `json:"model" validate:"required"`
	Year            int                    `json:"year"`
	Color           string                 `json:"color"`
	Mileage         float64                `json:"mileage"`
	BasePricePerDay float64                `json:"base_price_per_day"`
	Category        domain.VehicleCategory `json:"category" validate:"required"`
	Car             *domain.CarSpec        `json:"car,omitempty"`
	Motorcycle      *domain.MotorcycleSpec `json:"motorcycle,omitempty"`
}

// RegisterCustomerRequest - запрос на регистрацию клиента
type RegisterCustomerRequest struct {
	FirstName         string  `json:"first_name" validate:"required"`
	LastName          string  `json:"last_name" validate:"required"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone,omitempty"`
	LicenseNumber     string  `json:"license_number"`
	Age               int     `json:"age"`
	MotorcycleLicense bool    `json:"motorcycle_license"`
	CreditLimit       float64 `json:"credit_limit"`
}

// Service - оркестратор агентства проката. Единственный владелец трех
// коллекций (парк, клиенты, журнал аренд); все операции и выдача
// идентификаторов сериализуются одним мьютексом на экземпляр
type Service struct {
	mu sync.Mutex

	name    string
	address string
	phone   string

	fleet     []*domain.Vehicle
	customers []*domain.Customer
	rentals   []*domain.Rental

	nextCarSeq      int
	nextMotoSeq     int
	nextCustomerSeq int
	nextRentalSeq   int

	now    func() time.Time
	logger logger.Logger
}

// NewService создает новый экземпляр агентства.
// Стартовые значения счетчиков берутся из конфигурации
func NewService(cfg *config.AgencyConfig, log logger.Logger) *Service {
	return &Service{
		name:            cfg.Name,
		address:         cfg.Address,
		phone:           cfg.Phone,
		nextCarSeq:      cfg.CarSeqStart,
		nextMotoSeq:     cfg.MotoSeqStart,
		nextCustomerSeq: cfg.CustomerSeqStart,
		nextRentalSeq:   cfg.RentalSeqStart,
		now:             time.Now,
		logger:          log,
	}
}

// Name возвращает название агентства
func (s *Service) Name() string {
	return s.name
}

// SetClock заменяет источник текущего времени (для детерминированных тестов)
func (s *Service) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// AddVehicle добавляет транспортное средство в парк и присваивает ему
// идентификатор с префиксом категории (CAR001, MOTO001, ...)
func (s *Service) AddVehicle(req *AddVehicleRequest) (*domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicle := &domain.Vehicle{
		Brand:           req.Brand,
		Model:           req.Model,
		Year:            req.Year,
		Color:           req.Color,
		Mileage:         req.Mileage,
		Available:       true,
		BasePricePerDay: req.BasePricePerDay,
		Category:        req.Category,
		Car:             req.Car,
		Motorcycle:      req.Motorcycle,
	}

	if err := vehicle.Validate(); err != nil {
		return nil, err
	}

	switch vehicle.Category {
	case domain.CategoryCar:
		vehicle.ID = fmt.Sprintf("CAR%03d", s.nextCarSeq)
		s.nextCarSeq++
	case domain.CategoryMotorcycle:
		vehicle.ID = fmt.Sprintf("MOTO%03d", s.nextMotoSeq)
		s.nextMotoSeq++
	}

	s.fleet = append(s.fleet, vehicle)

	s.logger.Info("Vehicle added to fleet", map[string]interface{}{
		"vehicle_id": vehicle.ID,
		"category":   vehicle.Category,
		"summary":    vehicle.Summary(),
	})

	return vehicle, nil
}

// RemoveVehicle удаляет транспортное средство из парка.
// Отказывает, пока на него ссылается незавершенная аренда
func (s *Service) RemoveVehicle(vehicleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, v := range s.fleet {
		if v.ID == vehicleID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ErrVehicleNotFound
	}

	if s.hasOpenRental(vehicleID) {
		return domain.ErrVehicleRented
	}

	s.fleet = append(s.fleet[:idx], s.fleet[idx+1:]...)

	s.logger.Info("Vehicle removed from fleet", map[string]interface{}{
		"vehicle_id": vehicleID,
	})

	return nil
}

// RegisterCustomer регистрирует нового клиента
func (s *Service) RegisterCustomer(req *RegisterCustomerRequest) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := &domain.Customer{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		LicenseNumber:     req.LicenseNumber,
		Age:               req.Age,
		MotorcycleLicense: req.MotorcycleLicense,
		CreditLimit:       req.CreditLimit,
		Balance:           0,
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	customer.ID = fmt.Sprintf("CUST%03d", s.nextCustomerSeq)
	s.nextCustomerSeq++

	s.customers = append(s.customers, customer)

	s.logger.Info("Customer registered", map[string]interface{}{
		"customer_id": customer.ID,
		"name":        customer.FullName(),
	})

	return customer, nil
}

// Customers возвращает реестр клиентов в порядке регистрации
func (s *Service) Customers() []*domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*domain.Customer(nil), s.customers...)
}

// GetVehicle возвращает транспортное средство по ID
func (s *Service) GetVehicle(vehicleID string) (*domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v := s.findVehicle(vehicleID); v != nil {
		return v, nil
	}
	return nil, domain.ErrVehicleNotFound
}

// GetCustomer возвращает клиента по ID
func (s *Service) GetCustomer(customerID string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.findCustomer(customerID); c != nil {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

// GetRental возвращает аренду по ID
func (s *Service) GetRental(rentalID string) (*domain.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r := s.findRental(rentalID); r != nil {
		return r, nil
	}
	return nil, domain.ErrRentalNotFound
}

// AvailableVehicles возвращает свободные транспортные средства,
// опционально отфильтрованные по категории (пустая строка - без фильтра)
func (s *Service) AvailableVehicles(category domain.VehicleCategory) []*domain.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	available := make([]*domain.Vehicle, 0)
	for _, v := range s.fleet {
		if !v.Available {
			continue
		}
		if category != "" && v.Category != category {
			continue
		}
		available = append(available, v)
	}
	return available
}

// Quote возвращает стоимость аренды транспортного средства на days дней
func (s *Service) Quote(vehicleID string, days int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicle := s.findVehicle(vehicleID)
	if vehicle == nil {
		return 0, domain.ErrVehicleNotFound
	}
	return pricing.Quote(vehicle, days)
}

// RecordPayment принимает оплату от клиента и уменьшает его баланс
func (s *Service) RecordPayment(customerID string, amount float64) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.findCustomer(customerID)
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	if err := customer.Pay(amount); err != nil {
		return nil, err
	}

	s.logger.Info("Payment recorded", map[string]interface{}{
		"customer_id": customer.ID,
		"amount":      amount,
		"balance":     customer.Balance,
	})

	return customer, nil
}

// Statistics возвращает агрегированную статистику агентства.
// В выручку входят только завершенные аренды
func (s *Service) Statistics() *domain.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &domain.Statistics{
		TotalVehicles:  len(s.fleet),
		TotalCustomers: len(s.customers),
		TotalRentals:   len(s.rentals),
	}

	for _, v := range s.fleet {
		if v.Available {
			stats.AvailableVehicles++
		}
	}
	stats.RentedVehicles = stats.TotalVehicles - stats.AvailableVehicles

	for _, r := range s.rentals {
		if r.Completed {
			stats.TotalRevenue += r.TotalCost
		} else {
			stats.ActiveRentals++
		}
	}

	return stats
}

// findVehicle ищет транспортное средство линейным проходом; вызывать под мьютексом
func (s *Service) findVehicle(vehicleID string) *domain.Vehicle {
	for _, v := range s.fleet {
		if v.ID == vehicleID {
			return v
		}
	}
	return nil
}

// findCustomer ищет клиента; вызывать под мьютексом
func (s *Service) findCustomer(customerID string) *domain.Customer {
	for _, c := range s.customers {
		if c.ID == customerID {
			return c
		}
	}
	return nil
}

// findRental ищет аренду; вызывать под мьютексом
func (s *Service) findRental(rentalID string) *domain.Rental {
	for _, r := range s.rentals {
		if r.ID == rentalID {
			return r
		}
	}
	return nil
}

// hasOpenRental проверяет, есть ли незавершенная аренда на транспортное
// средство; вызывать под мьютексом
func (s *Service) hasOpenRental(vehicleID string) bool {
	for _, r := range s.rentals {
		if !r.Completed && r.Vehicle.ID == vehicleID {
			return true
		}
	}
	return false
}
