package agency

import (
	"fmt"
	"time"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pricing"
)

// CreateRentalRequest - запрос на создание аренды
type CreateRentalRequest struct {
	CustomerID string    `json:"customer_id" validate:"required"`
	VehicleID  string    `json:"vehicle_id" validate:"required"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// CreateRental создает аренду: находит клиента и транспортное средство,
// рассчитывает стоимость, проверяет право на аренду и помечает
// транспортное средство занятым. Клиент при создании не тарифицируется.
// Нулевая или инвертированная длительность тарифицируется как один день
func (s *Service) CreateRental(req *CreateRentalRequest) (*domain.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.findCustomer(req.CustomerID)
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	vehicle := s.findVehicle(req.VehicleID)
	if vehicle == nil {
		return nil, domain.ErrVehicleNotFound
	}

	if !vehicle.Available {
		s.logger.Warn("Vehicle is not available for rental", map[string]interface{}{
			"vehicle_id": vehicle.ID,
		})
		return nil, domain.ErrVehicleUnavailable
	}

	days := domain.ClampDays(domain.DaysBetween(req.StartDate, req.EndDate))
	cost, err := pricing.Quote(vehicle, days)
	if err != nil {
		return nil, fmt.Errorf("failed to quote rental: %w", err)
	}

	if err := customer.CanRent(vehicle, cost); err != nil {
		s.logger.Warn("Customer is not eligible to rent", map[string]interface{}{
			"customer_id": customer.ID,
			"vehicle_id":  vehicle.ID,
			"reason":      err.Error(),
		})
		return nil, err
	}

	rental := &domain.Rental{
		ID:        fmt.Sprintf("R%d", s.nextRentalSeq),
		Customer:  customer,
		Vehicle:   vehicle,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		TotalCost: cost,
		Completed: false,
		Status:    domain.RentalStatusActive,
	}
	s.nextRentalSeq++

	vehicle.Available = false
	s.rentals = append(s.rentals, rental)

	s.logger.Info("Rental created", map[string]interface{}{
		"rental_id":   rental.ID,
		"customer_id": customer.ID,
		"vehicle_id":  vehicle.ID,
		"days":        days,
		"total_cost":  rental.TotalCost,
	})

	return rental, nil
}

// ExtendRental продлевает аренду до newEndDate. Новая дата должна быть
// строго позже текущей даты окончания; право на аренду повторно не
// проверяется. Доплата рассчитывается по дополнительным дням
func (s *Service) ExtendRental(rentalID string, newEndDate time.Time) (*domain.RentalSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental := s.findRental(rentalID)
	if rental == nil {
		return nil, domain.ErrRentalNotFound
	}

	if rental.Completed {
		return nil, domain.ErrRentalCompleted
	}

	additionalDays := domain.DaysBetween(rental.EndDate, newEndDate)
	if additionalDays < 1 {
		return nil, domain.ErrInvalidDateRange
	}

	additionalCost, err := pricing.Quote(rental.Vehicle, additionalDays)
	if err != nil {
		return nil, fmt.Errorf("failed to quote extension: %w", err)
	}

	rental.EndDate = newEndDate
	rental.TotalCost += additionalCost

	s.logger.Info("Rental extended", map[string]interface{}{
		"rental_id":       rental.ID,
		"additional_days": additionalDays,
		"additional_cost": additionalCost,
		"total_cost":      rental.TotalCost,
	})

	return rental.Summary(0, 0), nil
}

// CompleteRental завершает аренду (возврат транспортного средства).
// При просрочке сначала списывается штраф, затем полная стоимость аренды -
// два отдельных списания, как их видит внешний наблюдатель баланса.
// Штраф списывается безусловно, минуя проверку кредитного лимита
func (s *Service) CompleteRental(rentalID string) (*domain.RentalSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rental := s.findRental(rentalID)
	if rental == nil {
		return nil, domain.ErrRentalNotFound
	}

	if rental.Completed {
		return nil, domain.ErrRentalCompleted
	}

	returnDate := s.now()
	rental.ActualReturnDate = &returnDate
	rental.Completed = true
	rental.Status = domain.RentalStatusCompleted
	rental.Vehicle.Available = true

	lateDays := 0
	lateFee := 0.0
	if days := domain.DaysBetween(rental.EndDate, returnDate); days > 0 {
		lateDays = days
		lateFee = float64(lateDays) * domain.LateFeePerDay
		rental.TotalCost += lateFee
		rental.Customer.Charge(lateFee)

		s.logger.Info("Late fee charged", map[string]interface{}{
			"rental_id":   rental.ID,
			"customer_id": rental.Customer.ID,
			"late_days":   lateDays,
			"late_fee":    lateFee,
		})
	}

	rental.Customer.Charge(rental.TotalCost)

	s.logger.Info("Rental completed", map[string]interface{}{
		"rental_id":   rental.ID,
		"customer_id": rental.Customer.ID,
		"vehicle_id":  rental.Vehicle.ID,
		"total_cost":  rental.TotalCost,
		"balance":     rental.Customer.Balance,
	})

	return rental.Summary(lateDays, lateFee), nil
}

// Rentals возвращает журнал аренд в порядке создания;
// при activeOnly=true - только незавершенные
func (s *Service) Rentals(activeOnly bool) []*domain.Rental {
	s.mu.Lock()
	defer s.mu.Unlock()

	rentals := make([]*domain.Rental, 0, len(s.rentals))
	for _, r := range s.rentals {
		if activeOnly && r.Completed {
			continue
		}
		rentals = append(rentals, r)
	}
	return rentals
}

// OverdueRentals возвращает незавершенные аренды, срок которых истек
func (s *Service) OverdueRentals() []*domain.Rental {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	overdue := make([]*domain.Rental, 0)
	for _, r := range s.rentals {
		if r.IsOverdue(now) {
			overdue = append(overdue, r)
		}
	}
	return overdue
}

// Now возвращает текущее время по часам агентства
func (s *Service) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now()
}
