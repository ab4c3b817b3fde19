package domain

import (
	"fmt"
	"time"
)

// RentalStatus представляет статус аренды
type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "Active"
	RentalStatusOverdue   RentalStatus = "Overdue"
	RentalStatusCompleted RentalStatus = "Completed"
)

// LateFeePerDay - штраф за каждый день просрочки возврата
const LateFeePerDay = 25.0

// Rental - аренда, связывающая клиента и транспортное средство
// Customer и Vehicle - разделяемые ссылки на записи реестров агентства
type Rental struct {
	ID               string       `json:"id"`
	Customer         *Customer    `json:"customer"`
	Vehicle          *Vehicle     `json:"vehicle"`
	StartDate        time.Time    `json:"start_date"`
	EndDate          time.Time    `json:"end_date"`
	ActualReturnDate *time.Time   `json:"actual_return_date,omitempty"`
	TotalCost        float64      `json:"total_cost"`
	Completed        bool         `json:"completed"`
	Status           RentalStatus `json:"status"`
}

// RentalSummary - итог операции над арендой, возвращаемый вызывающему слою
type RentalSummary struct {
	RentalID         string       `json:"rental_id"`
	CustomerID       string       `json:"customer_id"`
	CustomerName     string       `json:"customer_name"`
	VehicleID        string       `json:"vehicle_id"`
	VehicleSummary   string       `json:"vehicle_summary"`
	StartDate        time.Time    `json:"start_date"`
	EndDate          time.Time    `json:"end_date"`
	ActualReturnDate *time.Time   `json:"actual_return_date,omitempty"`
	LateDays         int          `json:"late_days"`
	LateFee          float64      `json:"late_fee"`
	TotalCost        float64      `json:"total_cost"`
	Status           RentalStatus `json:"status"`
}

// Statistics - агрегированная статистика агентства
// TotalRevenue учитывает только завершенные аренды
type Statistics struct {
	TotalVehicles     int     `json:"total_vehicles"`
	AvailableVehicles int     `json:"available_vehicles"`
	RentedVehicles    int     `json:"rented_vehicles"`
	TotalCustomers    int     `json:"total_customers"`
	TotalRentals      int     `json:"total_rentals"`
	ActiveRentals     int     `json:"active_rentals"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// DaysBetween возвращает календарную разницу между датами в целых днях.
// Время суток и часовой пояс игнорируются
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// ClampDays приводит длительность к минимуму в 1 день.
// Нулевые и инвертированные интервалы тарифицируются как один день,
// сами даты при этом не изменяются
func ClampDays(days int) int {
	if days < 1 {
		return 1
	}
	return days
}

// IsOverdue сообщает, просрочена ли аренда на указанную дату.
// Overdue - производный статус: он не сохраняется и не мешает завершению
func (r *Rental) IsOverdue(now time.Time) bool {
	return !r.Completed && DaysBetween(r.EndDate, now) > 0
}

// StatusAt возвращает статус аренды на указанную дату: просроченная
// активная аренда отображается как Overdue, не меняя сохраненного статуса
func (r *Rental) StatusAt(now time.Time) RentalStatus {
	if r.Completed {
		return RentalStatusCompleted
	}
	if r.IsOverdue(now) {
		return RentalStatusOverdue
	}
	return RentalStatusActive
}

// Duration возвращает фактическую длительность аренды в днях
func (r *Rental) Duration() int {
	end := r.EndDate
	if r.ActualReturnDate != nil {
		end = *r.ActualReturnDate
	}
	return ClampDays(DaysBetween(r.StartDate, end))
}

// Summary формирует итог по аренде
func (r *Rental) Summary(lateDays int, lateFee float64) *RentalSummary {
	return &RentalSummary{
		RentalID:         r.ID,
		CustomerID:       r.Customer.ID,
		CustomerName:     r.Customer.FullName(),
		VehicleID:        r.Vehicle.ID,
		VehicleSummary:   r.Vehicle.Summary(),
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		ActualReturnDate: r.ActualReturnDate,
		LateDays:         lateDays,
		LateFee:          lateFee,
		TotalCost:        r.TotalCost,
		Status:           r.Status,
	}
}

// String возвращает однострочное описание аренды
func (r *Rental) String() string {
	return fmt.Sprintf("Rental %s: %s - %s (%s)", r.ID, r.Customer.FullName(), r.Vehicle.Summary(), r.Status)
}
