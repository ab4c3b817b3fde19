package domain

import (
	"errors"
	"fmt"
)

// Доменные ошибки - используются во всех слоях приложения

// Customer errors
var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerData = errors.New("invalid customer data")
	ErrInvalidPayment      = errors.New("invalid payment amount")
)

// Vehicle errors
var (
	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrVehicleUnavailable     = errors.New("vehicle is not available")
	ErrVehicleRented          = errors.New("vehicle has a non-completed rental")
	ErrInvalidVehicleData     = errors.New("invalid vehicle data")
	ErrInvalidVehicleCategory = errors.New("invalid vehicle category")
)

// Rental errors
var (
	ErrRentalNotFound   = errors.New("rental not found")
	ErrRentalCompleted  = errors.New("rental is already completed")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidDuration  = errors.New("invalid rental duration")
)

// Authorization errors
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// EligibilityReason - причина отказа при проверке права на аренду
type EligibilityReason string

const (
	ReasonUnderage    EligibilityReason = "underage"
	ReasonNoLicense   EligibilityReason = "no_motorcycle_license"
	ReasonCreditLimit EligibilityReason = "credit_limit_exceeded"
)

// EligibilityError возвращается, когда клиент не прошел одну из проверок
// права на аренду; Reason указывает, какая именно проверка не прошла
type EligibilityError struct {
	Reason EligibilityReason
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("customer is not eligible to rent: %s", e.Reason)
}
