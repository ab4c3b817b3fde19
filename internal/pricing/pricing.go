// Package pricing вычисляет стоимость аренды для каждой категории
// транспортных средств: посуточные надбавки складываются независимо,
// скидка за длительную аренду применяется один раз к итогу с надбавками.
package pricing

import (
	"strings"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
)

// Надбавки и скидки по категориям
const (
	carACSurchargePerDay        = 5.0
	carAutomaticSurchargePerDay = 3.0
	carDiscountMinDays          = 7
	carDiscountFactor           = 0.9

	motoBigEngineCC              = 600
	motoBigEngineSurchargePerDay = 10.0
	motoSportSurchargePerDay     = 15.0
	motoSidecarSurchargePerDay   = 8.0
	motoDiscountMinDays          = 5
	motoDiscountFactor           = 0.85
)

// priceFunc вычисляет стоимость аренды для категории; days >= 1
type priceFunc func(v *domain.Vehicle, days int) float64

// Таблица диспетчеризации по категориям вместо виртуальных вызовов
var rules = map[domain.VehicleCategory]priceFunc{
	domain.CategoryCar:        carPrice,
	domain.CategoryMotorcycle: motorcyclePrice,
}

// Quote возвращает стоимость аренды транспортного средства на days дней.
// Длительность меньше одного дня молча приводится к одному дню
func Quote(v *domain.Vehicle, days int) (float64, error) {
	days = domain.ClampDays(days)

	rule, ok := rules[v.Category]
	if !ok {
		return 0, domain.ErrInvalidVehicleCategory
	}
	return rule(v, days), nil
}

func carPrice(v *domain.Vehicle, days int) float64 {
	price := v.BasePricePerDay * float64(days)

	if v.Car.AirConditioning {
		price += carACSurchargePerDay * float64(days)
	}
	if strings.EqualFold(v.Car.Transmission, "Automatic") {
		price += carAutomaticSurchargePerDay * float64(days)
	}

	// Скидка за недельную аренду применяется после надбавок
	if days >= carDiscountMinDays {
		price *= carDiscountFactor
	}
	return price
}

func motorcyclePrice(v *domain.Vehicle, days int) float64 {
	price := v.BasePricePerDay * float64(days)

	if v.Motorcycle.EngineSize > motoBigEngineCC {
		price += motoBigEngineSurchargePerDay * float64(days)
	}
	if strings.EqualFold(v.Motorcycle.Type, "Sport") {
		price += motoSportSurchargePerDay * float64(days)
	}
	if v.Motorcycle.Sidecar {
		price += motoSidecarSurchargePerDay * float64(days)
	}

	if days >= motoDiscountMinDays {
		price *= motoDiscountFactor
	}
	return price
}
