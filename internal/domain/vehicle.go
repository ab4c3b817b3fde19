package domain

import "fmt"

// VehicleCategory представляет категорию транспортного средства
type VehicleCategory string

const (
	CategoryCar        VehicleCategory = "car"
	CategoryMotorcycle VehicleCategory = "motorcycle"
)

// CarSpec - атрибуты, специфичные для автомобилей
type CarSpec struct {
	Doors           int    `json:"doors"`
	FuelType        string `json:"fuel_type"`
	Transmission    string `json:"transmission"`
	AirConditioning bool   `json:"air_conditioning"`
}

// MotorcycleSpec - атрибуты, специфичные для мотоциклов
type MotorcycleSpec struct {
	EngineSize             int    `json:"engine_size"` // объем двигателя в CC
	Type                   string `json:"type"`        // Sport, Standard, Cruiser...
	Sidecar                bool   `json:"sidecar"`
	RequiresSpecialLicense bool   `json:"requires_special_license"`
}

// Vehicle - транспортное средство в автопарке агентства
// Категория моделируется тегированным вариантом: заполнен ровно один
// из указателей Car / Motorcycle в соответствии с полем Category
type Vehicle struct {
	ID              string          `json:"id"`
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	Year            int             `json:"year"`
	Color           string          `json:"color"`
	Mileage         float64         `json:"mileage"`
	Available       bool            `json:"available"`
	BasePricePerDay float64         `json:"base_price_per_day"`
	Category        VehicleCategory `json:"category"`

	Car        *CarSpec        `json:"car,omitempty"`
	Motorcycle *MotorcycleSpec `json:"motorcycle,omitempty"`
}

// Validate проверяет согласованность категории и её полезной нагрузки
func (v *Vehicle) Validate() error {
	if v.Brand == "" || v.Model == "" {
		return ErrInvalidVehicleData
	}
	if v.BasePricePerDay < 0 {
		return ErrInvalidVehicleData
	}
	switch v.Category {
	case CategoryCar:
		if v.Car == nil || v.Motorcycle != nil {
			return ErrInvalidVehicleData
		}
	case CategoryMotorcycle:
		if v.Motorcycle == nil || v.Car != nil {
			return ErrInvalidVehicleData
		}
	default:
		return ErrInvalidVehicleCategory
	}
	return nil
}

// RequiresSpecialLicense сообщает, нужна ли клиенту мотоциклетная лицензия
func (v *Vehicle) RequiresSpecialLicense() bool {
	return v.Category == CategoryMotorcycle && v.Motorcycle != nil && v.Motorcycle.RequiresSpecialLicense
}

// Summary возвращает краткое описание: "2022 Toyota Camry (Silver)"
func (v *Vehicle) Summary() string {
	return fmt.Sprintf("%d %s %s (%s)", v.Year, v.Brand, v.Model, v.Color)
}
