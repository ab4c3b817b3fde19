package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
)

func testCar(base float64, transmission string, ac bool) *domain.Vehicle {
	return &domain.Vehicle{
		ID:              "CAR001",
		Brand:           "Toyota",
		Model:           "Camry",
		BasePricePerDay: base,
		Category:        domain.CategoryCar,
		Car: &domain.CarSpec{
			Doors:           4,
			FuelType:        "Gasoline",
			Transmission:    transmission,
			AirConditioning: ac,
		},
	}
}

func testMotorcycle(base float64, engineSize int, motoType string, sidecar bool) *domain.Vehicle {
	return &domain.Vehicle{
		ID:              "MOTO001",
		Brand:           "Yamaha",
		Model:           "MT-07",
		BasePricePerDay: base,
		Category:        domain.CategoryMotorcycle,
		Motorcycle: &domain.MotorcycleSpec{
			EngineSize: engineSize,
			Type:       motoType,
			Sidecar:    sidecar,
		},
	}
}

// TestQuote_Car проверяет тарификацию автомобилей
func TestQuote_Car(t *testing.T) {
	tests := []struct {
		name     string
		vehicle  *domain.Vehicle
		days     int
		expected float64
	}{
		{
			name:     "база без надбавок",
			vehicle:  testCar(40, "Manual", false),
			days:     3,
			expected: 120.0,
		},
		{
			name:    "кондиционер и автомат с недельной скидкой",
			vehicle: testCar(40, "Automatic", true),
			days:    7,
			// (40*7 + 5*7 + 3*7) * 0.9
			expected: 302.4,
		},
		{
			name:    "надбавки складываются независимо",
			vehicle: testCar(40, "Automatic", true),
			days:    6,
			// скидки нет: 6 дней < 7
			expected: 288.0,
		},
		{
			name:     "автомат без учета регистра",
			vehicle:  testCar(40, "AUTOMATIC", false),
			days:     2,
			expected: 86.0,
		},
		{
			name:     "скидка применяется к итогу с надбавками один раз",
			vehicle:  testCar(40, "Manual", false),
			days:     7,
			expected: 252.0,
		},
		{
			name:     "нулевая длительность тарифицируется как один день",
			vehicle:  testCar(40, "Manual", false),
			days:     0,
			expected: 40.0,
		},
		{
			name:     "отрицательная длительность тарифицируется как один день",
			vehicle:  testCar(40, "Manual", false),
			days:     -3,
			expected: 40.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := Quote(tt.vehicle, tt.days)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, amount, 1e-9)
		})
	}
}

// TestQuote_Motorcycle проверяет тарификацию мотоциклов
func TestQuote_Motorcycle(t *testing.T) {
	tests := []struct {
		name     string
		vehicle  *domain.Vehicle
		days     int
		expected float64
	}{
		{
			name:    "большой двигатель со скидкой за 5 дней",
			vehicle: testMotorcycle(25, 689, "Standard", false),
			days:    5,
			// (25*5 + 10*5) * 0.85
			expected: 148.75,
		},
		{
			name:     "без скидки на 4 дня",
			vehicle:  testMotorcycle(25, 689, "Standard", false),
			days:     4,
			expected: 140.0,
		},
		{
			name:    "все надбавки вместе",
			vehicle: testMotorcycle(25, 750, "Sport", true),
			days:    2,
			// (25 + 10 + 15 + 8) * 2
			expected: 116.0,
		},
		{
			name:     "ровно 600cc без надбавки за двигатель",
			vehicle:  testMotorcycle(25, 600, "Standard", false),
			days:     2,
			expected: 50.0,
		},
		{
			name:     "sport без учета регистра",
			vehicle:  testMotorcycle(25, 400, "sport", false),
			days:     1,
			expected: 40.0,
		},
		{
			name:    "скидка после надбавок",
			vehicle: testMotorcycle(25, 400, "Sport", false),
			days:    5,
			// (25*5 + 15*5) * 0.85
			expected: 170.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := Quote(tt.vehicle, tt.days)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, amount, 1e-9)
		})
	}
}

// TestQuote_UnknownCategory проверяет отказ для неизвестной категории
func TestQuote_UnknownCategory(t *testing.T) {
	vehicle := &domain.Vehicle{
		ID:              "X001",
		BasePricePerDay: 10,
		Category:        domain.VehicleCategory("bicycle"),
	}

	_, err := Quote(vehicle, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidVehicleCategory)
}
