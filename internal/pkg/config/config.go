package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server    ServerConfig
	Agency    AgencyConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Scheduler SchedulerConfig
	CORS      CORSConfig
	Logger    LoggerConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// AgencyConfig содержит реквизиты агентства и стартовые значения
// счетчиков идентификаторов (инжектируемые для детерминизма)
type AgencyConfig struct {
	Name    string
	Address string
	Phone   string

	CarSeqStart      int
	MotoSeqStart     int
	CustomerSeqStart int
	RentalSeqStart   int

	SeedDemoFleet bool
}

// JWTConfig содержит настройки JWT аутентификации
type JWTConfig struct {
	SecretKey     string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// AuthConfig содержит учетные данные оператора агентства
// OperatorPasswordHash - bcrypt-хеш пароля
type AuthConfig struct {
	OperatorEmail        string
	OperatorPasswordHash string
}

// SchedulerConfig содержит cron-расписания фоновых задач
type SchedulerConfig struct {
	Enabled      bool
	OverdueSweep string
}

// CORSConfig содержит настройки CORS
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// LoggerConfig содержит настройки логирования
type LoggerConfig struct {
	Level  string
	Format string // json или console
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку, если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Agency: AgencyConfig{
			Name:             getEnv("AGENCY_NAME", "City Car Rentals"),
			Address:          getEnv("AGENCY_ADDRESS", "456 Elm Street, Metropolis"),
			Phone:            getEnv("AGENCY_PHONE", "555-1234"),
			CarSeqStart:      getIntEnv("AGENCY_CAR_SEQ_START", 1),
			MotoSeqStart:     getIntEnv("AGENCY_MOTO_SEQ_START", 1),
			CustomerSeqStart: getIntEnv("AGENCY_CUSTOMER_SEQ_START", 1),
			RentalSeqStart:   getIntEnv("AGENCY_RENTAL_SEQ_START", 1001),
			SeedDemoFleet:    getBoolEnv("AGENCY_SEED_DEMO_FLEET", false),
		},
		JWT: JWTConfig{
			SecretKey:     getEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
			AccessExpiry:  getDurationEnv("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getDurationEnv("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Auth: AuthConfig{
			OperatorEmail: getEnv("OPERATOR_EMAIL", "operator@rental.local"),
			// bcrypt-хеш строки "operator" - только для разработки
			OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH",
				"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
		},
		Scheduler: SchedulerConfig{
			Enabled:      getBoolEnv("SCHEDULER_ENABLED", true),
			OverdueSweep: getEnv("SCHEDULER_OVERDUE_SWEEP", "0 0 * * * *"), // каждый час
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
			},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// Address возвращает адрес сервера
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Вспомогательные функции для чтения переменных окружения

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
