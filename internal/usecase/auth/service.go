package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/config"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/jwt"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/logger"
)

// LoginRequest - запрос на вход оператора
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - ответ с токенами
type LoginResponse struct {
	Email  string         `json:"email"`
	Tokens *jwt.TokenPair `json:"tokens"`
}

// Service содержит логику аутентификации оператора агентства.
// Учетные данные оператора задаются конфигурацией (bcrypt-хеш пароля)
type Service struct {
	cfg          *config.AuthConfig
	tokenService *jwt.TokenService
	logger       logger.Logger
}

// NewService создает новый экземпляр AuthService
func NewService(cfg *config.AuthConfig, tokenService *jwt.TokenService, log logger.Logger) *Service {
	return &Service{
		cfg:          cfg,
		tokenService: tokenService,
		logger:       log,
	}
}

// Login проверяет учетные данные оператора и выдает пару токенов
func (s *Service) Login(req *LoginRequest) (*LoginResponse, error) {
	if req.Email != s.cfg.OperatorEmail {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(s.cfg.OperatorPasswordHash),
		[]byte(req.Password),
	); err != nil {
		s.logger.Warn("Failed login attempt", map[string]interface{}{
			"email": req.Email,
		})
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.tokenService.GenerateTokenPair(req.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Operator logged in", map[string]interface{}{
		"email": req.Email,
	})

	return &LoginResponse{
		Email:  req.Email,
		Tokens: tokens,
	}, nil
}

// Refresh выдает новую пару токенов по действительному refresh токену
func (s *Service) Refresh(refreshToken string) (*LoginResponse, error) {
	claims, err := s.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	tokens, err := s.tokenService.GenerateTokenPair(claims.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Email:  claims.Email,
		Tokens: tokens,
	}, nil
}
