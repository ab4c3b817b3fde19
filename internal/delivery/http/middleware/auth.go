package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/VaibhavvvMehta/oops-car-rental/internal/domain"
	"github.com/VaibhavvvMehta/oops-car-rental/internal/pkg/jwt"
)

// contextKey - тип для ключей контекста
type contextKey string

const (
	// OperatorClaimsKey - ключ для сохранения claims оператора в контексте
	OperatorClaimsKey contextKey = "operator_claims"
)

// AuthMiddleware проверяет наличие и валидность JWT токена оператора
func AuthMiddleware(tokenService *jwt.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, "Authorization header required")
				return
			}

			// Проверяем формат: "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
				return
			}

			claims, err := tokenService.ValidateToken(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					respondError(w, http.StatusUnauthorized, "Token expired")
					return
				}
				respondError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			if claims.Role != jwt.RoleOperator {
				respondError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			ctx := context.WithValue(r.Context(), OperatorClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOperatorClaims извлекает claims оператора из контекста
func GetOperatorClaims(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(OperatorClaimsKey).(*jwt.Claims)
	return claims, ok
}

// respondError отправляет JSON ответ с ошибкой
func respondError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
