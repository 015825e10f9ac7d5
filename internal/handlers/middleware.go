package handlers

import (
	"context"
	"net/http"
	"strings"

	"gitlab.com/ocs-2025.net/internal/core/ports/primary"
	"gitlab.com/ocs-2025.net/internal/domain"
)

type contextKey string

const userInfoKey contextKey = "userInfo"

type MiddlewareProvider struct {
	jwtService primary.JWTService
}

func NewMiddleware(jwtService primary.JWTService) *MiddlewareProvider {
	return &MiddlewareProvider{
		jwtService: jwtService,
	}
}

// JWTMiddleware verifies the bearer token and resolves the caller identity
// into the request context. Token issuance belongs to the external auth
// collaborator; this only decodes what it issued.
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		valid, err := m.jwtService.VerifyTokenHMAC(r.Context(), tokenString, "HS256")
		if err != nil || !valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		userInfo, err := m.jwtService.DecodeTokenPayload(r.Context(), tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userInfoKey, userInfo)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the caller identity resolved by JWTMiddleware
func UserFromContext(ctx context.Context) (domain.UserInfo, bool) {
	userInfo, ok := ctx.Value(userInfoKey).(domain.UserInfo)
	return userInfo, ok
}

// ContextWithUser injects a caller identity; used by tests
func ContextWithUser(ctx context.Context, userInfo domain.UserInfo) context.Context {
	return context.WithValue(ctx, userInfoKey, userInfo)
}
