package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"tokenrelay/pkg/jwt"

	"go.uber.org/zap"
)

const AuthHeader = "AUTH_TOKEN"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Subject(token, use string) (string, error)
}

type AuthMiddleware struct {
	logs   *zap.SugaredLogger
	tokens TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:   logger,
		tokens: tokens,
	}
}

// Auth resolves the id token in the AUTH_TOKEN header to the caller's user id.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId, _ := r.Context().Value(RequestIDKey).(string)

		token := r.Header.Get(AuthHeader)
		if token == "" {
			m.unauthorized(w)
			m.logs.Errorw("missing AUTH_TOKEN header", "path", r.URL.Path, "request_id", requestId)
			return
		}

		userID, err := m.tokens.Subject(token, jwt.UseID)
		if err != nil || userID == "" {
			m.unauthorized(w)
			m.logs.Errorw("invalid id token", "error", err, "path", r.URL.Path, "request_id", requestId)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized."})
}
