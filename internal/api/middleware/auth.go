package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

type contextKey string

const credentialsKey contextKey = "credentials"

const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
	msgMissingToken     = "отсутствует токен авторизации"
)

// Auth извлекает токен из заголовка Authorization: Bearer <token> и кладёт его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(headerAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		ctx := WithCredentials(r.Context(), domain.Credentials{Token: token})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithCredentials кладёт контекст авторизации в context.Context
func WithCredentials(ctx context.Context, creds domain.Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey, creds)
}

// GetCredentials возвращает контекст авторизации, сохранённый Auth
func GetCredentials(ctx context.Context) (domain.Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey).(domain.Credentials)
	if !ok || !creds.HasToken() {
		return domain.Credentials{}, false
	}
	return creds, true
}
