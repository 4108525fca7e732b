package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sparkdate/spark/internal/api"
	"github.com/sparkdate/spark/internal/service"
)

type identityKey struct{}
type tokenKey struct{}

const bearerPrefix = "Bearer "

// WithIdentity puts session's identity and token into context.
func WithIdentity(ctx context.Context, id service.Identity, token string) context.Context {
	return context.WithValue(context.WithValue(ctx, identityKey{}, id), tokenKey{}, token)
}

// GetIdentity returns identity put by Authenticated.
func GetIdentity(ctx context.Context) (service.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(service.Identity)
	return id, ok
}

// GetToken returns session token put by Authenticated.
func GetToken(ctx context.Context) string {
	v, _ := ctx.Value(tokenKey{}).(string)
	return v
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(h[len(bearerPrefix):])
}

// Authenticated resolves the bearer token to a live session and rejects the request without one.
func Authenticated(srv service.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				api.WriteError(w, http.StatusUnauthorized, service.ErrNotAuthenticated.Error())
				return
			}

			id, err := srv.GetSession(r.Context(), token)
			if err != nil {
				if errors.Is(err, service.ErrNotAuthenticated) {
					api.WriteError(w, http.StatusUnauthorized, service.ErrNotAuthenticated.Error())
					return
				}

				api.WriteInternalErrorf(r.Context(), w, "failed to get session: %s", err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), *id, token)))
		})
	}
}

// RequireAdmin rejects requests of non-admin identities, it should be used after Authenticated.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIdentity(r.Context())
		if !ok {
			api.WriteError(w, http.StatusUnauthorized, service.ErrNotAuthenticated.Error())
			return
		}

		if !id.IsAdmin {
			api.WriteError(w, http.StatusForbidden, service.ErrForbidden.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
