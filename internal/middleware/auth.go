package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/Dan9191/rent-portal/internal/auth"
	"github.com/Dan9191/rent-portal/internal/utils"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware rejects requests without a valid bearer token and stores the
// caller's session in the request context.
func AuthMiddleware(v *auth.Verifier, log *logrus.Logger) func(http.Handler) http.Handler {
	return authenticate(v, log, false)
}

// OptionalAuthMiddleware is AuthMiddleware that lets token-less requests through as guests.
func OptionalAuthMiddleware(v *auth.Verifier, log *logrus.Logger) func(http.Handler) http.Handler {
	return authenticate(v, log, true)
}

func authenticate(v *auth.Verifier, log *logrus.Logger, optional bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				if optional {
					next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), auth.Guest())))
					return
				}
				utils.RespondError(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing Authorization header", nil)
				return
			}

			session, err := v.Verify(r.Context(), token)
			if err != nil {
				log.WithError(err).Debug("Rejected access token")
				if errors.Is(err, auth.ErrTokenExpired) {
					utils.RespondError(w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil)
					return
				}
				utils.RespondError(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), session)))
		})
	}
}

// RequireRoles lets through only sessions whose role is one of roles.
func RequireRoles(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := auth.FromContext(r.Context())
			if !ok || !slices.Contains(roles, s.Role) {
				utils.RespondError(w, http.StatusForbidden, utils.ErrCodeForbidden, "Not allowed for this role", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return token, token != ""
}
