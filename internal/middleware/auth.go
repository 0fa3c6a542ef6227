package middleware

import (
	"errors"
	"net/http"

	"cantina-be/internal/auth"
	"cantina-be/internal/logger"
	"cantina-be/internal/user"
	"cantina-be/internal/utils"

	"go.uber.org/zap"
)

// RequireAuth verifies the bearer credential and attaches the identity to the
// request context. Missing, malformed and invalid tokens are told apart in the
// logs but all collapse to 401 for the client.
func RequireAuth(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromCtx(r.Context())

			tokenStr, err := auth.ExtractBearerToken(r)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrTokenMissing):
					utils.WriteJSONError(w, "No token provided", http.StatusUnauthorized)
				case errors.Is(err, auth.ErrTokenMalformed):
					log.Warn("malformed authorization header", zap.String("path", r.URL.Path))
					utils.WriteJSONError(w, "Invalid token format", http.StatusUnauthorized)
				}
				return
			}

			claims, err := tm.Parse(tokenStr)
			if err != nil {
				log.Warn("token rejected", zap.String("path", r.URL.Path), zap.Error(err))
				utils.WriteJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route to admins. Must run after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := utils.GetUserRoleFromContext(r.Context())
		if role != user.RoleAdmin {
			userID, _ := utils.GetUserIDFromContext(r.Context())
			logger.FromCtx(r.Context()).Warn("admin route denied",
				zap.Int64("user_id", userID),
				zap.String("role", string(role)),
				zap.String("path", r.URL.Path),
			)
			utils.WriteJSONError(w, "Admin access required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
