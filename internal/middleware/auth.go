package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/model"
)

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger    *slog.Logger
	JWTSecret []byte

	// UserLookup resolves a verified user ID to an account. Optional;
	// when set, a token whose subject no longer exists is rejected.
	UserLookup func(r *http.Request, userID string) (*model.User, error)
}

// Auth returns a middleware that authenticates API requests.
// It extracts the bearer token from the Authorization header, verifies
// the signature and expiry, and injects the resolved identity into the
// request context. This is the sole enforcement point for per-user
// isolation: handlers downstream trust the injected user ID.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)

			userID, err := auth.VerifyToken(token, cfg.JWTSecret)
			if err != nil {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", authFailureReason(err)),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w)
				return
			}

			authCtx := &model.AuthContext{UserID: userID}

			if cfg.UserLookup != nil {
				user, err := cfg.UserLookup(r, userID)
				if err != nil {
					cfg.Logger.Warn("authentication failed",
						slog.String("reason", "unknown_user"),
						slog.String("ip", r.RemoteAddr),
						slog.String("endpoint", r.Method+" "+r.URL.Path),
						slog.String("request_id", GetRequestID(r.Context())),
					)
					writeAuthError(w)
					return
				}
				authCtx.Email = user.Email
			}

			ctx := auth.ContextWithAuth(r.Context(), authCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the token from the Authorization header.
// Returns empty string when the header is absent or not bearer-style.
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// authFailureReason maps verification errors to log labels.
func authFailureReason(err error) string {
	switch err {
	case auth.ErrTokenMissing:
		return "missing_token"
	case auth.ErrTokenExpired:
		return "expired_token"
	case auth.ErrTokenBadSignature:
		return "bad_signature"
	default:
		return "malformed_token"
	}
}

// writeAuthError writes a 401 Unauthorized response.
// Uses the same message for all auth failures to prevent enumeration.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Invalid or missing token","code":"UNAUTHORIZED"}`))
}
