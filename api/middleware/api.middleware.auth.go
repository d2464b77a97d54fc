package middleware

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

const (
	// TestAuthHeader skips token validation when test bypass is enabled
	TestAuthHeader = "X-Test-Auth-Bypass"
	TestUserID     = "test-user-id"
	TestToken      = "test-api-token"
)

// ErrInvalidToken is returned by validators for tokens they reject
var ErrInvalidToken = stderrors.New("invalid token")

//go:generate moq -rm -out validator_mock.go . TokenValidator

// TokenValidator resolves a bearer token to the id of its user
type TokenValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

type contextKey string

const userIDKey contextKey = "userId"

// UserIDFromContext returns the authenticated user id, if any
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// WithUserID stores the authenticated user id in ctx
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

type AuthMiddleware struct {
	validator  TokenValidator
	testBypass bool
}

// NewAuthMiddleware creates the bearer token middleware. testBypass must only be
// enabled for integration test deployments.
func NewAuthMiddleware(validator TokenValidator, testBypass bool) *AuthMiddleware {
	if testBypass {
		nuts.L.Warnf("[Auth] Test auth bypass is enabled")
	}
	return &AuthMiddleware{validator: validator, testBypass: testBypass}
}

// Authenticate validates the bearer token and adds the user id to the context
func (a *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.testBypass && r.Header.Get(TestAuthHeader) == "true" {
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), TestUserID)))
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			handleError(w, errors.NewAuthError("Unauthorized: Missing or invalid authorization header", nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			handleError(w, errors.NewAuthError("Unauthorized: Missing or empty token", nil))
			return
		}

		if a.testBypass && token == TestToken {
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), TestUserID)))
			return
		}

		userID, err := a.validator.Validate(r.Context(), token)
		if err != nil || userID == "" {
			if err != nil && !stderrors.Is(err, ErrInvalidToken) {
				nuts.L.Errorf("[Auth] Token validation failed: %v", err)
			}
			handleError(w, errors.NewAuthError("Unauthorized: Invalid token", err))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func handleError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": err.Message,
		"code":  err.Code,
	})
}
