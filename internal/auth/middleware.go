// internal/auth/middleware.go

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/imadgeboyega/kiekky-couples/internal/common/utils"
)

var (
	ErrMissingToken = errors.New("missing or invalid authorization header")
	ErrInvalidToken = errors.New("invalid or expired token")
)

type contextKey struct{}

// Identity is the couple and partner a request acts for
type Identity struct {
	CoupleID  string
	PartnerID string
}

// WithIdentity returns a copy of ctx carrying id
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFrom extracts the identity set by Authenticate
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok && id.CoupleID != ""
}

// Middleware provides authentication middleware
type Middleware struct {
	secret string
}

// NewMiddleware creates a new auth middleware
func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: secret}
}

// Authenticate verifies the bearer token and adds the couple identity to the request context
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := m.Resolve(r)
		if err != nil {
			utils.ErrorResponse(w, err.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// Resolve validates the request's token and returns its identity
func (m *Middleware) Resolve(r *http.Request) (Identity, error) {
	token := extractToken(r)
	if token == "" {
		return Identity{}, ErrMissingToken
	}

	claims, err := utils.ValidateJWT(token, m.secret)
	if err != nil || claims.Type != "access" || claims.CoupleID == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{CoupleID: claims.CoupleID, PartnerID: claims.PartnerID}, nil
}

// extractToken reads "Bearer <token>" from the Authorization header.
// Browsers cannot set headers on websocket upgrades, so ?token= is accepted too.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return r.URL.Query().Get("token")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
