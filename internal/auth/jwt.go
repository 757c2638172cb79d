package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rutvikm/agri-price-be/internal/models"
)

// Claims defines the JWT claims structure carried by every issued credential.
type Claims struct {
	AccountID string `json:"accountId"`
	Username  string `json:"username"`
	District  string `json:"district"`
	Market    string `json:"market"`
	jwt.RegisteredClaims
}

// ClaimsKey is the context key under which verified claims are stored.
type contextKey string

const ClaimsKey = contextKey("authClaims")

// Auth issues and verifies bearer tokens. The signing secret is injected at
// startup; verification is stateless and never touches the store.
type Auth struct {
	secret []byte
	ttl    time.Duration
}

// New creates an Auth with the given signing secret and token lifetime.
func New(secret string, ttl time.Duration) *Auth {
	return &Auth{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a new JWT for a given account.
func (a *Auth) GenerateToken(account models.Account) (string, error) {
	claims := &Claims{
		AccountID: account.ID,
		Username:  account.Username,
		District:  account.District,
		Market:    account.Market,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken parses and validates a JWT string.
func (a *Auth) ValidateToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Middleware creates a middleware for protecting routes. A request without a
// Bearer authorization header is rejected as unauthenticated (401); a request
// whose token fails verification is rejected as forbidden (403).
func (a *Auth) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, http.StatusUnauthorized, "Missing auth token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				writeAuthError(w, http.StatusUnauthorized, "Missing auth token")
				return
			}

			claims, err := a.ValidateToken(parts[1])
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "Invalid auth token")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext retrieves the verified claims attached by Middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*Claims)
	return claims, ok
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`+"\n", message)
}
