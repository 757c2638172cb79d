package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rutvikm/agri-price-be/internal/models"
	"github.com/stretchr/testify/require"
)

func testAccount() models.Account {
	return models.Account{
		ID:       "acc-1",
		Username: "alice",
		District: "Pune",
		Market:   "MarketA",
	}
}

func TestGenerateAndValidate(t *testing.T) {
	t.Parallel()

	a := New("test-secret", time.Hour)
	token, err := a.GenerateToken(testAccount())
	require.NoError(t, err)

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "acc-1", claims.AccountID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "Pune", claims.District)
	require.Equal(t, "MarketA", claims.Market)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	a := New("test-secret", -time.Minute)
	token, err := a.GenerateToken(testAccount())
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := New("right-secret", time.Hour)
	token, err := issuer.GenerateToken(testAccount())
	require.NoError(t, err)

	verifier := New("wrong-secret", time.Hour)
	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	a := New("test-secret", time.Hour)
	_, err := a.ValidateToken("not.a.jwt")
	require.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	a := New("test-secret", time.Hour)
	token, err := a.GenerateToken(testAccount())
	require.NoError(t, err)

	var gotClaims *Claims
	protected := a.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc123", http.StatusUnauthorized},
		{"bearer without token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusForbidden},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotClaims = nil
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, gotClaims)
				require.Equal(t, "Pune", gotClaims.District)
			}
		})
	}
}

func TestMiddleware_ExpiredTokenForbidden(t *testing.T) {
	t.Parallel()

	expired := New("test-secret", -time.Minute)
	token, err := expired.GenerateToken(testAccount())
	require.NoError(t, err)

	a := New("test-secret", time.Hour)
	protected := a.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}
