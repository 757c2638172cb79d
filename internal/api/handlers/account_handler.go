package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/rutvikm/agri-price-be/internal/auth"
	"github.com/rutvikm/agri-price-be/internal/services"
)

// AccountHandler handles HTTP requests for registration and login.
type AccountHandler struct {
	service services.AccountServiceProvider
	auth    *auth.Auth
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service services.AccountServiceProvider, a *auth.Auth) *AccountHandler {
	return &AccountHandler{service: service, auth: a}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	District string `json:"district"`
	Market   string `json:"market"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new account registration.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.service.Register(payload.Username, payload.Password, payload.District, payload.Market)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			respondError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register account")
		respondError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Account created successfully"})
}

// Login handles authentication and token issuance. Unknown usernames and
// wrong passwords produce the same response.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
			respondError(w, http.StatusBadRequest, "Invalid username or password")
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Login lookup failed")
		respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := h.auth.GenerateToken(account)
	if err != nil {
		log.Error().Err(err).Str("account_id", account.ID).Msg("Failed to generate token")
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  account,
	})
}

// Me echoes the identity decoded from the presented token. No store lookup.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve claims from context")
		respondError(w, http.StatusInternalServerError, "Could not retrieve identity")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"id":       claims.AccountID,
		"username": claims.Username,
		"district": claims.District,
		"market":   claims.Market,
	})
}
