package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"mdent-api/config"
	"mdent-api/internal/delivery/dto"
	"mdent-api/internal/delivery/http/middleware"
	"mdent-api/internal/usecase"
	"mdent-api/pkg/apperrors"
	"mdent-api/pkg/response"
	"mdent-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	seedSecret  string
	log         *logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, seedCfg config.SeedConfig, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		seedSecret:  seedCfg.Secret,
		log:         log,
	}
}

// Login exchanges email/password for a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.FromError(h.log, w, apperrors.ValidationMessage("invalid request body"))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FromError(h.log, w, err)
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		response.FromError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, tokens)
}

// Me returns the authenticated principal's public profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.FromError(h.log, w, apperrors.Unauthorized(nil))
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		response.FromError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusOK, user)
}

// SeedOnce bootstraps the first admin account. Gated by X-Seed-Secret and
// disabled entirely when no seed secret is configured; meant to be removed
// or left unset outside initial provisioning.
func (h *AuthHandler) SeedOnce(w http.ResponseWriter, r *http.Request) {
	if h.seedSecret == "" {
		response.FromError(h.log, w, apperrors.Forbidden())
		return
	}

	provided := r.Header.Get("X-Seed-Secret")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.seedSecret)) != 1 {
		response.FromError(h.log, w, apperrors.Forbidden())
		return
	}

	var req dto.SeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.FromError(h.log, w, apperrors.ValidationMessage("invalid request body"))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FromError(h.log, w, err)
		return
	}

	user, err := h.authUsecase.SeedAdmin(r.Context(), &req)
	if err != nil {
		response.FromError(h.log, w, err)
		return
	}

	response.JSON(w, http.StatusCreated, user)
}
