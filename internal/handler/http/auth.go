package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/internal/service"
	"github.com/tahiry-dev/wildlife-atlas/internal/store"
	"github.com/tahiry-dev/wildlife-atlas/internal/utils"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		apiError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	_, err := h.services.Auth.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			apiError(w, http.StatusBadRequest, "Username, email and password are required")
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			apiError(w, http.StatusBadRequest, "Email already registered")
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already taken")
			apiError(w, http.StatusBadRequest, "Username already taken")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			envelopeError(w, http.StatusInternalServerError, "")
			return
		}
	}

	utils.WriteJSON(w, map[string]string{"message": "User registered successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		apiError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	user, err := h.services.Auth.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			apiError(w, http.StatusBadRequest, "Email and password are required")
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			// Same message whether the email is unknown or the
			// password is wrong.
			log.Err(err).Msg("invalid credentials")
			apiError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			envelopeError(w, http.StatusInternalServerError, "")
			return
		}
	}

	log.Debug().Int64("id", user.ID).Str("email", user.Email).Msg("user successfully logged in")

	token, err := h.services.Auth.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		envelopeError(w, http.StatusInternalServerError, "")
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User:  user.Public(),
	}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		apiError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	user, err := h.services.Auth.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			apiError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Err(err).Int64("user_id", userID).Msg("error resolving current user")
		envelopeError(w, http.StatusInternalServerError, "")
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}
