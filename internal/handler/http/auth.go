package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-guard/internal/apperror"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/utils"
	"github.com/MKhiriev/go-auth-guard/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		return err
	}
	if err := h.validator.Validate(ctx, credentials); err != nil {
		return err
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Str("user_id", registeredUser.UserID).Msg("user registered")

	return h.respondWithToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		return err
	}
	if err := h.validator.Validate(ctx, credentials); err != nil {
		return err
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")

	return h.respondWithToken(w, r, foundUser)
}

// me returns the account of the authenticated user. It is mounted behind the
// auth middleware, so a missing identity means a routing mistake.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) error {
	identity, ok := utils.UserFromContext(r.Context())
	if !ok {
		return apperror.Unauthorized()
	}

	user, err := h.services.AuthService.Me(r.Context(), identity.UserID)
	if err != nil {
		return err
	}

	h.writeJSON(w, r, user, http.StatusOK)
	return nil
}

// respondWithToken issues a token for user and returns it both in the
// Authorization header and in the body.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User) error {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		return err
	}

	w.Header().Set("Authorization", "Bearer "+token)
	h.writeJSON(w, r, models.TokenResponse{Token: token}, http.StatusOK)
	return nil
}
