package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}

	_, err = utils.WriteJSON(w, users, http.StatusOK)
	return err
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	id, err := userIDParam(r)
	if err != nil {
		return err
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		return fmt.Errorf("get user %d: %w", id, err)
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	user, err := decodeUser(r)
	if err != nil {
		return err
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	logger.FromRequest(r).Info().Int64("user_id", created.ID).Msg("user created")

	w.Header().Set("Location", "/users/"+strconv.FormatInt(created.ID, 10))
	_, err = utils.WriteJSON(w, created, http.StatusCreated)
	return err
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) error {
	id, err := userIDParam(r)
	if err != nil {
		return err
	}

	user, err := decodeUser(r)
	if err != nil {
		return err
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), id, user)
	if err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}

	_, err = utils.WriteJSON(w, updated, http.StatusOK)
	return err
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) error {
	id, err := userIDParam(r)
	if err != nil {
		return err
	}

	if err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	logger.FromRequest(r).Info().Int64("user_id", id).Msg("user deleted")

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func userIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserIDParam, raw)
	}
	return id, nil
}

// decodeUser reads the request body as a user. Any id in the body is
// discarded by the service layer.
func decodeUser(r *http.Request) (models.User, error) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return user, nil
}
