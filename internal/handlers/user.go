package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"event-media-backend/internal/repository"
	"event-media-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type userResponse struct {
	Message string      `json:"message"`
	User    interface{} `json:"user"`
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		respondError(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	respondJSON(w, users, http.StatusOK)
}

// Create handles POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input services.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Create(ctx, input)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create user")
		respondError(w, "Failed to create user", http.StatusBadRequest)
		return
	}

	log.Info().Str("user_id", user.ID.Hex()).Msg("User created")

	respondJSON(w, userResponse{Message: "User created", User: user}, http.StatusCreated)
}

// Update handles PUT /api/users
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input services.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Update(ctx, input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, "User not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("user_id", input.ID).Msg("Failed to update user")
		respondError(w, "Failed to update user", http.StatusBadRequest)
		return
	}

	log.Info().Str("user_id", input.ID).Msg("User updated")

	respondJSON(w, userResponse{Message: "User updated", User: user}, http.StatusOK)
}

// GetByID handles GET /api/users/{id}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	user, err := h.userService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, "User not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("user_id", id).Msg("Failed to get user")
		respondError(w, "Failed to get user", http.StatusInternalServerError)
		return
	}

	respondJSON(w, user, http.StatusOK)
}
