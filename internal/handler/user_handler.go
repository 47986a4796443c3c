package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GoArmGo/GalleryApp/internal/response"
	"github.com/GoArmGo/GalleryApp/internal/usecase"
)

// UserHandler — обработчик HTTP-запросов для работы с пользователями.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: uc,
		logger:      logger,
	}
}

// decodeBody разбирает JSON-тело запроса в map.
// map нужен, чтобы отличать отсутствующее поле от пустого (семантика PATCH).
func decodeBody(r *http.Request) (map[string]any, error) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// ListUsers — GET /api/users: список пользователей с пагинацией.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset, meta := parsePagination(r)

	page, err := h.userUseCase.ListUsers(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("users listed", "total", page.Total, "count", page.Count)
	response.Success(w, http.StatusOK, map[string]any{
		"users": page.Users,
		"total": page.Total,
		"count": page.Count,
	}, meta, h.logger)
}

// CreateUser — POST /api/users: создание пользователя.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		h.logger.Warn("invalid request body", "error", err)
		response.BadRequest(w, "request body must be an object", h.logger)
		return
	}

	user, err := h.userUseCase.CreateUser(r.Context(), body)
	if err != nil {
		h.logger.Warn("failed to create user", "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("user created", "id", user.ID, "email", user.Email)
	response.Created(w, user, h.logger)
}

// GetUser — GET /api/users/{id}: получение пользователя по ID.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.logger.Warn("missing required parameter", "param", "id")
		response.BadRequest(w, "User ID is required", h.logger)
		return
	}

	user, err := h.userUseCase.GetUser(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	response.OK(w, user, h.logger)
}

// UpdateUser — PUT/PATCH /api/users/{id}: обновление присутствующих в теле полей.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.logger.Warn("missing required parameter", "param", "id")
		response.BadRequest(w, "User ID is required", h.logger)
		return
	}

	// Сначала проверяем существование пользователя, затем разбираем тело запроса
	if _, err := h.userUseCase.GetUser(r.Context(), id); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		h.logger.Warn("invalid request body", "error", err)
		response.BadRequest(w, "request body must be an object", h.logger)
		return
	}

	user, err := h.userUseCase.UpdateUser(r.Context(), id, body)
	if err != nil {
		h.logger.Warn("failed to update user", "id", id, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("user updated", "id", id)
	response.OK(w, user, h.logger)
}

// DeleteUser — DELETE /api/users/{id}: удаление пользователя.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.logger.Warn("missing required parameter", "param", "id")
		response.BadRequest(w, "User ID is required", h.logger)
		return
	}

	user, err := h.userUseCase.DeleteUser(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("user deleted", "id", id)
	response.OK(w, map[string]any{
		"message": "User deleted successfully",
		"user":    user,
	}, h.logger)
}
