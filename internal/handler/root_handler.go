package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/GalleryApp/internal/response"
)

// RootHandler — обработчик корневого эндпоинта API.
type RootHandler struct {
	logger *slog.Logger
}

// NewRootHandler создаёт новый экземпляр RootHandler.
func NewRootHandler(logger *slog.Logger) *RootHandler {
	return &RootHandler{logger: logger}
}

// Index — GET /api: описание API и список доступных эндпоинтов.
func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	baseURL := scheme + "://" + r.Host

	response.Success(w, http.StatusOK, map[string]any{
		"name":    "API",
		"version": "1.0.0",
		"status":  "operational",
		"endpoints": map[string]any{
			"root":      baseURL + "/api",
			"users":     baseURL + "/api/users",
			"userById":  baseURL + "/api/users/{id}",
			"images":    baseURL + "/api/images",
			"imageById": baseURL + "/api/images/{id}",
		},
		"documentation": map[string]any{
			"description": "RESTful API for managing resources",
			"methods":     []string{"GET", "POST", "PUT", "DELETE", "PATCH"},
		},
	}, response.Meta{"path": "/api"}, h.logger)
}
