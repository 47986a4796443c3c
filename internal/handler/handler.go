package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/GalleryApp/internal/domain"
	"github.com/GoArmGo/GalleryApp/internal/response"
)

// parsePagination читает limit/offset из query-параметров.
// Отсутствующий или нечисловой параметр трактуется как отсутствие ограничения.
// Вторым значением возвращаются метаданные пагинации для ответа.
func parsePagination(r *http.Request) (limit, offset *int, meta response.Meta) {
	pagination := map[string]any{}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = &n
			pagination["limit"] = n
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			offset = &n
			pagination["offset"] = n
		}
	}

	return limit, offset, response.Meta{"pagination": pagination}
}

// respondWithDomainError транслирует типизированную ошибку бизнес-логики
// в HTTP-статус. Всё нераспознанное уходит как 500 с текстом ошибки.
func respondWithDomainError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		response.BadRequest(w, validationErr.Message, logger)
		return
	}

	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		response.NotFound(w, notFoundErr.Message, logger)
		return
	}

	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		response.Conflict(w, conflictErr.Message, logger)
		return
	}

	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		response.InternalServerError(w, storageErr.Message, logger)
		return
	}

	response.InternalServerError(w, err.Error(), logger)
}
