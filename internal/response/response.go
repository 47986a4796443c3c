package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Пакет response отвечает за единый конверт ответа API:
// {success, data | error, meta}. Каждый обработчик пишет ответ только через него.

// Машиночитаемые коды ошибок, однозначно соответствующие HTTP-статусам.
const (
	CodeBadRequest          = "BAD_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// Meta — произвольные метаданные ответа; timestamp добавляется всегда.
type Meta map[string]any

// ErrorBody описывает ошибку внутри конверта.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Envelope — единая структура ответа API.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    Meta       `json:"meta,omitempty"`
}

// writeJSON сериализует конверт и пишет его клиенту.
func writeJSON(w http.ResponseWriter, status int, envelope Envelope, logger *slog.Logger) {
	body, err := json.Marshal(envelope)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(body); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// Success пишет успешный ответ с данными и дополнительными метаданными.
func Success(w http.ResponseWriter, status int, data any, extra Meta, logger *slog.Logger) {
	meta := Meta{"timestamp": time.Now().Format(time.RFC3339)}
	for k, v := range extra {
		meta[k] = v
	}
	writeJSON(w, status, Envelope{Success: true, Data: data, Meta: meta}, logger)
}

// Error пишет ответ с ошибкой и машиночитаемым кодом.
func Error(w http.ResponseWriter, status int, message, code string, logger *slog.Logger) {
	writeJSON(w, status, Envelope{
		Success: false,
		Error:   &ErrorBody{Message: message, Code: code},
		Meta:    Meta{"timestamp": time.Now().Format(time.RFC3339)},
	}, logger)
}

// OK — 200 с данными.
func OK(w http.ResponseWriter, data any, logger *slog.Logger) {
	Success(w, http.StatusOK, data, nil, logger)
}

// Created — 201 с созданной записью.
func Created(w http.ResponseWriter, data any, logger *slog.Logger) {
	Success(w, http.StatusCreated, data, nil, logger)
}

// NoContent — 204 без тела.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// BadRequest — 400.
func BadRequest(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusBadRequest, message, CodeBadRequest, logger)
}

// Unauthorized — 401.
func Unauthorized(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusUnauthorized, message, CodeUnauthorized, logger)
}

// Forbidden — 403.
func Forbidden(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusForbidden, message, CodeForbidden, logger)
}

// NotFound — 404.
func NotFound(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusNotFound, message, CodeNotFound, logger)
}

// Conflict — 409.
func Conflict(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusConflict, message, CodeConflict, logger)
}

// InternalServerError — 500.
func InternalServerError(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusInternalServerError, message, CodeInternalServerError, logger)
}
