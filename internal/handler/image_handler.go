package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GoArmGo/GalleryApp/internal/response"
	"github.com/GoArmGo/GalleryApp/internal/usecase"
)

// ImageHandler — обработчик HTTP-запросов для работы с изображениями.
// uploadLimiter ограничивает число параллельных загрузок.
type ImageHandler struct {
	imageUseCase  usecase.ImageUseCase
	uploadLimiter chan struct{}
	logger        *slog.Logger
}

// NewImageHandler создаёт новый экземпляр ImageHandler.
func NewImageHandler(uc usecase.ImageUseCase, limiter chan struct{}, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		imageUseCase:  uc,
		uploadLimiter: limiter,
		logger:        logger,
	}
}

// ListImages — GET /api/images: список изображений с пагинацией.
func (h *ImageHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	limit, offset, meta := parsePagination(r)

	page, err := h.imageUseCase.ListImages(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list images", "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("images listed", "total", page.Total, "count", page.Count)
	response.Success(w, http.StatusOK, map[string]any{
		"images": page.Images,
		"total":  page.Total,
		"count":  page.Count,
	}, meta, h.logger)
}

// UploadImage — POST /api/images: загрузка изображения из multipart-части "file".
func (h *ImageHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// ограничиваем число одновременных загрузок
	select {
	case h.uploadLimiter <- struct{}{}:
		defer func() { <-h.uploadLimiter }()
	case <-r.Context().Done():
		h.logger.Warn("upload cancelled while waiting for slot")
		response.InternalServerError(w, "upload cancelled", h.logger)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("missing file part", "error", err)
		response.BadRequest(w, "No file provided", h.logger)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read uploaded file", "error", err)
		response.InternalServerError(w, "Failed to read uploaded file", h.logger)
		return
	}

	h.logger.Info("processing upload",
		"endpoint", "UploadImage",
		"filename", header.Filename,
		"content_type", header.Header.Get("Content-Type"),
		"size", header.Size,
	)

	img, err := h.imageUseCase.UploadImage(r.Context(), usecase.UploadImageInput{
		OriginalFilename: header.Filename,
		ContentType:      header.Header.Get("Content-Type"),
		Size:             header.Size,
		Data:             data,
	})
	if err != nil {
		h.logger.Warn("failed to upload image", "filename", header.Filename, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("image uploaded", "id", img.ID, "filename", img.Filename,
		"width", img.Width, "height", img.Height)
	response.Created(w, img, h.logger)
}

// DeleteImage — DELETE /api/images/{id}: удаление изображения и его файла.
func (h *ImageHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	img, err := h.imageUseCase.DeleteImage(r.Context(), id)
	if err != nil {
		h.logger.Warn("failed to delete image", "id", id, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("image deleted", "id", id)
	response.OK(w, map[string]any{
		"message": "Image deleted successfully",
		"image":   img,
	}, h.logger)
}
