package handler

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// uploadRequest собирает multipart-запрос с одной файловой частью "file".
func uploadRequest(t *testing.T, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func uploadPNG(t *testing.T, r http.Handler, width, height int) map[string]any {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "photo.png", "image/png", encodePNG(t, width, height)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return dataOf(t, rec)
}

func TestUploadImageEndpoint(t *testing.T) {
	r, uploadDir := newTestRouter(t)

	data := encodePNG(t, 8, 6)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "my photo.png", "image/png", data))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	img := dataOf(t, rec)
	assert.Equal(t, "1", img["id"])
	assert.Equal(t, float64(8), img["width"])
	assert.Equal(t, float64(6), img["height"])
	assert.Equal(t, float64(len(data)), img["size"])

	filename := img["filename"].(string)
	assert.Equal(t, "/uploads/images/"+filename, img["url"])

	// файл реально лежит на диске
	saved, err := os.ReadFile(filepath.Join(uploadDir, filename))
	require.NoError(t, err)
	assert.Equal(t, data, saved)
}

// encodeWebP собирает минимальный lossless WebP: RIFF-контейнер с
// одним чанком VP8L, в заголовке которого закодированы размеры 3x2.
func encodeWebP(t *testing.T) []byte {
	t.Helper()
	return []byte{
		'R', 'I', 'F', 'F', 0x12, 0x00, 0x00, 0x00,
		'W', 'E', 'B', 'P',
		'V', 'P', '8', 'L', 0x05, 0x00, 0x00, 0x00,
		0x2F, 0x02, 0x40, 0x00, 0x00, 0x00,
	}
}

func TestUploadImageEndpointWebP(t *testing.T) {
	r, uploadDir := newTestRouter(t)

	data := encodeWebP(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "tiny.webp", "image/webp", data))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	img := dataOf(t, rec)
	assert.Equal(t, float64(3), img["width"])
	assert.Equal(t, float64(2), img["height"])
	assert.Equal(t, float64(len(data)), img["size"])

	filename := img["filename"].(string)
	assert.True(t, strings.HasSuffix(filename, ".webp"))

	_, err := os.Stat(filepath.Join(uploadDir, filename))
	require.NoError(t, err)
}

func TestUploadImageEndpointMissingFile(t *testing.T) {
	r, _ := newTestRouter(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("other", "value"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := envelopeOf(t, rec)
	errBody := envelope["error"].(map[string]any)
	assert.Equal(t, "No file provided", errBody["message"])
}

func TestUploadImageEndpointRejectsBadType(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "notes.txt", "text/plain", []byte("plain text")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", errorCodeOf(t, rec))

	// хранилище не изменилось
	listRec := doJSON(t, r, http.MethodGet, "/api/images", nil)
	require.Equal(t, http.StatusOK, listRec.Code)
	assert.Equal(t, float64(0), dataOf(t, listRec)["total"])
}

func TestUploadImageEndpointRejectsOversize(t *testing.T) {
	r, uploadDir := newTestRouter(t)

	// 5 MiB + 1 байт; заявленный тип валиден, размер — нет
	big := make([]byte, 5*1024*1024+1)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "big.png", "image/png", big))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// на диск ничего не записано
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadImageEndpointRejectsCorruptImage(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "fake.png", "image/png", []byte("not a png")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := envelopeOf(t, rec)
	errBody := envelope["error"].(map[string]any)
	assert.Equal(t, "Invalid image dimensions", errBody["message"])
}

func TestListImagesRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)
	img := uploadPNG(t, r, 8, 6)

	rec := doJSON(t, r, http.MethodGet, "/api/images", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := dataOf(t, rec)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(1), data["count"])

	images := data["images"].([]any)
	require.Len(t, images, 1)
	listed := images[0].(map[string]any)
	assert.Equal(t, img["size"], listed["size"])
	assert.Equal(t, img["width"], listed["width"])
	assert.Equal(t, img["height"], listed["height"])
}

func TestDeleteImageEndpoint(t *testing.T) {
	r, uploadDir := newTestRouter(t)
	img := uploadPNG(t, r, 4, 4)
	id := img["id"].(string)

	rec := doJSON(t, r, http.MethodDelete, "/api/images/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := dataOf(t, rec)
	assert.Equal(t, "Image deleted successfully", data["message"])

	// файл удалён с диска
	_, err := os.Stat(filepath.Join(uploadDir, img["filename"].(string)))
	assert.True(t, os.IsNotExist(err))

	rec = doJSON(t, r, http.MethodDelete, "/api/images/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteImageEndpointToleratesMissingFile(t *testing.T) {
	r, uploadDir := newTestRouter(t)
	img := uploadPNG(t, r, 4, 4)

	// файл убрали вручную — удаление записи всё равно проходит
	require.NoError(t, os.Remove(filepath.Join(uploadDir, img["filename"].(string))))

	rec := doJSON(t, r, http.MethodDelete, "/api/images/"+img["id"].(string), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	listRec := doJSON(t, r, http.MethodGet, "/api/images", nil)
	assert.Equal(t, float64(0), dataOf(t, listRec)["total"])
}

func TestDeleteImageEndpointNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodDelete, "/api/images/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCodeOf(t, rec))
}
