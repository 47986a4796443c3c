package domain

import (
	"time"
)

// Image представляет метаданные загруженного изображения.
// Сам файл лежит на диске под Filename, URL строится детерминированно от него.
type Image struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	UploadedAt time.Time `json:"uploadedAt"`
}
