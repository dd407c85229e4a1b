package domain

import (
	"context"
	"time"
)

// Media is an uploaded image stored inline in the database. Entity image
// fields reference it by the "media/{id}/{filename}" path returned on upload.
type Media struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	Mimetype  string    `json:"mimetype"`
	Data      []byte    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// MediaRepository defines storage for uploaded images.
type MediaRepository interface {
	Create(ctx context.Context, m *Media) error
	GetByID(ctx context.Context, id int64) (*Media, error)
}

// MediaService validates and stores image uploads.
type MediaService interface {
	// SaveImage stores an uploaded image and returns the record with its
	// generated filename. The declared mimetype must be an allowed image
	// type and the payload must sniff as an image.
	SaveImage(ctx context.Context, originalName, mimetype string, data []byte) (*Media, error)
	GetImage(ctx context.Context, id int64) (*Media, error)
}
