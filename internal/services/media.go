package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"eventmicrosite/internal/domain"
)

// MaxImageBytes is the upload size cap.
const MaxImageBytes = 5 << 20

// allowedImageTypes are the accepted upload mimetypes.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9._-]+`)

type mediaService struct {
	repo domain.MediaRepository
	now  func() time.Time
}

// NewMediaService creates a MediaService with the given repository.
func NewMediaService(repo domain.MediaRepository) domain.MediaService {
	return &mediaService{repo: repo, now: time.Now}
}

func (s *mediaService) SaveImage(ctx context.Context, originalName, mimetype string, data []byte) (*domain.Media, error) {
	if len(data) == 0 {
		return nil, domain.ErrUnsupportedImageType
	}
	if len(data) > MaxImageBytes {
		return nil, domain.ErrImageTooLarge
	}
	if !allowedImageTypes[mimetype] {
		return nil, domain.ErrUnsupportedImageType
	}
	// The declared mimetype comes from the client; the payload itself must
	// also sniff as an image.
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return nil, domain.ErrUnsupportedImageType
	}

	m := &domain.Media{
		Filename: s.storedFilename(originalName),
		Mimetype: mimetype,
		Data:     data,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}
	return m, nil
}

func (s *mediaService) GetImage(ctx context.Context, id int64) (*domain.Media, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get image: %w", err)
	}
	return m, nil
}

// storedFilename derives a collision-resistant name from the upload: the
// sanitized base name prefixed with a millisecond timestamp.
func (s *mediaService) storedFilename(originalName string) string {
	base := strings.ToLower(filepath.Base(originalName))
	base = unsafeFilenameChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s", s.now().UnixMilli(), base)
}
