package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSlug is returned when an event slug collides with an
	// existing one. Slugs are not disambiguated automatically.
	ErrDuplicateSlug = errors.New("slug already in use")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already in use")
	// ErrInvalidCredentials is returned on failed login attempts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnsupportedImageType is returned for uploads that are not one of
	// the allowed image mimetypes.
	ErrUnsupportedImageType = errors.New("only JPEG, PNG, GIF and WebP images are allowed")
	// ErrImageTooLarge is returned for uploads over the size cap.
	ErrImageTooLarge = errors.New("image exceeds the maximum upload size")
)
