package http

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventmicrosite/internal/delivery/http/helpers"
	"eventmicrosite/internal/domain"
)

// writeDomainError maps a service error to the API envelope. Validation-type
// sentinels become 400s, ErrNotFound a 404, and anything else is logged and
// surfaced as a generic 500.
func writeDomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrUnsupportedImageType),
		errors.Is(err, domain.ErrImageTooLarge):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	default:
		logger.Error("request failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
	}
}
