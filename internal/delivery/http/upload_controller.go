package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	h "eventmicrosite/internal/delivery/http/helpers"
	"eventmicrosite/internal/domain"
	"eventmicrosite/internal/services"
)

// multipart framing overhead on top of the image cap.
const maxUploadBody = services.MaxImageBytes + 1<<20

// UploadController accepts image uploads and serves stored media.
type UploadController struct {
	Service domain.MediaService
	Logger  *slog.Logger
}

func NewUploadController(svc domain.MediaService, logger *slog.Logger) *UploadController {
	return &UploadController{Service: svc, Logger: logger}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Accepts a multipart form with an "image" part. JPEG, PNG, GIF and WebP up to 5MB.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /api/upload/image [post]
func (c *UploadController) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	file, header, err := r.FormFile("image")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "could not read upload")
		return
	}

	m, err := c.Service.SaveImage(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, map[string]string{
		"url": fmt.Sprintf("media/%d/%s", m.ID, m.Filename),
	})
}

// ServeMedia streams a stored image. The filename segment must match the
// stored name so stale references 404 instead of serving renamed content.
func (c *UploadController) ServeMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	m, err := c.Service.GetImage(r.Context(), id)
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	if r.PathValue("filename") != m.Filename {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "not found")
		return
	}
	w.Header().Set("Content-Type", m.Mimetype)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(m.Data)
}
