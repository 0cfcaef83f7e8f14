package files

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docnest-backend/internal/shared/server/respond"
	"docnest-backend/internal/shared/telemetry"
)

const maxUploadSize = 50 << 20 // 50MB per request

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches file routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/Home/UploadFiles", h.uploadFiles)
	rg.GET("/Home/ListAll", h.listAll)
	rg.GET("/Home/DownloadFile/:id", h.downloadFile)
	rg.POST("/Home/ShareUrl", h.shareURL)
}

func (h *Handler) uploadFiles(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid multipart form", nil)
		return
	}

	uploads := form.File["files"]
	if len(uploads) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no files selected", nil)
		return
	}

	// Files are processed sequentially; per-file results are independent.
	resp := make([]FileResponse, 0, len(uploads))
	for _, fileHeader := range uploads {
		src, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file "+fileHeader.Filename, nil)
			return
		}

		created, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, src)
		src.Close()
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			default:
				respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload "+fileHeader.Filename, nil)
			}
			return
		}
		resp = append(resp, toResponse(created))
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) listAll(c *gin.Context) {
	listed, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list files", nil)
		return
	}

	resp := make([]FileResponse, 0, len(listed))
	for _, l := range listed {
		resp = append(resp, toListedResponse(l))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) downloadFile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id must be an integer", nil)
		return
	}

	f, rc, err := h.Svc.Download(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to download file", nil)
		}
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+f.FileName+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		telemetry.Error("download.stream_failed", map[string]any{
			"file_id": f.ID,
			"err":     err.Error(),
		})
	}
}

type shareURLRequest struct {
	ID      int64 `json:"id"`
	Minutes int   `json:"minutes"`
}

type shareURLResponse struct {
	URL              string `json:"url"`
	ExpiresInMinutes int    `json:"expiresInMinutes"`
}

func (h *Handler) shareURL(c *gin.Context) {
	var req shareURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	url, err := h.Svc.ShareURL(c.Request.Context(), req.ID, req.Minutes)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "minutes must be positive", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create share url", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, shareURLResponse{
		URL:              url,
		ExpiresInMinutes: req.Minutes,
	})
}
