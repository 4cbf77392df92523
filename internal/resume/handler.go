package resume

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skillbridge-backend/internal/extract"
	"skillbridge-backend/internal/shared/metrics"
	"skillbridge-backend/internal/shared/server/respond"
	"skillbridge-backend/internal/shared/util"
)

// Handler serves the resume analysis and extraction endpoints.
type Handler struct {
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(maxUploadBytes int64) *Handler {
	return &Handler{MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/analyze", h.analyze)
	rg.POST("/resume/extract", h.extractText)
}

type analyzeRequest struct {
	Text       string `json:"text"`
	TargetRole string `json:"target_role"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	report := Analyze(req.Text, req.TargetRole)

	metrics.IncResumeAnalyzed()
	respond.OK(c, report)
}

func (h *Handler) extractText(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if h.MaxUploadBytes > 0 && fileHeader.Size > h.MaxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "uploaded file exceeds the size limit", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}

	text, err := extract.TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileName)
	if err != nil {
		metrics.IncExtractFailed()
		respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported or unreadable document", nil)
		return
	}

	respond.OK(c, gin.H{
		"fileName": fileName,
		"text":     text,
		"words":    len(strings.Fields(text)),
	})
}
