package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fittrack/tracker/internal/service"
)

// ExportHandler holds the export service dependency. The service is nil
// when no export bucket is configured.
type ExportHandler struct {
	exportService service.ExportService
	logger        zerolog.Logger
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService, logger zerolog.Logger) *ExportHandler {
	return &ExportHandler{exportService: exportService, logger: logger}
}

// CreateExport handles POST /exports: snapshot every record to object
// storage and hand back a presigned download link.
func (h *ExportHandler) CreateExport(c *gin.Context) {
	if h.exportService == nil {
		abortWithError(c, http.StatusServiceUnavailable, "export storage is not configured")
		return
	}

	result, err := h.exportService.ExportSnapshot(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
