package uploads

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-review/internal/extract"
	"resume-review/internal/shared/server/respond"
	"resume-review/internal/shared/telemetry"
)

const maxUploadBytes = 5 << 20

func RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", extractText)
}

func extractText(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file uploaded.", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	text, err := extract.Text(data, fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedFileType), errors.Is(err, extract.ErrTooLittleText):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			telemetry.Error("extract.failed", map[string]any{
				"err":        err.Error(),
				"file":       fileHeader.Filename,
				"sizeBytes":  fileHeader.Size,
				"request_id": c.GetString("requestId"),
			})
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to extract text.", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"text": text})
}
