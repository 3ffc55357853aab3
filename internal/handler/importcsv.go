package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javiercriado/interview-dashboard/internal/importer"
	"github.com/javiercriado/interview-dashboard/pkg/response"
)

// ImportCandidates validates raw CSV text and returns the per-row verdicts.
// Nothing is stored here; the caller reviews the preview and submits the
// valid rows through the bulk endpoint.
func (h *Handler) ImportCandidates(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "failed to read request body")
		return
	}
	if len(raw) == 0 {
		response.BadRequest(c, "empty CSV body")
		return
	}

	rows := importer.Parse(string(raw))
	valid := importer.Valid(rows)

	response.OK(c, gin.H{
		"rows":    rows,
		"valid":   len(valid),
		"invalid": len(rows) - len(valid),
	})
}

// DownloadImportTemplate serves the CSV template as a file download.
func (h *Handler) DownloadImportTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="candidate-template.csv"`)
	c.Data(http.StatusOK, "text/csv", importer.Template())
}
