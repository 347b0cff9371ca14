package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/dto"
	"github.com/SscSPs/shopbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxImportSize caps an uploaded spreadsheet.
const maxImportSize = 10 << 20

// importHandler handles spreadsheet uploads.
type importHandler struct {
	importService portssvc.ImportSvc
}

// RegisterImportRoutes registers the import routes.
func RegisterImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvc) {
	h := &importHandler{importService: importService}

	imports := rg.Group("/import")
	{
		imports.POST("", h.importFile)
		imports.GET("/template", h.getTemplate)
	}
}

// importFile godoc
// @Summary Import entries from a spreadsheet
// @Description Uploads a CSV or XLSX file. Valid rows are recorded; invalid rows are reported with their row number and reason.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file, unsupported type or missing columns"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /import [post]
func (h *importHandler) importFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)
	header, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Import without file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required in the \"file\" field"})
		return
	}
	file, err := header.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	logger = logger.With(slog.String("file", header.Filename), slog.Int64("size", header.Size))
	result, err := h.importService.ImportFile(c.Request.Context(), header.Filename, file, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to import file")
		return
	}
	c.JSON(http.StatusOK, dto.ToImportResponse(result))
}

// getTemplate godoc
// @Summary Download the import template
// @Description CSV with the expected header and two example rows
// @Tags import
// @Produce text/csv
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /import/template [get]
func (h *importHandler) getTemplate(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.importService.WriteTemplate(&buf); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to write template", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate template"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="transaction_template.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
