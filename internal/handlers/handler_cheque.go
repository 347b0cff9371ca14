package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/dto"
	"github.com/SscSPs/shopbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chequeHandler handles HTTP requests related to issued cheques.
type chequeHandler struct {
	chequeService portssvc.ChequeSvcFacade
}

// RegisterChequeRoutes registers routes related to cheques.
func RegisterChequeRoutes(rg *gin.RouterGroup, chequeService portssvc.ChequeSvcFacade) {
	h := &chequeHandler{chequeService: chequeService}

	cheques := rg.Group("/cheques")
	{
		cheques.POST("", h.createCheque)
		cheques.GET("", h.listCheques)
		cheques.PATCH("/:chequeID/status", h.updateChequeStatus)
	}
}

// createCheque godoc
// @Summary Issue a cheque
// @Description Records a new cheque. Its status starts as Pending.
// @Tags cheques
// @Accept json
// @Produce json
// @Param cheque body dto.CreateChequeRequest true "Cheque details"
// @Success 201 {object} domain.Cheque
// @Failure 400 {object} dto.ErrorResponse "Invalid input or non-positive amount"
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cheques [post]
func (h *chequeHandler) createCheque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCheque", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cheque, err := h.chequeService.IssueCheque(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to issue cheque")
		return
	}
	c.JSON(http.StatusCreated, cheque)
}

// listCheques godoc
// @Summary List cheques
// @Description Lists cheques newest first, optionally by status
// @Tags cheques
// @Produce json
// @Param status query string false "Pending, Cleared or Bounced"
// @Success 200 {object} dto.ListChequesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cheques [get]
func (h *chequeHandler) listCheques(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListChequesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var status *domain.ChequeStatus
	if params.Status != "" {
		st, err := domain.ParseChequeStatus(params.Status)
		if err != nil {
			respondError(c, logger, err, "Invalid status")
			return
		}
		status = &st
	}

	cheques, err := h.chequeService.ListCheques(c.Request.Context(), status)
	if err != nil {
		respondError(c, logger, err, "Failed to list cheques")
		return
	}
	c.JSON(http.StatusOK, dto.ListChequesResponse{Cheques: cheques, Count: len(cheques)})
}

// updateChequeStatus godoc
// @Summary Update cheque status
// @Description Moves a cheque to Pending, Cleared or Bounced. Any status may follow any other.
// @Tags cheques
// @Accept json
// @Produce json
// @Param chequeID path int true "Cheque ID"
// @Param status body dto.UpdateChequeStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cheques/{chequeID}/status [patch]
func (h *chequeHandler) updateChequeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chequeID, err := strconv.ParseInt(c.Param("chequeID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cheque ID"})
		return
	}
	var req dto.UpdateChequeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	status, err := domain.ParseChequeStatus(req.Status)
	if err != nil {
		respondError(c, logger, err, "Invalid status")
		return
	}
	actor, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.chequeService.UpdateChequeStatus(c.Request.Context(), chequeID, status, actor); err != nil {
		respondError(c, logger, err, "Failed to update cheque")
		return
	}
	c.Status(http.StatusNoContent)
}
