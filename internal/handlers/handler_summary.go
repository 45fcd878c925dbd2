package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{summaryService: ss}
}

// RegisterSummaryRoutes registers routes related to the summary snapshot.
func RegisterSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)

	rg.POST("/summary", h.saveSummary)
	rg.GET("/summary", h.getSummary)
}

// saveSummary godoc
// @Summary Save the summary
// @Description Overwrites the stored totals with the posted values
// @Tags summary
// @Accept json
// @Produce json
// @Param summary body dto.SaveSummaryRequest true "Summary"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/summary [post]
func (h *summaryHandler) saveSummary(c *gin.Context) {
	var req dto.SaveSummaryRequest
	if err := bindJSONObject(c, &req); err != nil {
		respondError(c, err, "Failed to bind JSON for SaveSummary")
		return
	}

	if _, err := h.summaryService.SaveSummary(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to save summary")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Summary saved successfully"})
}

// getSummary godoc
// @Summary Get the summary
// @Description Returns the stored totals, or zeros when nothing has been saved
// @Tags summary
// @Produce json
// @Success 200 {object} domain.Summary
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	summary, err := h.summaryService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}
