package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lunarhue/formlark/internal/dto"
	"github.com/lunarhue/formlark/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetFormAnalytics godoc
// @Summary Get aggregated analytics for a form
// @Description Per-question distributions, averages and samples over the form's responses. Pass page/limit to aggregate a single page instead of the full collection.
// @Tags Analytics
// @Produce json
// @Param form_id path int true "Form ID"
// @Param page query int false "Page of responses to aggregate (with limit)"
// @Param limit query int false "Number of responses per page; omit to aggregate everything"
// @Success 200 {object} analytics.AnalyticsPayload
// @Failure 400 {object} dto.ErrorResponse "Invalid form ID"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{form_id}/analytics [get]
func (c *AnalyticsController) GetFormAnalytics(ctx *gin.Context) {
	formID, ok := parseIDParam(ctx, "form_id")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	payload, err := c.analyticsService.GetFormAnalytics(formID, page, limit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found"})
			return
		}
		log.Error().Err(err).Uint("formID", formID).Msg("GetFormAnalytics: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute analytics"})
		return
	}
	ctx.JSON(http.StatusOK, payload)
}

// GetResponders godoc
// @Summary List who has responded to a form
// @Description Display names resolved from respondent profile, captured email, or a best-effort scan of answer values; anonymous otherwise.
// @Tags Analytics
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 200 {array} analytics.Responder
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{form_id}/responders [get]
func (c *AnalyticsController) GetResponders(ctx *gin.Context) {
	formID, ok := parseIDParam(ctx, "form_id")
	if !ok {
		return
	}
	responders, err := c.analyticsService.GetResponders(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found"})
			return
		}
		log.Error().Err(err).Uint("formID", formID).Msg("GetResponders: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list responders"})
		return
	}
	ctx.JSON(http.StatusOK, responders)
}
