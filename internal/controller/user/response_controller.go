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

type ResponseController struct {
	submissionService service.SubmissionService
}

func NewResponseController(submissionService service.SubmissionService) *ResponseController {
	return &ResponseController{submissionService: submissionService}
}

// SubmitResponse godoc
// @Summary Submit a response to a form
// @Description Stores one whole response. Quiz forms are scored at submission time.
// @Tags Responses
// @Accept json
// @Produce json
// @Param form_id path int true "Form ID"
// @Param response body dto.ResponseSubmitDTO true "Answers plus optional respondent identity"
// @Success 201 {object} dto.ResponseDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or closed form"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{form_id}/responses [post]
func (c *ResponseController) SubmitResponse(ctx *gin.Context) {
	formID, ok := parseIDParam(ctx, "form_id")
	if !ok {
		return
	}
	var req dto.ResponseSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitResponse: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	detail, err := c.submissionService.SubmitResponse(formID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found"})
			return
		}
		log.Error().Err(err).Uint("formID", formID).Msg("SubmitResponse: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to submit response", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, detail)
}

// ListResponses godoc
// @Summary List a form's responses
// @Description Paginated list of stored responses, newest first.
// @Tags Responses
// @Produce json
// @Param form_id path int true "Form ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.ResponsePageDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Router /forms/{form_id}/responses [get]
func (c *ResponseController) ListResponses(ctx *gin.Context) {
	formID, ok := parseIDParam(ctx, "form_id")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	pageDto, err := c.submissionService.ListResponses(formID, page, limit)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("ListResponses: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list responses"})
		return
	}
	ctx.JSON(http.StatusOK, pageDto)
}

// GetResponse godoc
// @Summary Get one response
// @Description Full detail of a single stored response including its answers.
// @Tags Responses
// @Produce json
// @Param response_id path int true "Response ID"
// @Success 200 {object} dto.ResponseDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Response not found"
// @Router /responses/{response_id} [get]
func (c *ResponseController) GetResponse(ctx *gin.Context) {
	responseID, ok := parseIDParam(ctx, "response_id")
	if !ok {
		return
	}
	detail, err := c.submissionService.GetResponse(responseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Response not found"})
			return
		}
		log.Error().Err(err).Uint("responseID", responseID).Msg("GetResponse: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch response"})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// DeleteResponse godoc
// @Summary Delete a response
// @Description Owner deletion by default; pass user_id to delete as the original respondent, which the form settings must allow.
// @Tags Responses
// @Produce json
// @Param response_id path int true "Response ID"
// @Param user_id query int false "Respondent user ID when deleting one's own response"
// @Success 204 "Response deleted"
// @Failure 400 {object} dto.ErrorResponse "Deletion not permitted"
// @Failure 404 {object} dto.ErrorResponse "Response not found"
// @Router /responses/{response_id} [delete]
func (c *ResponseController) DeleteResponse(ctx *gin.Context) {
	responseID, ok := parseIDParam(ctx, "response_id")
	if !ok {
		return
	}
	var asRespondent *uint
	if userIDStr := ctx.Query("user_id"); userIDStr != "" {
		val, err := strconv.ParseUint(userIDStr, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format in query"})
			return
		}
		uID := uint(val)
		asRespondent = &uID
	}

	if err := c.submissionService.DeleteResponse(responseID, asRespondent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Response not found"})
			return
		}
		log.Error().Err(err).Uint("responseID", responseID).Msg("DeleteResponse: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to delete response", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
