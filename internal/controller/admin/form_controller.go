package admin

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

type FormController struct {
	formAdminService service.FormAdminService
}

func NewFormController(formAdminService service.FormAdminService) *FormController {
	return &FormController{formAdminService: formAdminService}
}

// CreateForm godoc
// @Summary (Admin) Create a new form
// @Description Owner creates a form with its typed questions in one request.
// @Tags Admin - Forms
// @Accept json
// @Produce json
// @Param form_data body dto.FormCreateDTO true "Form creation data including questions"
// @Success 201 {object} dto.FormResponseDTO "Form created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/forms [post]
func (c *FormController) CreateForm(ctx *gin.Context) {
	var req dto.FormCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateForm: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	formResp, err := c.formAdminService.CreateForm(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateForm: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create form", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, formResp)
}

// ListForms godoc
// @Summary (Admin) List all forms
// @Description Get all forms with their question and response counts.
// @Tags Admin - Forms
// @Produce json
// @Success 200 {array} dto.FormSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/forms [get]
func (c *FormController) ListForms(ctx *gin.Context) {
	forms, err := c.formAdminService.ListForms()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListForms: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list forms"})
		return
	}
	ctx.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary (Admin) Get form details
// @Description Get one form with its full question list.
// @Tags Admin - Forms
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 200 {object} dto.FormResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid form ID"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /admin/forms/{form_id} [get]
func (c *FormController) GetForm(ctx *gin.Context) {
	formID, ok := parseFormID(ctx)
	if !ok {
		return
	}
	formResp, err := c.formAdminService.GetForm(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found"})
			return
		}
		log.Error().Err(err).Uint("formID", formID).Msg("Admin GetForm: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch form"})
		return
	}
	ctx.JSON(http.StatusOK, formResp)
}

// DeleteForm godoc
// @Summary (Admin) Delete a form
// @Description Soft-deletes a form. Its responses are retained.
// @Tags Admin - Forms
// @Produce json
// @Param form_id path int true "Form ID"
// @Success 204 "Form deleted"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /admin/forms/{form_id} [delete]
func (c *FormController) DeleteForm(ctx *gin.Context) {
	formID, ok := parseFormID(ctx)
	if !ok {
		return
	}
	if err := c.formAdminService.DeleteForm(formID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found"})
			return
		}
		log.Error().Err(err).Uint("formID", formID).Msg("Admin DeleteForm: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete form"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question from a form
// @Description Removes a question. Answers already stored against its key are kept and tolerated as orphans by analytics.
// @Tags Admin - Forms
// @Produce json
// @Param form_id path int true "Form ID"
// @Param question_key path string true "Question key"
// @Success 204 "Question deleted"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/forms/{form_id}/questions/{question_key} [delete]
func (c *FormController) DeleteQuestion(ctx *gin.Context) {
	formID, ok := parseFormID(ctx)
	if !ok {
		return
	}
	key := ctx.Param("question_key")
	if err := c.formAdminService.DeleteQuestion(formID, key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("formID", formID).Str("key", key).Msg("Admin DeleteQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete question"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseFormID(ctx *gin.Context) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param("form_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID format"})
		return 0, false
	}
	return uint(val), true
}
