package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thws/management/internal/app/assembler"
	"github.com/thws/management/internal/app/models"
	"github.com/thws/management/internal/app/models/dto"
	"github.com/thws/management/internal/app/services"
	"github.com/thws/management/internal/middleware"
	"github.com/thws/management/internal/pkg/apperrors"
	"github.com/thws/management/internal/pkg/helpers"
)

// ModuleController handles uni module endpoints nested under a partner
// university
type ModuleController struct {
	moduleService services.ModuleService
}

// NewModuleController creates a new ModuleController instance
func NewModuleController(moduleService services.ModuleService) *ModuleController {
	return &ModuleController{
		moduleService: moduleService,
	}
}

// parseModuleFilter reads the optional equality filters of the module
// collection, echoing the set parameters for page links.
func parseModuleFilter(c *gin.Context) (models.ModuleFilter, url.Values) {
	filter := models.ModuleFilter{}
	values := url.Values{}

	if name, ok := c.GetQuery("name"); ok {
		filter.Name = &name
		values.Set("name", name)
	}
	if raw, ok := c.GetQuery("semester"); ok {
		if semester, err := strconv.Atoi(raw); err == nil {
			filter.Semester = &semester
			values.Set("semester", raw)
		}
	}
	if raw, ok := c.GetQuery("ects"); ok {
		if ects, err := strconv.Atoi(raw); err == nil {
			filter.ECTS = &ects
			values.Set("ects", raw)
		}
	}

	return filter, values
}

func toModuleResponse(module *models.UniModule) dto.ModuleResponse {
	return dto.ModuleResponse{
		UniModule: *module,
		Links:     assembler.ModuleLinks(module.UniversityID, module.ID),
	}
}

// GetModules godoc
// @Summary Get modules of a partner university
// @Description Returns one page of a university's modules, optionally filtered by name, semester and ects, sorted by name
// @Tags modules
// @Produce json
// @Param universityId path int true "University ID"
// @Param name query string false "Filter by name (case-insensitive)"
// @Param semester query int false "Filter by semester"
// @Param ects query int false "Filter by ECTS credits"
// @Param page query int false "Page number (0-based)" default(0)
// @Param size query int false "Page size" default(2)
// @Param sort query string false "Sort direction by name" Enums(asc, desc)
// @Success 200 {object} dto.ModulePageResponse
// @Failure 404 {object} dto.APIResponse
// @Router /partner-universities/{universityId}/modules [get]
func (ctrl *ModuleController) GetModules(c *gin.Context) {
	universityID, ok := parseIDParam(c, "universityId")
	if !ok {
		return
	}

	filter, filterValues := parseModuleFilter(c)
	page := helpers.ParsePageRequest(c)

	modules, totalElements, err := ctrl.moduleService.GetModules(c.Request.Context(), universityID, filter, page)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if len(modules) == 0 {
		middleware.HandleAPIError(c, apperrors.NewNotFoundError("No modules found"))
		return
	}

	meta := helpers.NewPageMeta(totalElements, page.Page, page.Size)
	content := make([]dto.ModuleResponse, 0, len(modules))
	for _, module := range modules {
		content = append(content, toModuleResponse(module))
	}

	c.JSON(http.StatusOK, dto.ModulePageResponse{
		Content: content,
		Page:    meta,
		Links:   assembler.ModulePageLinks(universityID, filterValues, page, meta),
	})
}

// GetModule godoc
// @Summary Get a module
// @Description Returns a single module scoped to its owning university
// @Tags modules
// @Produce json
// @Param universityId path int true "University ID"
// @Param id path int true "Module ID"
// @Success 200 {object} dto.ModuleResponse
// @Failure 404 {object} dto.APIResponse
// @Router /partner-universities/{universityId}/modules/{id} [get]
func (ctrl *ModuleController) GetModule(c *gin.Context) {
	universityID, ok := parseIDParam(c, "universityId")
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	module, err := ctrl.moduleService.GetModuleByID(c.Request.Context(), universityID, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, toModuleResponse(module))
}

// CreateModule godoc
// @Summary Create a module
// @Description Creates a new module under a partner university. Module names are unique across all universities.
// @Tags modules
// @Accept json
// @Produce json
// @Param universityId path int true "University ID"
// @Param module body dto.CreateModuleRequest true "Module to create"
// @Success 201 {object} dto.ModuleResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /partner-universities/{universityId}/modules [post]
func (ctrl *ModuleController) CreateModule(c *gin.Context) {
	universityID, ok := parseIDParam(c, "universityId")
	if !ok {
		return
	}

	var req dto.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: middleware.BindingErrorDetail(err),
		})
		return
	}

	module := req.ToModel(universityID)
	if err := ctrl.moduleService.CreateModule(c.Request.Context(), module); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	response := toModuleResponse(module)
	c.Header("Location", response.Links[0].Href)
	c.JSON(http.StatusCreated, response)
}

// UpdateModule godoc
// @Summary Update a module
// @Description Merge-patches a module. Absent fields keep their stored values; the owning university never changes.
// @Tags modules
// @Accept json
// @Produce json
// @Param universityId path int true "University ID"
// @Param id path int true "Module ID"
// @Param module body dto.UpdateModuleRequest true "Fields to update"
// @Success 200 {object} dto.ModuleResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /partner-universities/{universityId}/modules/{id} [put]
func (ctrl *ModuleController) UpdateModule(c *gin.Context) {
	universityID, ok := parseIDParam(c, "universityId")
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: middleware.BindingErrorDetail(err),
		})
		return
	}

	module, err := ctrl.moduleService.UpdateModule(c.Request.Context(), universityID, id, req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, toModuleResponse(module))
}

// DeleteModule godoc
// @Summary Delete a module
// @Description Deletes a module scoped to its owning university
// @Tags modules
// @Param universityId path int true "University ID"
// @Param id path int true "Module ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.APIResponse
// @Router /partner-universities/{universityId}/modules/{id} [delete]
func (ctrl *ModuleController) DeleteModule(c *gin.Context) {
	universityID, ok := parseIDParam(c, "universityId")
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.moduleService.DeleteModule(c.Request.Context(), universityID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
