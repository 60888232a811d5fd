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

// UniversityController handles partner university endpoints
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController instance
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{
		universityService: universityService,
	}
}

// parseIDParam reads a positive integer path parameter. On failure it writes
// the 400 response itself and reports false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// parseUniversityFilter reads the optional equality filters of the university
// collection. The returned values echo exactly the parameters that were set,
// for reuse in page links.
func parseUniversityFilter(c *gin.Context) (models.UniversityFilter, url.Values) {
	filter := models.UniversityFilter{}
	values := url.Values{}

	if name, ok := c.GetQuery("name"); ok {
		filter.Name = &name
		values.Set("name", name)
	}
	if country, ok := c.GetQuery("country"); ok {
		filter.Country = &country
		values.Set("country", country)
	}
	if departmentName, ok := c.GetQuery("departmentName"); ok {
		filter.DepartmentName = &departmentName
		values.Set("departmentName", departmentName)
	}

	return filter, values
}

func toUniversityResponse(university *models.PartnerUniversity) dto.UniversityResponse {
	return dto.UniversityResponse{
		PartnerUniversity: *university,
		Links:             assembler.UniversityLinks(university.ID),
	}
}

// GetUniversities godoc
// @Summary Get partner universities
// @Description Returns one page of partner universities, optionally filtered by name, country and department name, sorted by name
// @Tags universities
// @Produce json
// @Param name query string false "Filter by name (case-insensitive)"
// @Param country query string false "Filter by country (case-insensitive)"
// @Param departmentName query string false "Filter by department name (case-insensitive)"
// @Param page query int false "Page number (0-based)" default(0)
// @Param size query int false "Page size" default(2)
// @Param sort query string false "Sort direction by name" Enums(asc, desc)
// @Success 200 {object} dto.UniversityPageResponse
// @Failure 404 {object} dto.APIResponse
// @Router /partner-universities [get]
func (ctrl *UniversityController) GetUniversities(c *gin.Context) {
	filter, filterValues := parseUniversityFilter(c)
	page := helpers.ParsePageRequest(c)

	universities, totalElements, err := ctrl.universityService.GetUniversities(c.Request.Context(), filter, page)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if len(universities) == 0 {
		middleware.HandleAPIError(c, apperrors.NewNotFoundError("No partner universities found"))
		return
	}

	meta := helpers.NewPageMeta(totalElements, page.Page, page.Size)
	content := make([]dto.UniversityResponse, 0, len(universities))
	for _, university := range universities {
		content = append(content, toUniversityResponse(university))
	}

	c.JSON(http.StatusOK, dto.UniversityPageResponse{
		Content: content,
		Page:    meta,
		Links:   assembler.UniversityPageLinks(filterValues, page, meta),
	})
}

// GetUniversity godoc
// @Summary Get a partner university
// @Description Returns a single partner university by id
// @Tags universities
// @Produce json
// @Param universityId path int true "University ID"
// @Success 200 {object} dto.UniversityResponse
// @Failure 404 {object} dto.APIResponse
// @Router /partner-universities/{universityId} [get]
func (ctrl *UniversityController) GetUniversity(c *gin.Context) {
	id, ok := parseIDParam(c, "universityId")
	if !ok {
		return
	}

	university, err := ctrl.universityService.GetUniversityByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUniversityResponse(university))
}

// CreateUniversity godoc
// @Summary Create a partner university
// @Description Creates a new partner university. All fields are required and names are unique.
// @Tags universities
// @Accept json
// @Produce json
// @Param university body dto.CreateUniversityRequest true "University to create"
// @Success 201 {object} dto.UniversityResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /partner-universities [post]
func (ctrl *UniversityController) CreateUniversity(c *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: middleware.BindingErrorDetail(err),
		})
		return
	}

	university := req.ToModel()
	if err := ctrl.universityService.CreateUniversity(c.Request.Context(), university); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	response := toUniversityResponse(university)
	c.Header("Location", response.Links[0].Href)
	c.JSON(http.StatusCreated, response)
}

// UpdateUniversity godoc
// @Summary Update a partner university
// @Description Merge-patches a partner university. Absent fields keep their stored values.
// @Tags universities
// @Accept json
// @Produce json
// @Param universityId path int true "University ID"
// @Param university body dto.UpdateUniversityRequest true "Fields to update"
// @Success 200 {object} dto.UniversityResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /partner-universities/{universityId} [put]
func (ctrl *UniversityController) UpdateUniversity(c *gin.Context) {
	id, ok := parseIDParam(c, "universityId")
	if !ok {
		return
	}

	var req dto.UpdateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: middleware.BindingErrorDetail(err),
		})
		return
	}

	university, err := ctrl.universityService.UpdateUniversity(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUniversityResponse(university))
}

// DeleteUniversity godoc
// @Summary Delete a partner university
// @Description Deletes a partner university together with all its modules
// @Tags universities
// @Param universityId path int true "University ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.APIResponse
// @Router /partner-universities/{universityId} [delete]
func (ctrl *UniversityController) DeleteUniversity(c *gin.Context) {
	id, ok := parseIDParam(c, "universityId")
	if !ok {
		return
	}

	if err := ctrl.universityService.DeleteUniversity(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
