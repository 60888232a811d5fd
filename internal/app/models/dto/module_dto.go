package dto

import "github.com/thws/management/internal/app/models"

// CreateModuleRequest is the request body for creating a uni module under a
// partner university.
type CreateModuleRequest struct {
	Name     string `json:"name" binding:"required" example:"Module 1"`
	Semester *int   `json:"semester" binding:"required,min=1" example:"1"`
	ECTS     *int   `json:"ects" binding:"required,min=0" example:"5"`
}

// ToModel converts the create request into an entity owned by universityID.
func (r *CreateModuleRequest) ToModel(universityID int64) *models.UniModule {
	return &models.UniModule{
		UniversityID: universityID,
		Name:         r.Name,
		Semester:     *r.Semester,
		ECTS:         *r.ECTS,
	}
}

// UpdateModuleRequest is the merge-patch body for updating a uni module.
type UpdateModuleRequest struct {
	Name     *string `json:"name"`
	Semester *int    `json:"semester"`
	ECTS     *int    `json:"ects"`
}

// ToPatch converts the update request into a merge patch.
func (r *UpdateModuleRequest) ToPatch() models.ModulePatch {
	return models.ModulePatch{
		Name:     r.Name,
		Semester: r.Semester,
		ECTS:     r.ECTS,
	}
}

// ModuleResponse is the hypermedia representation of a uni module.
type ModuleResponse struct {
	models.UniModule
	Links []Link `json:"links"`
}

// ModulePageResponse is a page of uni modules plus metadata and navigation
// links.
type ModulePageResponse struct {
	Content []ModuleResponse `json:"content"`
	Page    PageMeta         `json:"page"`
	Links   []Link           `json:"links"`
}
