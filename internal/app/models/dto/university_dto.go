package dto

import "github.com/thws/management/internal/app/models"

// CreateUniversityRequest is the request body for creating a partner
// university. All fields are required.
type CreateUniversityRequest struct {
	Name               string       `json:"name" binding:"required" example:"THWS"`
	Country            string       `json:"country" binding:"required" example:"Germany"`
	DepartmentName     string       `json:"departmentName" binding:"required" example:"Department Name 1"`
	DepartmentURL      string       `json:"departmentUrl" binding:"required" example:"web@site.de"`
	ContactPerson      string       `json:"contactPerson" binding:"required" example:"Edin Putzu"`
	MaxStudentsIn      *int         `json:"maxStudentsIn" binding:"required,min=0" example:"30"`
	MaxStudentsOut     *int         `json:"maxStudentsOut" binding:"required,min=0" example:"30"`
	NextSpringSemester *models.Date `json:"nextSpringSemester" binding:"required"`
	NextSummerSemester *models.Date `json:"nextSummerSemester" binding:"required"`
}

// ToModel converts the create request into an entity.
func (r *CreateUniversityRequest) ToModel() *models.PartnerUniversity {
	return &models.PartnerUniversity{
		Name:               r.Name,
		Country:            r.Country,
		DepartmentName:     r.DepartmentName,
		DepartmentURL:      r.DepartmentURL,
		ContactPerson:      r.ContactPerson,
		MaxStudentsIn:      *r.MaxStudentsIn,
		MaxStudentsOut:     *r.MaxStudentsOut,
		NextSpringSemester: *r.NextSpringSemester,
		NextSummerSemester: *r.NextSummerSemester,
	}
}

// UpdateUniversityRequest is the merge-patch body for updating a partner
// university. Absent or empty fields leave the stored values untouched.
type UpdateUniversityRequest struct {
	Name               *string      `json:"name"`
	Country            *string      `json:"country"`
	DepartmentName     *string      `json:"departmentName"`
	DepartmentURL      *string      `json:"departmentUrl"`
	ContactPerson      *string      `json:"contactPerson"`
	MaxStudentsIn      *int         `json:"maxStudentsIn"`
	MaxStudentsOut     *int         `json:"maxStudentsOut"`
	NextSpringSemester *models.Date `json:"nextSpringSemester"`
	NextSummerSemester *models.Date `json:"nextSummerSemester"`
}

// ToPatch converts the update request into a merge patch.
func (r *UpdateUniversityRequest) ToPatch() models.UniversityPatch {
	return models.UniversityPatch{
		Name:               r.Name,
		Country:            r.Country,
		DepartmentName:     r.DepartmentName,
		DepartmentURL:      r.DepartmentURL,
		ContactPerson:      r.ContactPerson,
		MaxStudentsIn:      r.MaxStudentsIn,
		MaxStudentsOut:     r.MaxStudentsOut,
		NextSpringSemester: r.NextSpringSemester,
		NextSummerSemester: r.NextSummerSemester,
	}
}

// UniversityResponse is the hypermedia representation of a partner university.
type UniversityResponse struct {
	models.PartnerUniversity
	Links []Link `json:"links"`
}

// UniversityPageResponse is a page of partner universities plus metadata and
// navigation links.
type UniversityPageResponse struct {
	Content []UniversityResponse `json:"content"`
	Page    PageMeta             `json:"page"`
	Links   []Link               `json:"links"`
}
