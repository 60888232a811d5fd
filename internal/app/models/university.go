package models

// PartnerUniversity represents a partner institution offering exchange places.
type PartnerUniversity struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Country            string `json:"country"`
	DepartmentName     string `json:"departmentName"`
	DepartmentURL      string `json:"departmentUrl"`
	ContactPerson      string `json:"contactPerson"`
	MaxStudentsIn      int    `json:"maxStudentsIn"`
	MaxStudentsOut     int    `json:"maxStudentsOut"`
	NextSpringSemester Date   `json:"nextSpringSemester"`
	NextSummerSemester Date   `json:"nextSummerSemester"`
}

// UniversityFilter carries the optional listing filters for partner
// universities. A nil field means the filter is absent; present fields are
// combined as a case-insensitive equality conjunction.
type UniversityFilter struct {
	Name           *string
	Country        *string
	DepartmentName *string
}

// UniversityPatch carries a merge-patch request for a partner university.
// Only present, valid fields overwrite the stored record.
type UniversityPatch struct {
	Name               *string
	Country            *string
	DepartmentName     *string
	DepartmentURL      *string
	ContactPerson      *string
	MaxStudentsIn      *int
	MaxStudentsOut     *int
	NextSpringSemester *Date
	NextSummerSemester *Date
}
