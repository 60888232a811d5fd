package models

// UniModule represents a course offering of exactly one partner university.
type UniModule struct {
	ID           int64  `json:"id"`
	UniversityID int64  `json:"universityId"`
	Name         string `json:"name"`
	Semester     int    `json:"semester"`
	ECTS         int    `json:"ects"`
}

// ModuleFilter carries the optional listing filters for uni modules.
// The owning university id is mandatory and passed separately.
type ModuleFilter struct {
	Name     *string
	Semester *int
	ECTS     *int
}

// ModulePatch carries a merge-patch request for a uni module.
type ModulePatch struct {
	Name     *string
	Semester *int
	ECTS     *int
}
