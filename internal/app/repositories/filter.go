package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/thws/management/internal/app/models"
)

// UniversityFilterConditions maps the present university filter fields to a
// single equality conjunction. Each field contributes exactly one
// case-insensitive predicate when set; absent fields contribute nothing, so
// all 2^k filter combinations resolve through this one function.
func UniversityFilterConditions(filter models.UniversityFilter) squirrel.And {
	cond := squirrel.And{}

	if filter.Name != nil {
		cond = append(cond, squirrel.Expr("lower(name) = lower(?)", *filter.Name))
	}
	if filter.Country != nil {
		cond = append(cond, squirrel.Expr("lower(country) = lower(?)", *filter.Country))
	}
	if filter.DepartmentName != nil {
		cond = append(cond, squirrel.Expr("lower(department_name) = lower(?)", *filter.DepartmentName))
	}

	return cond
}

// ModuleFilterConditions maps the present module filter fields to a single
// conjunction. The owning university id is always part of the predicate.
func ModuleFilterConditions(universityID int64, filter models.ModuleFilter) squirrel.And {
	cond := squirrel.And{squirrel.Eq{"university_id": universityID}}

	if filter.Name != nil {
		cond = append(cond, squirrel.Expr("lower(name) = lower(?)", *filter.Name))
	}
	if filter.Semester != nil {
		cond = append(cond, squirrel.Eq{"semester": *filter.Semester})
	}
	if filter.ECTS != nil {
		cond = append(cond, squirrel.Eq{"ects": *filter.ECTS})
	}

	return cond
}

// nameOrderBy returns the stable name ordering clause for listings.
// The id tie-breaker keeps pagination deterministic for equal names.
func nameOrderBy(direction models.SortDirection) string {
	if direction == models.SortDesc {
		return "lower(name) DESC, id ASC"
	}
	return "lower(name) ASC, id ASC"
}
