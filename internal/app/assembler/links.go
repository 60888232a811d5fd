// Package assembler builds the hypermedia links attached to API responses.
// Link building is pure string work over the route layout, kept apart from
// controllers so single-resource and page affordances stay in one place.
package assembler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thws/management/internal/app/models"
	"github.com/thws/management/internal/app/models/dto"
)

// UniversitiesPath is the collection root for partner universities.
const UniversitiesPath = "/api/v1/partner-universities"

func universityPath(id int64) string {
	return fmt.Sprintf("%s/%d", UniversitiesPath, id)
}

// ModulesPath returns the collection root for a university's modules.
func ModulesPath(universityID int64) string {
	return fmt.Sprintf("%s/%d/modules", UniversitiesPath, universityID)
}

func modulePath(universityID, id int64) string {
	return fmt.Sprintf("%s/%d", ModulesPath(universityID), id)
}

// pageHref renders a collection href carrying the echoed filter values plus
// the explicit page, size and sort parameters.
func pageHref(base string, filters url.Values, page, size int, sort models.SortDirection) string {
	query := url.Values{}
	for key, values := range filters {
		query[key] = values
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	query.Set("sort", string(sort))
	return base + "?" + query.Encode()
}

// UniversityLinks returns the affordances of a single partner university.
func UniversityLinks(id int64) []dto.Link {
	href := universityPath(id)
	return []dto.Link{
		{Rel: "self", Method: http.MethodGet, Href: href},
		{Rel: "update", Method: http.MethodPut, Href: href},
		{Rel: "delete", Method: http.MethodDelete, Href: href},
	}
}

// ModuleLinks returns the affordances of a single uni module, including the
// way back up to its owning university.
func ModuleLinks(universityID, id int64) []dto.Link {
	href := modulePath(universityID, id)
	return []dto.Link{
		{Rel: "self", Method: http.MethodGet, Href: href},
		{Rel: "update", Method: http.MethodPut, Href: href},
		{Rel: "delete", Method: http.MethodDelete, Href: href},
		{Rel: "university", Method: http.MethodGet, Href: universityPath(universityID)},
	}
}

// PageLinks returns the affordances of a collection page: a self link that
// echoes the active filters, a create link, a single sort link toggling to
// the opposite name order, and next/previous links only where a neighbouring
// page exists.
func PageLinks(base string, filters url.Values, page models.PageRequest, meta dto.PageMeta) []dto.Link {
	links := []dto.Link{
		{Rel: "self", Method: http.MethodGet, Href: pageHref(base, filters, page.Page, page.Size, page.Sort)},
		{Rel: "create", Method: http.MethodPost, Href: base},
		{Rel: "sort", Method: http.MethodGet, Href: pageHref(base, filters, page.Page, page.Size, page.Sort.Opposite())},
	}

	if meta.HasNext() {
		links = append(links, dto.Link{
			Rel: "next", Method: http.MethodGet,
			Href: pageHref(base, filters, page.Page+1, page.Size, page.Sort),
		})
	}
	if meta.HasPrevious() {
		links = append(links, dto.Link{
			Rel: "previous", Method: http.MethodGet,
			Href: pageHref(base, filters, page.Page-1, page.Size, page.Sort),
		})
	}

	return links
}

// UniversityPageLinks builds the page links for the university collection.
func UniversityPageLinks(filters url.Values, page models.PageRequest, meta dto.PageMeta) []dto.Link {
	return PageLinks(UniversitiesPath, filters, page, meta)
}

// ModulePageLinks builds the page links for a university's module collection.
func ModulePageLinks(universityID int64, filters url.Values, page models.PageRequest, meta dto.PageMeta) []dto.Link {
	return PageLinks(ModulesPath(universityID), filters, page, meta)
}
