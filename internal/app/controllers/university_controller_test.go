package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thws/management/internal/app/models"
	"github.com/thws/management/internal/app/models/dto"
	"github.com/thws/management/internal/pkg/apperrors"
)

func TestGetUniversitiesReturnsPage(t *testing.T) {
	var gotFilter models.UniversityFilter
	var gotPage models.PageRequest

	service := &stubUniversityService{
		list: func(_ context.Context, filter models.UniversityFilter, page models.PageRequest) ([]*models.PartnerUniversity, int64, error) {
			gotFilter = filter
			gotPage = page
			return []*models.PartnerUniversity{
				testUniversity(1, "Other University"),
				testUniversity(2, "THWS"),
			}, 3, nil
		},
	}
	router := newTestRouter(service, nil, nil)

	recorder := performRequest(router, "GET", "/api/v1/partner-universities?country=Germany&page=0&size=2&sort=asc", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	require.NotNil(t, gotFilter.Country)
	assert.Equal(t, "Germany", *gotFilter.Country)
	assert.Nil(t, gotFilter.Name)
	assert.Equal(t, models.PageRequest{Page: 0, Size: 2, Sort: models.SortAsc}, gotPage)

	var response dto.UniversityPageResponse
	decodeBody(t, recorder, &response)

	require.Len(t, response.Content, 2)
	assert.Equal(t, "Other University", response.Content[0].Name)
	require.Len(t, response.Content[0].Links, 3)
	assert.Equal(t, "/api/v1/partner-universities/1", response.Content[0].Links[0].Href)

	assert.Equal(t, int64(3), response.Page.TotalElements)
	assert.Equal(t, 2, response.Page.TotalPages)

	hrefs := map[string]string{}
	for _, link := range response.Links {
		hrefs[link.Rel] = link.Href
	}
	assert.Contains(t, hrefs["self"], "country=Germany")
	assert.Contains(t, hrefs["next"], "page=1")
	assert.NotContains(t, hrefs, "previous")
}

func TestGetUniversitiesEmptyPageIs404(t *testing.T) {
	service := &stubUniversityService{
		list: func(context.Context, models.UniversityFilter, models.PageRequest) ([]*models.PartnerUniversity, int64, error) {
			return []*models.PartnerUniversity{}, 0, nil
		},
	}
	router := newTestRouter(service, nil, nil)

	recorder := performRequest(router, "GET", "/api/v1/partner-universities", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var body dto.APIResponse
	decodeBody(t, recorder, &body)
	require.NotNil(t, body.Error)
	assert.Equal(t, "No partner universities found", body.Error.Message)
}

func TestGetUniversity(t *testing.T) {
	service := &stubUniversityService{
		get: func(_ context.Context, id int64) (*models.PartnerUniversity, error) {
			require.Equal(t, int64(7), id)
			return testUniversity(7, "THWS"), nil
		},
	}
	router := newTestRouter(service, nil, nil)

	recorder := performRequest(router, "GET", "/api/v1/partner-universities/7", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response dto.UniversityResponse
	decodeBody(t, recorder, &response)
	assert.Equal(t, "THWS", response.Name)
	require.Len(t, response.Links, 3)
	assert.Equal(t, "self", response.Links[0].Rel)
}

func TestGetUniversityNotFound(t *testing.T) {
	service := &stubUniversityService{
		get: func(context.Context, int64) (*models.PartnerUniversity, error) {
			return nil, apperrors.ErrUniversityNotFound
		},
	}
	router := newTestRouter(service, nil, nil)

	recorder := performRequest(router, "GET", "/api/v1/partner-universities/99", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetUniversityInvalidID(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	recorder := performRequest(router, "GET", "/api/v1/partner-universities/abc", "")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body dto.APIResponse
	decodeBody(t, recorder, &body)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Invalid universityId parameter", body.Error.Message)
}

func TestCreateUniversity(t *testing.T) {
	service := &stubUniversityService{
		create: func(_ context.Context, u *models.PartnerUniversity) error {
			u.ID = 3
			return nil
		},
	}
	router := newTestRouter(service, nil, nil)

	body := `{
		"name": "THWS",
		"country": "Germany",
		"departmentName": "Department Name 1",
		"departmentUrl": "web@site.de",
		"contactPerson": "Edin Putzu",
		"maxStudentsIn": 30,
		"maxStudentsOut": 30,
		"nextSpringSemester": "2000-03-17",
		"nextSummerSemester": "2000-03-17"
	}`

	recorder := performRequest(router, "POST", "/api/v1/partner-universities", body)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "/api/v1/partner-universities/3", recorder.Header().Get("Location"))

	var response dto.UniversityResponse
	decodeBody(t, recorder, &response)
	assert.Equal(t, int64(3), response.ID)
	assert.Equal(t, "THWS", response.Name)
}

func TestCreateUniversityMissingFields(t *testing.T) {
	router := newTestRouter(&stubUniversityService{}, nil, nil)

	// country and the capacities are missing
	recorder := performRequest(router, "POST", "/api/v1/partner-universities", `{"name": "THWS"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateUniversityDuplicateName(t *testing.T) {
	service := &stubUniversityService{
		create: func(context.Context, *models.PartnerUniversity) error {
			return apperrors.ErrUniversityAlreadyExists
		},
	}
	router := newTestRouter(service, nil, nil)

	body := `{
		"name": "THWS",
		"country": "Germany",
		"departmentName": "Department Name 1",
		"departmentUrl": "web@site.de",
		"contactPerson": "Edin Putzu",
		"maxStudentsIn": 30,
		"maxStudentsOut": 30,
		"nextSpringSemester": "2000-03-17",
		"nextSummerSemester": "2000-03-17"
	}`

	recorder := performRequest(router, "POST", "/api/v1/partner-universities", body)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestUpdateUniversity(t *testing.T) {
	service := &stubUniversityService{
		update: func(_ context.Context, id int64, patch models.UniversityPatch) (*models.PartnerUniversity, error) {
			require.Equal(t, int64(1), id)
			require.NotNil(t, patch.Country)
			assert.Equal(t, "Austria", *patch.Country)
			assert.Nil(t, patch.Name)

			updated := testUniversity(1, "THWS")
			updated.Country = *patch.Country
			return updated, nil
		},
	}
	router := newTestRouter(service, nil, nil)

	recorder := performRequest(router, "PUT", "/api/v1/partner-universities/1", `{"country": "Austria"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response dto.UniversityResponse
	decodeBody(t, recorder, &response)
	assert.Equal(t, "Austria", response.Country)
}

func TestDeleteUniversity(t *testing.T) {
	service := &stubUniversityService{
		delete: func(_ context.Context, id int64) error {
			require.Equal(t, int64(1), id)
			return nil
		},
	}
	router := newTestRouter(service, nil, nil)

	recorder := performRequest(router, "DELETE", "/api/v1/partner-universities/1", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestDeleteUniversityNotFound(t *testing.T) {
	service := &stubUniversityService{
		delete: func(context.Context, int64) error {
			return apperrors.ErrUniversityNotFound
		},
	}
	router := newTestRouter(service, nil, nil)

	recorder := performRequest(router, "DELETE", "/api/v1/partner-universities/99", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
