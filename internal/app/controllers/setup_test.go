package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/thws/management/internal/app/controllers"
	"github.com/thws/management/internal/app/models"
	"github.com/thws/management/internal/app/routes"
)

// stubUniversityService lets each test pin exactly the service behaviour the
// handler under test should see.
type stubUniversityService struct {
	create func(ctx context.Context, u *models.PartnerUniversity) error
	get    func(ctx context.Context, id int64) (*models.PartnerUniversity, error)
	list   func(ctx context.Context, filter models.UniversityFilter, page models.PageRequest) ([]*models.PartnerUniversity, int64, error)
	update func(ctx context.Context, id int64, patch models.UniversityPatch) (*models.PartnerUniversity, error)
	delete func(ctx context.Context, id int64) error
}

func (s *stubUniversityService) CreateUniversity(ctx context.Context, u *models.PartnerUniversity) error {
	return s.create(ctx, u)
}

func (s *stubUniversityService) GetUniversityByID(ctx context.Context, id int64) (*models.PartnerUniversity, error) {
	return s.get(ctx, id)
}

func (s *stubUniversityService) GetUniversities(ctx context.Context, filter models.UniversityFilter, page models.PageRequest) ([]*models.PartnerUniversity, int64, error) {
	return s.list(ctx, filter, page)
}

func (s *stubUniversityService) UpdateUniversity(ctx context.Context, id int64, patch models.UniversityPatch) (*models.PartnerUniversity, error) {
	return s.update(ctx, id, patch)
}

func (s *stubUniversityService) DeleteUniversity(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

type stubModuleService struct {
	create func(ctx context.Context, m *models.UniModule) error
	get    func(ctx context.Context, universityID, id int64) (*models.UniModule, error)
	list   func(ctx context.Context, universityID int64, filter models.ModuleFilter, page models.PageRequest) ([]*models.UniModule, int64, error)
	update func(ctx context.Context, universityID, id int64, patch models.ModulePatch) (*models.UniModule, error)
	delete func(ctx context.Context, universityID, id int64) error
}

func (s *stubModuleService) CreateModule(ctx context.Context, m *models.UniModule) error {
	return s.create(ctx, m)
}

func (s *stubModuleService) GetModuleByID(ctx context.Context, universityID, id int64) (*models.UniModule, error) {
	return s.get(ctx, universityID, id)
}

func (s *stubModuleService) GetModules(ctx context.Context, universityID int64, filter models.ModuleFilter, page models.PageRequest) ([]*models.UniModule, int64, error) {
	return s.list(ctx, universityID, filter, page)
}

func (s *stubModuleService) UpdateModule(ctx context.Context, universityID, id int64, patch models.ModulePatch) (*models.UniModule, error) {
	return s.update(ctx, universityID, id, patch)
}

func (s *stubModuleService) DeleteModule(ctx context.Context, universityID, id int64) error {
	return s.delete(ctx, universityID, id)
}

type stubResetter struct {
	err error
}

func (s *stubResetter) Reset(context.Context) error { return s.err }

// newTestRouter wires the real route layout around stub services.
func newTestRouter(universityService *stubUniversityService, moduleService *stubModuleService, resetter *stubResetter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	if universityService == nil {
		universityService = &stubUniversityService{}
	}
	if moduleService == nil {
		moduleService = &stubModuleService{}
	}
	if resetter == nil {
		resetter = &stubResetter{}
	}

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewUniversityController(universityService),
		controllers.NewModuleController(moduleService),
		controllers.NewAdminController(resetter),
	)
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func testUniversity(id int64, name string) *models.PartnerUniversity {
	return &models.PartnerUniversity{
		ID:                 id,
		Name:               name,
		Country:            "Germany",
		DepartmentName:     "Department Name 1",
		DepartmentURL:      "web@site.de",
		ContactPerson:      "Edin Putzu",
		MaxStudentsIn:      30,
		MaxStudentsOut:     30,
		NextSpringSemester: models.NewDate(2000, time.March, 17),
		NextSummerSemester: models.NewDate(2000, time.March, 17),
	}
}
