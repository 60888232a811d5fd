package services

import (
	"context"
	"sort"
	"strings"

	"github.com/thws/management/internal/app/models"
	"github.com/thws/management/internal/pkg/apperrors"
	"github.com/thws/management/internal/pkg/helpers"
)

// fakeUniversityStore is an in-memory UniversityStore mirroring the database
// semantics: case-insensitive unique names, name-sorted pages and cascading
// deletes into the linked module store.
type fakeUniversityStore struct {
	nextID  int64
	byID    map[int64]*models.PartnerUniversity
	modules *fakeModuleStore
}

func newFakeUniversityStore() *fakeUniversityStore {
	return &fakeUniversityStore{byID: map[int64]*models.PartnerUniversity{}}
}

func (s *fakeUniversityStore) Insert(_ context.Context, university *models.PartnerUniversity) error {
	for _, existing := range s.byID {
		if strings.EqualFold(existing.Name, university.Name) {
			return apperrors.ErrUniversityAlreadyExists
		}
	}
	s.nextID++
	university.ID = s.nextID
	stored := *university
	s.byID[university.ID] = &stored
	return nil
}

func (s *fakeUniversityStore) GetByID(_ context.Context, id int64) (*models.PartnerUniversity, error) {
	stored, ok := s.byID[id]
	if !ok {
		return nil, apperrors.ErrUniversityNotFound
	}
	copy := *stored
	return &copy, nil
}

func (s *fakeUniversityStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := s.byID[id]
	return ok, nil
}

func (s *fakeUniversityStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, existing := range s.byID {
		if strings.EqualFold(existing.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUniversityStore) matches(u *models.PartnerUniversity, filter models.UniversityFilter) bool {
	if filter.Name != nil && !strings.EqualFold(u.Name, *filter.Name) {
		return false
	}
	if filter.Country != nil && !strings.EqualFold(u.Country, *filter.Country) {
		return false
	}
	if filter.DepartmentName != nil && !strings.EqualFold(u.DepartmentName, *filter.DepartmentName) {
		return false
	}
	return true
}

func (s *fakeUniversityStore) Find(_ context.Context, filter models.UniversityFilter, page models.PageRequest) ([]*models.PartnerUniversity, int64, error) {
	matched := []*models.PartnerUniversity{}
	for _, u := range s.byID {
		if s.matches(u, filter) {
			copy := *u
			matched = append(matched, &copy)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := strings.ToLower(matched[i].Name), strings.ToLower(matched[j].Name)
		if a == b {
			return matched[i].ID < matched[j].ID
		}
		if page.Sort == models.SortDesc {
			return a > b
		}
		return a < b
	})

	total := int64(len(matched))
	offset, limit := helpers.CalculateOffsetLimit(page.Page, page.Size)
	if int(offset) >= len(matched) {
		return []*models.PartnerUniversity{}, total, nil
	}
	end := int(offset) + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (s *fakeUniversityStore) Update(_ context.Context, university *models.PartnerUniversity) error {
	if _, ok := s.byID[university.ID]; !ok {
		return apperrors.ErrUniversityNotFound
	}
	for id, existing := range s.byID {
		if id != university.ID && strings.EqualFold(existing.Name, university.Name) {
			return apperrors.ErrUniversityAlreadyExists
		}
	}
	stored := *university
	s.byID[university.ID] = &stored
	return nil
}

func (s *fakeUniversityStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return apperrors.ErrUniversityNotFound
	}
	delete(s.byID, id)
	if s.modules != nil {
		for moduleID, module := range s.modules.byID {
			if module.UniversityID == id {
				delete(s.modules.byID, moduleID)
			}
		}
	}
	return nil
}

// fakeModuleStore is an in-memory ModuleStore with globally unique,
// case-insensitive module names.
type fakeModuleStore struct {
	nextID       int64
	byID         map[int64]*models.UniModule
	universities *fakeUniversityStore
}

func newFakeModuleStore(universities *fakeUniversityStore) *fakeModuleStore {
	s := &fakeModuleStore{byID: map[int64]*models.UniModule{}, universities: universities}
	if universities != nil {
		universities.modules = s
	}
	return s
}

func (s *fakeModuleStore) Insert(_ context.Context, module *models.UniModule) error {
	if s.universities != nil {
		if _, ok := s.universities.byID[module.UniversityID]; !ok {
			return apperrors.ErrUniversityNotFound
		}
	}
	for _, existing := range s.byID {
		if strings.EqualFold(existing.Name, module.Name) {
			return apperrors.ErrModuleAlreadyExists
		}
	}
	s.nextID++
	module.ID = s.nextID
	stored := *module
	s.byID[module.ID] = &stored
	return nil
}

func (s *fakeModuleStore) GetByID(_ context.Context, universityID, id int64) (*models.UniModule, error) {
	stored, ok := s.byID[id]
	if !ok || stored.UniversityID != universityID {
		return nil, apperrors.ErrModuleNotFound
	}
	copy := *stored
	return &copy, nil
}

func (s *fakeModuleStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, existing := range s.byID {
		if strings.EqualFold(existing.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeModuleStore) matches(m *models.UniModule, filter models.ModuleFilter) bool {
	if filter.Name != nil && !strings.EqualFold(m.Name, *filter.Name) {
		return false
	}
	if filter.Semester != nil && m.Semester != *filter.Semester {
		return false
	}
	if filter.ECTS != nil && m.ECTS != *filter.ECTS {
		return false
	}
	return true
}

func (s *fakeModuleStore) Find(_ context.Context, universityID int64, filter models.ModuleFilter, page models.PageRequest) ([]*models.UniModule, int64, error) {
	matched := []*models.UniModule{}
	for _, m := range s.byID {
		if m.UniversityID == universityID && s.matches(m, filter) {
			copy := *m
			matched = append(matched, &copy)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := strings.ToLower(matched[i].Name), strings.ToLower(matched[j].Name)
		if a == b {
			return matched[i].ID < matched[j].ID
		}
		if page.Sort == models.SortDesc {
			return a > b
		}
		return a < b
	})

	total := int64(len(matched))
	offset, limit := helpers.CalculateOffsetLimit(page.Page, page.Size)
	if int(offset) >= len(matched) {
		return []*models.UniModule{}, total, nil
	}
	end := int(offset) + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (s *fakeModuleStore) Update(_ context.Context, module *models.UniModule) error {
	stored, ok := s.byID[module.ID]
	if !ok || stored.UniversityID != module.UniversityID {
		return apperrors.ErrModuleNotFound
	}
	for id, existing := range s.byID {
		if id != module.ID && strings.EqualFold(existing.Name, module.Name) {
			return apperrors.ErrModuleAlreadyExists
		}
	}
	copy := *module
	s.byID[module.ID] = &copy
	return nil
}

func (s *fakeModuleStore) Delete(_ context.Context, universityID, id int64) error {
	stored, ok := s.byID[id]
	if !ok || stored.UniversityID != universityID {
		return apperrors.ErrModuleNotFound
	}
	delete(s.byID, id)
	return nil
}
