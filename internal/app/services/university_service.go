package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/thws/management/internal/app/models"
	"github.com/thws/management/internal/pkg/apperrors"
)

// UniversityStore is the persistence contract for partner universities.
type UniversityStore interface {
	Insert(ctx context.Context, university *models.PartnerUniversity) error
	GetByID(ctx context.Context, id int64) (*models.PartnerUniversity, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Find(ctx context.Context, filter models.UniversityFilter, page models.PageRequest) ([]*models.PartnerUniversity, int64, error)
	Update(ctx context.Context, university *models.PartnerUniversity) error
	Delete(ctx context.Context, id int64) error
}

// UniversityService defines the interface for partner university operations
type UniversityService interface {
	CreateUniversity(ctx context.Context, university *models.PartnerUniversity) error
	GetUniversityByID(ctx context.Context, id int64) (*models.PartnerUniversity, error)
	GetUniversities(ctx context.Context, filter models.UniversityFilter, page models.PageRequest) ([]*models.PartnerUniversity, int64, error)
	UpdateUniversity(ctx context.Context, id int64, patch models.UniversityPatch) (*models.PartnerUniversity, error)
	DeleteUniversity(ctx context.Context, id int64) error
}

// universityServiceImpl implements the UniversityService interface
type universityServiceImpl struct {
	universityStore UniversityStore
}

// NewUniversityService creates a new university service instance
func NewUniversityService(universityStore UniversityStore) UniversityService {
	return &universityServiceImpl{
		universityStore: universityStore,
	}
}

// validateUniversity validates university data before store operations
func (s *universityServiceImpl) validateUniversity(university *models.PartnerUniversity) error {
	if university == nil {
		return fmt.Errorf("%w: university is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(university.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if university.MaxStudentsIn < 0 || university.MaxStudentsOut < 0 {
		return fmt.Errorf("%w: student capacities cannot be negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateUniversity creates a new partner university. Names are unique
// across all partner universities, ignoring case.
func (s *universityServiceImpl) CreateUniversity(ctx context.Context, university *models.PartnerUniversity) error {
	if err := s.validateUniversity(university); err != nil {
		return err
	}

	exists, err := s.universityStore.ExistsByName(ctx, university.Name)
	if err != nil {
		return fmt.Errorf("error checking university name: %w", err)
	}
	if exists {
		return apperrors.ErrUniversityAlreadyExists
	}

	// The store's unique index backs this guard under concurrent creates.
	if err := s.universityStore.Insert(ctx, university); err != nil {
		return err
	}

	return nil
}

// GetUniversityByID retrieves a partner university by id
func (s *universityServiceImpl) GetUniversityByID(ctx context.Context, id int64) (*models.PartnerUniversity, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	return s.universityStore.GetByID(ctx, id)
}

// GetUniversities retrieves one page of partner universities matching the
// given filter combination. An empty result is not an error.
func (s *universityServiceImpl) GetUniversities(ctx context.Context, filter models.UniversityFilter, page models.PageRequest) ([]*models.PartnerUniversity, int64, error) {
	return s.universityStore.Find(ctx, filter, page)
}

// applyUniversityPatch merges present, valid patch fields into the record.
// Strings overwrite when non-empty, numerics when non-negative, dates when
// present. The id never changes.
func applyUniversityPatch(university *models.PartnerUniversity, patch models.UniversityPatch) {
	if patch.Name != nil && *patch.Name != "" {
		university.Name = *patch.Name
	}
	if patch.Country != nil && *patch.Country != "" {
		university.Country = *patch.Country
	}
	if patch.DepartmentName != nil && *patch.DepartmentName != "" {
		university.DepartmentName = *patch.DepartmentName
	}
	if patch.DepartmentURL != nil && *patch.DepartmentURL != "" {
		university.DepartmentURL = *patch.DepartmentURL
	}
	if patch.ContactPerson != nil && *patch.ContactPerson != "" {
		university.ContactPerson = *patch.ContactPerson
	}
	if patch.MaxStudentsIn != nil && *patch.MaxStudentsIn >= 0 {
		university.MaxStudentsIn = *patch.MaxStudentsIn
	}
	if patch.MaxStudentsOut != nil && *patch.MaxStudentsOut >= 0 {
		university.MaxStudentsOut = *patch.MaxStudentsOut
	}
	if patch.NextSpringSemester != nil {
		university.NextSpringSemester = *patch.NextSpringSemester
	}
	if patch.NextSummerSemester != nil {
		university.NextSummerSemester = *patch.NextSummerSemester
	}
}

// UpdateUniversity merge-patches an existing partner university and returns
// the merged record.
func (s *universityServiceImpl) UpdateUniversity(ctx context.Context, id int64, patch models.UniversityPatch) (*models.PartnerUniversity, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	university, err := s.universityStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUniversityPatch(university, patch)

	if err := s.universityStore.Update(ctx, university); err != nil {
		return nil, err
	}

	return university, nil
}

// DeleteUniversity deletes a partner university by id, cascading to its
// modules.
func (s *universityServiceImpl) DeleteUniversity(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	return s.universityStore.Delete(ctx, id)
}
