package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/thws/management/internal/app/models"
	"github.com/thws/management/internal/pkg/apperrors"
)

// ModuleStore is the persistence contract for uni modules.
type ModuleStore interface {
	Insert(ctx context.Context, module *models.UniModule) error
	GetByID(ctx context.Context, universityID, id int64) (*models.UniModule, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Find(ctx context.Context, universityID int64, filter models.ModuleFilter, page models.PageRequest) ([]*models.UniModule, int64, error)
	Update(ctx context.Context, module *models.UniModule) error
	Delete(ctx context.Context, universityID, id int64) error
}

// ModuleService defines the interface for uni module operations
type ModuleService interface {
	CreateModule(ctx context.Context, module *models.UniModule) error
	GetModuleByID(ctx context.Context, universityID, id int64) (*models.UniModule, error)
	GetModules(ctx context.Context, universityID int64, filter models.ModuleFilter, page models.PageRequest) ([]*models.UniModule, int64, error)
	UpdateModule(ctx context.Context, universityID, id int64, patch models.ModulePatch) (*models.UniModule, error)
	DeleteModule(ctx context.Context, universityID, id int64) error
}

// moduleServiceImpl implements the ModuleService interface
type moduleServiceImpl struct {
	moduleStore     ModuleStore
	universityStore UniversityStore
}

// NewModuleService creates a new module service instance
func NewModuleService(moduleStore ModuleStore, universityStore UniversityStore) ModuleService {
	return &moduleServiceImpl{
		moduleStore:     moduleStore,
		universityStore: universityStore,
	}
}

// validateModule validates module data before store operations
func (s *moduleServiceImpl) validateModule(module *models.UniModule) error {
	if module == nil {
		return fmt.Errorf("%w: module is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(module.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if module.Semester < 1 {
		return fmt.Errorf("%w: semester must be positive", apperrors.ErrValidationFailed)
	}

	if module.ECTS < 0 {
		return fmt.Errorf("%w: ects cannot be negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateModule creates a new uni module under an existing partner university.
// Module names are unique across all universities, ignoring case.
func (s *moduleServiceImpl) CreateModule(ctx context.Context, module *models.UniModule) error {
	if err := s.validateModule(module); err != nil {
		return err
	}

	exists, err := s.universityStore.ExistsByID(ctx, module.UniversityID)
	if err != nil {
		return fmt.Errorf("error checking parent university: %w", err)
	}
	if !exists {
		return apperrors.ErrUniversityNotFound
	}

	nameTaken, err := s.moduleStore.ExistsByName(ctx, module.Name)
	if err != nil {
		return fmt.Errorf("error checking module name: %w", err)
	}
	if nameTaken {
		return apperrors.ErrModuleAlreadyExists
	}

	// The foreign key and unique index settle the create/delete and
	// duplicate-name races behind these guards.
	if err := s.moduleStore.Insert(ctx, module); err != nil {
		return err
	}

	return nil
}

// GetModuleByID retrieves a uni module scoped to its owning university
func (s *moduleServiceImpl) GetModuleByID(ctx context.Context, universityID, id int64) (*models.UniModule, error) {
	if universityID <= 0 || id <= 0 {
		return nil, fmt.Errorf("%w: invalid module ID", apperrors.ErrValidationFailed)
	}

	return s.moduleStore.GetByID(ctx, universityID, id)
}

// GetModules retrieves one page of a university's modules matching the given
// filter combination. An unknown university simply yields an empty page.
func (s *moduleServiceImpl) GetModules(ctx context.Context, universityID int64, filter models.ModuleFilter, page models.PageRequest) ([]*models.UniModule, int64, error) {
	return s.moduleStore.Find(ctx, universityID, filter, page)
}

// applyModulePatch merges present, valid patch fields into the record.
// Strings overwrite when non-empty, numerics when within range. The id and
// parent university never change.
func applyModulePatch(module *models.UniModule, patch models.ModulePatch) {
	if patch.Name != nil && *patch.Name != "" {
		module.Name = *patch.Name
	}
	if patch.Semester != nil && *patch.Semester >= 1 {
		module.Semester = *patch.Semester
	}
	if patch.ECTS != nil && *patch.ECTS >= 0 {
		module.ECTS = *patch.ECTS
	}
}

// UpdateModule merge-patches an existing uni module and returns the merged
// record.
func (s *moduleServiceImpl) UpdateModule(ctx context.Context, universityID, id int64, patch models.ModulePatch) (*models.UniModule, error) {
	if universityID <= 0 || id <= 0 {
		return nil, fmt.Errorf("%w: invalid module ID", apperrors.ErrValidationFailed)
	}

	module, err := s.moduleStore.GetByID(ctx, universityID, id)
	if err != nil {
		return nil, err
	}

	applyModulePatch(module, patch)

	if err := s.moduleStore.Update(ctx, module); err != nil {
		return nil, err
	}

	return module, nil
}

// DeleteModule deletes a uni module scoped to its owning university
func (s *moduleServiceImpl) DeleteModule(ctx context.Context, universityID, id int64) error {
	if universityID <= 0 || id <= 0 {
		return fmt.Errorf("%w: invalid module ID", apperrors.ErrValidationFailed)
	}

	return s.moduleStore.Delete(ctx, universityID, id)
}
