package repositories

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thws/management/internal/pkg/apperrors"
)

// Repositories bundles all repository instances
type Repositories struct {
	UniversityRepository *UniversityRepository
	ModuleRepository     *ModuleRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UniversityRepository: NewUniversityRepository(db),
		ModuleRepository:     NewModuleRepository(db),
	}
}

// storeError wraps an opaque database failure behind ErrStoreFailure so
// callers map it to a response without inspecting driver errors.
func storeError(op string, err error) error {
	return apperrors.NewCustomError(apperrors.ErrStoreFailure, fmt.Sprintf("%s: %v", op, err))
}
