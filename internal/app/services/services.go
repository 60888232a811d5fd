package services

import (
	"github.com/thws/management/internal/app/repositories"
)

// Services bundles all service instances
type Services struct {
	UniversityService UniversityService
	ModuleService     ModuleService
}

// NewServices creates all services backed by the given repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		UniversityService: NewUniversityService(repos.UniversityRepository),
		ModuleService:     NewModuleService(repos.ModuleRepository, repos.UniversityRepository),
	}
}
