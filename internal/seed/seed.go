// Package seed creates and restores the well-known demonstration dataset:
// two partner universities with three modules between them.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thws/management/internal/app/models"
	"github.com/thws/management/internal/app/repositories"
	"github.com/thws/management/internal/db"
	"github.com/thws/management/internal/pkg/logger"
)

// Seeder owns seeding and reset of the demonstration dataset.
type Seeder struct {
	pool  *pgxpool.Pool
	repos *repositories.Repositories
}

// NewSeeder creates a new Seeder backed by the given pool.
func NewSeeder(pool *pgxpool.Pool) *Seeder {
	return &Seeder{
		pool:  pool,
		repos: repositories.NewRepositories(pool),
	}
}

func seedUniversities() []*models.PartnerUniversity {
	return []*models.PartnerUniversity{
		{
			Name:               "THWS",
			Country:            "Germany",
			DepartmentName:     "Department Name 1",
			DepartmentURL:      "web@site.de",
			ContactPerson:      "Edin Putzu",
			MaxStudentsIn:      30,
			MaxStudentsOut:     30,
			NextSpringSemester: models.NewDate(2000, time.March, 17),
			NextSummerSemester: models.NewDate(2000, time.March, 17),
		},
		{
			Name:               "Other University",
			Country:            "Italy",
			DepartmentName:     "Department Name 2",
			DepartmentURL:      "department@url.it",
			ContactPerson:      "Zlatan Ibrahimovic",
			MaxStudentsIn:      45,
			MaxStudentsOut:     45,
			NextSpringSemester: models.NewDate(1987, time.June, 5),
			NextSummerSemester: models.NewDate(1789, time.June, 5),
		},
	}
}

// seedModules returns the demo modules keyed by the owning university's
// position in seedUniversities.
func seedModules(universityIDs []int64) []*models.UniModule {
	return []*models.UniModule{
		{UniversityID: universityIDs[0], Name: "Module 1", Semester: 1, ECTS: 5},
		{UniversityID: universityIDs[0], Name: "Module 2", Semester: 2, ECTS: 5},
		{UniversityID: universityIDs[1], Name: "Module 3", Semester: 3, ECTS: 10},
	}
}

// CreateDefaultData inserts the demo dataset if the database is still empty.
// A populated database is left untouched.
func (s *Seeder) CreateDefaultData(ctx context.Context) error {
	var count int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM partner_universities`).Scan(&count); err != nil {
		return fmt.Errorf("error checking seed state: %w", err)
	}
	if count > 0 {
		logger.Debug().Int64("universities", count).Msg("Database already populated, skipping seed")
		return nil
	}

	logger.Info().Msg("Seeding default partner universities and modules")
	return s.insertSeedData(ctx)
}

// Reset wipes all data, restarts the id sequences and restores the demo
// dataset. Truncation runs in its own transaction, so a failing reseed still
// leaves a consistently empty database.
func (s *Seeder) Reset(ctx context.Context) error {
	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`TRUNCATE partner_universities, uni_modules RESTART IDENTITY CASCADE`); err != nil {
			return fmt.Errorf("error truncating tables: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Msg("Database truncated, restoring seed data")
	return s.insertSeedData(ctx)
}

func (s *Seeder) insertSeedData(ctx context.Context) error {
	universities := seedUniversities()
	universityIDs := make([]int64, 0, len(universities))

	for _, university := range universities {
		if err := s.repos.UniversityRepository.Insert(ctx, university); err != nil {
			return fmt.Errorf("error seeding university %q: %w", university.Name, err)
		}
		universityIDs = append(universityIDs, university.ID)
	}

	for _, module := range seedModules(universityIDs) {
		if err := s.repos.ModuleRepository.Insert(ctx, module); err != nil {
			return fmt.Errorf("error seeding module %q: %w", module.Name, err)
		}
	}

	return nil
}
