package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thws/management/internal/app/models"
	"github.com/thws/management/internal/pkg/apperrors"
	"github.com/thws/management/internal/pkg/dberrors"
	"github.com/thws/management/internal/pkg/helpers"
	"github.com/thws/management/internal/pkg/logger"
)

const (
	moduleNameConstraint       = "uni_modules_name_key"
	moduleUniversityConstraint = "uni_modules_university_id_fkey"
)

// ModuleRepository handles database operations for uni modules
type ModuleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanModule(row pgx.Row) (*models.UniModule, error) {
	var m models.UniModule
	err := row.Scan(&m.ID, &m.UniversityID, &m.Name, &m.Semester, &m.ECTS)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Insert creates a new uni module and fills in its assigned id. The unique
// name index and the university foreign key settle concurrent races: the
// loser sees ErrModuleAlreadyExists or ErrUniversityNotFound.
func (r *ModuleRepository) Insert(ctx context.Context, module *models.UniModule) error {
	query := `
		INSERT INTO uni_modules (university_id, name, semester, ects)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		module.UniversityID,
		module.Name,
		module.Semester,
		module.ECTS,
	).Scan(&module.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err, moduleNameConstraint) {
			return apperrors.ErrModuleAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err, moduleUniversityConstraint) {
			return apperrors.ErrUniversityNotFound
		}
		return storeError("inserting uni module", err)
	}

	return nil
}

// GetByID retrieves a uni module scoped to its owning university. A module
// id that exists under a different university is not found.
func (r *ModuleRepository) GetByID(ctx context.Context, universityID, id int64) (*models.UniModule, error) {
	query := `
		SELECT id, university_id, name, semester, ects
		FROM uni_modules
		WHERE id = $1 AND university_id = $2
	`

	module, err := scanModule(r.db.QueryRow(ctx, query, id, universityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, storeError("retrieving uni module", err)
	}

	return module, nil
}

// ExistsByName checks whether any uni module with the given name exists,
// ignoring case. Module names are unique across all universities.
func (r *ModuleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM uni_modules WHERE lower(name) = lower($1))`, name).Scan(&exists)
	if err != nil {
		return false, storeError("checking uni module name", err)
	}
	return exists, nil
}

// Find retrieves one page of a university's modules matching the filter
// conjunction, sorted by name, together with the total match count.
func (r *ModuleRepository) Find(ctx context.Context, universityID int64, filter models.ModuleFilter, page models.PageRequest) ([]*models.UniModule, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page.Page, page.Size)
	cond := ModuleFilterConditions(universityID, filter)

	countSelect := r.sb.Select("COUNT(*)").From("uni_modules").Where(cond)
	baseSelect := r.sb.Select("id", "university_id", "name", "semester", "ects").
		From("uni_modules").
		Where(cond)

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, storeError("building count modules query", err)
	}

	var totalElements int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalElements); err != nil {
		logger.Error().Err(err).Msg("Error executing count modules query")
		return nil, 0, storeError("counting uni modules", err)
	}

	if totalElements == 0 {
		return []*models.UniModule{}, 0, nil
	}

	baseSelect = baseSelect.OrderBy(nameOrderBy(page.Sort)).
		Limit(uint64(limit)).
		Offset(offset)

	querySql, queryArgs, err := baseSelect.ToSql()
	if err != nil {
		return nil, 0, storeError("building find modules query", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		return nil, 0, storeError("querying uni modules", err)
	}
	defer rows.Close()

	modules := []*models.UniModule{}
	for rows.Next() {
		module, err := scanModule(rows)
		if err != nil {
			return nil, 0, storeError("scanning uni module", err)
		}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, storeError("reading uni modules", err)
	}

	return modules, totalElements, nil
}

// Update persists a merged uni module record, scoped to its owning
// university. Parent linkage never changes here.
func (r *ModuleRepository) Update(ctx context.Context, module *models.UniModule) error {
	query := `
		UPDATE uni_modules
		SET name = $1, semester = $2, ects = $3
		WHERE id = $4 AND university_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		module.Name,
		module.Semester,
		module.ECTS,
		module.ID,
		module.UniversityID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err, moduleNameConstraint) {
			return apperrors.ErrModuleAlreadyExists
		}
		return storeError("updating uni module", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrModuleNotFound
	}

	return nil
}

// Delete removes a uni module scoped to its owning university.
func (r *ModuleRepository) Delete(ctx context.Context, universityID, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM uni_modules WHERE id = $1 AND university_id = $2`, id, universityID)
	if err != nil {
		return storeError("deleting uni module", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrModuleNotFound
	}

	return nil
}
