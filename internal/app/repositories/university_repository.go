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

const universityNameConstraint = "partner_universities_name_key"

// UniversityRepository handles database operations for partner universities
type UniversityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUniversityRepository creates a new university repository
func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const universityColumns = `id, name, country, department_name, department_url, contact_person,
	max_students_in, max_students_out, next_spring_semester, next_summer_semester`

func scanUniversity(row pgx.Row) (*models.PartnerUniversity, error) {
	var u models.PartnerUniversity
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Country,
		&u.DepartmentName,
		&u.DepartmentURL,
		&u.ContactPerson,
		&u.MaxStudentsIn,
		&u.MaxStudentsOut,
		&u.NextSpringSemester,
		&u.NextSummerSemester,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert creates a new partner university and fills in its assigned id.
// The lower(name) unique index turns a concurrent duplicate create into
// ErrUniversityAlreadyExists for the losing request.
func (r *UniversityRepository) Insert(ctx context.Context, university *models.PartnerUniversity) error {
	query := `
		INSERT INTO partner_universities
			(name, country, department_name, department_url, contact_person,
			 max_students_in, max_students_out, next_spring_semester, next_summer_semester)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		university.Name,
		university.Country,
		university.DepartmentName,
		university.DepartmentURL,
		university.ContactPerson,
		university.MaxStudentsIn,
		university.MaxStudentsOut,
		university.NextSpringSemester,
		university.NextSummerSemester,
	).Scan(&university.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err, universityNameConstraint) {
			return apperrors.ErrUniversityAlreadyExists
		}
		return storeError("inserting partner university", err)
	}

	return nil
}

// GetByID retrieves a partner university by id.
func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*models.PartnerUniversity, error) {
	query := `SELECT ` + universityColumns + ` FROM partner_universities WHERE id = $1`

	university, err := scanUniversity(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUniversityNotFound
		}
		return nil, storeError("retrieving partner university", err)
	}

	return university, nil
}

// ExistsByID checks whether a partner university with the given id exists.
func (r *UniversityRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM partner_universities WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, storeError("checking partner university existence", err)
	}
	return exists, nil
}

// ExistsByName checks whether a partner university with the given name
// exists, ignoring case.
func (r *UniversityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM partner_universities WHERE lower(name) = lower($1))`, name).Scan(&exists)
	if err != nil {
		return false, storeError("checking partner university name", err)
	}
	return exists, nil
}

// Find retrieves one page of partner universities matching the filter
// conjunction, sorted by name, together with the total match count.
func (r *UniversityRepository) Find(ctx context.Context, filter models.UniversityFilter, page models.PageRequest) ([]*models.PartnerUniversity, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page.Page, page.Size)
	cond := UniversityFilterConditions(filter)

	countSelect := r.sb.Select("COUNT(*)").From("partner_universities")
	baseSelect := r.sb.Select(
		"id", "name", "country", "department_name", "department_url", "contact_person",
		"max_students_in", "max_students_out", "next_spring_semester", "next_summer_semester",
	).From("partner_universities")

	if len(cond) > 0 {
		countSelect = countSelect.Where(cond)
		baseSelect = baseSelect.Where(cond)
	}

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, storeError("building count universities query", err)
	}

	var totalElements int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalElements); err != nil {
		logger.Error().Err(err).Msg("Error executing count universities query")
		return nil, 0, storeError("counting partner universities", err)
	}

	if totalElements == 0 {
		return []*models.PartnerUniversity{}, 0, nil
	}

	baseSelect = baseSelect.OrderBy(nameOrderBy(page.Sort)).
		Limit(uint64(limit)).
		Offset(offset)

	querySql, queryArgs, err := baseSelect.ToSql()
	if err != nil {
		return nil, 0, storeError("building find universities query", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		return nil, 0, storeError("querying partner universities", err)
	}
	defer rows.Close()

	universities := []*models.PartnerUniversity{}
	for rows.Next() {
		university, err := scanUniversity(rows)
		if err != nil {
			return nil, 0, storeError("scanning partner university", err)
		}
		universities = append(universities, university)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, storeError("reading partner universities", err)
	}

	return universities, totalElements, nil
}

// Update persists a merged partner university record.
func (r *UniversityRepository) Update(ctx context.Context, university *models.PartnerUniversity) error {
	query := `
		UPDATE partner_universities
		SET name = $1, country = $2, department_name = $3, department_url = $4,
			contact_person = $5, max_students_in = $6, max_students_out = $7,
			next_spring_semester = $8, next_summer_semester = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		university.Name,
		university.Country,
		university.DepartmentName,
		university.DepartmentURL,
		university.ContactPerson,
		university.MaxStudentsIn,
		university.MaxStudentsOut,
		university.NextSpringSemester,
		university.NextSummerSemester,
		university.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err, universityNameConstraint) {
			return apperrors.ErrUniversityAlreadyExists
		}
		return storeError("updating partner university", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

// Delete removes a partner university. Its modules go with it through the
// ON DELETE CASCADE constraint, so the sweep and the parent delete commit
// or fail as one statement.
func (r *UniversityRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM partner_universities WHERE id = $1`, id)
	if err != nil {
		return storeError("deleting partner university", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}
