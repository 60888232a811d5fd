package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "partner_universities_name_key"}

	assert.True(t, IsUniqueViolation(uniqueErr, "partner_universities_name_key"))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr), "partner_universities_name_key"))
	assert.False(t, IsUniqueViolation(uniqueErr, "uni_modules_name_key"))
	assert.False(t, IsUniqueViolation(errors.New("plain error"), "partner_universities_name_key"))
	assert.False(t, IsUniqueViolation(nil, "partner_universities_name_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "uni_modules_university_id_fkey"}

	assert.True(t, IsForeignKeyViolation(fkErr, "uni_modules_university_id_fkey"))
	assert.False(t, IsForeignKeyViolation(fkErr, "other_fkey"))

	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "uni_modules_university_id_fkey"}
	assert.False(t, IsForeignKeyViolation(uniqueErr, "uni_modules_university_id_fkey"))
}
