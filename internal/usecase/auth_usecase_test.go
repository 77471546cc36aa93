package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	uniqueViolation := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}

	assert.True(t, isDuplicateKeyError(uniqueViolation, "users_email"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("create user: %w", uniqueViolation), "users_email"))
	assert.False(t, isDuplicateKeyError(uniqueViolation, "users_phone"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "idx_users_email"}, "users_email"))
	assert.False(t, isDuplicateKeyError(errors.New("plain error"), "users_email"))
	assert.False(t, isDuplicateKeyError(nil, "users_email"))
}

func TestIsForeignKeyError(t *testing.T) {
	fkViolation := &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_doctor"}

	assert.True(t, isForeignKeyError(fkViolation, "appointments_doctor"))
	assert.False(t, isForeignKeyError(fkViolation, "appointments_patient"))
	assert.False(t, isForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "fk_appointments_doctor"}, "appointments_doctor"))
	assert.False(t, isForeignKeyError(errors.New("plain error"), "appointments_doctor"))
}
