package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// constraint is the kind of integrity rule a failed write violated.
type constraint int

const (
	constraintNone constraint = iota
	constraintUnique
	constraintForeignKey
	constraintNotNull
)

// notNullViolation is the PostgreSQL SQLSTATE for not_null_violation.
const notNullViolation = "23502"

// violated classifies a failed write. Unique and foreign key violations arrive as gorm sentinels
// because the connection enables TranslateError; not-null violations are not translated by gorm
// and are recognised from the driver message, which works for both postgres and sqlite.
func violated(err error) constraint {
	switch {
	case err == nil:
		return constraintNone
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return constraintUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return constraintForeignKey
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, notNullViolation) || strings.Contains(msg, "not null") || strings.Contains(msg, "null value") {
		return constraintNotNull
	}

	return constraintNone
}
