package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestViolated(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want constraint
	}{
		{"nil", nil, constraintNone},
		{"duplicate key", errors.Wrap(gorm.ErrDuplicatedKey, "insert retailers"), constraintUnique},
		{"foreign key", gorm.ErrForeignKeyViolated, constraintForeignKey},
		{"postgres not null", errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`), constraintNotNull},
		{"sqlite not null", errors.New("NOT NULL constraint failed: deals.title"), constraintNotNull},
		{"other", errors.New("connection reset by peer"), constraintNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, violated(tt.err))
		})
	}
}
