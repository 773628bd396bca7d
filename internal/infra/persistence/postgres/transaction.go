// Package postgres implements the repositories on GORM. Production runs on PostgreSQL with
// read replicas; tests run the same code on in-memory SQLite.
package postgres

import (
	"context"

	"dealsmarket/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside gorm's managed transaction: a returned error or a panic rolls back,
// otherwise the transaction commits. Errors returned by fn come back unwrapped so callers can
// still match domain sentinels.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "transaction failed")
}

// txRepositories hands out repositories bound to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) IdentityRepo() repository.IdentityRepository {
	return NewIdentityRepository(f.tx)
}

func (f txRepositories) RefreshTokenRepo() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

func (f txRepositories) ProfileRepo() repository.UserProfileRepository {
	return NewUserProfileRepository(f.tx)
}

func (f txRepositories) RetailerRepo() repository.RetailerRepository {
	return NewRetailerRepository(f.tx)
}

func (f txRepositories) DealRepo() repository.DealRepository {
	return NewDealRepository(f.tx)
}

func (f txRepositories) PriceAlertRepo() repository.PriceAlertRepository {
	return NewPriceAlertRepository(f.tx)
}
