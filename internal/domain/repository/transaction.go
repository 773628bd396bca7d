package repository

import "context"

// TransactionManager runs a unit of work atomically. fn receives repositories bound to the
// transaction; returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory exposes the repositories that take part in multi-row workflows:
// signup, retailer application and review, deal review with price alert firing.
type RepositoryFactory interface {
	IdentityRepo() IdentityRepository
	RefreshTokenRepo() RefreshTokenRepository
	ProfileRepo() UserProfileRepository
	RetailerRepo() RetailerRepository
	DealRepo() DealRepository
	PriceAlertRepo() PriceAlertRepository
}
