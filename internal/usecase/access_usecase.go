package usecase

import (
	"context"

	"dealsmarket/internal/domain/access"
	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessUsecase resolves the role and retailer status of a user and applies the access gates.
// Every call re-reads the store; nothing is cached across requests.
type AccessUsecase interface {
	// Resolve loads the profile and, when linked, the retailer. At most two dependent lookups.
	Resolve(ctx context.Context, userID uuid.UUID) (*entity.AccessProfile, error)

	// Reconcile resolves the user and, when the profile has no retailer linked, looks for a
	// retailer row owned by the user and re-links it. It is idempotent.
	Reconcile(ctx context.Context, userID uuid.UUID) (*entity.AccessProfile, error)

	// EvaluateEdge applies the coarse navigational policy to a request.
	// Lookup failures are logged and treated as "no profile".
	EvaluateEdge(ctx context.Context, method, requestURI string, identity *entity.Identity) access.Decision

	// GuardPage re-derives access for a retailer-area page and applies its decision table.
	// The returned profile is nil when the user could not be resolved.
	GuardPage(ctx context.Context, page access.Page, identity *entity.Identity) (access.Decision, *entity.AccessProfile)
}
