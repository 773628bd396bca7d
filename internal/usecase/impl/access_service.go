package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/domain/access"
	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accessService implements the AccessUsecase interface.
type accessService struct {
	profileRepo  repository.UserProfileRepository
	retailerRepo repository.RetailerRepository
	logger       *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(
	profileRepo repository.UserProfileRepository,
	retailerRepo repository.RetailerRepository,
	logger *slog.Logger,
) usecase.AccessUsecase {
	return &accessService{
		profileRepo:  profileRepo,
		retailerRepo: retailerRepo,
		logger:       logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve loads the profile, then the linked retailer if any.
func (srv *accessService) Resolve(ctx context.Context, userID uuid.UUID) (*entity.AccessProfile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("resolve access")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	accessProfile := &entity.AccessProfile{
		UserID: profile.ID,
		Role:   profile.Role,
	}
	if !profile.HasLinkedRetailer() {
		return accessProfile, nil
	}

	retailer, err := srv.retailerRepo.FindByID(ctx, *profile.RetailerID)
	if err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			// Dangling link; Reconcile may still find the user's retailer.
			srv.log(ctx).Warn("Profile links a missing retailer",
				slog.Any("user_id", userID),
				slog.Any("retailer_id", *profile.RetailerID),
			)

			return accessProfile, nil
		}

		return nil, errors.Wrap(err, "failed to find retailer")
	}

	applyRetailer(accessProfile, retailer)

	return accessProfile, nil
}

// Reconcile re-links a retailer row that exists for the user but is missing from the profile.
func (srv *accessService) Reconcile(ctx context.Context, userID uuid.UUID) (*entity.AccessProfile, error) {
	accessProfile, err := srv.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	if accessProfile.HasRetailer() {
		return accessProfile, nil
	}
	if !accessProfile.Role.CanOwnRetailer() {
		return accessProfile, nil
	}

	retailer, err := srv.retailerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return accessProfile, nil
		}

		return nil, errors.Wrap(err, "failed to find retailer by user")
	}

	if err := srv.profileRepo.LinkRetailer(ctx, userID, retailer.ID); err != nil {
		// Proceed with the found status; the next visit retries the link.
		srv.log(ctx).Warn("Failed to re-link retailer to profile",
			slog.Any("user_id", userID),
			slog.Any("retailer_id", retailer.ID),
			slog.Any("error", err),
		)
	} else {
		srv.log(ctx).Info("Re-linked retailer to profile",
			slog.Any("user_id", userID),
			slog.Any("retailer_id", retailer.ID),
		)
	}

	accessProfile.Role = entity.RoleRetailer
	applyRetailer(accessProfile, retailer)

	return accessProfile, nil
}

// EvaluateEdge resolves the profile only when the gate needs it and fails closed on lookup errors.
func (srv *accessService) EvaluateEdge(ctx context.Context, method, requestURI string, identity *entity.Identity) access.Decision {
	path, _, _ := strings.Cut(requestURI, "?")
	in := access.EdgeInput{
		Method:        method,
		Path:          path,
		ReturnTo:      requestURI,
		Authenticated: identity != nil,
	}

	if access.NeedsProfile(method, path, in.Authenticated) {
		accessProfile, err := srv.Resolve(ctx, identity.ID)
		if err != nil {
			srv.log(ctx).Warn("Edge gate profile lookup failed, treating as no profile",
				slog.Any("user_id", identity.ID),
				slog.String("path", path),
				slog.Any("error", err),
			)
		} else {
			in.Access = accessProfile
		}
	}

	decision := access.EvaluateEdge(in)
	if !decision.Allowed {
		srv.log(ctx).Debug("Edge gate redirect",
			slog.String("path", path),
			slog.String("to", decision.RedirectTo),
			slog.String("reason", decision.Reason),
		)
	}

	return decision
}

// GuardPage re-derives and reconciles access, then applies the page decision table.
func (srv *accessService) GuardPage(ctx context.Context, page access.Page, identity *entity.Identity) (access.Decision, *entity.AccessProfile) {
	in := access.GuardInput{Authenticated: identity != nil}

	if identity != nil {
		accessProfile, err := srv.Reconcile(ctx, identity.ID)
		if err != nil {
			srv.log(ctx).Warn("Page guard lookup failed, treating as signed out",
				slog.Any("user_id", identity.ID),
				slog.String("page", page.Path()),
				slog.Any("error", err),
			)
		} else {
			in.Access = accessProfile
		}
	}

	decision := access.EvaluatePage(page, in)
	if !decision.Allowed {
		srv.log(ctx).Debug("Page guard redirect",
			slog.String("page", page.Path()),
			slog.String("to", decision.RedirectTo),
			slog.String("reason", decision.Reason),
		)
	}

	return decision, in.Access
}

func applyRetailer(accessProfile *entity.AccessProfile, retailer *entity.Retailer) {
	retailerID := retailer.ID
	accessProfile.RetailerID = &retailerID
	accessProfile.RetailerStatus = retailer.Status
	accessProfile.RejectionReason = retailer.RejectionReason
}
