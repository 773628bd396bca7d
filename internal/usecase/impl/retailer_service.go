package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"dealsmarket/config"
	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/domain/access"
	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/domain/service"
	"dealsmarket/internal/domain/statemachine"
	"dealsmarket/internal/usecase"
	"dealsmarket/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxSlugAttempts = 10

// retailerService implements the RetailerUsecase interface.
type retailerService struct {
	txManager    repository.TransactionManager
	retailerRepo repository.RetailerRepository
	accessUC     usecase.AccessUsecase
	publisher    service.EventPublisher
	listing      *config.ListingConfig
	logger       *slog.Logger
	now          func() time.Time
}

// NewRetailerService is the constructor for retailerService.
func NewRetailerService(
	txManager repository.TransactionManager,
	retailerRepo repository.RetailerRepository,
	accessUC usecase.AccessUsecase,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RetailerUsecase {
	return &retailerService{
		txManager:    txManager,
		retailerRepo: retailerRepo,
		accessUC:     accessUC,
		publisher:    publisher,
		listing:      listingConfig(cfg),
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *retailerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Apply creates a pending retailer and links it to the caller's profile.
func (srv *retailerService) Apply(ctx context.Context, userID uuid.UUID, input *usecase.ApplyRetailerInput) (*entity.Retailer, error) {
	if !input.AcceptTerms || !input.AcceptCommission || !input.ConfirmAuthority {
		return nil, domainerrors.ErrValidationFailed.WithDetails("all three legal acknowledgements must be accepted")
	}

	baseSlug := util.Slugify(input.BusinessName)
	if baseSlug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("business name must contain letters or digits")
	}

	accessProfile, err := srv.accessUC.Reconcile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !accessProfile.Role.CanOwnRetailer() {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("role cannot apply as retailer")
	}
	if accessProfile.HasRetailer() {
		return nil, domainerrors.ErrApplicationExists.WrapMessage("retailer already linked")
	}

	slug, err := srv.uniqueSlug(ctx, baseSlug)
	if err != nil {
		return nil, err
	}

	retailer := &entity.Retailer{
		UserID:     userID,
		Name:       strings.TrimSpace(input.BusinessName),
		Slug:       slug,
		Status:     entity.RetailerStatusPending,
		IsActive:   false,
		Commission: 0,
		WebsiteURL: input.WebsiteURL,
		Application: entity.RetailerApplication{
			LegalName:          input.LegalName,
			BusinessType:       input.BusinessType,
			RegistrationNumber: input.RegistrationNumber,
			Description:        input.Description,
			LogoURL:            input.LogoURL,
			ContactName:        input.ContactName,
			ContactEmail:       input.ContactEmail,
			ContactPhone:       input.ContactPhone,
			Address:            input.Address,
			City:               input.City,
			Country:            input.Country,
			ProductCategories:  input.ProductCategories,
			AverageDiscount:    input.AverageDiscount,
			SKUCount:           input.SKUCount,
			MonthlyDeals:       input.MonthlyDeals,
			SalesChannels:      input.SalesChannels,
			ReturnPolicyURL:    input.ReturnPolicyURL,
			ShippingRegions:    input.ShippingRegions,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RetailerRepo().Create(ctx, retailer); err != nil {
			return errors.WithStack(err)
		}

		return errors.WithStack(repoFactory.ProfileRepo().LinkRetailer(ctx, userID, retailer.ID))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit retailer application", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute retailer application transaction")
	}
	srv.log(ctx).Info("Retailer application submitted",
		slog.Any("user_id", userID),
		slog.Any("retailer_id", retailer.ID),
		slog.String("slug", retailer.Slug),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LifecycleEvent{
		Type:        service.EventRetailerApplied,
		AggregateID: retailer.ID.String(),
		ActorID:     userID.String(),
		Data:        map[string]string{"name": retailer.Name, "slug": retailer.Slug},
	})

	return retailer, nil
}

// uniqueSlug returns base, or base-N for the first N that is free.
func (srv *retailerService) uniqueSlug(ctx context.Context, base string) (string, error) {
	candidate := base
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		exists, err := srv.retailerRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug")
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(attempt+1)
	}

	return "", domainerrors.ErrSlugTaken.WrapMessage(base)
}

// GetStatus re-reads the caller's status for the polling landing pages.
func (srv *retailerService) GetStatus(ctx context.Context, userID uuid.UUID) (*usecase.RetailerStatusOutput, error) {
	accessProfile, err := srv.accessUC.Reconcile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !accessProfile.Role.CanOwnRetailer() {
		return nil, domainerrors.ErrNotRetailer.WrapMessage("status check")
	}

	return &usecase.RetailerStatusOutput{
		Status:          accessProfile.RetailerStatus,
		RejectionReason: accessProfile.RejectionReason,
		RedirectTo:      access.StatusLanding(accessProfile.RetailerStatus),
	}, nil
}

// GetOwn returns the retailer linked to the caller.
func (srv *retailerService) GetOwn(ctx context.Context, userID uuid.UUID) (*entity.Retailer, error) {
	accessProfile, err := srv.accessUC.Reconcile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !accessProfile.HasRetailer() {
		return nil, domainerrors.ErrRetailerNotFound.WrapMessage("no retailer linked")
	}

	retailer, err := srv.retailerRepo.FindByID(ctx, *accessProfile.RetailerID)
	if err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return nil, domainerrors.ErrRetailerNotFound.WrapMessage("linked retailer missing")
		}

		return nil, errors.Wrap(err, "failed to find retailer")
	}
	if retailer.UserID != userID {
		return nil, domainerrors.ErrNotOwner.WrapMessage("retailer belongs to another user")
	}

	return retailer, nil
}

// UpdateProfile patches the caller's retailer profile. The slug stays stable.
func (srv *retailerService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateRetailerProfileInput) (*entity.Retailer, error) {
	retailer, err := srv.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		retailer.Name = name
	}
	setIfPresent(&retailer.Application.Description, input.Description)
	setIfPresent(&retailer.Application.LogoURL, input.LogoURL)
	setIfPresent(&retailer.WebsiteURL, input.WebsiteURL)
	setIfPresent(&retailer.Application.ContactName, input.ContactName)
	setIfPresent(&retailer.Application.ContactEmail, input.ContactEmail)
	setIfPresent(&retailer.Application.ContactPhone, input.ContactPhone)
	setIfPresent(&retailer.Application.Address, input.Address)
	setIfPresent(&retailer.Application.City, input.City)
	setIfPresent(&retailer.Application.Country, input.Country)

	return srv.saveOwned(ctx, retailer)
}

// UpdateSettings replaces the caller's operational settings.
func (srv *retailerService) UpdateSettings(ctx context.Context, userID uuid.UUID, input *usecase.UpdateRetailerSettingsInput) (*entity.Retailer, error) {
	retailer, err := srv.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	retailer.AffiliateID = input.AffiliateID
	retailer.Application.SalesChannels = input.SalesChannels
	retailer.Application.ReturnPolicyURL = input.ReturnPolicyURL
	retailer.Application.ShippingRegions = input.ShippingRegions

	return srv.saveOwned(ctx, retailer)
}

func (srv *retailerService) saveOwned(ctx context.Context, retailer *entity.Retailer) (*entity.Retailer, error) {
	if err := srv.retailerRepo.UpdateOwned(ctx, retailer); err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return nil, domainerrors.ErrNotOwner.WrapMessage("retailer update matched no owned row")
		}

		return nil, errors.Wrap(err, "failed to update retailer")
	}

	return retailer, nil
}

// List returns retailers for admin review.
func (srv *retailerService) List(ctx context.Context, status *entity.RetailerStatus, page, pageSize int) (*usecase.RetailerPage, error) {
	offset, limit := util.ClampPage(page, pageSize, srv.listing.DefaultPageSize, srv.listing.MaxPageSize)

	items, total, err := srv.retailerRepo.List(ctx, repository.RetailerFilter{Status: status, Offset: offset, Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list retailers")
	}

	return &usecase.RetailerPage{Items: items, Total: total, Page: offset/limit + 1, PageSize: limit}, nil
}

// Review approves or rejects a retailer. Approval activates the account and makes sure the
// owner's profile carries the retailer role and link.
func (srv *retailerService) Review(ctx context.Context, adminID, retailerID uuid.UUID, input *usecase.ReviewInput) (*entity.Retailer, error) {
	retailer, err := srv.retailerRepo.FindByID(ctx, retailerID)
	if err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return nil, domainerrors.ErrRetailerNotFound.WrapMessage("review")
		}

		return nil, errors.Wrap(err, "failed to find retailer")
	}

	to := entity.RetailerStatusRejected
	if input.Approve {
		to = entity.RetailerStatusApproved
	}
	if err := statemachine.CanTransitionRetailer(retailer.Status, to, statemachine.ActorAdmin); err != nil {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(err.Error())
	}

	review := repository.RetailerReview{
		Status:     to,
		IsActive:   to == entity.RetailerStatusApproved,
		ReviewedAt: srv.now().UTC(),
	}
	if !input.Approve {
		review.RejectionReason = input.RejectionReason
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RetailerRepo().UpdateReview(ctx, retailer.ID, review); err != nil {
			return errors.WithStack(err)
		}
		if to == entity.RetailerStatusApproved {
			return errors.WithStack(repoFactory.ProfileRepo().LinkRetailer(ctx, retailer.UserID, retailer.ID))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute retailer review transaction")
	}

	retailer.Status = review.Status
	retailer.IsActive = review.IsActive
	retailer.RejectionReason = review.RejectionReason
	retailer.ReviewedAt = &review.ReviewedAt

	srv.log(ctx).Info("Retailer reviewed",
		slog.Any("retailer_id", retailer.ID),
		slog.Any("admin_id", adminID),
		slog.String("status", string(to)),
	)

	data := map[string]string{"status": string(to), "user_id": retailer.UserID.String()}
	if review.RejectionReason != nil {
		data["rejection_reason"] = *review.RejectionReason
	}
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LifecycleEvent{
		Type:        service.EventRetailerReviewed,
		AggregateID: retailer.ID.String(),
		ActorID:     adminID.String(),
		Data:        data,
	})

	return retailer, nil
}

func setIfPresent(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

func listingConfig(cfg *config.Config) *config.ListingConfig {
	if cfg != nil && cfg.Listing != nil && cfg.Listing.DefaultPageSize > 0 && cfg.Listing.MaxPageSize > 0 {
		return cfg.Listing
	}

	return &config.ListingConfig{DefaultPageSize: 20, MaxPageSize: 100}
}
