package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/domain/service"
	"dealsmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// findVisibleDeal loads a deal consumers may act on at now.
func findVisibleDeal(ctx context.Context, dealRepo repository.DealRepository, dealID uuid.UUID, now time.Time) (*entity.Deal, error) {
	deal, err := dealRepo.FindByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrDealNotFound.WrapMessage("consumer action")
		}

		return nil, errors.Wrap(err, "failed to find deal")
	}
	if !deal.IsVisibleAt(now) {
		return nil, domainerrors.ErrDealNotFound.WrapMessage("deal not visible")
	}

	return deal, nil
}

// watchlistService implements the WatchlistUsecase interface.
type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	dealRepo      repository.DealRepository
	logger        *slog.Logger
	now           func() time.Time
}

// NewWatchlistService is the constructor for watchlistService.
func NewWatchlistService(
	watchlistRepo repository.WatchlistRepository,
	dealRepo repository.DealRepository,
	logger *slog.Logger,
) usecase.WatchlistUsecase {
	return &watchlistService{
		watchlistRepo: watchlistRepo,
		dealRepo:      dealRepo,
		logger:        logger,
		now:           time.Now,
	}
}

func (srv *watchlistService) Add(ctx context.Context, userID, dealID uuid.UUID) error {
	if _, err := findVisibleDeal(ctx, srv.dealRepo, dealID, srv.now().UTC()); err != nil {
		return err
	}
	if err := srv.watchlistRepo.Add(ctx, userID, dealID); err != nil {
		return errors.Wrap(err, "failed to add watchlist item")
	}

	return nil
}

func (srv *watchlistService) Remove(ctx context.Context, userID, dealID uuid.UUID) error {
	if err := srv.watchlistRepo.Remove(ctx, userID, dealID); err != nil {
		return errors.Wrap(err, "failed to remove watchlist item")
	}

	return nil
}

func (srv *watchlistService) List(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistItem, error) {
	items, err := srv.watchlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list watchlist")
	}

	return items, nil
}

func (srv *watchlistService) Contains(ctx context.Context, userID, dealID uuid.UUID) (bool, error) {
	exists, err := srv.watchlistRepo.Exists(ctx, userID, dealID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check watchlist")
	}

	return exists, nil
}

// priceAlertService implements the PriceAlertUsecase interface.
type priceAlertService struct {
	alertRepo repository.PriceAlertRepository
	dealRepo  repository.DealRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewPriceAlertService is the constructor for priceAlertService.
func NewPriceAlertService(
	alertRepo repository.PriceAlertRepository,
	dealRepo repository.DealRepository,
	logger *slog.Logger,
) usecase.PriceAlertUsecase {
	return &priceAlertService{
		alertRepo: alertRepo,
		dealRepo:  dealRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *priceAlertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create upserts the alert. A repeated call replaces the target and resets notified.
func (srv *priceAlertService) Create(ctx context.Context, userID, dealID uuid.UUID, targetPrice float64) (*entity.PriceAlert, error) {
	if targetPrice <= 0 {
		return nil, domainerrors.ErrInvalidTargetPrice.WithDetails("target price must be positive")
	}

	deal, err := findVisibleDeal(ctx, srv.dealRepo, dealID, srv.now().UTC())
	if err != nil {
		return nil, err
	}
	if targetPrice >= deal.DiscountedPrice {
		return nil, domainerrors.ErrInvalidTargetPrice.WithDetails("target price must be below the current price")
	}

	alert := &entity.PriceAlert{
		UserID:      userID,
		DealID:      dealID,
		TargetPrice: targetPrice,
		Notified:    false,
	}
	if err := srv.alertRepo.Upsert(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to upsert price alert")
	}
	alert.Deal = deal
	srv.log(ctx).Info("Price alert saved", slog.Any("alert_id", alert.ID), slog.Any("deal_id", dealID))

	return alert, nil
}

func (srv *priceAlertService) Delete(ctx context.Context, userID, alertID uuid.UUID) error {
	if err := srv.alertRepo.DeleteOwned(ctx, alertID, userID); err != nil {
		if errors.Is(err, repository.ErrPriceAlertNotFound) {
			return domainerrors.ErrPriceAlertNotFound.WrapMessage("delete")
		}

		return errors.Wrap(err, "failed to delete price alert")
	}

	return nil
}

func (srv *priceAlertService) List(ctx context.Context, userID uuid.UUID) ([]*entity.PriceAlert, error) {
	alerts, err := srv.alertRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list price alerts")
	}

	return alerts, nil
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.UserProfileRepository
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileRepo repository.UserProfileRepository) usecase.ProfileUsecase {
	return &profileService{profileRepo: profileRepo}
}

func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("get profile")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

func (srv *profileService) UpdateName(ctx context.Context, userID uuid.UUID, name string) (*entity.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if err := srv.profileRepo.UpdateName(ctx, userID, name); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("update name")
		}

		return nil, errors.Wrap(err, "failed to update profile name")
	}

	return srv.GetProfile(ctx, userID)
}

// categoryService implements the CategoryUsecase interface with a read-through cache.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        service.CategoryCache
	logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cache service.CategoryCache,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) ListActive(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.cache.GetActive(ctx)
	if err == nil {
		return categories, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Category cache read failed", slog.Any("error", err))
	}

	categories, err = srv.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	if err := srv.cache.SetActive(ctx, categories); err != nil {
		srv.log(ctx).Warn("Category cache write failed", slog.Any("error", err))
	}

	return categories, nil
}
