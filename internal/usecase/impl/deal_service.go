package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dealsmarket/config"
	deliverycontext "dealsmarket/internal/delivery/context"
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

// dealService implements the DealUsecase interface.
type dealService struct {
	txManager repository.TransactionManager
	dealRepo  repository.DealRepository
	accessUC  usecase.AccessUsecase
	qrService service.QRCodeService
	publisher service.EventPublisher
	listing   *config.ListingConfig
	logger    *slog.Logger
	now       func() time.Time
}

// NewDealService is the constructor for dealService.
func NewDealService(
	txManager repository.TransactionManager,
	dealRepo repository.DealRepository,
	accessUC usecase.AccessUsecase,
	qrService service.QRCodeService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DealUsecase {
	return &dealService{
		txManager: txManager,
		dealRepo:  dealRepo,
		accessUC:  accessUC,
		qrService: qrService,
		publisher: publisher,
		listing:   listingConfig(cfg),
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *dealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// retailerFor resolves the caller's retailer. When requireApproved is set the retailer must be approved.
func (srv *dealService) retailerFor(ctx context.Context, userID uuid.UUID, requireApproved bool) (uuid.UUID, error) {
	accessProfile, err := srv.accessUC.Reconcile(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if accessProfile.Role != entity.RoleRetailer || !accessProfile.HasRetailer() {
		return uuid.Nil, domainerrors.ErrNotRetailer.WrapMessage("deal management")
	}
	if requireApproved && accessProfile.RetailerStatus != entity.RetailerStatusApproved {
		return uuid.Nil, domainerrors.ErrRetailerNotApproved.WrapMessage(string(accessProfile.RetailerStatus))
	}

	return *accessProfile.RetailerID, nil
}

// ownedDeal loads a deal and checks it belongs to retailerID.
func (srv *dealService) ownedDeal(ctx context.Context, dealID, retailerID uuid.UUID) (*entity.Deal, error) {
	deal, err := srv.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrDealNotFound.WrapMessage("owned deal")
		}

		return nil, errors.Wrap(err, "failed to find deal")
	}
	if deal.RetailerID != retailerID {
		return nil, domainerrors.ErrNotOwner.WrapMessage("deal belongs to another retailer")
	}

	return deal, nil
}

func validateDealInput(input *usecase.DealInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if input.OriginalPrice <= 0 || input.DiscountedPrice <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("prices must be positive")
	}
	if input.DiscountedPrice >= input.OriginalPrice {
		return domainerrors.ErrInvalidPrice.WithDetails("discounted price must be less than original")
	}
	if input.Quantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}
	if input.DealURL != "" {
		if u, err := url.ParseRequestURI(input.DealURL); err != nil || u.Host == "" {
			return domainerrors.ErrValidationFailed.WithDetails("deal url is malformed")
		}
	}
	if input.StartDate != nil && input.EndDate != nil && !input.EndDate.After(*input.StartDate) {
		return domainerrors.ErrValidationFailed.WithDetails("end date must be after start date")
	}

	return nil
}

func applyDealInput(deal *entity.Deal, input *usecase.DealInput, now time.Time) {
	deal.Title = strings.TrimSpace(input.Title)
	deal.Description = input.Description
	deal.CategoryID = input.CategoryID
	deal.OriginalPrice = input.OriginalPrice
	deal.DiscountedPrice = input.DiscountedPrice
	deal.Quantity = input.Quantity
	deal.DealURL = input.DealURL
	deal.ImageURL = input.ImageURL
	deal.EndDate = input.EndDate
	if input.StartDate != nil {
		deal.StartDate = *input.StartDate
	} else if deal.StartDate.IsZero() {
		deal.StartDate = now
	}
}

// Create submits a new deal. Status is always pending regardless of the requested active flag.
func (srv *dealService) Create(ctx context.Context, userID uuid.UUID, input *usecase.DealInput) (*entity.Deal, error) {
	if err := validateDealInput(input); err != nil {
		return nil, err
	}
	retailerID, err := srv.retailerFor(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	deal := &entity.Deal{
		RetailerID: retailerID,
		Status:     entity.DealStatusPending,
		IsActive:   input.IsActive,
	}
	applyDealInput(deal, input, srv.now().UTC())

	if err := srv.dealRepo.Create(ctx, deal); err != nil {
		srv.log(ctx).Error("Failed to create deal", slog.Any("retailer_id", retailerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create deal")
	}
	srv.log(ctx).Info("Deal submitted", slog.Any("deal_id", deal.ID), slog.Any("retailer_id", retailerID))

	srv.publishSubmitted(ctx, userID, deal)

	return deal, nil
}

// Edit saves the deal and sends it back to review.
func (srv *dealService) Edit(ctx context.Context, userID, dealID uuid.UUID, input *usecase.DealInput) (*entity.Deal, error) {
	if err := validateDealInput(input); err != nil {
		return nil, err
	}
	retailerID, err := srv.retailerFor(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	deal, err := srv.ownedDeal(ctx, dealID, retailerID)
	if err != nil {
		return nil, err
	}

	next := statemachine.StatusAfterEdit(deal.Status)
	if err := statemachine.CanTransitionDeal(deal.Status, next, statemachine.ActorRetailer); err != nil {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(err.Error())
	}

	applyDealInput(deal, input, srv.now().UTC())
	deal.IsActive = input.IsActive
	deal.Status = next
	deal.RejectionReason = nil

	if err := srv.dealRepo.UpdateOwned(ctx, deal); err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrNotOwner.WrapMessage("deal update matched no owned row")
		}

		return nil, errors.Wrap(err, "failed to update deal")
	}
	srv.log(ctx).Info("Deal edited and resubmitted", slog.Any("deal_id", deal.ID))

	srv.publishSubmitted(ctx, userID, deal)

	return deal, nil
}

func (srv *dealService) publishSubmitted(ctx context.Context, userID uuid.UUID, deal *entity.Deal) {
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LifecycleEvent{
		Type:        service.EventDealSubmitted,
		AggregateID: deal.ID.String(),
		ActorID:     userID.String(),
		Data:        map[string]string{"retailer_id": deal.RetailerID.String(), "title": deal.Title},
	})
}

// Pause hides an approved deal.
func (srv *dealService) Pause(ctx context.Context, userID, dealID uuid.UUID) (*entity.Deal, error) {
	return srv.setActive(ctx, userID, dealID, false)
}

// Resume shows a paused approved deal again.
func (srv *dealService) Resume(ctx context.Context, userID, dealID uuid.UUID) (*entity.Deal, error) {
	return srv.setActive(ctx, userID, dealID, true)
}

func (srv *dealService) setActive(ctx context.Context, userID, dealID uuid.UUID, active bool) (*entity.Deal, error) {
	retailerID, err := srv.retailerFor(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	deal, err := srv.ownedDeal(ctx, dealID, retailerID)
	if err != nil {
		return nil, err
	}
	if !statemachine.CanToggleActive(deal.Status) {
		return nil, domainerrors.ErrDealNotApproved.WrapMessage(string(deal.Status))
	}
	if deal.IsActive == active {
		return deal, nil
	}

	if err := srv.dealRepo.SetActiveOwned(ctx, dealID, retailerID, active); err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrNotOwner.WrapMessage("deal toggle matched no owned row")
		}

		return nil, errors.Wrap(err, "failed to toggle deal")
	}
	deal.IsActive = active
	srv.log(ctx).Info("Deal visibility toggled", slog.Any("deal_id", deal.ID), slog.Bool("active", active))

	return deal, nil
}

// Delete hard-removes a deal owned by the caller's retailer.
func (srv *dealService) Delete(ctx context.Context, userID, dealID uuid.UUID) error {
	retailerID, err := srv.retailerFor(ctx, userID, false)
	if err != nil {
		return err
	}
	if _, err := srv.ownedDeal(ctx, dealID, retailerID); err != nil {
		return err
	}

	if err := srv.dealRepo.DeleteOwned(ctx, dealID, retailerID); err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return domainerrors.ErrNotOwner.WrapMessage("deal delete matched no owned row")
		}

		return errors.Wrap(err, "failed to delete deal")
	}
	srv.log(ctx).Info("Deal deleted", slog.Any("deal_id", dealID), slog.Any("retailer_id", retailerID))

	return nil
}

// ListOwn lists the caller's deals.
func (srv *dealService) ListOwn(ctx context.Context, userID uuid.UUID, status *entity.DealStatus, page, pageSize int) (*usecase.DealPage, error) {
	retailerID, err := srv.retailerFor(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	offset, limit := util.ClampPage(page, pageSize, srv.listing.DefaultPageSize, srv.listing.MaxPageSize)
	items, total, err := srv.dealRepo.List(ctx, repository.DealFilter{
		RetailerID: &retailerID,
		Status:     status,
		Sort:       repository.DealSortNewest,
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own deals")
	}

	return &usecase.DealPage{Items: items, Total: total, Page: offset/limit + 1, PageSize: limit}, nil
}

// GetOwn returns one of the caller's deals.
func (srv *dealService) GetOwn(ctx context.Context, userID, dealID uuid.UUID) (*entity.Deal, error) {
	retailerID, err := srv.retailerFor(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	return srv.ownedDeal(ctx, dealID, retailerID)
}

// ListPublic lists consumer-visible deals. A store failure yields an empty page.
func (srv *dealService) ListPublic(ctx context.Context, input *usecase.DealListInput) *usecase.DealPage {
	offset, limit := util.ClampPage(input.Page, input.PageSize, srv.listing.DefaultPageSize, srv.listing.MaxPageSize)
	page := &usecase.DealPage{Items: []*entity.Deal{}, Page: offset/limit + 1, PageSize: limit}

	sort := input.Sort
	switch sort {
	case repository.DealSortNewest, repository.DealSortPriceAsc, repository.DealSortPriceDesc, repository.DealSortDiscount:
	default:
		sort = repository.DealSortNewest
	}

	now := srv.now().UTC()
	items, total, err := srv.dealRepo.List(ctx, repository.DealFilter{
		CategorySlug: input.CategorySlug,
		RetailerSlug: input.RetailerSlug,
		Query:        strings.TrimSpace(input.Query),
		VisibleAt:    &now,
		Sort:         sort,
		Offset:       offset,
		Limit:        limit,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list public deals", slog.Any("error", err))

		return page
	}
	page.Items = items
	page.Total = total

	return page
}

func (srv *dealService) visibleDeal(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error) {
	deal, err := srv.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrDealNotFound.WrapMessage("public deal")
		}

		return nil, errors.Wrap(err, "failed to find deal")
	}
	if !deal.IsVisibleAt(srv.now().UTC()) {
		return nil, domainerrors.ErrDealNotFound.WrapMessage("deal not visible")
	}

	return deal, nil
}

// GetPublic returns a visible deal and counts the view.
func (srv *dealService) GetPublic(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error) {
	deal, err := srv.visibleDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if err := srv.dealRepo.IncrementViewCount(ctx, dealID); err != nil {
		srv.log(ctx).Warn("Failed to count deal view", slog.Any("deal_id", dealID), slog.Any("error", err))
	} else {
		deal.ViewCount++
	}

	return deal, nil
}

// TrackClick counts an outbound click.
func (srv *dealService) TrackClick(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error) {
	deal, err := srv.visibleDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if err := srv.dealRepo.IncrementClickCount(ctx, dealID); err != nil {
		srv.log(ctx).Warn("Failed to count deal click", slog.Any("deal_id", dealID), slog.Any("error", err))
	} else {
		deal.ClickCount++
	}

	return deal, nil
}

// ShareQR renders a QR code pointing at the public deal page.
func (srv *dealService) ShareQR(ctx context.Context, dealID uuid.UUID) ([]byte, error) {
	if _, err := srv.visibleDeal(ctx, dealID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateDealQR(dealID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate deal qr code")
	}

	return png, nil
}

// ListForReview lists deals for admins.
func (srv *dealService) ListForReview(ctx context.Context, status *entity.DealStatus, page, pageSize int) (*usecase.DealPage, error) {
	offset, limit := util.ClampPage(page, pageSize, srv.listing.DefaultPageSize, srv.listing.MaxPageSize)
	items, total, err := srv.dealRepo.List(ctx, repository.DealFilter{
		Status: status,
		Sort:   repository.DealSortNewest,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deals for review")
	}

	return &usecase.DealPage{Items: items, Total: total, Page: offset/limit + 1, PageSize: limit}, nil
}

// Review records an admin decision. On approval, alerts whose target is at or above the
// discounted price are marked notified in the same transaction and announced afterwards.
func (srv *dealService) Review(ctx context.Context, adminID, dealID uuid.UUID, input *usecase.ReviewInput) (*entity.Deal, error) {
	deal, err := srv.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrDealNotFound.WrapMessage("review")
		}

		return nil, errors.Wrap(err, "failed to find deal")
	}

	to := entity.DealStatusRejected
	if input.Approve {
		to = entity.DealStatusApproved
	}
	if err := statemachine.CanTransitionDeal(deal.Status, to, statemachine.ActorAdmin); err != nil {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(err.Error())
	}

	review := repository.DealReview{Status: to}
	if !input.Approve {
		review.RejectionReason = input.RejectionReason
	}

	var triggered []*entity.PriceAlert
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DealRepo().UpdateReview(ctx, deal.ID, review); err != nil {
			return errors.WithStack(err)
		}
		if to != entity.DealStatusApproved {
			return nil
		}

		alerts, err := repoFactory.PriceAlertRepo().FindTriggered(ctx, deal.ID, deal.DiscountedPrice)
		if err != nil {
			return errors.WithStack(err)
		}
		if len(alerts) == 0 {
			return nil
		}
		ids := make([]uuid.UUID, 0, len(alerts))
		for _, alert := range alerts {
			ids = append(ids, alert.ID)
		}
		if err := repoFactory.PriceAlertRepo().MarkNotified(ctx, ids); err != nil {
			return errors.WithStack(err)
		}
		triggered = alerts

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute deal review transaction")
	}

	deal.Status = review.Status
	deal.RejectionReason = review.RejectionReason

	srv.log(ctx).Info("Deal reviewed",
		slog.Any("deal_id", deal.ID),
		slog.Any("admin_id", adminID),
		slog.String("status", string(to)),
		slog.Int("alerts_triggered", len(triggered)),
	)

	data := map[string]string{"status": string(to), "retailer_id": deal.RetailerID.String()}
	if review.RejectionReason != nil {
		data["rejection_reason"] = *review.RejectionReason
	}
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LifecycleEvent{
		Type:        service.EventDealReviewed,
		AggregateID: deal.ID.String(),
		ActorID:     adminID.String(),
		Data:        data,
	})
	for _, alert := range triggered {
		publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LifecycleEvent{
			Type:        service.EventPriceAlertTriggered,
			AggregateID: alert.ID.String(),
			ActorID:     adminID.String(),
			Data: map[string]string{
				"user_id":      alert.UserID.String(),
				"deal_id":      deal.ID.String(),
				"target_price": strconv.FormatFloat(alert.TargetPrice, 'f', 2, 64),
				"price":        strconv.FormatFloat(deal.DiscountedPrice, 'f', 2, 64),
			},
		})
	}

	return deal, nil
}
