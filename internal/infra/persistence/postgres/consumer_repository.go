package postgres

import (
	"context"
	"time"

	"dealsmarket/internal/domain/entity"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// watchlistRepository implements the repository.WatchlistRepository interface.
type watchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository is the constructor for watchlistRepository.
func NewWatchlistRepository(db *gorm.DB) repository.WatchlistRepository {
	return &watchlistRepository{
		db: db,
	}
}

// Add saves the deal for the user. A duplicate (user, deal) pair is ignored.
func (repo *watchlistRepository) Add(ctx context.Context, userID, dealID uuid.UUID) error {
	item := &model.WatchlistItemModel{
		UserID: userID,
		DealID: dealID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "deal_id"}},
			DoNothing: true,
		}).
		Create(item).Error; err != nil {
		if violated(err) == constraintForeignKey {
			return repository.ErrDealNotFound
		}

		return errors.Wrap(err, "failed to add watchlist item")
	}

	return nil
}

// Remove deletes the (user, deal) row if present.
func (repo *watchlistRepository) Remove(ctx context.Context, userID, dealID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND deal_id = ?", userID, dealID).
		Delete(&model.WatchlistItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove watchlist item")
	}

	return nil
}

// Exists reports whether the user saved the deal.
func (repo *watchlistRepository) Exists(ctx context.Context, userID, dealID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WatchlistItemModel{}).
		Where("user_id = ? AND deal_id = ?", userID, dealID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check watchlist item")
	}

	return count > 0, nil
}

// ListByUser returns the user's saved deals, newest first.
func (repo *watchlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistItem, error) {
	var itemModels []*model.WatchlistItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Deal").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list watchlist items")
	}

	items := make([]*entity.WatchlistItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, &entity.WatchlistItem{
			UserID:    itemM.UserID,
			DealID:    itemM.DealID,
			Deal:      toDealDomain(itemM.Deal),
			CreatedAt: itemM.CreatedAt,
		})
	}

	return items, nil
}

// priceAlertRepository implements the repository.PriceAlertRepository interface.
type priceAlertRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPriceAlertRepository is the constructor for priceAlertRepository.
func NewPriceAlertRepository(db *gorm.DB) repository.PriceAlertRepository {
	return &priceAlertRepository{
		db:  db,
		now: time.Now,
	}
}

// Upsert inserts the alert or replaces the target of the existing (user, deal) alert.
func (repo *priceAlertRepository) Upsert(ctx context.Context, alert *entity.PriceAlert) error {
	alertM := &model.PriceAlertModel{
		UserID:      alert.UserID,
		DealID:      alert.DealID,
		TargetPrice: alert.TargetPrice,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "deal_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"target_price": alert.TargetPrice,
				"notified":     false,
				"updated_at":   repo.now(),
			}),
		}).
		Create(alertM).Error; err != nil {
		if violated(err) == constraintForeignKey {
			return repository.ErrDealNotFound
		}

		return errors.Wrap(err, "failed to upsert price alert")
	}

	// On conflict the generated ID is not the stored one, so re-read the row.
	stored, err := repo.FindByUserAndDeal(ctx, alert.UserID, alert.DealID)
	if err != nil {
		return err
	}

	alert.ID = stored.ID
	alert.Notified = stored.Notified
	alert.CreatedAt = stored.CreatedAt
	alert.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindByUserAndDeal retrieves the user's alert on a deal.
func (repo *priceAlertRepository) FindByUserAndDeal(ctx context.Context, userID, dealID uuid.UUID) (*entity.PriceAlert, error) {
	var alertM model.PriceAlertModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND deal_id = ?", userID, dealID).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPriceAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find price alert")
	}

	return toPriceAlertDomain(&alertM), nil
}

// ListByUser returns the user's alerts, newest first, with the deal loaded.
func (repo *priceAlertRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PriceAlert, error) {
	var alertModels []*model.PriceAlertModel

	if err := repo.db.WithContext(ctx).
		Preload("Deal").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list price alerts")
	}

	return toPriceAlertDomains(alertModels), nil
}

// DeleteOwned removes an alert by id, filtered by owner.
func (repo *priceAlertRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PriceAlertModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete price alert")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPriceAlertNotFound
	}

	return nil
}

// FindTriggered returns un-notified alerts on dealID whose target is at or above price.
func (repo *priceAlertRepository) FindTriggered(ctx context.Context, dealID uuid.UUID, price float64) ([]*entity.PriceAlert, error) {
	var alertModels []*model.PriceAlertModel

	if err := repo.db.WithContext(ctx).
		Where("deal_id = ? AND notified = ? AND target_price >= ?", dealID, false, price).
		Order("created_at").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find triggered price alerts")
	}

	return toPriceAlertDomains(alertModels), nil
}

// MarkNotified sets notified=true on the given alerts.
func (repo *priceAlertRepository) MarkNotified(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.PriceAlertModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"notified":   true,
			"updated_at": repo.now(),
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark price alerts notified")
	}

	return nil
}

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// ListActive returns active categories ordered by their display order, with visible deal counts.
func (repo *categoryRepository) ListActive(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	dealCount := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Select("COUNT(*)").
		Where("deals.category_id = categories.id AND deals.status = ? AND deals.is_active = ?",
			string(entity.DealStatusApproved), true)

	if err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Select("categories.*, (?) AS deal_count", dealCount).
		Where("categories.is_active = ?", true).
		Order("categories.sort_order, categories.name").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindBySlug retrieves a category by slug.
func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

// --- Mapper Functions ---

func toPriceAlertDomain(data *model.PriceAlertModel) *entity.PriceAlert {
	if data == nil {
		return nil
	}

	return &entity.PriceAlert{
		ID:          data.ID,
		UserID:      data.UserID,
		DealID:      data.DealID,
		TargetPrice: data.TargetPrice,
		Notified:    data.Notified,
		Deal:        toDealDomain(data.Deal),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toPriceAlertDomains(data []*model.PriceAlertModel) []*entity.PriceAlert {
	alerts := make([]*entity.PriceAlert, 0, len(data))
	for _, alertM := range data {
		alerts = append(alerts, toPriceAlertDomain(alertM))
	}

	return alerts
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		IsActive:  data.IsActive,
		Order:     data.SortOrder,
		DealCount: data.DealCount,
	}
}
