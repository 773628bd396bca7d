package postgres

import (
	"context"
	"strings"

	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dealRepository implements the repository.DealRepository interface.
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{
		db: db,
	}
}

// Create persists a new deal.
func (repo *dealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	dealM := fromDealDomain(deal)

	if err := repo.db.WithContext(ctx).Create(dealM).Error; err != nil {
		if violated(err) == constraintForeignKey {
			return domainerrors.ErrValidationFailed.WrapMessage("deal references an unknown retailer or category")
		}
		if violated(err) == constraintNotNull {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required deal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create deal")
	}

	deal.ID = dealM.ID
	deal.CreatedAt = dealM.CreatedAt
	deal.UpdatedAt = dealM.UpdatedAt

	return nil
}

// FindByID retrieves a deal by its unique ID.
func (repo *dealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var dealM model.DealModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal by id")
	}

	return toDealDomain(&dealM), nil
}

// List returns deals matching filter and the total match count.
func (repo *dealRepository) List(ctx context.Context, filter repository.DealFilter) ([]*entity.Deal, int64, error) {
	query := applyDealFilter(repo.db.WithContext(ctx).Model(&model.DealModel{}), filter).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count deals")
	}

	var dealModels []*model.DealModel
	if err := query.
		Order(dealOrder(filter.Sort)).
		Order("id").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&dealModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list deals")
	}

	deals := make([]*entity.Deal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toDealDomain(dealM))
	}

	return deals, total, nil
}

func applyDealFilter(query *gorm.DB, filter repository.DealFilter) *gorm.DB {
	if filter.RetailerID != nil {
		query = query.Where("retailer_id = ?", *filter.RetailerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.VisibleAt != nil {
		query = query.Where("status = ? AND is_active = ? AND (end_date IS NULL OR end_date > ?)",
			string(entity.DealStatusApproved), true, *filter.VisibleAt)
	}
	if filter.CategorySlug != "" {
		query = query.Where("category_id IN (?)",
			query.Session(&gorm.Session{NewDB: true}).
				Model(&model.CategoryModel{}).
				Select("id").
				Where("slug = ?", filter.CategorySlug))
	}
	if filter.RetailerSlug != "" {
		query = query.Where("retailer_id IN (?)",
			query.Session(&gorm.Session{NewDB: true}).
				Model(&model.RetailerModel{}).
				Select("id").
				Where("slug = ?", filter.RetailerSlug))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	return query
}

func dealOrder(sort repository.DealSort) string {
	switch sort {
	case repository.DealSortPriceAsc:
		return "discounted_price ASC"
	case repository.DealSortPriceDesc:
		return "discounted_price DESC"
	case repository.DealSortDiscount:
		return "(original_price - discounted_price) / original_price DESC"
	default:
		return "created_at DESC"
	}
}

// UpdateOwned saves the editable fields and status of a deal owned by deal.RetailerID.
func (repo *dealRepository) UpdateOwned(ctx context.Context, deal *entity.Deal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ? AND retailer_id = ?", deal.ID, deal.RetailerID).
		Updates(map[string]any{
			"category_id":      deal.CategoryID,
			"title":            deal.Title,
			"description":      deal.Description,
			"status":           string(deal.Status),
			"is_active":        deal.IsActive,
			"original_price":   deal.OriginalPrice,
			"discounted_price": deal.DiscountedPrice,
			"quantity":         deal.Quantity,
			"deal_url":         deal.DealURL,
			"image_url":        deal.ImageURL,
			"start_date":       deal.StartDate,
			"end_date":         deal.EndDate,
			"rejection_reason": deal.RejectionReason,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update deal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// SetActiveOwned flips is_active on an approved deal owned by retailerID.
func (repo *dealRepository) SetActiveOwned(ctx context.Context, id, retailerID uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ? AND retailer_id = ? AND status = ?", id, retailerID, string(entity.DealStatusApproved)).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set deal active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// DeleteOwned hard-deletes a deal owned by retailerID.
func (repo *dealRepository) DeleteOwned(ctx context.Context, id, retailerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND retailer_id = ?", id, retailerID).
		Delete(&model.DealModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete deal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// UpdateReview records an admin decision on the deal.
func (repo *dealRepository) UpdateReview(ctx context.Context, id uuid.UUID, review repository.DealReview) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           string(review.Status),
			"rejection_reason": review.RejectionReason,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update deal review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// IncrementViewCount adds one view to the deal.
func (repo *dealRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return repo.increment(ctx, id, "view_count")
}

// IncrementClickCount adds one outbound click to the deal.
func (repo *dealRepository) IncrementClickCount(ctx context.Context, id uuid.UUID) error {
	return repo.increment(ctx, id, "click_count")
}

func (repo *dealRepository) increment(ctx context.Context, id uuid.UUID, column string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to increment %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDealDomain(data *model.DealModel) *entity.Deal {
	if data == nil {
		return nil
	}

	return &entity.Deal{
		ID:              data.ID,
		RetailerID:      data.RetailerID,
		CategoryID:      data.CategoryID,
		Title:           data.Title,
		Description:     data.Description,
		Status:          entity.DealStatus(data.Status),
		IsActive:        data.IsActive,
		OriginalPrice:   data.OriginalPrice,
		DiscountedPrice: data.DiscountedPrice,
		Quantity:        data.Quantity,
		DealURL:         data.DealURL,
		ImageURL:        data.ImageURL,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		RejectionReason: data.RejectionReason,
		ViewCount:       data.ViewCount,
		ClickCount:      data.ClickCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromDealDomain(data *entity.Deal) *model.DealModel {
	if data == nil {
		return nil
	}

	return &model.DealModel{
		ID:              data.ID,
		RetailerID:      data.RetailerID,
		CategoryID:      data.CategoryID,
		Title:           data.Title,
		Description:     data.Description,
		Status:          string(data.Status),
		IsActive:        data.IsActive,
		OriginalPrice:   data.OriginalPrice,
		DiscountedPrice: data.DiscountedPrice,
		Quantity:        data.Quantity,
		DealURL:         data.DealURL,
		ImageURL:        data.ImageURL,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		RejectionReason: data.RejectionReason,
		ViewCount:       data.ViewCount,
		ClickCount:      data.ClickCount,
	}
}
