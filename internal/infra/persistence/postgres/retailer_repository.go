package postgres

import (
	"context"

	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// retailerRepository implements the repository.RetailerRepository interface.
type retailerRepository struct {
	db *gorm.DB
}

// NewRetailerRepository is the constructor for retailerRepository.
func NewRetailerRepository(db *gorm.DB) repository.RetailerRepository {
	return &retailerRepository{
		db: db,
	}
}

// Create persists a new retailer application.
func (repo *retailerRepository) Create(ctx context.Context, retailer *entity.Retailer) error {
	retailerM := fromRetailerDomain(retailer)

	if err := repo.db.WithContext(ctx).Create(retailerM).Error; err != nil {
		if violated(err) == constraintUnique {
			// Either the user already applied or the slug was taken concurrently.
			return domainerrors.ErrApplicationExists.WrapMessage("retailer user or slug already exists")
		}
		if violated(err) == constraintNotNull {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required retailer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create retailer")
	}

	retailer.ID = retailerM.ID
	retailer.CreatedAt = retailerM.CreatedAt
	retailer.UpdatedAt = retailerM.UpdatedAt

	return nil
}

func (repo *retailerRepository) findOne(ctx context.Context, query string, arg any) (*entity.Retailer, error) {
	var retailerM model.RetailerModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&retailerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRetailerNotFound
		}

		return nil, errors.Wrap(err, "failed to find retailer")
	}

	return toRetailerDomain(&retailerM), nil
}

// FindByID retrieves a retailer by its unique ID.
func (repo *retailerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Retailer, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUserID retrieves the retailer owned by a user.
func (repo *retailerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Retailer, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

// FindBySlug retrieves a retailer by its public slug.
func (repo *retailerRepository) FindBySlug(ctx context.Context, slug string) (*entity.Retailer, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

// SlugExists reports whether any retailer already uses slug.
func (repo *retailerRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RetailerModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check retailer slug")
	}

	return count > 0, nil
}

// UpdateOwned saves the owner-editable fields, filtered by id and owner.
func (repo *retailerRepository) UpdateOwned(ctx context.Context, retailer *entity.Retailer) error {
	app := retailer.Application

	result := repo.db.WithContext(ctx).
		Model(&model.RetailerModel{}).
		Where("id = ? AND user_id = ?", retailer.ID, retailer.UserID).
		Updates(map[string]any{
			"name":              retailer.Name,
			"website_url":       retailer.WebsiteURL,
			"affiliate_id":      retailer.AffiliateID,
			"description":       app.Description,
			"logo_url":          app.LogoURL,
			"contact_name":      app.ContactName,
			"contact_email":     app.ContactEmail,
			"contact_phone":     app.ContactPhone,
			"address":           app.Address,
			"city":              app.City,
			"country":           app.Country,
			"sales_channels":    jsonStrings(app.SalesChannels),
			"return_policy_url": app.ReturnPolicyURL,
			"shipping_regions":  app.ShippingRegions,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update retailer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRetailerNotFound
	}

	return nil
}

// UpdateReview records an admin decision.
func (repo *retailerRepository) UpdateReview(ctx context.Context, id uuid.UUID, review repository.RetailerReview) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RetailerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           string(review.Status),
			"is_active":        review.IsActive,
			"rejection_reason": review.RejectionReason,
			"reviewed_at":      review.ReviewedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update retailer review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRetailerNotFound
	}

	return nil
}

// List returns retailers matching filter, newest first, with the total count.
func (repo *retailerRepository) List(ctx context.Context, filter repository.RetailerFilter) ([]*entity.Retailer, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.RetailerModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count retailers")
	}

	var retailerModels []*model.RetailerModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&retailerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list retailers")
	}

	retailers := make([]*entity.Retailer, 0, len(retailerModels))
	for _, retailerM := range retailerModels {
		retailers = append(retailers, toRetailerDomain(retailerM))
	}

	return retailers, total, nil
}

// --- Mapper Functions ---

func jsonStrings(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}

	return datatypes.JSONSlice[string](values)
}

func toRetailerDomain(data *model.RetailerModel) *entity.Retailer {
	if data == nil {
		return nil
	}

	return &entity.Retailer{
		ID:              data.ID,
		UserID:          data.UserID,
		Name:            data.Name,
		Slug:            data.Slug,
		Status:          entity.RetailerStatus(data.Status),
		IsActive:        data.IsActive,
		Commission:      data.Commission,
		WebsiteURL:      data.WebsiteURL,
		AffiliateID:     data.AffiliateID,
		RejectionReason: data.RejectionReason,
		ReviewedAt:      data.ReviewedAt,
		Application: entity.RetailerApplication{
			LegalName:          data.LegalName,
			BusinessType:       data.BusinessType,
			RegistrationNumber: data.RegistrationNumber,
			Description:        data.Description,
			LogoURL:            data.LogoURL,
			ContactName:        data.ContactName,
			ContactEmail:       data.ContactEmail,
			ContactPhone:       data.ContactPhone,
			Address:            data.Address,
			City:               data.City,
			Country:            data.Country,
			ProductCategories:  []string(data.ProductCategories),
			AverageDiscount:    data.AverageDiscount,
			SKUCount:           data.SKUCount,
			MonthlyDeals:       data.MonthlyDeals,
			SalesChannels:      []string(data.SalesChannels),
			ReturnPolicyURL:    data.ReturnPolicyURL,
			ShippingRegions:    data.ShippingRegions,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromRetailerDomain(data *entity.Retailer) *model.RetailerModel {
	if data == nil {
		return nil
	}
	app := data.Application

	return &model.RetailerModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Name:               data.Name,
		Slug:               data.Slug,
		Status:             string(data.Status),
		IsActive:           data.IsActive,
		Commission:         data.Commission,
		WebsiteURL:         data.WebsiteURL,
		AffiliateID:        data.AffiliateID,
		RejectionReason:    data.RejectionReason,
		ReviewedAt:         data.ReviewedAt,
		LegalName:          app.LegalName,
		BusinessType:       app.BusinessType,
		RegistrationNumber: app.RegistrationNumber,
		Description:        app.Description,
		LogoURL:            app.LogoURL,
		ContactName:        app.ContactName,
		ContactEmail:       app.ContactEmail,
		ContactPhone:       app.ContactPhone,
		Address:            app.Address,
		City:               app.City,
		Country:            app.Country,
		ProductCategories:  jsonStrings(app.ProductCategories),
		AverageDiscount:    app.AverageDiscount,
		SKUCount:           app.SKUCount,
		MonthlyDeals:       app.MonthlyDeals,
		SalesChannels:      jsonStrings(app.SalesChannels),
		ReturnPolicyURL:    app.ReturnPolicyURL,
		ShippingRegions:    app.ShippingRegions,
	}
}
