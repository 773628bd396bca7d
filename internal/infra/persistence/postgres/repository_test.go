package postgres

import (
	"context"
	"testing"
	"time"

	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is its own database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedProfile(t *testing.T, db *gorm.DB, email string) *entity.UserProfile {
	t.Helper()
	ctx := context.Background()

	identity := &entity.Identity{Email: email, Name: "Test User"}
	credential := &entity.Credential{Email: email, PasswordHash: "hash"}
	require.NoError(t, NewIdentityRepository(db).Create(ctx, identity, credential))

	profile := &entity.UserProfile{ID: identity.ID, Email: email, Name: identity.Name, Role: entity.RoleConsumer}
	require.NoError(t, NewUserProfileRepository(db).Create(ctx, profile))

	return profile
}

func seedRetailer(t *testing.T, db *gorm.DB, userID uuid.UUID, slug string, status entity.RetailerStatus) *entity.Retailer {
	t.Helper()

	retailer := &entity.Retailer{
		UserID:   userID,
		Name:     slug,
		Slug:     slug,
		Status:   status,
		IsActive: status == entity.RetailerStatusApproved,
		Application: entity.RetailerApplication{
			ContactEmail:      "ops@" + slug + ".test",
			ProductCategories: []string{"electronics"},
		},
	}
	require.NoError(t, NewRetailerRepository(db).Create(context.Background(), retailer))

	return retailer
}

func seedDeal(t *testing.T, db *gorm.DB, retailerID uuid.UUID, title string, status entity.DealStatus, active bool, price float64) *entity.Deal {
	t.Helper()

	deal := &entity.Deal{
		RetailerID:      retailerID,
		Title:           title,
		Status:          status,
		IsActive:        active,
		OriginalPrice:   100,
		DiscountedPrice: price,
		Quantity:        5,
		StartDate:       time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, NewDealRepository(db).Create(context.Background(), deal))

	return deal
}

func TestIdentityRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedProfile(t, db, "dup@example.com")

	err := NewIdentityRepository(db).Create(context.Background(),
		&entity.Identity{Email: "dup@example.com", Name: "Other"},
		&entity.Credential{Email: "dup@example.com", PasswordHash: "hash"},
	)

	assert.ErrorIs(t, err, domainerrors.ErrIdentityAlreadyExists)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	profile := seedProfile(t, db, "tx@example.com")
	txManager := NewTransactionManager(db)
	boom := errors.New("boom")

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		retailer := &entity.Retailer{UserID: profile.ID, Name: "Acme", Slug: "acme", Status: entity.RetailerStatusPending}
		if err := factory.RetailerRepo().Create(context.Background(), retailer); err != nil {
			return err
		}
		if err := factory.ProfileRepo().LinkRetailer(context.Background(), profile.ID, retailer.ID); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewRetailerRepository(db).FindBySlug(context.Background(), "acme")
	assert.ErrorIs(t, err, repository.ErrRetailerNotFound)

	stored, err := NewUserProfileRepository(db).FindByID(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleConsumer, stored.Role)
	assert.Nil(t, stored.RetailerID)
}

func TestRetailerRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("one application per user", func(t *testing.T) {
		db := newTestDB(t)
		profile := seedProfile(t, db, "owner@example.com")
		seedRetailer(t, db, profile.ID, "acme", entity.RetailerStatusPending)

		err := NewRetailerRepository(db).Create(ctx, &entity.Retailer{
			UserID: profile.ID, Name: "Acme Two", Slug: "acme-two", Status: entity.RetailerStatusPending,
		})
		assert.ErrorIs(t, err, domainerrors.ErrApplicationExists)
	})

	t.Run("slug lookup and application round trip", func(t *testing.T) {
		db := newTestDB(t)
		profile := seedProfile(t, db, "owner@example.com")
		created := seedRetailer(t, db, profile.ID, "acme", entity.RetailerStatusPending)
		repo := NewRetailerRepository(db)

		exists, err := repo.SlugExists(ctx, "acme")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.SlugExists(ctx, "acme-2")
		require.NoError(t, err)
		assert.False(t, exists)

		found, err := repo.FindByUserID(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, []string{"electronics"}, found.Application.ProductCategories)
		assert.Equal(t, "ops@acme.test", found.Application.ContactEmail)
	})

	t.Run("update is filtered by owner", func(t *testing.T) {
		db := newTestDB(t)
		owner := seedProfile(t, db, "owner@example.com")
		other := seedProfile(t, db, "other@example.com")
		retailer := seedRetailer(t, db, owner.ID, "acme", entity.RetailerStatusApproved)
		repo := NewRetailerRepository(db)

		hijack := *retailer
		hijack.UserID = other.ID
		hijack.Name = "Hijacked"
		assert.ErrorIs(t, repo.UpdateOwned(ctx, &hijack), repository.ErrRetailerNotFound)

		retailer.Name = "Acme Outlet"
		require.NoError(t, repo.UpdateOwned(ctx, retailer))

		found, err := repo.FindByID(ctx, retailer.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Outlet", found.Name)
		assert.Equal(t, "acme", found.Slug)
	})

	t.Run("review and list by status", func(t *testing.T) {
		db := newTestDB(t)
		first := seedProfile(t, db, "first@example.com")
		second := seedProfile(t, db, "second@example.com")
		pending := seedRetailer(t, db, first.ID, "first", entity.RetailerStatusPending)
		seedRetailer(t, db, second.ID, "second", entity.RetailerStatusPending)
		repo := NewRetailerRepository(db)

		reviewedAt := time.Now().UTC()
		require.NoError(t, repo.UpdateReview(ctx, pending.ID, repository.RetailerReview{
			Status:     entity.RetailerStatusApproved,
			IsActive:   true,
			ReviewedAt: reviewedAt,
		}))

		status := entity.RetailerStatusPending
		retailers, total, err := repo.List(ctx, repository.RetailerFilter{Status: &status, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, retailers, 1)
		assert.Equal(t, "second", retailers[0].Slug)

		approved, err := repo.FindByID(ctx, pending.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.RetailerStatusApproved, approved.Status)
		assert.True(t, approved.IsActive)
		assert.NotNil(t, approved.ReviewedAt)

		assert.ErrorIs(t, repo.UpdateReview(ctx, uuid.New(), repository.RetailerReview{Status: entity.RetailerStatusRejected}),
			repository.ErrRetailerNotFound)
	})
}

func TestDealRepository_PublicListing(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	profile := seedProfile(t, db, "owner@example.com")
	retailer := seedRetailer(t, db, profile.ID, "acme", entity.RetailerStatusApproved)
	repo := NewDealRepository(db)

	visible := seedDeal(t, db, retailer.ID, "Noise Cancelling Headphones", entity.DealStatusApproved, true, 60)
	cheaper := seedDeal(t, db, retailer.ID, "USB Cable", entity.DealStatusApproved, true, 40)
	seedDeal(t, db, retailer.ID, "Paused Speaker", entity.DealStatusApproved, false, 50)
	seedDeal(t, db, retailer.ID, "Pending Laptop", entity.DealStatusPending, true, 70)
	seedDeal(t, db, retailer.ID, "Rejected Phone", entity.DealStatusRejected, true, 80)

	expired := seedDeal(t, db, retailer.ID, "Expired Monitor", entity.DealStatusApproved, true, 30)
	past := time.Now().UTC().Add(-time.Minute)
	expired.EndDate = &past
	require.NoError(t, repo.UpdateOwned(ctx, expired))

	now := time.Now().UTC()
	deals, total, err := repo.List(ctx, repository.DealFilter{
		VisibleAt: &now,
		Sort:      repository.DealSortPriceAsc,
		Limit:     10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, deals, 2)
	assert.Equal(t, cheaper.ID, deals[0].ID)
	assert.Equal(t, visible.ID, deals[1].ID)

	deals, total, err = repo.List(ctx, repository.DealFilter{
		VisibleAt:    &now,
		Query:        "headphones",
		RetailerSlug: "acme",
		Limit:        10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, deals, 1)
	assert.Equal(t, visible.ID, deals[0].ID)

	deals, _, err = repo.List(ctx, repository.DealFilter{VisibleAt: &now, RetailerSlug: "unknown", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, deals)
}

func TestDealRepository_OwnershipFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	ownerProfile := seedProfile(t, db, "owner@example.com")
	otherProfile := seedProfile(t, db, "other@example.com")
	owner := seedRetailer(t, db, ownerProfile.ID, "owner", entity.RetailerStatusApproved)
	other := seedRetailer(t, db, otherProfile.ID, "other", entity.RetailerStatusApproved)
	repo := NewDealRepository(db)

	deal := seedDeal(t, db, owner.ID, "Blender", entity.DealStatusApproved, true, 50)

	assert.ErrorIs(t, repo.DeleteOwned(ctx, deal.ID, other.ID), repository.ErrDealNotFound)
	assert.ErrorIs(t, repo.SetActiveOwned(ctx, deal.ID, other.ID, false), repository.ErrDealNotFound)

	stillThere, err := repo.FindByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.True(t, stillThere.IsActive)

	require.NoError(t, repo.SetActiveOwned(ctx, deal.ID, owner.ID, false))
	paused, err := repo.FindByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DisplayPaused, paused.DisplayState())

	pending := seedDeal(t, db, owner.ID, "Toaster", entity.DealStatusPending, true, 20)
	assert.ErrorIs(t, repo.SetActiveOwned(ctx, pending.ID, owner.ID, false), repository.ErrDealNotFound)

	require.NoError(t, repo.DeleteOwned(ctx, deal.ID, owner.ID))
	_, err = repo.FindByID(ctx, deal.ID)
	assert.ErrorIs(t, err, repository.ErrDealNotFound)
}

func TestDealRepository_Counters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	profile := seedProfile(t, db, "owner@example.com")
	retailer := seedRetailer(t, db, profile.ID, "acme", entity.RetailerStatusApproved)
	repo := NewDealRepository(db)
	deal := seedDeal(t, db, retailer.ID, "Kettle", entity.DealStatusApproved, true, 25)

	require.NoError(t, repo.IncrementViewCount(ctx, deal.ID))
	require.NoError(t, repo.IncrementViewCount(ctx, deal.ID))
	require.NoError(t, repo.IncrementClickCount(ctx, deal.ID))

	found, err := repo.FindByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, found.ViewCount)
	assert.EqualValues(t, 1, found.ClickCount)

	assert.ErrorIs(t, repo.IncrementViewCount(ctx, uuid.New()), repository.ErrDealNotFound)
}

func TestWatchlistRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	profile := seedProfile(t, db, "owner@example.com")
	consumer := seedProfile(t, db, "consumer@example.com")
	retailer := seedRetailer(t, db, profile.ID, "acme", entity.RetailerStatusApproved)
	deal := seedDeal(t, db, retailer.ID, "Lamp", entity.DealStatusApproved, true, 15)
	repo := NewWatchlistRepository(db)

	require.NoError(t, repo.Add(ctx, consumer.ID, deal.ID))
	require.NoError(t, repo.Add(ctx, consumer.ID, deal.ID))

	items, err := repo.ListByUser(ctx, consumer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Deal)
	assert.Equal(t, "Lamp", items[0].Deal.Title)

	exists, err := repo.Exists(ctx, consumer.ID, deal.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Remove(ctx, consumer.ID, deal.ID))
	require.NoError(t, repo.Remove(ctx, consumer.ID, deal.ID))

	exists, err = repo.Exists(ctx, consumer.ID, deal.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPriceAlertRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	profile := seedProfile(t, db, "owner@example.com")
	consumer := seedProfile(t, db, "consumer@example.com")
	stranger := seedProfile(t, db, "stranger@example.com")
	retailer := seedRetailer(t, db, profile.ID, "acme", entity.RetailerStatusApproved)
	deal := seedDeal(t, db, retailer.ID, "Camera", entity.DealStatusApproved, true, 80)
	repo := NewPriceAlertRepository(db)

	first := &entity.PriceAlert{UserID: consumer.ID, DealID: deal.ID, TargetPrice: 60}
	require.NoError(t, repo.Upsert(ctx, first))
	require.NotEqual(t, uuid.Nil, first.ID)

	require.NoError(t, repo.MarkNotified(ctx, []uuid.UUID{first.ID}))

	second := &entity.PriceAlert{UserID: consumer.ID, DealID: deal.ID, TargetPrice: 70}
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.Notified)

	alerts, err := repo.ListByUser(ctx, consumer.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.InDelta(t, 70, alerts[0].TargetPrice, 0.001)
	require.NotNil(t, alerts[0].Deal)
	assert.Equal(t, deal.ID, alerts[0].Deal.ID)

	triggered, err := repo.FindTriggered(ctx, deal.ID, 65)
	require.NoError(t, err)
	require.Len(t, triggered, 1)

	triggered, err = repo.FindTriggered(ctx, deal.ID, 75)
	require.NoError(t, err)
	assert.Empty(t, triggered)

	assert.ErrorIs(t, repo.DeleteOwned(ctx, first.ID, stranger.ID), repository.ErrPriceAlertNotFound)
	require.NoError(t, repo.DeleteOwned(ctx, first.ID, consumer.ID))

	_, err = repo.FindByUserAndDeal(ctx, consumer.ID, deal.ID)
	assert.ErrorIs(t, err, repository.ErrPriceAlertNotFound)
}

func TestCategoryRepository_ListActive(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	profile := seedProfile(t, db, "owner@example.com")
	retailer := seedRetailer(t, db, profile.ID, "acme", entity.RetailerStatusApproved)

	electronics := &model.CategoryModel{Name: "Electronics", Slug: "electronics", IsActive: true, SortOrder: 2}
	home := &model.CategoryModel{Name: "Home", Slug: "home", IsActive: true, SortOrder: 1}
	archived := &model.CategoryModel{Name: "Archived", Slug: "archived", IsActive: false, SortOrder: 0}
	require.NoError(t, db.Create(electronics).Error)
	require.NoError(t, db.Create(home).Error)
	require.NoError(t, db.Create(archived).Error)

	dealRepo := NewDealRepository(db)
	for _, status := range []entity.DealStatus{entity.DealStatusApproved, entity.DealStatusPending} {
		deal := seedDeal(t, db, retailer.ID, "TV "+string(status), status, true, 500)
		deal.OriginalPrice = 900
		deal.CategoryID = &electronics.ID
		require.NoError(t, dealRepo.UpdateOwned(ctx, deal))
	}

	categories, err := NewCategoryRepository(db).ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "home", categories[0].Slug)
	assert.Equal(t, 0, categories[0].DealCount)
	assert.Equal(t, "electronics", categories[1].Slug)
	assert.Equal(t, 1, categories[1].DealCount)

	now := time.Now().UTC()
	deals, _, err := dealRepo.List(ctx, repository.DealFilter{VisibleAt: &now, CategorySlug: "electronics", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, deals, 1)

	_, err = NewCategoryRepository(db).FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestRefreshTokenRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	profile := seedProfile(t, db, "sessions@example.com")
	other := seedProfile(t, db, "other@example.com")
	repo := NewRefreshTokenRepository(db)

	now := time.Now().UTC()
	for _, token := range []*entity.RefreshToken{
		{IdentityID: profile.ID, TokenHash: "live", ExpiresAt: now.Add(time.Hour)},
		{IdentityID: profile.ID, TokenHash: "stale", ExpiresAt: now.Add(-time.Hour)},
		{IdentityID: other.ID, TokenHash: "other-stale", ExpiresAt: now.Add(-time.Hour)},
	} {
		require.NoError(t, repo.CreateRefreshToken(ctx, token))
	}

	t.Run("duplicate hash", func(t *testing.T) {
		err := repo.CreateRefreshToken(ctx, &entity.RefreshToken{IdentityID: profile.ID, TokenHash: "live", ExpiresAt: now.Add(time.Hour)})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("prune only touches the identity's expired sessions", func(t *testing.T) {
		require.NoError(t, repo.DeleteExpiredRefreshTokens(ctx, profile.ID))

		_, err := repo.FindRefreshTokenByHash(ctx, "stale")
		assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

		live, err := repo.FindRefreshTokenByHash(ctx, "live")
		require.NoError(t, err)
		assert.Equal(t, profile.ID, live.IdentityID)

		_, err = repo.FindRefreshTokenByHash(ctx, "other-stale")
		assert.NoError(t, err)
	})

	t.Run("delete by hash", func(t *testing.T) {
		require.NoError(t, repo.DeleteRefreshTokenByHash(ctx, "live"))
		assert.ErrorIs(t, repo.DeleteRefreshTokenByHash(ctx, "live"), repository.ErrRefreshTokenNotFound)
	})
}
