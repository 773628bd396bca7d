package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/domain/service"
	mockRepo "dealsmarket/internal/mocks/repository"
	mockSvc "dealsmarket/internal/mocks/service"
	mockUsecase "dealsmarket/internal/mocks/usecase"
	"dealsmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// retailerServiceFixtures holds all test dependencies for retailer service tests.
type retailerServiceFixtures struct {
	service      usecase.RetailerUsecase
	txManager    *mockRepo.MockTransactionManager
	retailerRepo *mockRepo.MockRetailerRepository
	accessUC     *mockUsecase.MockAccessUsecase
	publisher    *mockSvc.MockEventPublisher
	now          time.Time
}

func createTestRetailerService(t *testing.T) retailerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	retailerRepo := mockRepo.NewMockRetailerRepository(t)
	accessUC := mockUsecase.NewMockAccessUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	svc := NewRetailerService(txManager, retailerRepo, accessUC, publisher, nil, logger).(*retailerService)
	svc.now = func() time.Time { return now }

	return retailerServiceFixtures{
		service:      svc,
		txManager:    txManager,
		retailerRepo: retailerRepo,
		accessUC:     accessUC,
		publisher:    publisher,
		now:          now,
	}
}

func validApplication() *usecase.ApplyRetailerInput {
	return &usecase.ApplyRetailerInput{
		BusinessName:      "Acme Outlet",
		LegalName:         "Acme Outlet Ltd",
		ContactEmail:      "owner@acme.example",
		ProductCategories: []string{"electronics"},
		AcceptTerms:       true,
		AcceptCommission:  true,
		ConfirmAuthority:  true,
	}
}

func TestRetailerService_Apply_RequiresAllAcknowledgements(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.ApplyRetailerInput)
	}{
		{name: "terms", mutate: func(in *usecase.ApplyRetailerInput) { in.AcceptTerms = false }},
		{name: "commission", mutate: func(in *usecase.ApplyRetailerInput) { in.AcceptCommission = false }},
		{name: "authority", mutate: func(in *usecase.ApplyRetailerInput) { in.ConfirmAuthority = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRetailerService(t)
			input := validApplication()
			tt.mutate(input)

			_, err := fx.service.Apply(context.Background(), uuid.New(), input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestRetailerService_Apply_CreatesPendingRetailer(t *testing.T) {
	fx := createTestRetailerService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.accessUC.EXPECT().Reconcile(ctx, userID).Return(&entity.AccessProfile{UserID: userID, Role: entity.RoleConsumer}, nil)
	fx.retailerRepo.EXPECT().SlugExists(ctx, "acme-outlet").Return(true, nil)
	fx.retailerRepo.EXPECT().SlugExists(ctx, "acme-outlet-2").Return(false, nil)

	var linkedRetailer uuid.UUID
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRetailerRepo := mockRepo.NewMockRetailerRepository(t)
			txProfileRepo := mockRepo.NewMockUserProfileRepository(t)

			mockFactory.EXPECT().RetailerRepo().Return(txRetailerRepo)
			mockFactory.EXPECT().ProfileRepo().Return(txProfileRepo)
			txRetailerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Retailer")).
				RunAndReturn(func(_ context.Context, r *entity.Retailer) error {
					r.ID = uuid.New()

					return nil
				})
			txProfileRepo.EXPECT().LinkRetailer(ctx, userID, mock.AnythingOfType("uuid.UUID")).
				RunAndReturn(func(_ context.Context, _ uuid.UUID, retailerID uuid.UUID) error {
					linkedRetailer = retailerID

					return nil
				})

			return fn(mockFactory)
		})
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *service.LifecycleEvent) bool {
		return e.Type == service.EventRetailerApplied && e.ActorID == userID.String()
	})).Return(nil)

	retailer, err := fx.service.Apply(ctx, userID, validApplication())

	require.NoError(t, err)
	assert.Equal(t, entity.RetailerStatusPending, retailer.Status)
	assert.False(t, retailer.IsActive)
	assert.Equal(t, "acme-outlet-2", retailer.Slug)
	assert.Equal(t, userID, retailer.UserID)
	assert.Equal(t, retailer.ID, linkedRetailer)
	assert.Equal(t, []string{"electronics"}, retailer.Application.ProductCategories)
}

func TestRetailerService_Apply_ExistingApplication(t *testing.T) {
	fx := createTestRetailerService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.accessUC.EXPECT().Reconcile(ctx, userID).Return(retailerProfile(userID, uuid.New(), entity.RetailerStatusRejected), nil)

	_, err := fx.service.Apply(ctx, userID, validApplication())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrApplicationExists))
}

func TestRetailerService_Apply_AdminCannotApply(t *testing.T) {
	fx := createTestRetailerService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.accessUC.EXPECT().Reconcile(ctx, userID).Return(&entity.AccessProfile{UserID: userID, Role: entity.RoleAdmin}, nil)

	_, err := fx.service.Apply(ctx, userID, validApplication())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestRetailerService_Apply_SlugExhausted(t *testing.T) {
	fx := createTestRetailerService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.accessUC.EXPECT().Reconcile(ctx, userID).Return(&entity.AccessProfile{UserID: userID, Role: entity.RoleConsumer}, nil)
	fx.retailerRepo.EXPECT().SlugExists(ctx, mock.AnythingOfType("string")).Return(true, nil).Times(maxSlugAttempts)

	_, err := fx.service.Apply(ctx, userID, validApplication())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSlugTaken))
}

func TestRetailerService_GetStatus(t *testing.T) {
	tests := []struct {
		status entity.RetailerStatus
		want   string
	}{
		{status: entity.RetailerStatusPending, want: "/retailer/pending"},
		{status: entity.RetailerStatusApproved, want: "/retailer/dashboard"},
		{status: entity.RetailerStatusRejected, want: "/retailer/rejected"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			fx := createTestRetailerService(t)
			ctx := context.Background()
			userID := uuid.New()

			fx.accessUC.EXPECT().Reconcile(ctx, userID).Return(retailerProfile(userID, uuid.New(), tt.status), nil)

			out, err := fx.service.GetStatus(ctx, userID)

			require.NoError(t, err)
			assert.Equal(t, tt.status, out.Status)
			assert.Equal(t, tt.want, out.RedirectTo)
		})
	}
}

func TestRetailerService_UpdateProfile_KeepsSlug(t *testing.T) {
	fx := createTestRetailerService(t)
	ctx := context.Background()
	userID, retailerID := uuid.New(), uuid.New()
	name := "  Acme Superstore "

	existing := &entity.Retailer{ID: retailerID, UserID: userID, Name: "Acme", Slug: "acme", Status: entity.RetailerStatusApproved}

	fx.accessUC.EXPECT().Reconcile(ctx, userID).Return(retailerProfile(userID, retailerID, entity.RetailerStatusApproved), nil)
	fx.retailerRepo.EXPECT().FindByID(ctx, retailerID).Return(existing, nil)
	fx.retailerRepo.EXPECT().UpdateOwned(ctx, existing).Return(nil)

	retailer, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateRetailerProfileInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Acme Superstore", retailer.Name)
	assert.Equal(t, "acme", retailer.Slug)
}

func TestRetailerService_UpdateSettings_NoOwnedRow(t *testing.T) {
	fx := createTestRetailerService(t)
	ctx := context.Background()
	userID, retailerID := uuid.New(), uuid.New()

	fx.accessUC.EXPECT().Reconcile(ctx, userID).Return(retailerProfile(userID, retailerID, entity.RetailerStatusApproved), nil)
	fx.retailerRepo.EXPECT().FindByID(ctx, retailerID).Return(&entity.Retailer{ID: retailerID, UserID: userID}, nil)
	fx.retailerRepo.EXPECT().UpdateOwned(ctx, mock.AnythingOfType("*entity.Retailer")).Return(repository.ErrRetailerNotFound)

	_, err := fx.service.UpdateSettings(ctx, userID, &usecase.UpdateRetailerSettingsInput{SalesChannels: []string{"web"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotOwner))
}

func TestRetailerService_Review_Approve(t *testing.T) {
	fx := createTestRetailerService(t)
	ctx := context.Background()
	adminID, retailerID, ownerID := uuid.New(), uuid.New(), uuid.New()

	fx.retailerRepo.EXPECT().FindByID(ctx, retailerID).Return(&entity.Retailer{
		ID: retailerID, UserID: ownerID, Status: entity.RetailerStatusPending,
	}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRetailerRepo := mockRepo.NewMockRetailerRepository(t)
			txProfileRepo := mockRepo.NewMockUserProfileRepository(t)

			mockFactory.EXPECT().RetailerRepo().Return(txRetailerRepo)
			mockFactory.EXPECT().ProfileRepo().Return(txProfileRepo)
			txRetailerRepo.EXPECT().UpdateReview(ctx, retailerID, repository.RetailerReview{
				Status:     entity.RetailerStatusApproved,
				IsActive:   true,
				ReviewedAt: fx.now,
			}).Return(nil)
			txProfileRepo.EXPECT().LinkRetailer(ctx, ownerID, retailerID).Return(nil)

			return fn(mockFactory)
		})
	fx.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *service.LifecycleEvent) bool {
		return e.Type == service.EventRetailerReviewed && e.Data["status"] == "approved"
	})).Return(nil)

	retailer, err := fx.service.Review(ctx, adminID, retailerID, &usecase.ReviewInput{Approve: true})

	require.NoError(t, err)
	assert.Equal(t, entity.RetailerStatusApproved, retailer.Status)
	assert.True(t, retailer.IsActive)
	require.NotNil(t, retailer.ReviewedAt)
}

func TestRetailerService_Review_InvalidTransition(t *testing.T) {
	fx := createTestRetailerService(t)
	ctx := context.Background()
	retailerID := uuid.New()

	fx.retailerRepo.EXPECT().FindByID(ctx, retailerID).Return(&entity.Retailer{
		ID: retailerID, Status: entity.RetailerStatusRejected,
	}, nil)

	_, err := fx.service.Review(ctx, uuid.New(), retailerID, &usecase.ReviewInput{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestRetailerService_Review_NotFound(t *testing.T) {
	fx := createTestRetailerService(t)
	ctx := context.Background()
	retailerID := uuid.New()

	fx.retailerRepo.EXPECT().FindByID(ctx, retailerID).Return(nil, repository.ErrRetailerNotFound)

	_, err := fx.service.Review(ctx, uuid.New(), retailerID, &usecase.ReviewInput{Approve: true})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRetailerNotFound))
}
