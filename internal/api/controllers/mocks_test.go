package controllers_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"wanderworld/internal/models/catalog_models"
	"wanderworld/internal/storefront"
)

// MockStorefrontService
type MockStorefrontService struct {
	mock.Mock
}

func (m *MockStorefrontService) view(args mock.Arguments) (*storefront.View, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.View), args.Error(1)
}

func (m *MockStorefrontService) Bootstrap(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error) {
	return m.view(m.Called(ctx, visitorID))
}

func (m *MockStorefrontService) Snapshot(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error) {
	return m.view(m.Called(ctx, visitorID))
}

func (m *MockStorefrontService) LoadDestinations(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error) {
	return m.view(m.Called(ctx, visitorID))
}

func (m *MockStorefrontService) LoadPackages(ctx context.Context, visitorID uuid.UUID, destinationSlug string) (*storefront.View, error) {
	return m.view(m.Called(ctx, visitorID, destinationSlug))
}

func (m *MockStorefrontService) Refresh(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error) {
	return m.view(m.Called(ctx, visitorID))
}

func (m *MockStorefrontService) SelectDestination(ctx context.Context, visitorID uuid.UUID, slug string) (*storefront.View, error) {
	return m.view(m.Called(ctx, visitorID, slug))
}

func (m *MockStorefrontService) FilterPackages(ctx context.Context, visitorID uuid.UUID, slug string) (*storefront.View, error) {
	return m.view(m.Called(ctx, visitorID, slug))
}

func (m *MockStorefrontService) PresetInquiry(ctx context.Context, visitorID uuid.UUID, pkg catalog_models.Package) (*storefront.View, error) {
	return m.view(m.Called(ctx, visitorID, pkg))
}

func (m *MockStorefrontService) UpdateDraft(ctx context.Context, visitorID uuid.UUID, draft catalog_models.InquiryDraft) (*storefront.View, error) {
	return m.view(m.Called(ctx, visitorID, draft))
}

func (m *MockStorefrontService) SubmitInquiry(ctx context.Context, visitorID uuid.UUID, draft catalog_models.InquiryDraft) (*storefront.View, error) {
	return m.view(m.Called(ctx, visitorID, draft))
}
