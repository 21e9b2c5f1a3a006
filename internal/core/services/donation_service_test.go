package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/newstepsproject/backend/internal/apperrors"
	"github.com/newstepsproject/backend/internal/core/domain"
	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/core/services"
	"github.com/newstepsproject/backend/internal/dto"
)

// MockDonationRepository is a mock type for the DonationRepositoryFacade interface
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) FindDonationByReferenceID(ctx context.Context, referenceID string) (*domain.Donation, error) {
	args := m.Called(ctx, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) DonationReferenceIDExists(ctx context.Context, referenceID string) (bool, error) {
	args := m.Called(ctx, referenceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDonationRepository) ListDonations(ctx context.Context, limit int, nextToken *string) ([]domain.Donation, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Donation), token, args.Error(2)
}

func (m *MockDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) UpdateDonationStatus(ctx context.Context, donationID string, status domain.DonationStatus, entry domain.StatusHistoryEntry, updatedBy string) error {
	args := m.Called(ctx, donationID, status, entry, updatedBy)
	return args.Error(0)
}

// --- Test Suite Setup ---

type DonationServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockDonationRepository
	mockNotifier *MockNotifier
	service      portssvc.DonationSvcFacade
}

func (suite *DonationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDonationRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewDonationService(suite.mockRepo, suite.mockNotifier)
}

func donationWithStatus(status domain.DonationStatus) *domain.Donation {
	now := time.Now().Add(-time.Hour)
	return &domain.Donation{
		DonationID:  uuid.NewString(),
		ReferenceID: "DON-20260815-C3D4",
		DonorName:   "Pat Smith",
		Email:       "pat@example.com",
		NumShoes:    2,
		Status:      status,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: string(domain.DonationSubmitted), Note: "Donation submitted", CreatedAt: now},
		},
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

// --- Test Cases ---

func (suite *DonationServiceTestSuite) TestCreateDonation_Success() {
	ctx := context.Background()
	req := dto.CreateDonationRequest{
		DonorName: "Pat Smith",
		Email:     "pat@example.com",
		Street:    "2 Oak Ave",
		City:      "Palo Alto",
		State:     "CA",
		ZipCode:   "94301",
		NumShoes:  2,
	}

	suite.mockRepo.On("DonationReferenceIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveDonation", ctx, mock.AnythingOfType("domain.Donation")).Return(nil).Once()

	created, err := suite.service.CreateDonation(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.True(strings.HasPrefix(created.ReferenceID, "DON-"), "reference ID should carry the donation prefix")
	suite.Equal(domain.DonationSubmitted, created.Status)
	suite.Equal(req.NumShoes, created.NumShoes)
	suite.Require().Len(created.StatusHistory, 1)
	suite.Equal("public", created.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestCreateDonation_LegacyOldIDMigrated() {
	ctx := context.Background()
	oldID := "DS-1234"
	req := dto.CreateDonationRequest{
		DonorName: "Pat Smith",
		Email:     "pat@example.com",
		Street:    "2 Oak Ave",
		City:      "Palo Alto",
		State:     "CA",
		ZipCode:   "94301",
		NumShoes:  1,
		OldID:     &oldID,
	}

	suite.mockRepo.On("DonationReferenceIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveDonation", ctx, mock.MatchedBy(func(d domain.Donation) bool {
		return d.OldID != nil && *d.OldID == oldID && strings.HasPrefix(d.ReferenceID, "DON-")
	})).Return(nil).Once()

	created, err := suite.service.CreateDonation(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created.OldID)
	suite.Equal(oldID, *created.OldID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestCreateDonation_CurrentSchemeOldIDReused() {
	ctx := context.Background()
	oldID := "DON-20250101-AB12"
	req := dto.CreateDonationRequest{
		DonorName: "Pat Smith",
		Email:     "pat@example.com",
		Street:    "2 Oak Ave",
		City:      "Palo Alto",
		State:     "CA",
		ZipCode:   "94301",
		NumShoes:  1,
		OldID:     &oldID,
	}

	// An already well-formed imported ID is kept verbatim when still free.
	suite.mockRepo.On("DonationReferenceIDExists", ctx, oldID).Return(false, nil).Once()
	suite.mockRepo.On("SaveDonation", ctx, mock.AnythingOfType("domain.Donation")).Return(nil).Once()

	created, err := suite.service.CreateDonation(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(oldID, created.ReferenceID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DonationServiceTestSuite) TestCreateDonation_ReferenceIDExhausted() {
	ctx := context.Background()
	req := dto.CreateDonationRequest{
		DonorName: "Pat Smith",
		Email:     "pat@example.com",
		Street:    "2 Oak Ave",
		City:      "Palo Alto",
		State:     "CA",
		ZipCode:   "94301",
		NumShoes:  1,
	}

	// Every draw collides.
	suite.mockRepo.On("DonationReferenceIDExists", ctx, mock.AnythingOfType("string")).Return(true, nil)

	created, err := suite.service.CreateDonation(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDonation", mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestUpdateDonationStatus_ReceivedNotifiesDonor() {
	ctx := context.Background()
	donation := donationWithStatus(domain.DonationSubmitted)

	notified := make(chan portssvc.Notification, 1)

	suite.mockRepo.On("FindDonationByReferenceID", ctx, donation.ReferenceID).Return(donation, nil).Once()
	suite.mockRepo.On("UpdateDonationStatus", ctx, donation.DonationID, domain.DonationReceived,
		mock.AnythingOfType("domain.StatusHistoryEntry"), "admin-1").Return(nil).Once()
	suite.mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("services.Notification")).
		Run(func(args mock.Arguments) {
			notified <- args.Get(1).(portssvc.Notification)
		}).Return(nil).Once()

	updated, err := suite.service.UpdateDonationStatus(ctx, donation.ReferenceID, dto.UpdateStatusRequest{Status: "received"}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.DonationReceived, updated.Status)
	suite.Len(updated.StatusHistory, 2)
	suite.Equal("admin-1", updated.LastUpdatedBy)

	select {
	case n := <-notified:
		suite.Equal(portssvc.TemplateDonationReceived, n.Template)
		suite.Equal(donation.Email, n.To)
	case <-time.After(2 * time.Second):
		suite.Fail("expected a received notification")
	}
}

func (suite *DonationServiceTestSuite) TestUpdateDonationStatus_ProcessedIsTerminal() {
	ctx := context.Background()
	donation := donationWithStatus(domain.DonationProcessed)

	suite.mockRepo.On("FindDonationByReferenceID", ctx, donation.ReferenceID).Return(donation, nil).Once()

	updated, err := suite.service.UpdateDonationStatus(ctx, donation.ReferenceID, dto.UpdateStatusRequest{Status: "cancelled"}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTransition)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateDonationStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestUpdateDonationStatus_SameStatusDoesNotNotify() {
	ctx := context.Background()
	donation := donationWithStatus(domain.DonationReceived)

	suite.mockRepo.On("FindDonationByReferenceID", ctx, donation.ReferenceID).Return(donation, nil).Once()
	suite.mockRepo.On("UpdateDonationStatus", ctx, donation.DonationID, domain.DonationReceived,
		mock.AnythingOfType("domain.StatusHistoryEntry"), "admin-1").Return(nil).Once()

	updated, err := suite.service.UpdateDonationStatus(ctx, donation.ReferenceID, dto.UpdateStatusRequest{Status: "received", Note: "recounted"}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.DonationReceived, updated.Status)
	suite.Len(updated.StatusHistory, 2)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything)
}

func (suite *DonationServiceTestSuite) TestUpdateDonationStatus_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindDonationByReferenceID", ctx, "DON-20260101-ZZZZ").Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateDonationStatus(ctx, "DON-20260101-ZZZZ", dto.UpdateStatusRequest{Status: "received"}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
}

func TestDonationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DonationServiceTestSuite))
}
