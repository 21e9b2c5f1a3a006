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
	portsrepo "github.com/newstepsproject/backend/internal/core/ports/repositories"
	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/core/services"
	"github.com/newstepsproject/backend/internal/dto"
)

// MockRequestRepository is a mock type for the RequestRepositoryFacade interface
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) FindRequestByReferenceID(ctx context.Context, referenceID string) (*domain.ShoeRequest, error) {
	args := m.Called(ctx, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoeRequest), args.Error(1)
}

func (m *MockRequestRepository) RequestReferenceIDExists(ctx context.Context, referenceID string) (bool, error) {
	args := m.Called(ctx, referenceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRequestRepository) ListRequests(ctx context.Context, limit int, nextToken *string) ([]domain.ShoeRequest, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.ShoeRequest), token, args.Error(2)
}

func (m *MockRequestRepository) SaveRequest(ctx context.Context, request domain.ShoeRequest, reserveShoeIDs []string) error {
	args := m.Called(ctx, request, reserveShoeIDs)
	return args.Error(0)
}

func (m *MockRequestRepository) UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus, entry domain.StatusHistoryEntry, comp *portsrepo.InventoryCompensation, updatedBy string) error {
	args := m.Called(ctx, requestID, status, entry, comp, updatedBy)
	return args.Error(0)
}

// MockShoeReader is a mock type for the ShoeReader interface
type MockShoeReader struct {
	mock.Mock
}

func (m *MockShoeReader) FindShoeByID(ctx context.Context, shoeID string) (*domain.Shoe, error) {
	args := m.Called(ctx, shoeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shoe), args.Error(1)
}

func (m *MockShoeReader) FindShoesByIDs(ctx context.Context, shoeIDs []string) (map[string]domain.Shoe, error) {
	args := m.Called(ctx, shoeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Shoe), args.Error(1)
}

func (m *MockShoeReader) ListShoes(ctx context.Context, filter portsrepo.ShoeListFilter, limit int, offset int) ([]domain.Shoe, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shoe), args.Error(1)
}

// MockNotifier is a mock type for the Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n portssvc.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// --- Test Suite Setup ---

type RequestServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockRequestRepository
	mockShoes    *MockShoeReader
	mockNotifier *MockNotifier
	service      portssvc.RequestSvcFacade
}

func (suite *RequestServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRequestRepository)
	suite.mockShoes = new(MockShoeReader)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewRequestService(suite.mockRepo, suite.mockShoes, suite.mockNotifier)
}

func validCreateRequest() dto.CreateRequestRequest {
	return dto.CreateRequestRequest{
		RequesterName: "Jordan Lee",
		Email:         "jordan@example.com",
		Street:        "1 Main St",
		City:          "San Jose",
		State:         "CA",
		ZipCode:       "95110",
		Items: []dto.CreateRequestItem{
			{Brand: "Nike", Sport: "running", Gender: "unisex", Size: "9"},
		},
	}
}

func requestWithStatus(status domain.RequestStatus, boundShoeID *string) *domain.ShoeRequest {
	now := time.Now().Add(-time.Hour)
	return &domain.ShoeRequest{
		RequestID:     uuid.NewString(),
		ReferenceID:   "REQ-20260815-A1B2",
		RequesterName: "Jordan Lee",
		Email:         "jordan@example.com",
		Status:        status,
		Items: []domain.RequestItem{
			{ItemID: uuid.NewString(), ShoeID: boundShoeID, Size: "9"},
		},
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: string(domain.RequestSubmitted), Note: "Request submitted", CreatedAt: now},
		},
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

// --- Test Cases ---

func (suite *RequestServiceTestSuite) TestCreateRequest_Success() {
	ctx := context.Background()
	req := validCreateRequest()

	suite.mockRepo.On("RequestReferenceIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveRequest", ctx, mock.AnythingOfType("domain.ShoeRequest"), []string(nil)).Return(nil).Once()

	created, err := suite.service.CreateRequest(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.True(strings.HasPrefix(created.ReferenceID, "REQ-"), "reference ID should carry the request prefix")
	suite.Equal(domain.RequestSubmitted, created.Status)
	suite.Require().Len(created.StatusHistory, 1)
	suite.Equal(string(domain.RequestSubmitted), created.StatusHistory[0].Status)
	suite.Equal("public", created.CreatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestCreateRequest_ReservesBoundShoes() {
	ctx := context.Background()
	shoeID := uuid.NewString()
	req := validCreateRequest()
	req.Items[0].ShoeID = &shoeID

	suite.mockShoes.On("FindShoesByIDs", ctx, []string{shoeID}).Return(map[string]domain.Shoe{
		shoeID: {ShoeID: shoeID, Status: domain.ShoeAvailable, InventoryCount: 1},
	}, nil).Once()
	suite.mockRepo.On("RequestReferenceIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveRequest", ctx, mock.AnythingOfType("domain.ShoeRequest"), []string{shoeID}).Return(nil).Once()

	created, err := suite.service.CreateRequest(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockShoes.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestCreateRequest_BoundShoeNotAvailable() {
	ctx := context.Background()
	shoeID := uuid.NewString()
	req := validCreateRequest()
	req.Items[0].ShoeID = &shoeID

	suite.mockShoes.On("FindShoesByIDs", ctx, []string{shoeID}).Return(map[string]domain.Shoe{
		shoeID: {ShoeID: shoeID, Status: domain.ShoeRequested},
	}, nil).Once()

	created, err := suite.service.CreateRequest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RequestServiceTestSuite) TestCreateRequest_BoundShoeMissing() {
	ctx := context.Background()
	shoeID := uuid.NewString()
	req := validCreateRequest()
	req.Items[0].ShoeID = &shoeID

	suite.mockShoes.On("FindShoesByIDs", ctx, []string{shoeID}).Return(map[string]domain.Shoe{}, nil).Once()

	created, err := suite.service.CreateRequest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(created)
}

func (suite *RequestServiceTestSuite) TestCreateRequest_RegeneratesOnCollision() {
	ctx := context.Background()
	req := validCreateRequest()

	// First draw collides, second is free.
	suite.mockRepo.On("RequestReferenceIDExists", ctx, mock.AnythingOfType("string")).Return(true, nil).Once()
	suite.mockRepo.On("RequestReferenceIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveRequest", ctx, mock.AnythingOfType("domain.ShoeRequest"), []string(nil)).Return(nil).Once()

	created, err := suite.service.CreateRequest(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestUpdateRequestStatus_RejectReleasesInventory() {
	ctx := context.Background()
	shoeID := uuid.NewString()
	request := requestWithStatus(domain.RequestSubmitted, &shoeID)

	notified := make(chan portssvc.Notification, 1)

	suite.mockRepo.On("FindRequestByReferenceID", ctx, request.ReferenceID).Return(request, nil).Once()
	suite.mockRepo.On("UpdateRequestStatus", ctx, request.RequestID, domain.RequestRejected,
		mock.AnythingOfType("domain.StatusHistoryEntry"),
		mock.MatchedBy(func(comp *portsrepo.InventoryCompensation) bool {
			return comp != nil &&
				comp.CountDelta == 1 &&
				comp.NewStatus == domain.ShoeAvailable &&
				len(comp.ShoeIDs) == 1 && comp.ShoeIDs[0] == shoeID
		}),
		"admin-1").Return(nil).Once()
	suite.mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("services.Notification")).
		Run(func(args mock.Arguments) {
			notified <- args.Get(1).(portssvc.Notification)
		}).Return(nil).Once()

	updated, err := suite.service.UpdateRequestStatus(ctx, request.ReferenceID, dto.UpdateStatusRequest{Status: "rejected", Note: "out of stock"}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RequestRejected, updated.Status)
	suite.Len(updated.StatusHistory, 2)

	select {
	case n := <-notified:
		suite.Equal(portssvc.TemplateRequestRejected, n.Template)
		suite.Equal(request.Email, n.To)
		suite.Equal(request.ReferenceID, n.ReferenceID)
	case <-time.After(2 * time.Second):
		suite.Fail("expected a rejection notification")
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestUpdateRequestStatus_RejectedIsTerminal() {
	ctx := context.Background()
	request := requestWithStatus(domain.RequestRejected, nil)

	suite.mockRepo.On("FindRequestByReferenceID", ctx, request.ReferenceID).Return(request, nil).Once()

	updated, err := suite.service.UpdateRequestStatus(ctx, request.ReferenceID, dto.UpdateStatusRequest{Status: "approved"}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTransition)
	suite.Contains(err.Error(), "Rejected requests cannot change status")
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRequestStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RequestServiceTestSuite) TestUpdateRequestStatus_SameStatusIsSilentNoOp() {
	ctx := context.Background()
	request := requestWithStatus(domain.RequestSubmitted, nil)

	suite.mockRepo.On("FindRequestByReferenceID", ctx, request.ReferenceID).Return(request, nil).Once()
	suite.mockRepo.On("UpdateRequestStatus", ctx, request.RequestID, domain.RequestSubmitted,
		mock.AnythingOfType("domain.StatusHistoryEntry"),
		(*portsrepo.InventoryCompensation)(nil),
		"admin-1").Return(nil).Once()

	updated, err := suite.service.UpdateRequestStatus(ctx, request.ReferenceID, dto.UpdateStatusRequest{Status: "submitted", Note: "re-checked"}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RequestSubmitted, updated.Status)
	// History is still appended for the audit trail.
	suite.Len(updated.StatusHistory, 2)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything)
}

func (suite *RequestServiceTestSuite) TestUpdateRequestStatus_UnknownStatus() {
	ctx := context.Background()
	request := requestWithStatus(domain.RequestSubmitted, nil)

	suite.mockRepo.On("FindRequestByReferenceID", ctx, request.ReferenceID).Return(request, nil).Once()

	updated, err := suite.service.UpdateRequestStatus(ctx, request.ReferenceID, dto.UpdateStatusRequest{Status: "teleported"}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
}

func (suite *RequestServiceTestSuite) TestUpdateRequestStatus_ApprovedKeepsReservation() {
	ctx := context.Background()
	shoeID := uuid.NewString()
	request := requestWithStatus(domain.RequestSubmitted, &shoeID)

	suite.mockRepo.On("FindRequestByReferenceID", ctx, request.ReferenceID).Return(request, nil).Once()
	suite.mockRepo.On("UpdateRequestStatus", ctx, request.RequestID, domain.RequestApproved,
		mock.AnythingOfType("domain.StatusHistoryEntry"),
		(*portsrepo.InventoryCompensation)(nil),
		"admin-1").Return(nil).Once()
	suite.mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("services.Notification")).Return(nil).Maybe()

	updated, err := suite.service.UpdateRequestStatus(ctx, request.ReferenceID, dto.UpdateStatusRequest{Status: "approved"}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RequestApproved, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestUpdateRequestStatus_EmptyNoteGetsGeneratedDefault() {
	ctx := context.Background()
	request := requestWithStatus(domain.RequestSubmitted, nil)

	suite.mockRepo.On("FindRequestByReferenceID", ctx, request.ReferenceID).Return(request, nil).Once()
	suite.mockRepo.On("UpdateRequestStatus", ctx, request.RequestID, domain.RequestApproved,
		mock.MatchedBy(func(entry domain.StatusHistoryEntry) bool {
			return entry.Note == "Status changed to approved"
		}),
		(*portsrepo.InventoryCompensation)(nil),
		"admin-1").Return(nil).Once()
	suite.mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("services.Notification")).Return(nil).Maybe()

	updated, err := suite.service.UpdateRequestStatus(ctx, request.ReferenceID, dto.UpdateStatusRequest{Status: "approved"}, "admin-1")

	suite.Require().NoError(err)
	last := updated.StatusHistory[len(updated.StatusHistory)-1]
	suite.Equal("Status changed to approved", last.Note)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestUpdateRequestStatus_ProvidedNoteIsKept() {
	ctx := context.Background()
	request := requestWithStatus(domain.RequestSubmitted, nil)

	suite.mockRepo.On("FindRequestByReferenceID", ctx, request.ReferenceID).Return(request, nil).Once()
	suite.mockRepo.On("UpdateRequestStatus", ctx, request.RequestID, domain.RequestApproved,
		mock.MatchedBy(func(entry domain.StatusHistoryEntry) bool {
			return entry.Note == "verified sizes by phone"
		}),
		(*portsrepo.InventoryCompensation)(nil),
		"admin-1").Return(nil).Once()
	suite.mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("services.Notification")).Return(nil).Maybe()

	_, err := suite.service.UpdateRequestStatus(ctx, request.ReferenceID,
		dto.UpdateStatusRequest{Status: "approved", Note: "verified sizes by phone"}, "admin-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RequestServiceTestSuite))
}
