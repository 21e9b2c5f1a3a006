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

// MockOrderRepository is a mock type for the OrderRepositoryFacade interface
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByReferenceID(ctx context.Context, referenceID string) (*domain.Order, error) {
	args := m.Called(ctx, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) OrderReferenceIDExists(ctx context.Context, referenceID string) (bool, error) {
	args := m.Called(ctx, referenceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, limit int, nextToken *string) ([]domain.Order, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Order), token, args.Error(2)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, entry domain.StatusHistoryEntry, shoeStatus *domain.ShoeStatus, updatedBy string) error {
	args := m.Called(ctx, orderID, status, entry, shoeStatus, updatedBy)
	return args.Error(0)
}

// --- Test Suite Setup ---

type OrderServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockOrderRepository
	mockRequests *MockRequestRepository
	mockShoes    *MockShoeReader
	service      portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrderRepository)
	suite.mockRequests = new(MockRequestRepository)
	suite.mockShoes = new(MockShoeReader)
	suite.service = services.NewOrderService(suite.mockRepo, suite.mockRequests, suite.mockShoes)
}

func orderWithStatus(status domain.OrderStatus) *domain.Order {
	now := time.Now().Add(-time.Hour)
	requestID := uuid.NewString()
	return &domain.Order{
		OrderID:       uuid.NewString(),
		ReferenceID:   "ORD-20260815-E5F6",
		RequestID:     &requestID,
		RecipientName: "Jordan Lee",
		Email:         "jordan@example.com",
		Status:        status,
		Items: []domain.OrderItem{
			{ItemID: uuid.NewString(), ShoeID: uuid.NewString()},
		},
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: string(domain.OrderSubmitted), Note: "Order created", CreatedAt: now},
		},
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestCreateOrderFromRequest_Success() {
	ctx := context.Background()
	shoeID := uuid.NewString()
	request := requestWithStatus(domain.RequestApproved, &shoeID)

	suite.mockRequests.On("FindRequestByReferenceID", ctx, request.ReferenceID).Return(request, nil).Once()
	suite.mockShoes.On("FindShoesByIDs", ctx, []string{shoeID}).Return(map[string]domain.Shoe{
		shoeID: {ShoeID: shoeID, Status: domain.ShoeRequested},
	}, nil).Once()
	suite.mockRepo.On("OrderReferenceIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.Order")).Return(nil).Once()

	created, err := suite.service.CreateOrderFromRequest(ctx, request.ReferenceID,
		dto.CreateOrderRequest{ShoeIDs: []string{shoeID}, TrackingCode: "1Z999"}, "admin-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.True(strings.HasPrefix(created.ReferenceID, "ORD-"), "reference ID should carry the order prefix")
	suite.Equal(domain.OrderSubmitted, created.Status)
	suite.Equal(request.RequesterName, created.RecipientName)
	suite.Equal(request.Email, created.Email)
	suite.Require().NotNil(created.RequestID)
	suite.Equal(request.RequestID, *created.RequestID)
	suite.Equal("admin-1", created.CreatedBy)
	suite.Require().Len(created.Items, 1)
	suite.Equal(shoeID, created.Items[0].ShoeID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrderFromRequest_RequestNotApproved() {
	ctx := context.Background()
	request := requestWithStatus(domain.RequestSubmitted, nil)

	suite.mockRequests.On("FindRequestByReferenceID", ctx, request.ReferenceID).Return(request, nil).Once()

	created, err := suite.service.CreateOrderFromRequest(ctx, request.ReferenceID,
		dto.CreateOrderRequest{ShoeIDs: []string{uuid.NewString()}}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrderFromRequest_ShoeAlreadyShipped() {
	ctx := context.Background()
	shoeID := uuid.NewString()
	request := requestWithStatus(domain.RequestApproved, &shoeID)

	suite.mockRequests.On("FindRequestByReferenceID", ctx, request.ReferenceID).Return(request, nil).Once()
	suite.mockShoes.On("FindShoesByIDs", ctx, []string{shoeID}).Return(map[string]domain.Shoe{
		shoeID: {ShoeID: shoeID, Status: domain.ShoeShipped},
	}, nil).Once()

	created, err := suite.service.CreateOrderFromRequest(ctx, request.ReferenceID,
		dto.CreateOrderRequest{ShoeIDs: []string{shoeID}}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_ShippedFlipsShoes() {
	ctx := context.Background()
	order := orderWithStatus(domain.OrderSubmitted)

	suite.mockRepo.On("FindOrderByReferenceID", ctx, order.ReferenceID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, order.OrderID, domain.OrderShipped,
		mock.AnythingOfType("domain.StatusHistoryEntry"),
		mock.MatchedBy(func(st *domain.ShoeStatus) bool {
			return st != nil && *st == domain.ShoeShipped
		}),
		"admin-1").Return(nil).Once()

	updated, err := suite.service.UpdateOrderStatus(ctx, order.ReferenceID, dto.UpdateStatusRequest{Status: "shipped"}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.OrderShipped, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_CancelledReleasesShoes() {
	ctx := context.Background()
	order := orderWithStatus(domain.OrderSubmitted)

	suite.mockRepo.On("FindOrderByReferenceID", ctx, order.ReferenceID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrderStatus", ctx, order.OrderID, domain.OrderCancelled,
		mock.AnythingOfType("domain.StatusHistoryEntry"),
		mock.MatchedBy(func(st *domain.ShoeStatus) bool {
			return st != nil && *st == domain.ShoeAvailable
		}),
		"admin-1").Return(nil).Once()

	updated, err := suite.service.UpdateOrderStatus(ctx, order.ReferenceID, dto.UpdateStatusRequest{Status: "cancelled"}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.OrderCancelled, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_ShippedIsTerminal() {
	ctx := context.Background()
	order := orderWithStatus(domain.OrderShipped)

	suite.mockRepo.On("FindOrderByReferenceID", ctx, order.ReferenceID).Return(order, nil).Once()

	updated, err := suite.service.UpdateOrderStatus(ctx, order.ReferenceID, dto.UpdateStatusRequest{Status: "cancelled"}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTransition)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
