package services_test

import (
	"context"
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

// MockShoeRepository is a mock type for the ShoeRepositoryFacade interface
type MockShoeRepository struct {
	MockShoeReader
}

func (m *MockShoeRepository) SaveShoe(ctx context.Context, shoe domain.Shoe) error {
	args := m.Called(ctx, shoe)
	return args.Error(0)
}

func (m *MockShoeRepository) UpdateShoe(ctx context.Context, shoe domain.Shoe) error {
	args := m.Called(ctx, shoe)
	return args.Error(0)
}

func (m *MockShoeRepository) MarkShoeDeleted(ctx context.Context, shoeID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, shoeID, deletedAt, deletedBy)
	return args.Error(0)
}

func (m *MockShoeRepository) SetShoesStatus(ctx context.Context, shoeIDs []string, status domain.ShoeStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, shoeIDs, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Test Suite Setup ---

type ShoeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockShoeRepository
	service  portssvc.ShoeSvcFacade
}

func (suite *ShoeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockShoeRepository)
	suite.service = services.NewShoeService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ShoeServiceTestSuite) TestCreateShoe_StartsAvailable() {
	ctx := context.Background()
	req := dto.CreateShoeRequest{
		Brand:          "Nike",
		Gender:         "unisex",
		Sport:          "running",
		Size:           "9",
		InventoryCount: 1,
	}

	suite.mockRepo.On("SaveShoe", ctx, mock.MatchedBy(func(s domain.Shoe) bool {
		return s.Status == domain.ShoeAvailable && s.Brand == "Nike" && s.CreatedBy == "admin-1"
	})).Return(nil).Once()

	created, err := suite.service.CreateShoe(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.NotEmpty(created.ShoeID)
	suite.Equal(domain.ShoeAvailable, created.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ShoeServiceTestSuite) TestListShoes_RejectsUnknownStatusFilter() {
	ctx := context.Background()

	shoes, err := suite.service.ListShoes(ctx, dto.ListShoesParams{Status: "lost"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(shoes)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListShoes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShoeServiceTestSuite) TestListShoes_DefaultsLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListShoes", ctx, portsrepo.ShoeListFilter{Sport: "soccer"}, 20, 0).
		Return([]domain.Shoe{}, nil).Once()

	shoes, err := suite.service.ListShoes(ctx, dto.ListShoesParams{Sport: "soccer"})

	suite.Require().NoError(err)
	suite.Empty(shoes)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ShoeServiceTestSuite) TestDeleteShoe_RefusesReservedShoe() {
	ctx := context.Background()
	shoeID := uuid.NewString()

	suite.mockRepo.On("FindShoeByID", ctx, shoeID).Return(&domain.Shoe{
		ShoeID: shoeID,
		Status: domain.ShoeRequested,
	}, nil).Once()

	err := suite.service.DeleteShoe(ctx, shoeID, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkShoeDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShoeServiceTestSuite) TestDeleteShoe_Success() {
	ctx := context.Background()
	shoeID := uuid.NewString()

	suite.mockRepo.On("FindShoeByID", ctx, shoeID).Return(&domain.Shoe{
		ShoeID: shoeID,
		Status: domain.ShoeAvailable,
	}, nil).Once()
	suite.mockRepo.On("MarkShoeDeleted", ctx, shoeID, mock.AnythingOfType("time.Time"), "admin-1").Return(nil).Once()

	err := suite.service.DeleteShoe(ctx, shoeID, "admin-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ShoeServiceTestSuite) TestUpdateShoe_NegativeCountRefused() {
	ctx := context.Background()
	shoeID := uuid.NewString()
	negative := -1

	suite.mockRepo.On("FindShoeByID", ctx, shoeID).Return(&domain.Shoe{
		ShoeID: shoeID,
		Status: domain.ShoeAvailable,
	}, nil).Once()

	updated, err := suite.service.UpdateShoe(ctx, shoeID, dto.UpdateShoeRequest{InventoryCount: &negative}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateShoe", mock.Anything, mock.Anything)
}

func TestShoeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShoeServiceTestSuite))
}
