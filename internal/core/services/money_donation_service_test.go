package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/newstepsproject/backend/internal/apperrors"
	"github.com/newstepsproject/backend/internal/core/domain"
	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/core/services"
	"github.com/newstepsproject/backend/internal/dto"
)

type MoneyDonationServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockMoneyDonationRepository
	mockNotifier *MockNotifier
	service      portssvc.MoneyDonationSvcFacade
}

func (suite *MoneyDonationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMoneyDonationRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewMoneyDonationService(suite.mockRepo, suite.mockNotifier)
}

// --- Test Cases ---

func (suite *MoneyDonationServiceTestSuite) TestCreateMoneyDonation_NameBasedReferenceID() {
	ctx := context.Background()
	req := dto.CreateMoneyDonationRequest{
		DonorName: "Smith Family",
		Email:     "smith@example.com",
		Amount:    decimal.NewFromInt(50),
	}

	suite.mockRepo.On("MoneyDonationReferenceIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveMoneyDonation", ctx, mock.AnythingOfType("domain.MoneyDonation")).Return(nil).Once()

	created, err := suite.service.CreateMoneyDonation(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	// Name-based format: DM-SMIT-NNNN.
	suite.True(strings.HasPrefix(created.ReferenceID, "DM-SMIT-"),
		"expected a name-based reference ID, got %s", created.ReferenceID)
	suite.Equal(domain.DonationSubmitted, created.Status)
	suite.True(created.Amount.Equal(req.Amount))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MoneyDonationServiceTestSuite) TestCreateMoneyDonation_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateMoneyDonationRequest{
		DonorName: "Smith Family",
		Email:     "smith@example.com",
		Amount:    decimal.Zero,
	}

	created, err := suite.service.CreateMoneyDonation(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveMoneyDonation", mock.Anything, mock.Anything)
}

func (suite *MoneyDonationServiceTestSuite) TestUpdateMoneyDonationStatus_CancelledIsTerminal() {
	ctx := context.Background()
	donation := &domain.MoneyDonation{
		MoneyDonationID: "md-1",
		ReferenceID:     "DM-SMIT-1234",
		DonorName:       "Smith Family",
		Email:           "smith@example.com",
		Status:          domain.DonationCancelled,
	}

	suite.mockRepo.On("FindMoneyDonationByReferenceID", ctx, donation.ReferenceID).Return(donation, nil).Once()

	updated, err := suite.service.UpdateMoneyDonationStatus(ctx, donation.ReferenceID, dto.UpdateStatusRequest{Status: "received"}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTransition)
	suite.Nil(updated)
}

func TestMoneyDonationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MoneyDonationServiceTestSuite))
}
