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

type VolunteerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockVolunteerRepository
	service  portssvc.VolunteerSvcFacade
}

func (suite *VolunteerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVolunteerRepository)
	suite.service = services.NewVolunteerService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *VolunteerServiceTestSuite) TestCreateVolunteer_PrefixFollowsKind() {
	ctx := context.Background()
	prefixes := map[domain.VolunteerKind]string{
		domain.KindVolunteer:   "VOL-",
		domain.KindPartnership: "PAR-",
		domain.KindContact:     "CON-",
	}

	for kind, prefix := range prefixes {
		suite.mockRepo.On("VolunteerReferenceIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
		suite.mockRepo.On("SaveVolunteer", ctx, mock.AnythingOfType("domain.Volunteer")).Return(nil).Once()

		created, err := suite.service.CreateVolunteer(ctx, kind, dto.CreateVolunteerRequest{
			Name:  "Alex Doe",
			Email: "alex@example.com",
		})

		suite.Require().NoError(err)
		suite.True(strings.HasPrefix(created.ReferenceID, prefix),
			"kind %s should produce a %s reference ID, got %s", kind, prefix, created.ReferenceID)
		suite.Equal(kind, created.Kind)
		suite.Equal(domain.VolunteerSubmitted, created.Status)
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VolunteerServiceTestSuite) TestCreateVolunteer_UnknownKind() {
	ctx := context.Background()

	created, err := suite.service.CreateVolunteer(ctx, domain.VolunteerKind("sponsor"), dto.CreateVolunteerRequest{
		Name:  "Alex Doe",
		Email: "alex@example.com",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
}

func (suite *VolunteerServiceTestSuite) TestUpdateVolunteerStatus_ContactedToArchived() {
	ctx := context.Background()
	volunteer := &domain.Volunteer{
		VolunteerID: uuid.NewString(),
		ReferenceID: "VOL-20260815-AAAA",
		Kind:        domain.KindVolunteer,
		Status:      domain.VolunteerContacted,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: string(domain.VolunteerSubmitted), CreatedAt: time.Now().Add(-time.Hour)},
		},
	}

	suite.mockRepo.On("FindVolunteerByReferenceID", ctx, volunteer.ReferenceID).Return(volunteer, nil).Once()
	suite.mockRepo.On("UpdateVolunteerStatus", ctx, volunteer.VolunteerID, domain.VolunteerArchived,
		mock.AnythingOfType("domain.StatusHistoryEntry"), "admin-1").Return(nil).Once()

	updated, err := suite.service.UpdateVolunteerStatus(ctx, volunteer.ReferenceID, dto.UpdateStatusRequest{Status: "archived"}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.VolunteerArchived, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VolunteerServiceTestSuite) TestUpdateVolunteerStatus_ArchivedIsTerminal() {
	ctx := context.Background()
	volunteer := &domain.Volunteer{
		VolunteerID: uuid.NewString(),
		ReferenceID: "VOL-20260815-AAAA",
		Kind:        domain.KindVolunteer,
		Status:      domain.VolunteerArchived,
	}

	suite.mockRepo.On("FindVolunteerByReferenceID", ctx, volunteer.ReferenceID).Return(volunteer, nil).Once()

	updated, err := suite.service.UpdateVolunteerStatus(ctx, volunteer.ReferenceID, dto.UpdateStatusRequest{Status: "contacted"}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTransition)
	suite.Nil(updated)
}

func (suite *VolunteerServiceTestSuite) TestListVolunteers_UnknownKindFilter() {
	ctx := context.Background()

	volunteers, token, err := suite.service.ListVolunteers(ctx, dto.ListVolunteersParams{Kind: "sponsor"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(volunteers)
	suite.Nil(token)
}

func TestVolunteerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VolunteerServiceTestSuite))
}
