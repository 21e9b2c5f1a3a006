package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/newstepsproject/backend/internal/apperrors"
	"github.com/newstepsproject/backend/internal/core/domain"
	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/core/services"
	"github.com/newstepsproject/backend/internal/dto"
	"github.com/newstepsproject/backend/internal/utils"
	"github.com/newstepsproject/backend/pkg/config"
)

// --- Test Suite Setup ---

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	cfg      *config.Config
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "newsteps-backend",
	}
	suite.service = services.NewAuthService(suite.cfg, suite.mockRepo)
}

func (suite *AuthServiceTestSuite) userWithPassword(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Name:         "Sam Admin",
		Email:        "sam@example.com",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
}

// --- Test Cases ---

func (suite *AuthServiceTestSuite) TestLoginWithPassword_Success() {
	ctx := context.Background()
	user := suite.userWithPassword("correct-horse")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	resp, err := suite.service.LoginWithPassword(ctx, dto.LoginRequest{Email: user.Email, Password: "correct-horse"})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.NotEmpty(resp.Token)
	suite.Equal(user.Email, resp.User.Email)

	// The token must verify with our secret and carry the user as subject.
	parsed, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(suite.cfg.JWTSecret), nil
	})
	suite.Require().NoError(err)
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLoginWithPassword_WrongPassword() {
	ctx := context.Background()
	user := suite.userWithPassword("correct-horse")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	resp, err := suite.service.LoginWithPassword(ctx, dto.LoginRequest{Email: user.Email, Password: "battery-staple"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(resp)
}

func (suite *AuthServiceTestSuite) TestLoginWithPassword_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.LoginWithPassword(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(resp)
}

func (suite *AuthServiceTestSuite) TestLoginWithPassword_GoogleOnlyAccount() {
	ctx := context.Background()
	user := suite.userWithPassword("ignored")
	user.PasswordHash = ""

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	resp, err := suite.service.LoginWithPassword(ctx, dto.LoginRequest{Email: user.Email, Password: "anything"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(resp)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
