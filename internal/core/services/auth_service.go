package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/newstepsproject/backend/internal/apperrors"
	"github.com/newstepsproject/backend/internal/core/domain"
	portsrepo "github.com/newstepsproject/backend/internal/core/ports/repositories"
	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/dto"
	"github.com/newstepsproject/backend/internal/utils"
	"github.com/newstepsproject/backend/pkg/config"
)

// googleActor is recorded as the audit actor for accounts provisioned on
// first Google login.
const googleActor = "google-oauth"

type authService struct {
	BaseService
	repo        portsrepo.UserRepositoryFacade
	cfg         *config.Config
	oauthConfig *oauth2.Config
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(cfg *config.Config, repo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		repo: repo,
		cfg:  cfg,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (s *authService) LoginWithPassword(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("loading account: %w", err)
	}
	// Google-provisioned accounts have no password hash and must use the
	// Google flow.
	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return s.issueSession(ctx, user)
}

func (s *authService) LoginWithGoogle(ctx context.Context, code string) (*dto.LoginResponse, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "google code exchange failed")
		return nil, fmt.Errorf("exchanging google authorization code: %w", apperrors.ErrUnauthorized)
	}

	idTokenString, ok := token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return nil, fmt.Errorf("google response carried no id token: %w", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		s.LogError(ctx, err, "google id token validation failed")
		return nil, fmt.Errorf("validating google id token: %w", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, fmt.Errorf("google id token carried no email: %w", apperrors.ErrUnauthorized)
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("loading account: %w", err)
		}
		user, err = s.provisionGoogleUser(ctx, email, name)
		if err != nil {
			return nil, err
		}
	}
	return s.issueSession(ctx, user)
}

func (s *authService) provisionGoogleUser(ctx context.Context, email, name string) (*domain.User, error) {
	if name == "" {
		name = email
	}
	now := time.Now()
	user := domain.User{
		UserID: uuid.NewString(),
		Name:   name,
		Email:  email,
		Role:   domain.RoleStaff,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     googleActor,
			LastUpdatedAt: now,
			LastUpdatedBy: googleActor,
		},
	}
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("provisioning google account: %w", err)
	}
	s.LogInfo(ctx, "provisioned account from google login", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *authService) issueSession(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to sign session token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("signing session token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}
