package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portsrepo "github.com/alnahhas/surgery_clinic_app/internal/core/ports/repositories"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/alnahhas/surgery_clinic_app/internal/platform/config"
	"github.com/alnahhas/surgery_clinic_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type authService struct {
	cfg         *config.Config
	userRepo    portsrepo.UserRepository
	sessionRepo portsrepo.SessionRepository
}

// NewAuthService creates the session manager.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, sessionRepo portsrepo.SessionRepository) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo, sessionRepo: sessionRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a wrong password so the caller cannot probe
			// which usernames exist.
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", apperrors.ErrUnauthorized
	}

	if !user.IsActive {
		return nil, "", apperrors.ErrAccountDisabled
	}

	now := time.Now()
	session := domain.Session{
		SessionID: uuid.NewString(),
		UserID:    user.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionDuration),
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, user.UserID, s.cfg.JWTSecret, s.cfg.SessionDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		return nil, "", fmt.Errorf("failed to stamp last login: %w", err)
	}
	user.LastLogin = &now

	return user, token, nil
}

func (s *authService) ResolveSession(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrUnauthorized
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, apperrors.ErrUnauthorized
	}

	session, err := s.sessionRepo.FindSessionByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != claims.Subject || !session.Active(time.Now()) {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}

	return &domain.Identity{
		UserID:    user.UserID,
		Username:  user.Username,
		Role:      user.Role,
		SessionID: session.SessionID,
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.RevokeSession(ctx, sessionID, time.Now()); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return fmt.Errorf("%w: old password mismatch", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
