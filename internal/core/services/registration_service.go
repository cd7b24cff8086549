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
	"github.com/google/uuid"
)

type registrationService struct {
	cfg        *config.Config
	userRepo   portsrepo.UserRepository
	inviteRepo portsrepo.InviteRepository
}

// NewRegistrationService creates the invite and registration service.
func NewRegistrationService(cfg *config.Config, userRepo portsrepo.UserRepository, inviteRepo portsrepo.InviteRepository) portssvc.RegistrationSvcFacade {
	return &registrationService{cfg: cfg, userRepo: userRepo, inviteRepo: inviteRepo}
}

var _ portssvc.RegistrationSvcFacade = (*registrationService)(nil)

func (s *registrationService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	invite, err := s.inviteRepo.FindInviteByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invite token unknown", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to look up invite token: %w", err)
	}
	if !invite.Usable(time.Now()) {
		// A used token reports as used even when it has also expired.
		if invite.IsUsed {
			return nil, fmt.Errorf("%w: invite token already used", apperrors.ErrConflict)
		}
		return nil, apperrors.ErrTokenExpired
	}

	// Pre-checks give precise errors; the unique constraints and the
	// transactional token consumption remain the real guard.
	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("%w: username", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   hash,
		FullName:       req.FullName,
		Role:           invite.Role, // the token decides, not the request
		Specialization: req.Specialization,
		Phone:          req.Phone,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}

	if err := s.inviteRepo.RegisterUser(ctx, user, req.Token); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return &user, nil
}

func (s *registrationService) CreateInvite(ctx context.Context, issuer domain.Identity, req dto.CreateInviteRequest) (*domain.InviteToken, error) {
	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleDoctor
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	token, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite token: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.InviteValidityDuration)
	invite := domain.InviteToken{
		InviteID:  uuid.NewString(),
		Token:     token,
		CreatedBy: issuer.UserID,
		Email:     req.Email,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: &expiresAt,
	}

	if err := s.inviteRepo.SaveInvite(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to save invite: %w", err)
	}
	return &invite, nil
}

func (s *registrationService) VerifyInvite(ctx context.Context, token string) (*domain.InviteToken, error) {
	invite, err := s.inviteRepo.FindInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify invite: %w", err)
	}
	if !invite.Usable(time.Now()) {
		if invite.IsUsed {
			return nil, fmt.Errorf("%w: invite token already used", apperrors.ErrConflict)
		}
		return nil, apperrors.ErrTokenExpired
	}
	return invite, nil
}

func (s *registrationService) ListInvites(ctx context.Context) ([]domain.InviteToken, error) {
	invites, err := s.inviteRepo.FindInvites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	return invites, nil
}

func (s *registrationService) DeleteInvite(ctx context.Context, inviteID string) error {
	if err := s.inviteRepo.DeleteInvite(ctx, inviteID); err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
	}
	return nil
}

func (s *registrationService) SetupAdmin(ctx context.Context, req dto.SetupAdminRequest) (*domain.User, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users for admin setup: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: accounts already exist", apperrors.ErrConflict)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   hash,
		FullName:       req.FullName,
		Role:           domain.RoleAdmin,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create first admin: %w", err)
	}
	return &user, nil
}

func (s *registrationService) SeedDefaultAdmin(ctx context.Context, username, email, password, fullName string) (bool, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count users for admin seeding: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// Lost a race against another instance seeding the same account.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("failed to seed default admin: %w", err)
	}
	return true, nil
}
