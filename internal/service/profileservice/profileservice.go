package profileservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/rank"
)

//go:generate mockgen -source=profileservice.go -destination=mock_profileservice.go -package=profileservice

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 200
)

type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpdateDetails(ctx context.Context, userID uuid.UUID, fullName string, phone *string, birthday *time.Time) (*domain.Profile, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Profile, error)
}

type UserRepo interface {
	SetRole(ctx context.Context, id uuid.UUID, role domain.Role) (bool, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// DetailsInput holds the only profile fields a member may edit.
type DetailsInput struct {
	FullName string
	Phone    *string
	Birthday *time.Time
}

type Service struct {
	profileRepo ProfileRepo
	userRepo    UserRepo
	settings    SettingsProvider
	now         func() time.Time
}

func New(profileRepo ProfileRepo, userRepo UserRepo, settings SettingsProvider) *Service {
	return &Service{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		settings:    settings,
		now:         time.Now,
	}
}

func (s *Service) view(ctx context.Context, profile *domain.Profile) (*domain.ProfileView, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ProfileView{
		Profile:  *profile,
		RankInfo: rank.FromSettings(*settings).Info(profile.LifetimePoints),
	}, nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*domain.ProfileView, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return s.view(ctx, profile)
}

func (s *Service) UpdateDetails(ctx context.Context, userID uuid.UUID, input DetailsInput) (*domain.ProfileView, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, domain.ErrInvalidDetails
	}
	if input.Birthday != nil && input.Birthday.After(s.now()) {
		return nil, domain.ErrInvalidDetails
	}
	phone := input.Phone
	if phone != nil {
		trimmed := strings.TrimSpace(*phone)
		phone = &trimmed
		if trimmed == "" {
			phone = nil
		}
	}

	profile, err := s.profileRepo.UpdateDetails(ctx, userID, fullName, phone, input.Birthday)
	if err != nil {
		zap.L().Error("failed to update profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return s.view(ctx, profile)
}

func (s *Service) Search(ctx context.Context, query string, limit int) ([]domain.Profile, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	limit = min(limit, maxSearchLimit)

	profiles, err := s.profileRepo.Search(ctx, strings.TrimSpace(query), limit)
	if err != nil {
		zap.L().Error("failed to search profiles", zap.Error(err))
		return nil, err
	}
	return profiles, nil
}

// SetRole grants or revokes administrator access.
func (s *Service) SetRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}
	updated, err := s.userRepo.SetRole(ctx, userID, role)
	if err != nil {
		zap.L().Error("failed to set role", zap.Error(err))
		return err
	}
	if !updated {
		return domain.ErrProfileNotFound
	}
	zap.L().Info("role changed", zap.String("userID", userID.String()), zap.String("role", string(role)))
	return nil
}

// RankInfo evaluates the rank rules for an arbitrary lifetime total.
func (s *Service) RankInfo(ctx context.Context, lifetimePoints int) (*domain.RankInfo, error) {
	if lifetimePoints < 0 {
		return nil, domain.ErrInvalidAmount
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	info := rank.FromSettings(*settings).Info(lifetimePoints)
	return &info, nil
}
