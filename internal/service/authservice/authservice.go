package authservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/pg"
	"github.com/GlebRadaev/brewpoints/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.Role) (bool, error)
}

type ProfileRepo interface {
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

type ReferralService interface {
	IssueCode(ctx context.Context, userID uuid.UUID) (string, error)
	GrantWelcomeBonus(ctx context.Context, userID uuid.UUID) (*domain.LedgerResult, error)
	ApplyReferral(ctx context.Context, newUserID uuid.UUID, code string) error
}

type RegisterInput struct {
	Email        string
	Password     string
	FullName     string
	Phone        *string
	Birthday     *time.Time
	ReferralCode *string
}

type Service struct {
	txManager   pg.TXManager
	userRepo    Repo
	profileRepo ProfileRepo
	referral    ReferralService
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(
	txManager pg.TXManager,
	repo Repo,
	profileRepo ProfileRepo,
	referral ReferralService,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		txManager:   txManager,
		userRepo:    repo,
		profileRepo: profileRepo,
		referral:    referral,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account, its profile with a fresh referral code, the
// welcome bonus and the optional referral in one transaction. A bad referral
// code fails the whole signup.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(input.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.RoleMember,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}

		code, err := s.referral.IssueCode(ctx, user.ID)
		if err != nil {
			return err
		}

		profile := &domain.Profile{
			UserID:       user.ID,
			Email:        email,
			FullName:     strings.TrimSpace(input.FullName),
			Phone:        input.Phone,
			Birthday:     input.Birthday,
			Rank:         domain.RankBronze,
			ReferralCode: code,
		}
		if _, err := s.profileRepo.Create(ctx, profile); err != nil {
			return err
		}

		if _, err := s.referral.GrantWelcomeBonus(ctx, user.ID); err != nil {
			return err
		}

		if input.ReferralCode != nil && strings.TrimSpace(*input.ReferralCode) != "" {
			if err := s.referral.ApplyReferral(ctx, user.ID, *input.ReferralCode); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't register user: ", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email), zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, string(user.Role), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// EnsureAdmin promotes the account registered under email. It is a no-op when
// email is empty or nobody has registered with it yet.
func (s *Service) EnsureAdmin(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		zap.L().Warn("admin account not registered yet", zap.String("email", email))
		return nil
	}
	if user.Role == domain.RoleAdmin {
		return nil
	}

	if _, err := s.userRepo.SetRole(ctx, user.ID, domain.RoleAdmin); err != nil {
		return err
	}
	zap.L().Info("admin role granted", zap.String("email", email))
	return nil
}
