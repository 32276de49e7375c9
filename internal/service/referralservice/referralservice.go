package referralservice

import (
	"context"
	"crypto/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/metrics"
	"github.com/GlebRadaev/brewpoints/internal/pg"
)

//go:generate mockgen -source=referralservice.go -destination=mock_referralservice.go -package=referralservice

const (
	// codeAlphabet has 32 symbols and leaves out 0, 1, I and O.
	codeAlphabet     = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength       = 8
	maxCodeAttempts  = 10
	referralBonusMsg = "Referral bonus"
	welcomeBonusMsg  = "Welcome bonus"
	birthdayBonusMsg = "Birthday bonus"
)

type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Profile, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
	SetReferredBy(ctx context.Context, userID uuid.UUID, code string) (bool, error)
	SetBirthdayBonusYear(ctx context.Context, userID uuid.UUID, year int) error
	CountReferredBy(ctx context.Context, code string) (int, error)
}

type TransactionRepo interface {
	SumByUserAndType(ctx context.Context, userID uuid.UUID, txType domain.TransactionType) (int, error)
}

type Ledger interface {
	Credit(ctx context.Context, req domain.CreditRequest) (*domain.LedgerResult, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type Service struct {
	txManager       pg.TXManager
	profileRepo     ProfileRepo
	transactionRepo TransactionRepo
	ledger          Ledger
	settings        SettingsProvider
	newCode         func() (string, error)
}

func New(txManager pg.TXManager, profileRepo ProfileRepo, transactionRepo TransactionRepo, ledger Ledger, settings SettingsProvider) *Service {
	return &Service{
		txManager:       txManager,
		profileRepo:     profileRepo,
		transactionRepo: transactionRepo,
		ledger:          ledger,
		settings:        settings,
		newCode:         generateCode,
	}
}

func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// NormalizeCode is applied to every code a member types in.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IssueCode draws codes until one is not owned by any profile. The unique
// constraint on profiles still guards the insert that follows.
func (s *Service) IssueCode(ctx context.Context, userID uuid.UUID) (string, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return "", err
		}
		exists, err := s.profileRepo.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		zap.L().Warn("referral code collision", zap.Int("attempt", attempt))
	}

	metrics.CodeGenerationExhausted()
	zap.L().Error("referral code generation exhausted",
		zap.String("userID", userID.String()),
		zap.Int("attempts", maxCodeAttempts),
	)
	return "", domain.ErrCodeGenerationExhausted
}

// ApplyReferral links a new member to the owner of code and credits the
// owner. The new member receives nothing for being referred.
func (s *Service) ApplyReferral(ctx context.Context, newUserID uuid.UUID, code string) error {
	code = NormalizeCode(code)
	if code == "" {
		return domain.ErrInvalidReferralCode
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		referrer, err := s.profileRepo.FindByReferralCode(ctx, code)
		if err != nil {
			return err
		}
		if referrer == nil {
			return domain.ErrInvalidReferralCode
		}
		if referrer.UserID == newUserID {
			return domain.ErrSelfReferral
		}

		profile, err := s.profileRepo.GetForUpdate(ctx, newUserID)
		if err != nil {
			return err
		}
		if profile == nil {
			return domain.ErrProfileNotFound
		}
		if profile.ReferredBy != nil {
			return domain.ErrAlreadyReferred
		}
		set, err := s.profileRepo.SetReferredBy(ctx, newUserID, code)
		if err != nil {
			return err
		}
		if !set {
			return domain.ErrAlreadyReferred
		}

		settings, err := s.settings.Get(ctx)
		if err != nil {
			return err
		}
		if settings.Bonuses.Referral > 0 {
			_, err = s.ledger.Credit(ctx, domain.CreditRequest{
				UserID:      referrer.UserID,
				Amount:      settings.Bonuses.Referral,
				Type:        domain.TransactionReferral,
				Description: referralBonusMsg,
			})
			if err != nil {
				return err
			}
		}

		zap.L().Info("referral applied",
			zap.String("referrerID", referrer.UserID.String()),
			zap.String("userID", newUserID.String()),
		)
		return nil
	})
}

// GrantWelcomeBonus returns nil when the welcome bonus is configured as zero.
func (s *Service) GrantWelcomeBonus(ctx context.Context, userID uuid.UUID) (*domain.LedgerResult, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings.Bonuses.Welcome <= 0 {
		return nil, nil
	}
	return s.ledger.Credit(ctx, domain.CreditRequest{
		UserID:      userID,
		Amount:      settings.Bonuses.Welcome,
		Type:        domain.TransactionBonus,
		Description: welcomeBonusMsg,
	})
}

// IsBirthday reports whether today is the member's birthday. Members born on
// 29 February celebrate on 28 February in non-leap years.
func IsBirthday(birthday, today time.Time) bool {
	if birthday.Month() == today.Month() && birthday.Day() == today.Day() {
		return true
	}
	return birthday.Month() == time.February && birthday.Day() == 29 &&
		today.Month() == time.February && today.Day() == 28 && !isLeap(today.Year())
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// GrantBirthdayBonus credits the birthday bonus at most once per calendar
// year. It reports whether a bonus was granted.
func (s *Service) GrantBirthdayBonus(ctx context.Context, userID uuid.UUID, today time.Time) (bool, error) {
	granted := false
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.profileRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if profile == nil {
			return domain.ErrProfileNotFound
		}
		if profile.Birthday == nil || !IsBirthday(*profile.Birthday, today) {
			return nil
		}
		// The stored year only moves forward, so an earlier-dated sweep cannot
		// pay a year twice.
		if profile.BirthdayBonusYear != nil && *profile.BirthdayBonusYear >= today.Year() {
			return nil
		}

		settings, err := s.settings.Get(ctx)
		if err != nil {
			return err
		}
		if settings.Bonuses.Birthday > 0 {
			_, err = s.ledger.Credit(ctx, domain.CreditRequest{
				UserID:      userID,
				Amount:      settings.Bonuses.Birthday,
				Type:        domain.TransactionBonus,
				Description: birthdayBonusMsg,
			})
			if err != nil {
				return err
			}
		}
		if err := s.profileRepo.SetBirthdayBonusYear(ctx, userID, today.Year()); err != nil {
			return err
		}
		granted = true
		return nil
	})
	if err != nil {
		zap.L().Error("failed to grant birthday bonus", zap.String("userID", userID.String()), zap.Error(err))
		return false, err
	}
	if granted {
		metrics.BirthdayBonusGranted()
		zap.L().Info("birthday bonus granted", zap.String("userID", userID.String()))
	}
	return granted, nil
}

func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (*domain.ReferralSummary, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	count, err := s.profileRepo.CountReferredBy(ctx, profile.ReferralCode)
	if err != nil {
		return nil, err
	}
	earned, err := s.transactionRepo.SumByUserAndType(ctx, userID, domain.TransactionReferral)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.ReferralSummary{
		Code:          profile.ReferralCode,
		ReferredCount: count,
		PointsEarned:  earned,
		ReferralBonus: settings.Bonuses.Referral,
	}, nil
}
