// Package ledgerservice owns every change to a member's balance. Each change
// appends an immutable ledger entry and updates the cached balance, lifetime
// points and rank under the profile row lock.
package ledgerservice

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/metrics"
	"github.com/GlebRadaev/brewpoints/internal/pg"
	"github.com/GlebRadaev/brewpoints/internal/rank"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500

	// MaxPurchaseDollars bounds a single purchase credited by amount.
	MaxPurchaseDollars = 10000
)

type ProfileRepo interface {
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpdateBalance(ctx context.Context, profile *domain.Profile) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type Service struct {
	txManager       pg.TXManager
	profileRepo     ProfileRepo
	transactionRepo TransactionRepo
	settings        SettingsProvider
}

func New(txManager pg.TXManager, profileRepo ProfileRepo, transactionRepo TransactionRepo, settings SettingsProvider) *Service {
	return &Service{
		txManager:       txManager,
		profileRepo:     profileRepo,
		transactionRepo: transactionRepo,
		settings:        settings,
	}
}

func (s *Service) lockProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

// Credit appends an earning entry and raises both the spendable balance and
// lifetime points. A repeated idempotency key returns the original entry
// without writing anything.
func (s *Service) Credit(ctx context.Context, req domain.CreditRequest) (*domain.LedgerResult, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !req.Type.Creditable() {
		return nil, domain.ErrInvalidTransactionType
	}

	var result *domain.LedgerResult
	replayed := false
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.lockProfile(ctx, req.UserID)
		if err != nil {
			return err
		}

		if req.IdempotencyKey != nil {
			existing, err := s.transactionRepo.FindByIdempotencyKey(ctx, *req.IdempotencyKey)
			if err != nil {
				return err
			}
			if existing != nil {
				if existing.UserID != req.UserID {
					return domain.ErrIdempotencyKeyReused
				}
				replayed = true
				result = &domain.LedgerResult{NewBalance: profile.Points, EntryID: existing.ID}
				return nil
			}
		}

		// Thresholds are read after the lock so a concurrent settings update
		// either sees this credit or is seen by it.
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return err
		}

		entry := &domain.Transaction{
			ID:             uuid.New(),
			UserID:         req.UserID,
			Type:           req.Type,
			Points:         req.Amount,
			Description:    req.Description,
			DrinkType:      req.DrinkType,
			AmountSpent:    req.AmountSpent,
			IdempotencyKey: req.IdempotencyKey,
		}
		if _, err := s.transactionRepo.Create(ctx, entry); err != nil {
			return err
		}

		profile.Points += req.Amount
		profile.LifetimePoints += req.Amount
		profile.Rank = rank.FromSettings(*settings).RankOf(profile.LifetimePoints)
		if err := s.profileRepo.UpdateBalance(ctx, profile); err != nil {
			return err
		}

		result = &domain.LedgerResult{NewBalance: profile.Points, EntryID: entry.ID}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to credit points",
			zap.String("userID", req.UserID.String()),
			zap.Int("amount", req.Amount),
			zap.Error(err),
		)
		return nil, err
	}

	if !replayed {
		balance := result.NewBalance
		pg.AfterCommit(ctx, func() {
			metrics.PointsCredited(string(req.Type), req.Amount)
			zap.L().Info("points credited",
				zap.String("userID", req.UserID.String()),
				zap.String("type", string(req.Type)),
				zap.Int("amount", req.Amount),
				zap.Int("balance", balance),
			)
		})
	}
	return result, nil
}

// Debit spends points. Lifetime points and rank never go down.
func (s *Service) Debit(ctx context.Context, userID uuid.UUID, amount int, description string) (*domain.LedgerResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var result *domain.LedgerResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.lockProfile(ctx, userID)
		if err != nil {
			return err
		}
		if profile.Points < amount {
			return domain.ErrInsufficientPoints
		}

		entry := &domain.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        domain.TransactionRedeemed,
			Points:      amount,
			Description: description,
		}
		if _, err := s.transactionRepo.Create(ctx, entry); err != nil {
			return err
		}

		profile.Points -= amount
		if err := s.profileRepo.UpdateBalance(ctx, profile); err != nil {
			return err
		}

		result = &domain.LedgerResult{NewBalance: profile.Points, EntryID: entry.ID}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to debit points",
			zap.String("userID", userID.String()),
			zap.Int("amount", amount),
			zap.Error(err),
		)
		return nil, err
	}

	pg.AfterCommit(ctx, func() { metrics.PointsDebited(amount) })
	return result, nil
}

// EarnForDrink credits the points configured for a drink.
func (s *Service) EarnForDrink(ctx context.Context, userID uuid.UUID, drink string, idempotencyKey *string) (*domain.LedgerResult, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	points, ok := settings.DrinkPoints[drink]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDrink, drink)
	}

	return s.Credit(ctx, domain.CreditRequest{
		UserID:         userID,
		Amount:         points,
		Type:           domain.TransactionEarned,
		Description:    drink + " purchase",
		DrinkType:      &drink,
		IdempotencyKey: idempotencyKey,
	})
}

// EarnForAmount credits one point per whole dollar spent.
func (s *Service) EarnForAmount(ctx context.Context, userID uuid.UUID, dollars float64, idempotencyKey *string) (*domain.LedgerResult, error) {
	if math.IsNaN(dollars) || math.IsInf(dollars, 0) || dollars <= 0 || dollars > MaxPurchaseDollars {
		return nil, domain.ErrInvalidAmount
	}
	points := int(math.Floor(dollars))
	if points <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	return s.Credit(ctx, domain.CreditRequest{
		UserID:         userID,
		Amount:         points,
		Type:           domain.TransactionEarned,
		Description:    fmt.Sprintf("$%.2f purchase", dollars),
		AmountSpent:    &dollars,
		IdempotencyKey: idempotencyKey,
	})
}

// History returns the member's entries newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)
	offset = max(offset, 0)

	transactions, err := s.transactionRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
