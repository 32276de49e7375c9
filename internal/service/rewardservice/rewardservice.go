package rewardservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/metrics"
	"github.com/GlebRadaev/brewpoints/internal/pg"
)

//go:generate mockgen -source=rewardservice.go -destination=mock_rewardservice.go -package=rewardservice

type RewardRepo interface {
	Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	Update(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reward, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Reward, error)
	ListActive(ctx context.Context) ([]domain.Reward, error)
	ListAll(ctx context.Context) ([]domain.Reward, error)
	DecrementStock(ctx context.Context, id uuid.UUID) error
}

type RedemptionRepo interface {
	Create(ctx context.Context, redemption *domain.Redemption) (*domain.Redemption, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Redemption, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Redemption, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Redemption, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID uuid.UUID, amount int, description string) (*domain.LedgerResult, error)
}

type Service struct {
	txManager      pg.TXManager
	rewardRepo     RewardRepo
	redemptionRepo RedemptionRepo
	ledger         Ledger
}

func New(txManager pg.TXManager, rewardRepo RewardRepo, redemptionRepo RedemptionRepo, ledger Ledger) *Service {
	return &Service{
		txManager:      txManager,
		rewardRepo:     rewardRepo,
		redemptionRepo: redemptionRepo,
		ledger:         ledger,
	}
}

// Redeem exchanges points for a reward. The reward check, the debit, the
// redemption record and the stock decrement commit together or not at all.
func (s *Service) Redeem(ctx context.Context, userID, rewardID uuid.UUID) (*domain.RedeemResult, error) {
	var result *domain.RedeemResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		reward, err := s.rewardRepo.GetForUpdate(ctx, rewardID)
		if err != nil {
			return err
		}
		switch {
		case reward == nil:
			return domain.ErrRewardNotFound
		case !reward.Active:
			return domain.ErrRewardInactive
		case reward.QuantityAvailable != nil && *reward.QuantityAvailable <= 0:
			return domain.ErrRewardOutOfStock
		}

		debit, err := s.ledger.Debit(ctx, userID, reward.PointsRequired, "Redeemed: "+reward.Name)
		if err != nil {
			return err
		}

		redemption := &domain.Redemption{
			ID:            uuid.New(),
			UserID:        userID,
			RewardID:      reward.ID,
			TransactionID: debit.EntryID,
			PointsSpent:   reward.PointsRequired,
			Status:        domain.RedemptionPending,
		}
		if _, err := s.redemptionRepo.Create(ctx, redemption); err != nil {
			return err
		}

		if reward.QuantityAvailable != nil {
			if err := s.rewardRepo.DecrementStock(ctx, reward.ID); err != nil {
				return err
			}
		}

		result = &domain.RedeemResult{NewBalance: debit.NewBalance, RedemptionID: redemption.ID}
		return nil
	})
	if err != nil {
		metrics.Redemption(redemptionOutcome(err))
		zap.L().Info("redemption rejected",
			zap.String("userID", userID.String()),
			zap.String("rewardID", rewardID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.Redemption("success")
	zap.L().Info("reward redeemed",
		zap.String("userID", userID.String()),
		zap.String("rewardID", rewardID.String()),
		zap.String("redemptionID", result.RedemptionID.String()),
	)
	return result, nil
}

func redemptionOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientPoints):
		return "insufficient_points"
	case errors.Is(err, domain.ErrRewardNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrRewardInactive):
		return "inactive"
	case errors.Is(err, domain.ErrRewardOutOfStock):
		return "out_of_stock"
	default:
		return "error"
	}
}

func validateReward(reward *domain.Reward) error {
	reward.Name = strings.TrimSpace(reward.Name)
	reward.Category = strings.TrimSpace(reward.Category)
	if reward.Name == "" || reward.Category == "" || reward.PointsRequired <= 0 {
		return domain.ErrInvalidReward
	}
	if reward.QuantityAvailable != nil && *reward.QuantityAvailable < 0 {
		return domain.ErrInvalidReward
	}
	return nil
}

func (s *Service) CreateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	if err := validateReward(reward); err != nil {
		return nil, err
	}
	reward.ID = uuid.New()

	created, err := s.rewardRepo.Create(ctx, reward)
	if err != nil {
		zap.L().Error("failed to create reward", zap.Error(err))
		return nil, err
	}
	zap.L().Info("reward created", zap.String("rewardID", created.ID.String()), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) UpdateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	if err := validateReward(reward); err != nil {
		return nil, err
	}

	updated, err := s.rewardRepo.Update(ctx, reward)
	if err != nil {
		zap.L().Error("failed to update reward", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrRewardNotFound
	}
	return updated, nil
}

func (s *Service) GetReward(ctx context.Context, id uuid.UUID) (*domain.Reward, error) {
	reward, err := s.rewardRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get reward", zap.Error(err))
		return nil, err
	}
	if reward == nil {
		return nil, domain.ErrRewardNotFound
	}
	return reward, nil
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Reward, error) {
	rewards, err := s.rewardRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("failed to list active rewards", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Reward, error) {
	rewards, err := s.rewardRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list rewards", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}

func (s *Service) ListRedemptions(ctx context.Context, userID uuid.UUID) ([]domain.Redemption, error) {
	redemptions, err := s.redemptionRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list redemptions", zap.Error(err))
		return nil, err
	}
	return redemptions, nil
}

// CompleteRedemption marks a pending redemption as handed over to the member.
func (s *Service) CompleteRedemption(ctx context.Context, id uuid.UUID) (*domain.Redemption, error) {
	var completed *domain.Redemption
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		redemption, err := s.redemptionRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if redemption == nil {
			return domain.ErrRedemptionNotFound
		}
		if redemption.Status == domain.RedemptionCompleted {
			return domain.ErrRedemptionCompleted
		}
		completed, err = s.redemptionRepo.Complete(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("redemption completed", zap.String("redemptionID", id.String()))
	return completed, nil
}
