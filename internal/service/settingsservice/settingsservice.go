package settingsservice

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/pg"
)

//go:generate mockgen -source=settingsservice.go -destination=mock_settingsservice.go -package=settingsservice

type Repo interface {
	GetAll(ctx context.Context) (map[string][]byte, error)
	Upsert(ctx context.Context, key string, value []byte) error
}

type RankRepo interface {
	RecomputeRanks(ctx context.Context, thresholds domain.RankThresholds) (int64, error)
}

type Service struct {
	txManager pg.TXManager
	repo      Repo
	rankRepo  RankRepo
}

func New(txManager pg.TXManager, repo Repo, rankRepo RankRepo) *Service {
	return &Service{
		txManager: txManager,
		repo:      repo,
		rankRepo:  rankRepo,
	}
}

// Get returns the defaults overlaid with every stored value. A stored drink
// table replaces the default one instead of being merged into it.
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	stored, err := s.repo.GetAll(ctx)
	if err != nil {
		zap.L().Error("failed to load settings", zap.Error(err))
		return nil, err
	}

	settings := domain.DefaultSettings()
	targets := map[string]any{
		domain.SettingRankThresholds: &settings.RankThresholds,
		domain.SettingDrinkPoints:    &settings.DrinkPoints,
		domain.SettingRankDiscounts:  &settings.RankDiscounts,
		domain.SettingBonuses:        &settings.Bonuses,
	}
	for key, raw := range stored {
		target, ok := targets[key]
		if !ok {
			continue
		}
		if key == domain.SettingDrinkPoints {
			settings.DrinkPoints = nil
		}
		if err := json.Unmarshal(raw, target); err != nil {
			zap.L().Error("stored setting is malformed", zap.String("key", key), zap.Error(err))
			return nil, fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return &settings, nil
}

// Update validates and stores all settings, then brings every cached rank in
// line with the new thresholds within the same transaction.
func (s *Service) Update(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	values := map[string]any{
		domain.SettingRankThresholds: settings.RankThresholds,
		domain.SettingDrinkPoints:    settings.DrinkPoints,
		domain.SettingRankDiscounts:  settings.RankDiscounts,
		domain.SettingBonuses:        settings.Bonuses,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, key := range []string{
			domain.SettingRankThresholds,
			domain.SettingDrinkPoints,
			domain.SettingRankDiscounts,
			domain.SettingBonuses,
		} {
			raw, err := json.Marshal(values[key])
			if err != nil {
				return err
			}
			if err := s.repo.Upsert(ctx, key, raw); err != nil {
				return err
			}
		}

		changed, err := s.rankRepo.RecomputeRanks(ctx, settings.RankThresholds)
		if err != nil {
			return err
		}
		zap.L().Info("ranks recomputed", zap.Int64("profiles", changed))
		return nil
	})
	if err != nil {
		zap.L().Error("failed to update settings", zap.Error(err))
		return nil, err
	}

	zap.L().Info("loyalty settings updated")
	return &settings, nil
}
