// Package birthday grants the yearly birthday bonus to every member whose
// birthday falls on the sweep date.
package birthday

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=birthday.go -destination=mock_birthday.go -package=birthday

type ProfileRepo interface {
	FindBirthdayMembers(ctx context.Context, month time.Month, day int, includeLeapDay bool) ([]uuid.UUID, error)
}

type Granter interface {
	GrantBirthdayBonus(ctx context.Context, userID uuid.UUID, today time.Time) (bool, error)
}

type Service struct {
	profileRepo ProfileRepo
	granter     Granter
	workerPool  WorkerPoolI
	schedule    string
	now         func() time.Time
}

func New(profileRepo ProfileRepo, granter Granter, workers int, schedule string) *Service {
	return &Service{
		profileRepo: profileRepo,
		granter:     granter,
		workerPool:  NewWorkerPool(workers),
		schedule:    schedule,
		now:         time.Now,
	}
}

// Start runs Sweep on the cron schedule until ctx is done.
func (s *Service) Start(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(s.schedule, func() {
		if _, err := s.Sweep(ctx, s.now()); err != nil {
			zap.L().Error("birthday sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid birthday schedule %q: %w", s.schedule, err)
	}
	c.Start()
	zap.L().Info("birthday scheduler started", zap.String("schedule", s.schedule))

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		s.workerPool.Close()
		zap.L().Info("birthday scheduler stopped")
	}()
	return nil
}

// Sweep grants the bonus to everyone celebrating on today and returns how
// many bonuses were granted. Members already paid this year are skipped by the
// granter, so repeated sweeps on one day are harmless.
func (s *Service) Sweep(ctx context.Context, today time.Time) (int, error) {
	members, err := s.profileRepo.FindBirthdayMembers(ctx, today.Month(), today.Day(), leapDayFallback(today))
	if err != nil {
		zap.L().Error("failed to find birthday members", zap.Error(err))
		return 0, err
	}

	var (
		granted atomic.Int64
		wg      sync.WaitGroup
		g       errgroup.Group
	)
	for _, userID := range members {
		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				ok, err := s.granter.GrantBirthdayBonus(ctx, userID, today)
				if err != nil {
					return fmt.Errorf("birthday bonus for %s: %w", userID, err)
				}
				if ok {
					granted.Add(1)
				}
				return nil
			})
			if err != nil {
				wg.Done()
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	wg.Wait()
	if err != nil {
		zap.L().Error("birthday sweep interrupted", zap.Error(err))
		return int(granted.Load()), err
	}

	zap.L().Info("birthday sweep finished",
		zap.Time("date", today),
		zap.Int("candidates", len(members)),
		zap.Int64("granted", granted.Load()),
	)
	return int(granted.Load()), nil
}

// leapDayFallback reports whether 29 February birthdays are celebrated on
// today, which is the case on 28 February of common years.
func leapDayFallback(today time.Time) bool {
	if today.Month() != time.February || today.Day() != 28 {
		return false
	}
	return time.Date(today.Year(), time.February, 29, 0, 0, 0, 0, time.UTC).Day() != 29
}
