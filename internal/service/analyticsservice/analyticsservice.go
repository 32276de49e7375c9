package analyticsservice

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/brewpoints/internal/domain"
)

//go:generate mockgen -source=analyticsservice.go -destination=mock_analyticsservice.go -package=analyticsservice

const (
	defaultDays = 30
	maxDays     = 365
)

type Repo interface {
	MemberCount(ctx context.Context) (int, error)
	OutstandingPoints(ctx context.Context) (int, error)
	RedeemedPoints(ctx context.Context) (int, error)
	ActiveRewards(ctx context.Context) (int, error)
	TransactionsByType(ctx context.Context) (map[domain.TransactionType]int, error)
	RewardsByCategory(ctx context.Context) (map[string]int, error)
	PointsEarnedDaily(ctx context.Context, since time.Time) ([]domain.DailyPoints, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Overview aggregates program-wide figures. The daily series covers the last
// days days including today and has one point per UTC day.
func (s *Service) Overview(ctx context.Context, days int) (*domain.Analytics, error) {
	if days <= 0 {
		days = defaultDays
	}
	days = min(days, maxDays)

	today := truncateDay(s.now())
	since := today.AddDate(0, 0, -(days - 1))

	var (
		result domain.Analytics
		daily  []domain.DailyPoints
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.MemberCount, err = s.repo.MemberCount(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.OutstandingPoints, err = s.repo.OutstandingPoints(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.RedeemedPoints, err = s.repo.RedeemedPoints(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.ActiveRewards, err = s.repo.ActiveRewards(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.TransactionsByType, err = s.repo.TransactionsByType(gctx)
		return err
	})
	g.Go(func() (err error) {
		result.RewardsByCategory, err = s.repo.RewardsByCategory(gctx)
		return err
	})
	g.Go(func() (err error) {
		daily, err = s.repo.PointsEarnedDaily(gctx, since)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute analytics", zap.Error(err))
		return nil, err
	}

	result.PointsEarnedDaily = fillDays(daily, since, days)
	return &result, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func fillDays(points []domain.DailyPoints, since time.Time, days int) []domain.DailyPoints {
	byDay := make(map[string]int, len(points))
	for _, p := range points {
		byDay[p.Day.Format(time.DateOnly)] += p.Points
	}
	series := make([]domain.DailyPoints, 0, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i)
		series = append(series, domain.DailyPoints{Day: day, Points: byDay[day.Format(time.DateOnly)]})
	}
	return series
}
