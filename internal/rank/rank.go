// Package rank derives a member's tier from lifetime points.
package rank

import (
	"math"

	"github.com/GlebRadaev/brewpoints/internal/domain"
)

// Engine is a pure function of lifetime points; it holds no member state.
type Engine struct {
	thresholds domain.RankThresholds
	discounts  domain.RankDiscounts
}

func New(thresholds domain.RankThresholds, discounts domain.RankDiscounts) Engine {
	return Engine{thresholds: thresholds, discounts: discounts}
}

func FromSettings(s domain.Settings) Engine {
	return New(s.RankThresholds, s.RankDiscounts)
}

// RankOf returns the tier whose interval contains lifetimePoints. Lower bounds
// are inclusive.
func (e Engine) RankOf(lifetimePoints int) domain.Rank {
	switch {
	case lifetimePoints >= e.thresholds.Gold:
		return domain.RankGold
	case lifetimePoints >= e.thresholds.Silver:
		return domain.RankSilver
	default:
		return domain.RankBronze
	}
}

// ProgressToNext returns the percentage of the current tier interval already
// covered, the next tier (nil at Gold) and the points still missing.
func (e Engine) ProgressToNext(lifetimePoints int) (float64, *domain.Rank, int) {
	var currentMin, nextMin int
	var next domain.Rank

	switch e.RankOf(lifetimePoints) {
	case domain.RankGold:
		return 100, nil, 0
	case domain.RankSilver:
		currentMin, nextMin, next = e.thresholds.Silver, e.thresholds.Gold, domain.RankGold
	default:
		currentMin, nextMin, next = 0, e.thresholds.Silver, domain.RankSilver
	}

	percent := float64(lifetimePoints-currentMin) / float64(nextMin-currentMin) * 100
	percent = math.Max(0, math.Min(100, percent))
	return percent, &next, nextMin - lifetimePoints
}

func (e Engine) DiscountOf(r domain.Rank) int {
	switch r {
	case domain.RankGold:
		return e.discounts.Gold
	case domain.RankSilver:
		return e.discounts.Silver
	default:
		return e.discounts.Bronze
	}
}

func (e Engine) Info(lifetimePoints int) domain.RankInfo {
	r := e.RankOf(lifetimePoints)
	percent, next, toNext := e.ProgressToNext(lifetimePoints)
	return domain.RankInfo{
		Rank:            r,
		NextRank:        next,
		ProgressPercent: percent,
		PointsToNext:    toNext,
		DiscountPercent: e.DiscountOf(r),
	}
}
