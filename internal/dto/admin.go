package dto

import (
	"time"

	"github.com/GlebRadaev/brewpoints/internal/domain"
)

type SetRoleRequestDTO struct {
	Role string `json:"role" validate:"required,oneof=member admin" example:"admin"`
}

type SettingsDTO struct {
	RankThresholds domain.RankThresholds `json:"rank_thresholds"`
	DrinkPoints    map[string]int        `json:"drink_points" validate:"required,min=1,dive,keys,notblank,endkeys,gt=0"`
	RankDiscounts  domain.RankDiscounts  `json:"rank_discounts"`
	Bonuses        domain.Bonuses        `json:"bonuses"`
}

type DailyPointsDTO struct {
	Day    string `json:"day" example:"2026-01-09"`
	Points int    `json:"points" example:"42"`
}

type AnalyticsResponseDTO struct {
	MemberCount        int              `json:"member_count" example:"120"`
	OutstandingPoints  int              `json:"outstanding_points" example:"5400"`
	RedeemedPoints     int              `json:"redeemed_points" example:"1800"`
	TransactionsByType map[string]int   `json:"transactions_by_type"`
	ActiveRewards      int              `json:"active_rewards" example:"6"`
	RewardsByCategory  map[string]int   `json:"rewards_by_category"`
	PointsEarnedDaily  []DailyPointsDTO `json:"points_earned_daily"`
}

type BirthdaySweepResponseDTO struct {
	Date    string `json:"date" example:"2026-05-04"`
	Granted int    `json:"granted" example:"3"`
}

func NewSettingsDTO(s *domain.Settings) SettingsDTO {
	return SettingsDTO{
		RankThresholds: s.RankThresholds,
		DrinkPoints:    s.DrinkPoints,
		RankDiscounts:  s.RankDiscounts,
		Bonuses:        s.Bonuses,
	}
}

func (s SettingsDTO) ToDomain() domain.Settings {
	return domain.Settings{
		RankThresholds: s.RankThresholds,
		DrinkPoints:    s.DrinkPoints,
		RankDiscounts:  s.RankDiscounts,
		Bonuses:        s.Bonuses,
	}
}

func NewAnalyticsDTO(a *domain.Analytics) AnalyticsResponseDTO {
	byType := make(map[string]int, len(a.TransactionsByType))
	for t, n := range a.TransactionsByType {
		byType[string(t)] = n
	}
	daily := make([]DailyPointsDTO, 0, len(a.PointsEarnedDaily))
	for _, p := range a.PointsEarnedDaily {
		daily = append(daily, DailyPointsDTO{Day: p.Day.Format(DateLayout), Points: p.Points})
	}
	categories := a.RewardsByCategory
	if categories == nil {
		categories = map[string]int{}
	}
	return AnalyticsResponseDTO{
		MemberCount:        a.MemberCount,
		OutstandingPoints:  a.OutstandingPoints,
		RedeemedPoints:     a.RedeemedPoints,
		TransactionsByType: byType,
		ActiveRewards:      a.ActiveRewards,
		RewardsByCategory:  categories,
		PointsEarnedDaily:  daily,
	}
}

func NewBirthdaySweepDTO(day time.Time, granted int) BirthdaySweepResponseDTO {
	return BirthdaySweepResponseDTO{Date: day.Format(DateLayout), Granted: granted}
}
