package dto

import (
	"time"

	"github.com/GlebRadaev/brewpoints/internal/domain"
)

const DateLayout = "2006-01-02"

type RankInfoDTO struct {
	Rank            string  `json:"rank" example:"Silver"`
	NextRank        *string `json:"next_rank" example:"Gold"`
	ProgressPercent float64 `json:"progress_percent" example:"42.5"`
	PointsToNext    int     `json:"points_to_next" example:"120"`
	DiscountPercent int     `json:"discount_percent" example:"15"`
}

type ProfileResponseDTO struct {
	UserID         string      `json:"user_id" example:"6f1c2f4e-6d3a-4c43-9c7e-2a8d5b1f0c11"`
	Email          string      `json:"email" example:"ana@example.com"`
	FullName       string      `json:"full_name" example:"Ana Lopez"`
	Phone          *string     `json:"phone" example:"+1 555 0100"`
	Birthday       *string     `json:"birthday" example:"1990-05-04"`
	Points         int         `json:"points" example:"85"`
	LifetimePoints int         `json:"lifetime_points" example:"310"`
	Rank           string      `json:"rank" example:"Silver"`
	ReferralCode   string      `json:"referral_code" example:"K7M2QX9A"`
	ReferredBy     *string     `json:"referred_by" example:"ZX8C4V2B"`
	CreatedAt      time.Time   `json:"created_at" example:"2026-01-09T16:09:57Z"`
	RankInfo       RankInfoDTO `json:"rank_info"`
}

type MemberDTO struct {
	UserID         string  `json:"user_id" example:"6f1c2f4e-6d3a-4c43-9c7e-2a8d5b1f0c11"`
	Email          string  `json:"email" example:"ana@example.com"`
	FullName       string  `json:"full_name" example:"Ana Lopez"`
	Phone          *string `json:"phone" example:"+1 555 0100"`
	Points         int     `json:"points" example:"85"`
	LifetimePoints int     `json:"lifetime_points" example:"310"`
	Rank           string  `json:"rank" example:"Silver"`
}

type UpdateProfileRequestDTO struct {
	FullName string  `json:"full_name" validate:"notblank,max=100" example:"Ana Lopez"`
	Phone    *string `json:"phone" validate:"omitempty,max=32" example:"+1 555 0100"`
	Birthday *string `json:"birthday" validate:"omitempty,datetime=2006-01-02" example:"1990-05-04"`
}

type ReferralResponseDTO struct {
	Code          string `json:"code" example:"K7M2QX9A"`
	ReferredCount int    `json:"referred_count" example:"3"`
	PointsEarned  int    `json:"points_earned" example:"45"`
	ReferralBonus int    `json:"referral_bonus" example:"15"`
}

func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ParseDate returns nil for a nil or empty input.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func NewRankInfoDTO(info domain.RankInfo) RankInfoDTO {
	var next *string
	if info.NextRank != nil {
		n := string(*info.NextRank)
		next = &n
	}
	return RankInfoDTO{
		Rank:            string(info.Rank),
		NextRank:        next,
		ProgressPercent: info.ProgressPercent,
		PointsToNext:    info.PointsToNext,
		DiscountPercent: info.DiscountPercent,
	}
}

func NewProfileResponseDTO(view *domain.ProfileView) ProfileResponseDTO {
	return ProfileResponseDTO{
		UserID:         view.UserID.String(),
		Email:          view.Email,
		FullName:       view.FullName,
		Phone:          view.Phone,
		Birthday:       FormatDate(view.Birthday),
		Points:         view.Points,
		LifetimePoints: view.LifetimePoints,
		Rank:           string(view.Rank),
		ReferralCode:   view.ReferralCode,
		ReferredBy:     view.ReferredBy,
		CreatedAt:      view.CreatedAt,
		RankInfo:       NewRankInfoDTO(view.RankInfo),
	}
}

func NewMemberDTOs(profiles []domain.Profile) []MemberDTO {
	members := make([]MemberDTO, 0, len(profiles))
	for _, p := range profiles {
		members = append(members, MemberDTO{
			UserID:         p.UserID.String(),
			Email:          p.Email,
			FullName:       p.FullName,
			Phone:          p.Phone,
			Points:         p.Points,
			LifetimePoints: p.LifetimePoints,
			Rank:           string(p.Rank),
		})
	}
	return members
}
