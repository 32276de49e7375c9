package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/brewpoints/internal/domain"
)

type RewardResponseDTO struct {
	ID                string  `json:"id" example:"9b1e6a7d-0c55-4b0b-8a5d-0e2f3c4d5e6f"`
	Name              string  `json:"name" example:"Free Raw Signature"`
	Description       string  `json:"description" example:"Any size"`
	PointsRequired    int     `json:"points_required" example:"60"`
	Category          string  `json:"category" example:"drinks"`
	ImageURL          *string `json:"image_url" example:"https://cdn.example.com/raw.png"`
	QuantityAvailable *int    `json:"quantity_available" example:"25"`
	Active            bool    `json:"active" example:"true"`
}

type RewardRequestDTO struct {
	Name              string  `json:"name" validate:"notblank,max=100" example:"Free Raw Signature"`
	Description       string  `json:"description" validate:"max=500" example:"Any size"`
	PointsRequired    int     `json:"points_required" validate:"gt=0" example:"60"`
	Category          string  `json:"category" validate:"notblank,max=50" example:"drinks"`
	ImageURL          *string `json:"image_url" validate:"omitempty,url" example:"https://cdn.example.com/raw.png"`
	QuantityAvailable *int    `json:"quantity_available" validate:"omitempty,gte=0" example:"25"`
	Active            *bool   `json:"active" example:"true"`
}

type RedemptionResponseDTO struct {
	ID          string     `json:"id" example:"3a2b1c0d-9e8f-4a7b-8c6d-5e4f3a2b1c0d"`
	RewardID    string     `json:"reward_id" example:"9b1e6a7d-0c55-4b0b-8a5d-0e2f3c4d5e6f"`
	PointsSpent int        `json:"points_spent" example:"60"`
	Status      string     `json:"status" example:"pending"`
	RedeemedAt  time.Time  `json:"redeemed_at" example:"2026-01-09T16:09:57Z"`
	CompletedAt *time.Time `json:"completed_at" example:"2026-01-09T16:20:00Z"`
}

type RedeemResponseDTO struct {
	NewBalance   int    `json:"new_balance" example:"25"`
	RedemptionID string `json:"redemption_id" example:"3a2b1c0d-9e8f-4a7b-8c6d-5e4f3a2b1c0d"`
}

// ToDomain builds a reward for id. Active defaults to true.
func (r RewardRequestDTO) ToDomain(id uuid.UUID) *domain.Reward {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.Reward{
		ID:                id,
		Name:              r.Name,
		Description:       r.Description,
		PointsRequired:    r.PointsRequired,
		Category:          r.Category,
		ImageURL:          r.ImageURL,
		QuantityAvailable: r.QuantityAvailable,
		Active:            active,
	}
}

func NewRewardDTO(r *domain.Reward) RewardResponseDTO {
	return RewardResponseDTO{
		ID:                r.ID.String(),
		Name:              r.Name,
		Description:       r.Description,
		PointsRequired:    r.PointsRequired,
		Category:          r.Category,
		ImageURL:          r.ImageURL,
		QuantityAvailable: r.QuantityAvailable,
		Active:            r.Active,
	}
}

func NewRewardDTOs(rewards []domain.Reward) []RewardResponseDTO {
	result := make([]RewardResponseDTO, 0, len(rewards))
	for i := range rewards {
		result = append(result, NewRewardDTO(&rewards[i]))
	}
	return result
}

func NewRedemptionDTO(r *domain.Redemption) RedemptionResponseDTO {
	return RedemptionResponseDTO{
		ID:          r.ID.String(),
		RewardID:    r.RewardID.String(),
		PointsSpent: r.PointsSpent,
		Status:      string(r.Status),
		RedeemedAt:  r.RedeemedAt,
		CompletedAt: r.CompletedAt,
	}
}

func NewRedemptionDTOs(redemptions []domain.Redemption) []RedemptionResponseDTO {
	result := make([]RedemptionResponseDTO, 0, len(redemptions))
	for i := range redemptions {
		result = append(result, NewRedemptionDTO(&redemptions[i]))
	}
	return result
}
