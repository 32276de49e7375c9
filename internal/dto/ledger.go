package dto

import (
	"time"

	"github.com/GlebRadaev/brewpoints/internal/domain"
)

type TransactionResponseDTO struct {
	ID          string    `json:"id" example:"0d7f1b7a-3c1e-4f4b-9a55-3f7f5d2b9e01"`
	Type        string    `json:"type" example:"earned"`
	Points      int       `json:"points" example:"5"`
	Description string    `json:"description" example:"Raw Signature purchase"`
	DrinkType   *string   `json:"drink_type,omitempty" example:"Raw Signature"`
	AmountSpent *float64  `json:"amount_spent,omitempty" example:"12.5"`
	CreatedAt   time.Time `json:"created_at" example:"2026-01-09T16:09:57Z"`
}

// AddPointsRequestDTO credits either a known drink or a dollar amount.
type AddPointsRequestDTO struct {
	Drink  *string  `json:"drink" validate:"required_without=Amount,excluded_with=Amount" example:"Raw Signature"`
	Amount *float64 `json:"amount" validate:"omitempty,gt=0,lte=10000" example:"12.5"`
}

type LedgerResultDTO struct {
	NewBalance int    `json:"new_balance" example:"90"`
	EntryID    string `json:"entry_id" example:"0d7f1b7a-3c1e-4f4b-9a55-3f7f5d2b9e01"`
}

func NewTransactionDTOs(txs []domain.Transaction) []TransactionResponseDTO {
	result := make([]TransactionResponseDTO, 0, len(txs))
	for _, tx := range txs {
		result = append(result, TransactionResponseDTO{
			ID:          tx.ID.String(),
			Type:        string(tx.Type),
			Points:      tx.Points,
			Description: tx.Description,
			DrinkType:   tx.DrinkType,
			AmountSpent: tx.AmountSpent,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return result
}
