package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

type Rank string

const (
	RankBronze Rank = "Bronze"
	RankSilver Rank = "Silver"
	RankGold   Rank = "Gold"
)

type TransactionType string

const (
	TransactionEarned   TransactionType = "earned"
	TransactionRedeemed TransactionType = "redeemed"
	TransactionBonus    TransactionType = "bonus"
	TransactionReferral TransactionType = "referral"
)

// Creditable reports whether entries of this type add points.
func (t TransactionType) Creditable() bool {
	return t == TransactionEarned || t == TransactionBonus || t == TransactionReferral
}

type RedemptionStatus string

const (
	RedemptionPending   RedemptionStatus = "pending"
	RedemptionCompleted RedemptionStatus = "completed"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// Profile is the per-member loyalty state. Points, LifetimePoints and Rank are
// only changed by the ledger.
type Profile struct {
	UserID            uuid.UUID  `db:"user_id"`
	Email             string     `db:"email"`
	FullName          string     `db:"full_name"`
	Phone             *string    `db:"phone"`
	Birthday          *time.Time `db:"birthday"`
	Points            int        `db:"points"`
	LifetimePoints    int        `db:"lifetime_points"`
	Rank              Rank       `db:"rank"`
	ReferralCode      string     `db:"referral_code"`
	ReferredBy        *string    `db:"referred_by"`
	BirthdayBonusYear *int       `db:"birthday_bonus_year"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// Transaction is an immutable ledger entry. Points is always positive; the
// direction is given by Type.
type Transaction struct {
	ID             uuid.UUID       `db:"id"`
	UserID         uuid.UUID       `db:"user_id"`
	Type           TransactionType `db:"type"`
	Points         int             `db:"points"`
	Description    string          `db:"description"`
	DrinkType      *string         `db:"drink_type"`
	AmountSpent    *float64        `db:"amount_spent"`
	IdempotencyKey *string         `db:"idempotency_key"`
	CreatedAt      time.Time       `db:"created_at"`
}

type Reward struct {
	ID                uuid.UUID `db:"id"`
	Name              string    `db:"name"`
	Description       string    `db:"description"`
	PointsRequired    int       `db:"points_required"`
	Category          string    `db:"category"`
	ImageURL          *string   `db:"image_url"`
	QuantityAvailable *int      `db:"quantity_available"`
	Active            bool      `db:"active"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type Redemption struct {
	ID            uuid.UUID        `db:"id"`
	UserID        uuid.UUID        `db:"user_id"`
	RewardID      uuid.UUID        `db:"reward_id"`
	TransactionID uuid.UUID        `db:"transaction_id"`
	PointsSpent   int              `db:"points_spent"`
	Status        RedemptionStatus `db:"status"`
	RedeemedAt    time.Time        `db:"redeemed_at"`
	CompletedAt   *time.Time       `db:"completed_at"`
}

// CreditRequest describes a points credit. DrinkType, AmountSpent and
// IdempotencyKey are optional.
type CreditRequest struct {
	UserID         uuid.UUID
	Amount         int
	Type           TransactionType
	Description    string
	DrinkType      *string
	AmountSpent    *float64
	IdempotencyKey *string
}

type LedgerResult struct {
	NewBalance int
	EntryID    uuid.UUID
}

type RedeemResult struct {
	NewBalance   int
	RedemptionID uuid.UUID
}

type RankInfo struct {
	Rank            Rank
	NextRank        *Rank
	ProgressPercent float64
	PointsToNext    int
	DiscountPercent int
}

type ProfileView struct {
	Profile
	RankInfo RankInfo
}

type ReferralSummary struct {
	Code          string
	ReferredCount int
	PointsEarned  int
	ReferralBonus int
}

type DailyPoints struct {
	Day    time.Time
	Points int
}

type Analytics struct {
	MemberCount        int
	OutstandingPoints  int
	RedeemedPoints     int
	TransactionsByType map[TransactionType]int
	ActiveRewards      int
	RewardsByCategory  map[string]int
	PointsEarnedDaily  []DailyPoints
}
