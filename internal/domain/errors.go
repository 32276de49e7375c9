package domain

import "errors"

var (
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidTransactionType  = errors.New("invalid transaction type")
	ErrUnknownDrink            = errors.New("unknown drink")
	ErrInsufficientPoints      = errors.New("insufficient points")
	ErrRewardInactive          = errors.New("reward is inactive")
	ErrRewardNotFound          = errors.New("reward not found")
	ErrRewardOutOfStock        = errors.New("reward is out of stock")
	ErrInvalidReward           = errors.New("invalid reward")
	ErrRedemptionNotFound      = errors.New("redemption not found")
	ErrRedemptionCompleted     = errors.New("redemption already completed")
	ErrInvalidReferralCode     = errors.New("invalid referral code")
	ErrSelfReferral            = errors.New("self referral is not allowed")
	ErrAlreadyReferred         = errors.New("referral already applied")
	ErrCodeGenerationExhausted = errors.New("referral code generation exhausted")
	ErrProfileNotFound         = errors.New("profile not found")
	ErrConcurrencyConflict     = errors.New("concurrency conflict")
	ErrEmailTaken              = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidRole             = errors.New("invalid role")
	ErrInvalidSettings         = errors.New("invalid settings")
	ErrInvalidDetails          = errors.New("invalid profile details")
	ErrIdempotencyKeyReused    = errors.New("idempotency key belongs to another member")
)
