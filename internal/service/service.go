package service

import (
	"time"

	"github.com/GlebRadaev/brewpoints/internal/repo"
	"github.com/GlebRadaev/brewpoints/internal/service/analyticsservice"
	"github.com/GlebRadaev/brewpoints/internal/service/authservice"
	"github.com/GlebRadaev/brewpoints/internal/service/ledgerservice"
	"github.com/GlebRadaev/brewpoints/internal/service/profileservice"
	"github.com/GlebRadaev/brewpoints/internal/service/referralservice"
	"github.com/GlebRadaev/brewpoints/internal/service/rewardservice"
	"github.com/GlebRadaev/brewpoints/internal/service/settingsservice"
	"github.com/GlebRadaev/brewpoints/pkg/auth"
)

type Services struct {
	AuthService      *authservice.Service
	LedgerService    *ledgerservice.Service
	RewardService    *rewardservice.Service
	ReferralService  *referralservice.Service
	ProfileService   *profileservice.Service
	SettingsService  *settingsservice.Service
	AnalyticsService *analyticsservice.Service
}

func New(repos *repo.Repositories, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	settingsService := settingsservice.New(repos.TxManager, repos.SettingsRepo, repos.ProfileRepo)
	ledgerService := ledgerservice.New(repos.TxManager, repos.ProfileRepo, repos.TransactionRepo, settingsService)
	rewardService := rewardservice.New(repos.TxManager, repos.RewardRepo, repos.RedemptionRepo, ledgerService)
	referralService := referralservice.New(repos.TxManager, repos.ProfileRepo, repos.TransactionRepo, ledgerService, settingsService)
	profileService := profileservice.New(repos.ProfileRepo, repos.UserRepo, settingsService)
	analyticsService := analyticsservice.New(repos.AnalyticsRepo)
	authService := authservice.New(
		repos.TxManager,
		repos.UserRepo,
		repos.ProfileRepo,
		referralService,
		&auth.HashService{},
		jwtService,
		tokenTTL,
	)

	return &Services{
		AuthService:      authService,
		LedgerService:    ledgerService,
		RewardService:    rewardService,
		ReferralService:  referralService,
		ProfileService:   profileService,
		SettingsService:  settingsService,
		AnalyticsService: analyticsService,
	}
}
