package repo

import (
	"github.com/GlebRadaev/brewpoints/internal/pg"
	analyticsrepo "github.com/GlebRadaev/brewpoints/internal/repo/analytics-repo"
	profilerepo "github.com/GlebRadaev/brewpoints/internal/repo/profile-repo"
	redemptionrepo "github.com/GlebRadaev/brewpoints/internal/repo/redemption-repo"
	rewardrepo "github.com/GlebRadaev/brewpoints/internal/repo/reward-repo"
	settingsrepo "github.com/GlebRadaev/brewpoints/internal/repo/settings-repo"
	transactionrepo "github.com/GlebRadaev/brewpoints/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/brewpoints/internal/repo/user-repo"
)

type Repositories struct {
	TxManager       pg.TXManager
	UserRepo        *userrepo.Repository
	ProfileRepo     *profilerepo.Repository
	TransactionRepo *transactionrepo.Repository
	RewardRepo      *rewardrepo.Repository
	RedemptionRepo  *redemptionrepo.Repository
	SettingsRepo    *settingsrepo.Repository
	AnalyticsRepo   *analyticsrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TxManager:       txManager,
		UserRepo:        userrepo.New(conn),
		ProfileRepo:     profilerepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		RewardRepo:      rewardrepo.New(conn),
		RedemptionRepo:  redemptionrepo.New(conn),
		SettingsRepo:    settingsrepo.New(conn),
		AnalyticsRepo:   analyticsrepo.New(conn),
	}
}
