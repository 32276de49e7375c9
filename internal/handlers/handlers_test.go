package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/brewpoints/internal/pg"
	"github.com/GlebRadaev/brewpoints/internal/repo"
	"github.com/GlebRadaev/brewpoints/internal/service"
	"github.com/GlebRadaev/brewpoints/pkg/auth"
	"github.com/GlebRadaev/brewpoints/pkg/ratelimit"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	services := service.New(repo.New(mockDB, pg.NewMockTXManager(ctrl)), jwtService, time.Hour)

	h := New(services, nil, jwtService, ratelimit.New(1, 1))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.MemberHandler)
	assert.NotNil(t, h.AdminHandler)
	assert.NotNil(t, h.RankHandler)
}

func newRouter(t *testing.T, limiter *ratelimit.Limiter) http.Handler {
	ctrl := gomock.NewController(t)

	authHandler := NewMockAuthHandler(ctrl)
	memberHandler := NewMockMemberHandler(ctrl)
	adminHandler := NewMockAdminHandler(ctrl)
	rankHandler := NewMockRankHandler(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	memberHandler.EXPECT().GetProfile(gomock.Any(), gomock.Any()).AnyTimes()
	memberHandler.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).AnyTimes()
	memberHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	memberHandler.EXPECT().GetRewards(gomock.Any(), gomock.Any()).AnyTimes()
	memberHandler.EXPECT().Redeem(gomock.Any(), gomock.Any()).AnyTimes()
	memberHandler.EXPECT().GetRedemptions(gomock.Any(), gomock.Any()).AnyTimes()
	memberHandler.EXPECT().GetReferral(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().SearchUsers(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().AddPoints(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().SetRole(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().ListRewards(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().CreateReward(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().UpdateReward(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().CompleteRedemption(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().GetSettings(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().GetAnalytics(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().RunBirthdaySweep(gomock.Any(), gomock.Any()).AnyTimes()
	rankHandler.EXPECT().GetRank(gomock.Any(), gomock.Any()).AnyTimes()

	memberID := uuid.New().String()
	adminID := uuid.New().String()
	jwtService.EXPECT().ValidateToken("member-token").Return(&auth.Claims{UserID: memberID, Role: "member"}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken("admin-token").Return(&auth.Claims{UserID: adminID, Role: "admin"}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken("bogus").Return(nil, errors.New("token is malformed")).AnyTimes()

	h := &Handlers{
		AuthHandler:   authHandler,
		MemberHandler: memberHandler,
		AdminHandler:  adminHandler,
		RankHandler:   rankHandler,
		jwtService:    jwtService,
		authLimiter:   limiter,
	}
	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

func TestInitRoutes(t *testing.T) {
	router := newRouter(t, nil)
	rewardID := uuid.New().String()
	userID := uuid.New().String()

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{http.MethodPost, "/api/user/register", "", http.StatusOK},
		{http.MethodPost, "/api/user/login", "", http.StatusOK},
		{http.MethodGet, "/api/rank?lifetime_points=10", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},

		{http.MethodGet, "/api/user/profile", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/user/profile", "member-token", http.StatusOK},
		{http.MethodPatch, "/api/user/profile", "member-token", http.StatusOK},
		{http.MethodGet, "/api/user/transactions", "member-token", http.StatusOK},
		{http.MethodGet, "/api/user/rewards", "member-token", http.StatusOK},
		{http.MethodPost, "/api/user/rewards/" + rewardID + "/redeem", "member-token", http.StatusOK},
		{http.MethodGet, "/api/user/redemptions", "member-token", http.StatusOK},
		{http.MethodGet, "/api/user/referral", "member-token", http.StatusOK},
		{http.MethodGet, "/api/user/referral", "bogus", http.StatusUnauthorized},

		{http.MethodGet, "/api/admin/users", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/admin/users", "member-token", http.StatusForbidden},
		{http.MethodGet, "/api/admin/users", "admin-token", http.StatusOK},
		{http.MethodPost, "/api/admin/users/" + userID + "/points", "admin-token", http.StatusOK},
		{http.MethodPut, "/api/admin/users/" + userID + "/role", "admin-token", http.StatusOK},
		{http.MethodGet, "/api/admin/rewards", "admin-token", http.StatusOK},
		{http.MethodPost, "/api/admin/rewards", "admin-token", http.StatusOK},
		{http.MethodPut, "/api/admin/rewards/" + rewardID, "admin-token", http.StatusOK},
		{http.MethodPost, "/api/admin/redemptions/" + rewardID + "/complete", "admin-token", http.StatusOK},
		{http.MethodGet, "/api/admin/settings", "admin-token", http.StatusOK},
		{http.MethodPut, "/api/admin/settings", "admin-token", http.StatusOK},
		{http.MethodPut, "/api/admin/settings", "member-token", http.StatusForbidden},
		{http.MethodGet, "/api/admin/analytics", "admin-token", http.StatusOK},
		{http.MethodPost, "/api/admin/birthday-bonuses", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAuthRateLimit(t *testing.T) {
	router := newRouter(t, ratelimit.New(0.001, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/api/rank?lifetime_points=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
