package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/dto"
	"github.com/GlebRadaev/brewpoints/pkg/utils"
)

type mocks struct {
	profile   *MockProfileService
	ledger    *MockLedgerService
	reward    *MockRewardService
	settings  *MockSettingsService
	analytics *MockAnalyticsService
	birthday  *MockBirthdaySweeper
}

var fixedNow = time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*AdminHandler, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		profile:   NewMockProfileService(ctrl),
		ledger:    NewMockLedgerService(ctrl),
		reward:    NewMockRewardService(ctrl),
		settings:  NewMockSettingsService(ctrl),
		analytics: NewMockAnalyticsService(ctrl),
		birthday:  NewMockBirthdaySweeper(ctrl),
	}
	h := New(m.profile, m.ledger, m.reward, m.settings, m.analytics, m.birthday)
	h.now = func() time.Time { return fixedNow }
	return h, m
}

func newRequest(method, target, body, id string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	if id == "" {
		return req
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	var resp utils.Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Error
}

func TestSearchUsers(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Search with query",
			target: "/api/admin/users?q=ana&limit=5",
			prepareMock: func() {
				m.profile.EXPECT().Search(gomock.Any(), "ana", 5).
					Return([]domain.Profile{{UserID: uuid.New(), FullName: "Ana", Rank: domain.RankGold}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad limit",
			target:       "/api/admin/users?limit=-3",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Service error",
			target: "/api/admin/users",
			prepareMock: func() {
				m.profile.EXPECT().Search(gomock.Any(), "", 0).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.SearchUsers(rr, newRequest(http.MethodGet, tt.target, "", ""))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAddPoints(t *testing.T) {
	handler, m := NewMock(t)
	userID := uuid.New()
	entryID := uuid.New()
	key := "pos-42"

	tests := []struct {
		name          string
		id            string
		key           string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Drink purchase with idempotency key",
			id:   userID.String(),
			key:  key,
			body: `{"drink":"Raw Signature"}`,
			prepareMock: func() {
				m.ledger.EXPECT().EarnForDrink(gomock.Any(), userID, "Raw Signature", &key).
					Return(&domain.LedgerResult{NewBalance: 90, EntryID: entryID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Dollar amount",
			id:   userID.String(),
			body: `{"amount":12.75}`,
			prepareMock: func() {
				m.ledger.EXPECT().EarnForAmount(gomock.Any(), userID, 12.75, nil).
					Return(&domain.LedgerResult{NewBalance: 97, EntryID: entryID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown drink",
			id:   userID.String(),
			body: `{"drink":"Mocha"}`,
			prepareMock: func() {
				m.ledger.EXPECT().EarnForDrink(gomock.Any(), userID, "Mocha", nil).
					Return(nil, fmt.Errorf("%w: Mocha", domain.ErrUnknownDrink))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "unknown drink: Mocha",
		},
		{
			name:          "Both drink and amount",
			id:            userID.String(),
			body:          `{"drink":"Raw Signature","amount":3}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "drink cannot be combined with Amount",
		},
		{
			name:          "Amount above a single purchase",
			id:            userID.String(),
			body:          `{"amount":100000000}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount must be at most 10000",
		},
		{
			name:          "Neither drink nor amount",
			id:            userID.String(),
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "drink is required when Amount is missing",
		},
		{
			name:          "Invalid user id",
			id:            "42",
			body:          `{"drink":"Raw Signature"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid user id",
		},
		{
			name: "Key reused by another member",
			id:   userID.String(),
			key:  key,
			body: `{"amount":5}`,
			prepareMock: func() {
				m.ledger.EXPECT().EarnForAmount(gomock.Any(), userID, 5.0, &key).Return(nil, domain.ErrIdempotencyKeyReused)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "idempotency key belongs to another member",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := newRequest(http.MethodPost, "/api/admin/users/"+tt.id+"/points", tt.body, tt.id)
			if tt.key != "" {
				req.Header.Set(IdempotencyKeyHeader, tt.key)
			}
			rr := httptest.NewRecorder()
			handler.AddPoints(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
				return
			}
			var resp dto.LedgerResultDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, entryID.String(), resp.EntryID)
		})
	}
}

func TestSetRole(t *testing.T) {
	handler, m := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Promote",
			body: `{"role":"admin"}`,
			prepareMock: func() {
				m.profile.EXPECT().SetRole(gomock.Any(), userID, domain.RoleAdmin).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Unknown role",
			body:         `{"role":"barista"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown member",
			body: `{"role":"member"}`,
			prepareMock: func() {
				m.profile.EXPECT().SetRole(gomock.Any(), userID, domain.RoleMember).Return(domain.ErrProfileNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.SetRole(rr, newRequest(http.MethodPut, "/api/admin/users/"+userID.String()+"/role", tt.body, userID.String()))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRewards(t *testing.T) {
	handler, m := NewMock(t)
	rewardID := uuid.New()
	qty := 10

	t.Run("List all", func(t *testing.T) {
		m.reward.EXPECT().ListAll(gomock.Any()).Return([]domain.Reward{{ID: rewardID, Name: "Mug", Active: false}}, nil)
		rr := httptest.NewRecorder()
		handler.ListRewards(rr, newRequest(http.MethodGet, "/api/admin/rewards", "", ""))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Create defaults to active", func(t *testing.T) {
		m.reward.EXPECT().CreateReward(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domain.Reward) (*domain.Reward, error) {
				assert.True(t, r.Active)
				assert.Equal(t, &qty, r.QuantityAvailable)
				r.ID = rewardID
				return r, nil
			})
		rr := httptest.NewRecorder()
		body := `{"name":"Mug","category":"merch","points_required":120,"quantity_available":10}`
		handler.CreateReward(rr, newRequest(http.MethodPost, "/api/admin/rewards", body, ""))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp dto.RewardResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, rewardID.String(), resp.ID)
	})

	t.Run("Create rejects zero points", func(t *testing.T) {
		rr := httptest.NewRecorder()
		body := `{"name":"Mug","category":"merch","points_required":0}`
		handler.CreateReward(rr, newRequest(http.MethodPost, "/api/admin/rewards", body, ""))
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Update missing reward", func(t *testing.T) {
		m.reward.EXPECT().UpdateReward(gomock.Any(), gomock.Any()).Return(nil, domain.ErrRewardNotFound)
		rr := httptest.NewRecorder()
		body := `{"name":"Mug","category":"merch","points_required":100,"active":false}`
		handler.UpdateReward(rr, newRequest(http.MethodPut, "/api/admin/rewards/"+rewardID.String(), body, rewardID.String()))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCompleteRedemption(t *testing.T) {
	handler, m := NewMock(t)
	redemptionID := uuid.New()
	completedAt := fixedNow

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Completed",
			prepareMock: func() {
				m.reward.EXPECT().CompleteRedemption(gomock.Any(), redemptionID).Return(&domain.Redemption{
					ID:          redemptionID,
					Status:      domain.RedemptionCompleted,
					CompletedAt: &completedAt,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already completed",
			prepareMock: func() {
				m.reward.EXPECT().CompleteRedemption(gomock.Any(), redemptionID).Return(nil, domain.ErrRedemptionCompleted)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			target := "/api/admin/redemptions/" + redemptionID.String() + "/complete"
			handler.CompleteRedemption(rr, newRequest(http.MethodPost, target, "", redemptionID.String()))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestSettings(t *testing.T) {
	handler, m := NewMock(t)
	defaults := domain.DefaultSettings()

	t.Run("Get", func(t *testing.T) {
		m.settings.EXPECT().Get(gomock.Any()).Return(&defaults, nil)
		rr := httptest.NewRecorder()
		handler.GetSettings(rr, newRequest(http.MethodGet, "/api/admin/settings", "", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.SettingsDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 550, resp.RankThresholds.Gold)
		assert.Equal(t, 5, resp.DrinkPoints["Raw Signature"])
	})

	t.Run("Update", func(t *testing.T) {
		body := `{"rank_thresholds":{"Silver":300,"Gold":800},"drink_points":{"Latte":4},` +
			`"rank_discounts":{"Bronze":5,"Silver":10,"Gold":20},"bonuses":{"referral":15,"welcome":10,"birthday":20}}`
		expected := domain.Settings{
			RankThresholds: domain.RankThresholds{Silver: 300, Gold: 800},
			DrinkPoints:    map[string]int{"Latte": 4},
			RankDiscounts:  domain.RankDiscounts{Bronze: 5, Silver: 10, Gold: 20},
			Bonuses:        domain.Bonuses{Referral: 15, Welcome: 10, Birthday: 20},
		}
		m.settings.EXPECT().Update(gomock.Any(), expected).Return(&expected, nil)
		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, newRequest(http.MethodPut, "/api/admin/settings", body, ""))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Update with a zero point drink", func(t *testing.T) {
		body := `{"rank_thresholds":{"Silver":300,"Gold":800},"drink_points":{"Latte":0}}`
		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, newRequest(http.MethodPut, "/api/admin/settings", body, ""))
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Update rejected by service", func(t *testing.T) {
		body := `{"rank_thresholds":{"Silver":900,"Gold":800},"drink_points":{"Latte":4}}`
		m.settings.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidSettings)
		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, newRequest(http.MethodPut, "/api/admin/settings", body, ""))
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, "invalid settings", decodeError(t, rr))
	})
}

func TestGetAnalytics(t *testing.T) {
	handler, m := NewMock(t)

	m.analytics.EXPECT().Overview(gomock.Any(), 7).Return(&domain.Analytics{
		MemberCount:        3,
		TransactionsByType: map[domain.TransactionType]int{domain.TransactionEarned: 4},
		PointsEarnedDaily:  []domain.DailyPoints{{Day: time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC), Points: 9}},
	}, nil)

	rr := httptest.NewRecorder()
	handler.GetAnalytics(rr, newRequest(http.MethodGet, "/api/admin/analytics?days=7", "", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.AnalyticsResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 3, resp.MemberCount)
	assert.Equal(t, 4, resp.TransactionsByType["earned"])
	assert.Equal(t, []dto.DailyPointsDTO{{Day: "2026-05-04", Points: 9}}, resp.PointsEarnedDaily)

	rr = httptest.NewRecorder()
	handler.GetAnalytics(rr, newRequest(http.MethodGet, "/api/admin/analytics?days=week", "", ""))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRunBirthdaySweep(t *testing.T) {
	handler, m := NewMock(t)
	explicit := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		target          string
		prepareMock     func()
		expectedCode    int
		expectedDate    string
		expectedGranted int
	}{
		{
			name:   "Today by default",
			target: "/api/admin/birthday-bonuses",
			prepareMock: func() {
				m.birthday.EXPECT().Sweep(gomock.Any(), fixedNow).Return(2, nil)
			},
			expectedCode:    http.StatusOK,
			expectedDate:    "2026-05-04",
			expectedGranted: 2,
		},
		{
			name:   "Explicit date",
			target: "/api/admin/birthday-bonuses?date=2026-02-28",
			prepareMock: func() {
				m.birthday.EXPECT().Sweep(gomock.Any(), explicit).Return(0, nil)
			},
			expectedCode: http.StatusOK,
			expectedDate: "2026-02-28",
		},
		{
			name:         "Bad date",
			target:       "/api/admin/birthday-bonuses?date=tomorrow",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Earlier year",
			target:       "/api/admin/birthday-bonuses?date=2025-05-04",
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Later year",
			target:       "/api/admin/birthday-bonuses?date=2027-05-04",
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.RunBirthdaySweep(rr, newRequest(http.MethodPost, tt.target, "", ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var resp dto.BirthdaySweepResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedDate, resp.Date)
			assert.Equal(t, tt.expectedGranted, resp.Granted)
		})
	}
}
