package analyticsservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/brewpoints/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	service.now = func() time.Time { return time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC) }
	return service, repo
}

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func expectTotals(repo *MockRepo) {
	repo.EXPECT().MemberCount(gomock.Any()).Return(12, nil)
	repo.EXPECT().OutstandingPoints(gomock.Any()).Return(340, nil)
	repo.EXPECT().RedeemedPoints(gomock.Any()).Return(120, nil)
	repo.EXPECT().ActiveRewards(gomock.Any()).Return(4, nil)
	repo.EXPECT().TransactionsByType(gomock.Any()).Return(map[domain.TransactionType]int{
		domain.TransactionEarned:   30,
		domain.TransactionRedeemed: 3,
	}, nil)
	repo.EXPECT().RewardsByCategory(gomock.Any()).Return(map[string]int{"drinks": 3, "merch": 1}, nil)
}

func TestOverview(t *testing.T) {
	service, repo := NewMock(t)

	expectTotals(repo)
	repo.EXPECT().PointsEarnedDaily(gomock.Any(), day(8)).Return([]domain.DailyPoints{
		{Day: day(8), Points: 10},
		{Day: day(10), Points: 6},
	}, nil)

	result, err := service.Overview(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, 12, result.MemberCount)
	assert.Equal(t, 340, result.OutstandingPoints)
	assert.Equal(t, 120, result.RedeemedPoints)
	assert.Equal(t, 4, result.ActiveRewards)
	assert.Equal(t, 30, result.TransactionsByType[domain.TransactionEarned])
	assert.Equal(t, 3, result.RewardsByCategory["drinks"])
	assert.Equal(t, []domain.DailyPoints{
		{Day: day(8), Points: 10},
		{Day: day(9), Points: 0},
		{Day: day(10), Points: 6},
	}, result.PointsEarnedDaily)
}

func TestOverviewDays(t *testing.T) {
	tests := []struct {
		name          string
		days          int
		expectedSince time.Time
		expectedLen   int
	}{
		{name: "Default window", days: 0, expectedSince: day(10).AddDate(0, 0, -29), expectedLen: 30},
		{name: "Capped window", days: 1000, expectedSince: day(10).AddDate(0, 0, -364), expectedLen: 365},
		{name: "Only today", days: 1, expectedSince: day(10), expectedLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			expectTotals(repo)
			repo.EXPECT().PointsEarnedDaily(gomock.Any(), tt.expectedSince).Return(nil, nil)

			result, err := service.Overview(context.Background(), tt.days)
			assert.NoError(t, err)
			assert.Len(t, result.PointsEarnedDaily, tt.expectedLen)
			assert.Equal(t, day(10), result.PointsEarnedDaily[tt.expectedLen-1].Day)
		})
	}
}

func TestOverviewError(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().MemberCount(gomock.Any()).Return(0, errors.New("db error"))
	repo.EXPECT().OutstandingPoints(gomock.Any()).Return(0, nil).AnyTimes()
	repo.EXPECT().RedeemedPoints(gomock.Any()).Return(0, nil).AnyTimes()
	repo.EXPECT().ActiveRewards(gomock.Any()).Return(0, nil).AnyTimes()
	repo.EXPECT().TransactionsByType(gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().RewardsByCategory(gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().PointsEarnedDaily(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	result, err := service.Overview(context.Background(), 7)
	assert.EqualError(t, err, "db error")
	assert.Nil(t, result)
}
