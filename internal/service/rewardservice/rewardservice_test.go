package rewardservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/pg"
)

type mocks struct {
	txManager      *pg.MockTXManager
	rewardRepo     *MockRewardRepo
	redemptionRepo *MockRedemptionRepo
	ledger         *MockLedger
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		txManager:      pg.NewMockTXManager(ctrl),
		rewardRepo:     NewMockRewardRepo(ctrl),
		redemptionRepo: NewMockRedemptionRepo(ctrl),
		ledger:         NewMockLedger(ctrl),
	}
	return New(m.txManager, m.rewardRepo, m.redemptionRepo, m.ledger), m
}

func (m *mocks) runInTx() {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func intPtr(v int) *int { return &v }

func TestRedeem(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()
	rewardID := uuid.New()
	entryID := uuid.New()

	tests := []struct {
		name            string
		prepareMock     func()
		expectedBalance int
		expectedError   error
	}{
		{
			name: "Unlimited reward redeemed",
			prepareMock: func() {
				m.runInTx()
				m.rewardRepo.EXPECT().GetForUpdate(gomock.Any(), rewardID).
					Return(&domain.Reward{ID: rewardID, Name: "Free Pastry", PointsRequired: 60, Active: true}, nil)
				m.ledger.EXPECT().Debit(gomock.Any(), userID, 60, "Redeemed: Free Pastry").
					Return(&domain.LedgerResult{NewBalance: 40, EntryID: entryID}, nil)
				m.redemptionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.Redemption) (*domain.Redemption, error) {
						assert.Equal(t, entryID, r.TransactionID)
						assert.Equal(t, 60, r.PointsSpent)
						assert.Equal(t, domain.RedemptionPending, r.Status)
						return r, nil
					})
			},
			expectedBalance: 40,
		},
		{
			name: "Limited reward decrements stock",
			prepareMock: func() {
				m.runInTx()
				m.rewardRepo.EXPECT().GetForUpdate(gomock.Any(), rewardID).
					Return(&domain.Reward{ID: rewardID, Name: "Mug", PointsRequired: 150, Active: true, QuantityAvailable: intPtr(2)}, nil)
				m.ledger.EXPECT().Debit(gomock.Any(), userID, 150, "Redeemed: Mug").
					Return(&domain.LedgerResult{NewBalance: 10, EntryID: entryID}, nil)
				m.redemptionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Redemption{}, nil)
				m.rewardRepo.EXPECT().DecrementStock(gomock.Any(), rewardID).Return(nil)
			},
			expectedBalance: 10,
		},
		{
			name: "Reward not found",
			prepareMock: func() {
				m.runInTx()
				m.rewardRepo.EXPECT().GetForUpdate(gomock.Any(), rewardID).Return(nil, nil)
			},
			expectedError: domain.ErrRewardNotFound,
		},
		{
			name: "Inactive reward",
			prepareMock: func() {
				m.runInTx()
				m.rewardRepo.EXPECT().GetForUpdate(gomock.Any(), rewardID).
					Return(&domain.Reward{ID: rewardID, PointsRequired: 60, Active: false}, nil)
			},
			expectedError: domain.ErrRewardInactive,
		},
		{
			name: "Out of stock writes nothing",
			prepareMock: func() {
				m.runInTx()
				m.rewardRepo.EXPECT().GetForUpdate(gomock.Any(), rewardID).
					Return(&domain.Reward{ID: rewardID, PointsRequired: 60, Active: true, QuantityAvailable: intPtr(0)}, nil)
			},
			expectedError: domain.ErrRewardOutOfStock,
		},
		{
			name: "Insufficient points",
			prepareMock: func() {
				m.runInTx()
				m.rewardRepo.EXPECT().GetForUpdate(gomock.Any(), rewardID).
					Return(&domain.Reward{ID: rewardID, Name: "Free Drink", PointsRequired: 100, Active: true}, nil)
				m.ledger.EXPECT().Debit(gomock.Any(), userID, 100, "Redeemed: Free Drink").
					Return(nil, domain.ErrInsufficientPoints)
			},
			expectedError: domain.ErrInsufficientPoints,
		},
		{
			name: "Redemption insert fails",
			prepareMock: func() {
				m.runInTx()
				m.rewardRepo.EXPECT().GetForUpdate(gomock.Any(), rewardID).
					Return(&domain.Reward{ID: rewardID, Name: "Free Drink", PointsRequired: 100, Active: true}, nil)
				m.ledger.EXPECT().Debit(gomock.Any(), userID, 100, "Redeemed: Free Drink").
					Return(&domain.LedgerResult{NewBalance: 0, EntryID: entryID}, nil)
				m.redemptionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.Redeem(context.Background(), userID, rewardID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, result.NewBalance)
			assert.NotEqual(t, uuid.Nil, result.RedemptionID)
		})
	}
}

func TestCreateReward(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		reward        domain.Reward
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Valid reward",
			reward: domain.Reward{Name: "  Free Drink ", Category: "drinks", PointsRequired: 100, Active: true},
			prepareMock: func() {
				m.rewardRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.Reward) (*domain.Reward, error) {
						assert.Equal(t, "Free Drink", r.Name)
						assert.NotEqual(t, uuid.Nil, r.ID)
						return r, nil
					})
			},
		},
		{
			name:          "Missing name",
			reward:        domain.Reward{Category: "drinks", PointsRequired: 100},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidReward,
		},
		{
			name:          "Zero points",
			reward:        domain.Reward{Name: "Free Drink", Category: "drinks"},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidReward,
		},
		{
			name:          "Negative stock",
			reward:        domain.Reward{Name: "Mug", Category: "merch", PointsRequired: 150, QuantityAvailable: intPtr(-1)},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidReward,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			reward := tt.reward
			result, err := service.CreateReward(context.Background(), &reward)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}

func TestUpdateReward(t *testing.T) {
	service, m := NewMock(t)
	reward := domain.Reward{ID: uuid.New(), Name: "Free Drink", Category: "drinks", PointsRequired: 120}

	m.rewardRepo.EXPECT().Update(gomock.Any(), &reward).Return(nil, nil)

	result, err := service.UpdateReward(context.Background(), &reward)
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
	assert.Nil(t, result)
}

func TestGetReward(t *testing.T) {
	service, m := NewMock(t)
	id := uuid.New()
	reward := &domain.Reward{ID: id, Name: "Free Drink"}

	m.rewardRepo.EXPECT().GetByID(gomock.Any(), id).Return(reward, nil)
	m.rewardRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

	result, err := service.GetReward(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, reward, result)

	_, err = service.GetReward(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
}

func TestListActive(t *testing.T) {
	service, m := NewMock(t)
	rewards := []domain.Reward{{ID: uuid.New(), Name: "Free Drink", Active: true}}

	m.rewardRepo.EXPECT().ListActive(gomock.Any()).Return(rewards, nil)
	m.rewardRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db error"))

	result, err := service.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, rewards, result)

	_, err = service.ListAll(context.Background())
	assert.Error(t, err)
}

func TestCompleteRedemption(t *testing.T) {
	service, m := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Pending redemption completed",
			prepareMock: func() {
				m.runInTx()
				m.redemptionRepo.EXPECT().GetForUpdate(gomock.Any(), id).
					Return(&domain.Redemption{ID: id, Status: domain.RedemptionPending}, nil)
				m.redemptionRepo.EXPECT().Complete(gomock.Any(), id).
					Return(&domain.Redemption{ID: id, Status: domain.RedemptionCompleted}, nil)
			},
		},
		{
			name: "Unknown redemption",
			prepareMock: func() {
				m.runInTx()
				m.redemptionRepo.EXPECT().GetForUpdate(gomock.Any(), id).Return(nil, nil)
			},
			expectedError: domain.ErrRedemptionNotFound,
		},
		{
			name: "Already completed",
			prepareMock: func() {
				m.runInTx()
				m.redemptionRepo.EXPECT().GetForUpdate(gomock.Any(), id).
					Return(&domain.Redemption{ID: id, Status: domain.RedemptionCompleted}, nil)
			},
			expectedError: domain.ErrRedemptionCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.CompleteRedemption(context.Background(), id)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.RedemptionCompleted, result.Status)
		})
	}
}
