package ledgerservice

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
	txManager       *pg.MockTXManager
	profileRepo     *MockProfileRepo
	transactionRepo *MockTransactionRepo
	settings        *MockSettingsProvider
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		txManager:       pg.NewMockTXManager(ctrl),
		profileRepo:     NewMockProfileRepo(ctrl),
		transactionRepo: NewMockTransactionRepo(ctrl),
		settings:        NewMockSettingsProvider(ctrl),
	}
	service := New(m.txManager, m.profileRepo, m.transactionRepo, m.settings)
	return service, m
}

func (m *mocks) runInTx() {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func defaults() *domain.Settings {
	s := domain.DefaultSettings()
	return &s
}

func TestCredit(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()
	key := "grant-1"
	existingID := uuid.New()

	tests := []struct {
		name            string
		req             domain.CreditRequest
		profile         domain.Profile
		prepareMock     func(profile *domain.Profile)
		expectedBalance int
		expectedRank    domain.Rank
		expectedEntryID *uuid.UUID
		expectedError   error
	}{
		{
			name:    "Credit crosses into Silver",
			req:     domain.CreditRequest{UserID: userID, Amount: 6, Type: domain.TransactionEarned, Description: "Raw Specialty purchase"},
			profile: domain.Profile{UserID: userID, Points: 40, LifetimePoints: 195, Rank: domain.RankBronze},
			prepareMock: func(profile *domain.Profile) {
				m.runInTx()
				m.profileRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(profile, nil)
				m.settings.EXPECT().Get(gomock.Any()).Return(defaults(), nil)
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.TransactionEarned, tx.Type)
						assert.Equal(t, 6, tx.Points)
						return tx, nil
					})
				m.profileRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Profile) error {
						assert.Equal(t, 46, p.Points)
						assert.Equal(t, 201, p.LifetimePoints)
						return nil
					})
			},
			expectedBalance: 46,
			expectedRank:    domain.RankSilver,
		},
		{
			name:          "Zero amount",
			req:           domain.CreditRequest{UserID: userID, Amount: 0, Type: domain.TransactionEarned},
			prepareMock:   func(*domain.Profile) {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Redeemed type cannot be credited",
			req:           domain.CreditRequest{UserID: userID, Amount: 5, Type: domain.TransactionRedeemed},
			prepareMock:   func(*domain.Profile) {},
			expectedError: domain.ErrInvalidTransactionType,
		},
		{
			name: "Missing profile",
			req:  domain.CreditRequest{UserID: userID, Amount: 5, Type: domain.TransactionBonus},
			prepareMock: func(*domain.Profile) {
				m.runInTx()
				m.profileRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(nil, nil)
			},
			expectedError: domain.ErrProfileNotFound,
		},
		{
			name:    "Repeated idempotency key writes nothing",
			req:     domain.CreditRequest{UserID: userID, Amount: 50, Type: domain.TransactionBonus, IdempotencyKey: &key},
			profile: domain.Profile{UserID: userID, Points: 150, LifetimePoints: 150},
			prepareMock: func(profile *domain.Profile) {
				m.runInTx()
				m.profileRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(profile, nil)
				m.transactionRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), key).
					Return(&domain.Transaction{ID: existingID, UserID: userID}, nil)
			},
			expectedBalance: 150,
			expectedEntryID: &existingID,
		},
		{
			name:    "Idempotency key of another member",
			req:     domain.CreditRequest{UserID: userID, Amount: 50, Type: domain.TransactionBonus, IdempotencyKey: &key},
			profile: domain.Profile{UserID: userID},
			prepareMock: func(profile *domain.Profile) {
				m.runInTx()
				m.profileRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(profile, nil)
				m.transactionRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), key).
					Return(&domain.Transaction{ID: existingID, UserID: uuid.New()}, nil)
			},
			expectedError: domain.ErrIdempotencyKeyReused,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := tt.profile
			tt.prepareMock(&profile)

			result, err := service.Credit(context.Background(), tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, result.NewBalance)
			if tt.expectedRank != "" {
				assert.Equal(t, tt.expectedRank, profile.Rank)
			}
			if tt.expectedEntryID != nil {
				assert.Equal(t, *tt.expectedEntryID, result.EntryID)
			}
		})
	}
}

func TestDebit(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name            string
		amount          int
		profile         domain.Profile
		prepareMock     func(profile *domain.Profile)
		expectedBalance int
		expectedError   error
	}{
		{
			name:    "Debit keeps lifetime and rank",
			amount:  60,
			profile: domain.Profile{UserID: userID, Points: 100, LifetimePoints: 600, Rank: domain.RankGold},
			prepareMock: func(profile *domain.Profile) {
				m.runInTx()
				m.profileRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(profile, nil)
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.TransactionRedeemed, tx.Type)
						assert.Equal(t, "Redeemed: Free Pastry", tx.Description)
						return tx, nil
					})
				m.profileRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Profile) error {
						assert.Equal(t, 40, p.Points)
						assert.Equal(t, 600, p.LifetimePoints)
						assert.Equal(t, domain.RankGold, p.Rank)
						return nil
					})
			},
			expectedBalance: 40,
		},
		{
			name:    "Exact balance reaches zero",
			amount:  100,
			profile: domain.Profile{UserID: userID, Points: 100, LifetimePoints: 100},
			prepareMock: func(profile *domain.Profile) {
				m.runInTx()
				m.profileRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(profile, nil)
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil)
				m.profileRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedBalance: 0,
		},
		{
			name:    "Insufficient points writes nothing",
			amount:  101,
			profile: domain.Profile{UserID: userID, Points: 100},
			prepareMock: func(profile *domain.Profile) {
				m.runInTx()
				m.profileRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(profile, nil)
			},
			expectedError: domain.ErrInsufficientPoints,
		},
		{
			name:          "Negative amount",
			amount:        -5,
			prepareMock:   func(*domain.Profile) {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:    "Ledger write fails",
			amount:  10,
			profile: domain.Profile{UserID: userID, Points: 100},
			prepareMock: func(profile *domain.Profile) {
				m.runInTx()
				m.profileRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(profile, nil)
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := tt.profile
			tt.prepareMock(&profile)

			result, err := service.Debit(context.Background(), userID, tt.amount, "Redeemed: Free Pastry")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, result.NewBalance)
		})
	}
}

func TestEarnForDrink(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()

	t.Run("Known drink", func(t *testing.T) {
		m.settings.EXPECT().Get(gomock.Any()).Return(defaults(), nil).Times(2)
		m.runInTx()
		m.profileRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Profile{UserID: userID}, nil)
		m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, 5, tx.Points)
				assert.Equal(t, "Raw Signature purchase", tx.Description)
				assert.Equal(t, "Raw Signature", *tx.DrinkType)
				return tx, nil
			})
		m.profileRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(nil)

		result, err := service.EarnForDrink(context.Background(), userID, "Raw Signature", nil)
		assert.NoError(t, err)
		assert.Equal(t, 5, result.NewBalance)
	})

	t.Run("Unknown drink", func(t *testing.T) {
		m.settings.EXPECT().Get(gomock.Any()).Return(defaults(), nil)

		result, err := service.EarnForDrink(context.Background(), userID, "Espresso Tonic", nil)
		assert.ErrorIs(t, err, domain.ErrUnknownDrink)
		assert.Nil(t, result)
	})
}

func TestEarnForAmount(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name           string
		dollars        float64
		expectedPoints int
		expectedDesc   string
		expectedError  error
	}{
		{name: "Floors to whole dollars", dollars: 12.99, expectedPoints: 12, expectedDesc: "$12.99 purchase"},
		{name: "Exact dollar", dollars: 1, expectedPoints: 1, expectedDesc: "$1.00 purchase"},
		{name: "Below one dollar", dollars: 0.99, expectedError: domain.ErrInvalidAmount},
		{name: "Zero", dollars: 0, expectedError: domain.ErrInvalidAmount},
		{name: "Negative", dollars: -3, expectedError: domain.ErrInvalidAmount},
		{name: "Largest purchase", dollars: MaxPurchaseDollars, expectedPoints: 10000, expectedDesc: "$10000.00 purchase"},
		{name: "Above largest purchase", dollars: MaxPurchaseDollars + 0.01, expectedError: domain.ErrInvalidAmount},
		{name: "Column overflow", dollars: 1e8, expectedError: domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectedError == nil {
				m.runInTx()
				m.profileRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Profile{UserID: userID}, nil)
				m.settings.EXPECT().Get(gomock.Any()).Return(defaults(), nil)
				m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, tt.expectedPoints, tx.Points)
						assert.Equal(t, tt.expectedDesc, tx.Description)
						assert.Equal(t, tt.dollars, *tx.AmountSpent)
						return tx, nil
					})
				m.profileRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(nil)
			}

			result, err := service.EarnForAmount(context.Background(), userID, tt.dollars, nil)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPoints, result.NewBalance)
		})
	}
}

func TestHistory(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()
	entries := []domain.Transaction{{ID: uuid.New(), UserID: userID, Points: 5}}

	m.transactionRepo.EXPECT().ListByUserID(gomock.Any(), userID, defaultHistoryLimit, 0).Return(entries, nil)
	m.transactionRepo.EXPECT().ListByUserID(gomock.Any(), userID, maxHistoryLimit, 10).Return(nil, errors.New("db error"))

	result, err := service.History(context.Background(), userID, 0, -1)
	assert.NoError(t, err)
	assert.Equal(t, entries, result)

	result, err = service.History(context.Background(), userID, 10000, 10)
	assert.Error(t, err)
	assert.Nil(t, result)
}
