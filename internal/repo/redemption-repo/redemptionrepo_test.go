package redemptionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/brewpoints/internal/domain"
)

var columns = []string{"id", "user_id", "reward_id", "transaction_id", "points_spent", "status", "redeemed_at", "completed_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func sampleRedemption() domain.Redemption {
	return domain.Redemption{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		RewardID:      uuid.New(),
		TransactionID: uuid.New(),
		PointsSpent:   60,
		Status:        domain.RedemptionPending,
		RedeemedAt:    time.Now(),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	r := sampleRedemption()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Redemption created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO redemptions")).
					WithArgs(r.ID, r.UserID, r.RewardID, r.TransactionID, r.PointsSpent, r.Status).
					WillReturnRows(pgxmock.NewRows([]string{"redeemed_at"}).AddRow(now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO redemptions")).
					WithArgs(r.ID, r.UserID, r.RewardID, r.TransactionID, r.PointsSpent, r.Status).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), &r)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, now, result.RedeemedAt)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	r := sampleRedemption()

	mock.ExpectQuery(regexp.QuoteMeta("FROM redemptions WHERE user_id = $1 ORDER BY redeemed_at DESC")).
		WithArgs(r.UserID).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(r.ID, r.UserID, r.RewardID, r.TransactionID, r.PointsSpent, r.Status, r.RedeemedAt, r.CompletedAt))

	result, err := repo.ListByUserID(context.Background(), r.UserID)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Redemption{r}, result)
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM redemptions WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetForUpdate(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRepository_Complete(t *testing.T) {
	repo, mock := NewMock(t)
	r := sampleRedemption()
	completedAt := time.Now()
	r.Status = domain.RedemptionCompleted
	r.CompletedAt = &completedAt

	mock.ExpectQuery(regexp.QuoteMeta("SET status = $1, completed_at = now()")).
		WithArgs(domain.RedemptionCompleted, r.ID).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(r.ID, r.UserID, r.RewardID, r.TransactionID, r.PointsSpent, r.Status, r.RedeemedAt, r.CompletedAt))

	result, err := repo.Complete(context.Background(), r.ID)
	assert.NoError(t, err)
	assert.Equal(t, &r, result)
}
