package rewardrepo

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

var columns = []string{
	"id", "name", "description", "points_required", "category", "image_url", "quantity_available", "active", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func sampleReward() domain.Reward {
	now := time.Now()
	qty := 3
	return domain.Reward{
		ID:                uuid.New(),
		Name:              "Free Pastry",
		Description:       "Any pastry from the counter",
		PointsRequired:    60,
		Category:          "food",
		QuantityAvailable: &qty,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func rewardRow(rows *pgxmock.Rows, r domain.Reward) *pgxmock.Rows {
	return rows.AddRow(r.ID, r.Name, r.Description, r.PointsRequired, r.Category,
		r.ImageURL, r.QuantityAvailable, r.Active, r.CreatedAt, r.UpdatedAt)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	reward := sampleReward()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rewards")).
		WithArgs(reward.ID, reward.Name, reward.Description, reward.PointsRequired, reward.Category,
			reward.ImageURL, reward.QuantityAvailable, reward.Active).
		WillReturnRows(rewardRow(pgxmock.NewRows(columns), reward))

	result, err := repo.Create(context.Background(), &reward)
	assert.NoError(t, err)
	assert.Equal(t, &reward, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	reward := sampleReward()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Reward
	}{
		{
			name: "Reward updated",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE rewards")).
					WithArgs(reward.Name, reward.Description, reward.PointsRequired, reward.Category,
						reward.ImageURL, reward.QuantityAvailable, reward.Active, reward.ID).
					WillReturnRows(rewardRow(pgxmock.NewRows(columns), reward))
			},
			result: &reward,
		},
		{
			name: "Reward not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE rewards")).
					WithArgs(reward.Name, reward.Description, reward.PointsRequired, reward.Category,
						reward.ImageURL, reward.QuantityAvailable, reward.Active, reward.ID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE rewards")).
					WithArgs(reward.Name, reward.Description, reward.PointsRequired, reward.Category,
						reward.ImageURL, reward.QuantityAvailable, reward.Active, reward.ID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Update(context.Background(), &reward)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	reward := sampleReward()

	mock.ExpectQuery(regexp.QuoteMeta("FROM rewards WHERE id = $1 FOR UPDATE")).
		WithArgs(reward.ID).
		WillReturnRows(rewardRow(pgxmock.NewRows(columns), reward))

	result, err := repo.GetForUpdate(context.Background(), reward.ID)
	assert.NoError(t, err)
	assert.Equal(t, &reward, result)
}

func TestRepository_ListActive(t *testing.T) {
	repo, mock := NewMock(t)
	first := sampleReward()
	second := sampleReward()
	second.Name = "Free Drink"
	second.PointsRequired = 100
	second.QuantityAvailable = nil

	rows := pgxmock.NewRows(columns)
	rewardRow(rows, first)
	rewardRow(rows, second)
	mock.ExpectQuery(regexp.QuoteMeta("FROM rewards WHERE active")).WillReturnRows(rows)

	result, err := repo.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.Reward{first, second}, result)
}

func TestRepository_ListAll(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY active DESC")).WillReturnError(errors.New("database error"))

	result, err := repo.ListAll(context.Background())
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRepository_DecrementStock(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET quantity_available = quantity_available - 1")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.DecrementStock(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
