package rewardrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/pg"
)

const rewardColumns = `id, name, description, points_required, category, image_url, quantity_available, active, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReward(row scanner) (*domain.Reward, error) {
	var reward domain.Reward
	err := row.Scan(
		&reward.ID, &reward.Name, &reward.Description, &reward.PointsRequired, &reward.Category,
		&reward.ImageURL, &reward.QuantityAvailable, &reward.Active, &reward.CreatedAt, &reward.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

func (repo *Repository) getOne(ctx context.Context, query string, args ...any) (*domain.Reward, error) {
	reward, err := scanReward(repo.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get reward", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

func (repo *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Reward, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			zap.L().Error("can't scan reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, *reward)
	}
	return rewards, rows.Err()
}

func (repo *Repository) Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	query := `
		INSERT INTO rewards (id, name, description, points_required, category, image_url, quantity_available, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + rewardColumns
	created, err := scanReward(repo.db.QueryRow(ctx, query,
		reward.ID, reward.Name, reward.Description, reward.PointsRequired, reward.Category,
		reward.ImageURL, reward.QuantityAvailable, reward.Active,
	))
	if err != nil {
		zap.L().Error("can't save reward", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Update overwrites the editable fields and returns nil when the reward does
// not exist.
func (repo *Repository) Update(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	query := `
		UPDATE rewards
		SET name = $1, description = $2, points_required = $3, category = $4,
			image_url = $5, quantity_available = $6, active = $7, updated_at = now()
		WHERE id = $8
		RETURNING ` + rewardColumns
	return repo.getOne(ctx, query,
		reward.Name, reward.Description, reward.PointsRequired, reward.Category,
		reward.ImageURL, reward.QuantityAvailable, reward.Active, reward.ID,
	)
}

func (repo *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reward, error) {
	return repo.getOne(ctx, `SELECT `+rewardColumns+` FROM rewards WHERE id = $1`, id)
}

func (repo *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Reward, error) {
	return repo.getOne(ctx, `SELECT `+rewardColumns+` FROM rewards WHERE id = $1 FOR UPDATE`, id)
}

func (repo *Repository) ListActive(ctx context.Context) ([]domain.Reward, error) {
	return repo.list(ctx, `SELECT `+rewardColumns+` FROM rewards WHERE active ORDER BY points_required, name`)
}

func (repo *Repository) ListAll(ctx context.Context) ([]domain.Reward, error) {
	return repo.list(ctx, `SELECT `+rewardColumns+` FROM rewards ORDER BY active DESC, points_required, name`)
}

// DecrementStock takes one unit from a limited reward. Unlimited rewards are
// left untouched.
func (repo *Repository) DecrementStock(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE rewards
		SET quantity_available = quantity_available - 1, updated_at = now()
		WHERE id = $1 AND quantity_available IS NOT NULL
	`
	_, err := repo.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't decrement reward stock", zap.Error(err))
		return err
	}
	return nil
}
