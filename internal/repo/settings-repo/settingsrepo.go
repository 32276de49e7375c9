package settingsrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetAll returns the raw JSON value of every stored setting keyed by name.
func (repo *Repository) GetAll(ctx context.Context) (map[string][]byte, error) {
	rows, err := repo.db.Query(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		zap.L().Error("can't load settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	values := make(map[string][]byte)
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			zap.L().Error("can't scan setting", zap.Error(err))
			return nil, err
		}
		values[key] = value
	}
	return values, rows.Err()
}

func (repo *Repository) Upsert(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := repo.db.Exec(ctx, query, key, value)
	if err != nil {
		zap.L().Error("can't save setting", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
