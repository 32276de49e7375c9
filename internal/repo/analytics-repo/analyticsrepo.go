package analyticsrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/domain"
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

func (repo *Repository) scalar(ctx context.Context, name, query string, args ...any) (int, error) {
	var value int
	if err := repo.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		zap.L().Error("can't compute "+name, zap.Error(err))
		return 0, err
	}
	return value, nil
}

func (repo *Repository) grouped(ctx context.Context, name, query string) (map[string]int, error) {
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't compute "+name, zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var (
			key   string
			count int
		)
		if err := rows.Scan(&key, &count); err != nil {
			zap.L().Error("can't scan "+name, zap.Error(err))
			return nil, err
		}
		result[key] = count
	}
	return result, rows.Err()
}

func (repo *Repository) MemberCount(ctx context.Context) (int, error) {
	return repo.scalar(ctx, "member count", `SELECT COUNT(*) FROM profiles`)
}

func (repo *Repository) OutstandingPoints(ctx context.Context) (int, error) {
	return repo.scalar(ctx, "outstanding points", `SELECT COALESCE(SUM(points), 0) FROM profiles`)
}

func (repo *Repository) RedeemedPoints(ctx context.Context) (int, error) {
	return repo.scalar(ctx, "redeemed points",
		`SELECT COALESCE(SUM(points), 0) FROM transactions WHERE type = $1`, domain.TransactionRedeemed)
}

func (repo *Repository) ActiveRewards(ctx context.Context) (int, error) {
	return repo.scalar(ctx, "active rewards", `SELECT COUNT(*) FROM rewards WHERE active`)
}

func (repo *Repository) TransactionsByType(ctx context.Context) (map[domain.TransactionType]int, error) {
	counts, err := repo.grouped(ctx, "transactions by type",
		`SELECT type, COUNT(*) FROM transactions GROUP BY type`)
	if err != nil {
		return nil, err
	}
	result := make(map[domain.TransactionType]int, len(counts))
	for k, v := range counts {
		result[domain.TransactionType(k)] = v
	}
	return result, nil
}

func (repo *Repository) RewardsByCategory(ctx context.Context) (map[string]int, error) {
	return repo.grouped(ctx, "rewards by category",
		`SELECT category, COUNT(*) FROM rewards WHERE active GROUP BY category`)
}

// PointsEarnedDaily sums credited points per UTC day from since onwards. Days
// without credits are absent.
func (repo *Repository) PointsEarnedDaily(ctx context.Context, since time.Time) ([]domain.DailyPoints, error) {
	query := `
		SELECT (created_at AT TIME ZONE 'UTC')::date AS day, SUM(points)
		FROM transactions
		WHERE type <> $1 AND created_at >= $2
		GROUP BY day
		ORDER BY day
	`
	rows, err := repo.db.Query(ctx, query, domain.TransactionRedeemed, since)
	if err != nil {
		zap.L().Error("can't compute daily points", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var series []domain.DailyPoints
	for rows.Next() {
		var p domain.DailyPoints
		if err := rows.Scan(&p.Day, &p.Points); err != nil {
			zap.L().Error("can't scan daily points", zap.Error(err))
			return nil, err
		}
		series = append(series, p)
	}
	return series, rows.Err()
}
