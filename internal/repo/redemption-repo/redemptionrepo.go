package redemptionrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/pg"
)

const redemptionColumns = `id, user_id, reward_id, transaction_id, points_spent, status, redeemed_at, completed_at`

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

func scanRedemption(row scanner) (*domain.Redemption, error) {
	var r domain.Redemption
	err := row.Scan(&r.ID, &r.UserID, &r.RewardID, &r.TransactionID, &r.PointsSpent, &r.Status, &r.RedeemedAt, &r.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (repo *Repository) Create(ctx context.Context, redemption *domain.Redemption) (*domain.Redemption, error) {
	query := `
		INSERT INTO redemptions (id, user_id, reward_id, transaction_id, points_spent, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING redeemed_at
	`
	err := repo.db.QueryRow(ctx, query,
		redemption.ID, redemption.UserID, redemption.RewardID, redemption.TransactionID,
		redemption.PointsSpent, redemption.Status,
	).Scan(&redemption.RedeemedAt)
	if err != nil {
		zap.L().Error("can't save redemption", zap.Error(err))
		return nil, err
	}
	return redemption, nil
}

func (repo *Repository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Redemption, error) {
	query := `SELECT ` + redemptionColumns + ` FROM redemptions WHERE user_id = $1 ORDER BY redeemed_at DESC`
	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list redemptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var redemptions []domain.Redemption
	for rows.Next() {
		r, err := scanRedemption(rows)
		if err != nil {
			zap.L().Error("can't scan redemption row", zap.Error(err))
			return nil, err
		}
		redemptions = append(redemptions, *r)
	}
	return redemptions, rows.Err()
}

func (repo *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Redemption, error) {
	r, err := scanRedemption(repo.db.QueryRow(ctx,
		`SELECT `+redemptionColumns+` FROM redemptions WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get redemption", zap.Error(err))
		return nil, err
	}
	return r, nil
}

func (repo *Repository) Complete(ctx context.Context, id uuid.UUID) (*domain.Redemption, error) {
	query := `
		UPDATE redemptions
		SET status = $1, completed_at = now()
		WHERE id = $2
		RETURNING ` + redemptionColumns
	r, err := scanRedemption(repo.db.QueryRow(ctx, query, domain.RedemptionCompleted, id))
	if err != nil {
		zap.L().Error("can't complete redemption", zap.Error(err))
		return nil, err
	}
	return r, nil
}
