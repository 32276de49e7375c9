package transactionrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/pg"
)

const transactionColumns = `id, user_id, type, points, description, drink_type, amount_spent, idempotency_key, created_at`

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

func scanTransaction(row scanner) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := row.Scan(
		&tx.ID, &tx.UserID, &tx.Type, &tx.Points, &tx.Description,
		&tx.DrinkType, &tx.AmountSpent, &tx.IdempotencyKey, &tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (repo *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (id, user_id, type, points, description, drink_type, amount_spent, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query,
		tx.ID, tx.UserID, tx.Type, tx.Points, tx.Description, tx.DrinkType, tx.AmountSpent, tx.IdempotencyKey,
	).Scan(&tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (repo *Repository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	tx, err := scanTransaction(repo.db.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE idempotency_key = $1`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction by idempotency key", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// ListByUserID returns the member's entries newest first.
func (repo *Repository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`
	rows, err := repo.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

func (repo *Repository) SumByUserAndType(ctx context.Context, userID uuid.UUID, txType domain.TransactionType) (int, error) {
	var sum int
	err := repo.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(points), 0) FROM transactions WHERE user_id = $1 AND type = $2`,
		userID, txType,
	).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
