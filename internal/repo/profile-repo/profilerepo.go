package profilerepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/internal/pg"
)

const profileColumns = `user_id, email, full_name, phone, birthday, points, lifetime_points, rank, referral_code, referred_by, birthday_bonus_year, created_at, updated_at`

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

func scanProfile(row scanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.UserID, &p.Email, &p.FullName, &p.Phone, &p.Birthday,
		&p.Points, &p.LifetimePoints, &p.Rank, &p.ReferralCode, &p.ReferredBy,
		&p.BirthdayBonusYear, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...any) (*domain.Profile, error) {
	profile, err := scanProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, email, full_name, phone, birthday, points, lifetime_points, rank, referral_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + profileColumns
	created, err := scanProfile(r.db.QueryRow(ctx, query,
		profile.UserID, profile.Email, profile.FullName, profile.Phone, profile.Birthday,
		profile.Points, profile.LifetimePoints, profile.Rank, profile.ReferralCode,
	))
	if err != nil {
		zap.L().Error("can't create profile", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
}

// GetForUpdate locks the profile row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1 FOR UPDATE`, userID)
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.Profile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE referral_code = $1`, code)
}

func (r *Repository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE referral_code = $1)`, code).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check referral code", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET points = $1, lifetime_points = $2, rank = $3, updated_at = now()
		WHERE user_id = $4
	`
	_, err := r.db.Exec(ctx, query, profile.Points, profile.LifetimePoints, profile.Rank, profile.UserID)
	if err != nil {
		zap.L().Error("can't update profile balance", zap.Error(err))
		return err
	}
	return nil
}

// SetReferredBy records the referrer once; it reports false when the profile
// already has one.
func (r *Repository) SetReferredBy(ctx context.Context, userID uuid.UUID, code string) (bool, error) {
	query := `
		UPDATE profiles
		SET referred_by = $1, updated_at = now()
		WHERE user_id = $2 AND referred_by IS NULL
	`
	tag, err := r.db.Exec(ctx, query, code, userID)
	if err != nil {
		zap.L().Error("can't set referred_by", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SetBirthdayBonusYear(ctx context.Context, userID uuid.UUID, year int) error {
	query := `
		UPDATE profiles
		SET birthday_bonus_year = $1, updated_at = now()
		WHERE user_id = $2
	`
	_, err := r.db.Exec(ctx, query, year, userID)
	if err != nil {
		zap.L().Error("can't set birthday bonus year", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateDetails(ctx context.Context, userID uuid.UUID, fullName string, phone *string, birthday *time.Time) (*domain.Profile, error) {
	query := `
		UPDATE profiles
		SET full_name = $1, phone = $2, birthday = $3, updated_at = now()
		WHERE user_id = $4
		RETURNING ` + profileColumns
	return r.getOne(ctx, query, fullName, phone, birthday, userID)
}

func (r *Repository) CountReferredBy(ctx context.Context, code string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles WHERE referred_by = $1`, code).Scan(&count)
	if err != nil {
		zap.L().Error("can't count referrals", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Search(ctx context.Context, query string, limit int) ([]domain.Profile, error) {
	sql := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE $1 = '' OR email ILIKE '%' || $1 || '%' OR full_name ILIKE '%' || $1 || '%' OR referral_code = UPPER($1)
		ORDER BY email
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, sql, query, limit)
	if err != nil {
		zap.L().Error("can't search profiles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			zap.L().Error("can't scan profile row", zap.Error(err))
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

// FindBirthdayMembers returns the ids of members born on the given month and
// day. With includeLeapDay set, 29 February birthdays are included as well.
func (r *Repository) FindBirthdayMembers(ctx context.Context, month time.Month, day int, includeLeapDay bool) ([]uuid.UUID, error) {
	query := `
		SELECT user_id
		FROM profiles
		WHERE birthday IS NOT NULL
		  AND ((EXTRACT(MONTH FROM birthday) = $1 AND EXTRACT(DAY FROM birthday) = $2)
		   OR ($3 AND EXTRACT(MONTH FROM birthday) = 2 AND EXTRACT(DAY FROM birthday) = 29))
	`
	rows, err := r.db.Query(ctx, query, int(month), day, includeLeapDay)
	if err != nil {
		zap.L().Error("can't find birthday members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan birthday member", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RecomputeRanks rewrites every cached rank from lifetime points after the
// thresholds change.
func (r *Repository) RecomputeRanks(ctx context.Context, thresholds domain.RankThresholds) (int64, error) {
	query := `
		UPDATE profiles
		SET rank = CASE
				WHEN lifetime_points >= $2 THEN 'Gold'
				WHEN lifetime_points >= $1 THEN 'Silver'
				ELSE 'Bronze'
			END,
			updated_at = now()
		WHERE rank <> CASE
				WHEN lifetime_points >= $2 THEN 'Gold'
				WHEN lifetime_points >= $1 THEN 'Silver'
				ELSE 'Bronze'
			END
	`
	tag, err := r.db.Exec(ctx, query, thresholds.Silver, thresholds.Gold)
	if err != nil {
		zap.L().Error("can't recompute ranks", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
