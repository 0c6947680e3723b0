package service

import (
	"context"
	"errors"
	"time"

	"charity_farm/internal/domain"
	"charity_farm/internal/economy"
	"charity_farm/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AFKService credits passive earnings accrued since the last check.
type AFKService struct {
	db              *pgxpool.Pool
	transactionRepo *repository.TransactionRepository
}

func NewAFKService(db *pgxpool.Pool) *AFKService {
	return &AFKService{
		db:              db,
		transactionRepo: repository.NewTransactionRepository(db),
	}
}

type AFKResult struct {
	Earnings         float64
	TotalAFKEarnings float64
	NewBalance       float64
	HasUpgrade       bool
}

// Claim computes and credits AFK earnings. Without a leveled afk upgrade the
// call reports zero and mutates nothing, including last_afk_check: idle time
// before the first upgrade purchase is never creditable retroactively.
func (s *AFKService) Claim(ctx context.Context, userID int64) (*AFKResult, error) {
	var upgradeLevel int
	err := s.db.QueryRow(ctx,
		`SELECT level FROM upgrades WHERE effect_type = $1 ORDER BY id LIMIT 1`,
		domain.EffectAFKReward,
	).Scan(&upgradeLevel)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if errors.Is(err, pgx.ErrNoRows) || upgradeLevel == 0 {
		var balance float64
		err := s.db.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1`, userID).Scan(&balance)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		return &AFKResult{NewBalance: balance}, nil
	}

	now := time.Now()

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock order: users before afk_stats, same as the upgrade purchase path
	var balance float64
	err = tx.QueryRow(ctx,
		`SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	stats, err := getOrCreateAFKStats(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	earnings := economy.AFKEarnings(now.Sub(stats.LastAFKCheck), stats.AFKMultiplier)

	var newBalance float64
	err = tx.QueryRow(ctx,
		`UPDATE users SET balance = balance + $1 WHERE id = $2 RETURNING balance`,
		earnings, userID,
	).Scan(&newBalance)
	if err != nil {
		return nil, err
	}

	var totalAFK float64
	err = tx.QueryRow(ctx,
		`UPDATE afk_stats
		 SET afk_earnings = afk_earnings + $1, last_afk_check = $2
		 WHERE user_id = $3
		 RETURNING afk_earnings`,
		earnings, now, userID,
	).Scan(&totalAFK)
	if err != nil {
		return nil, err
	}

	record := &domain.Transaction{
		UserID: userID,
		Type:   "afk",
		Amount: earnings,
	}
	if err := s.transactionRepo.CreateWithTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &AFKResult{
		Earnings:         earnings,
		TotalAFKEarnings: totalAFK,
		NewBalance:       newBalance,
		HasUpgrade:       true,
	}, nil
}

// getOrCreateAFKStats is the idempotent lazy-create: insert defaults if the
// row does not exist yet, then lock and read it.
func getOrCreateAFKStats(ctx context.Context, tx pgx.Tx, userID int64) (*domain.AFKStats, error) {
	if _, err := tx.Exec(ctx,
		`INSERT INTO afk_stats (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID,
	); err != nil {
		return nil, err
	}

	var stats domain.AFKStats
	err := tx.QueryRow(ctx,
		`SELECT id, user_id, last_afk_check, afk_earnings, afk_multiplier
		 FROM afk_stats WHERE user_id = $1 FOR UPDATE`,
		userID,
	).Scan(&stats.ID, &stats.UserID, &stats.LastAFKCheck, &stats.AFKEarnings, &stats.AFKMultiplier)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
