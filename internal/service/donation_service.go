package service

import (
	"context"
	"errors"

	"charity_farm/internal/domain"
	"charity_farm/internal/economy"
	"charity_farm/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DonationService moves currency from a user's balance into a project goal
// and resolves project completion.
type DonationService struct {
	db              *pgxpool.Pool
	transactionRepo *repository.TransactionRepository
}

func NewDonationService(db *pgxpool.Pool) *DonationService {
	return &DonationService{
		db:              db,
		transactionRepo: repository.NewTransactionRepository(db),
	}
}

type DonationResult struct {
	Progress         float64
	Balance          float64
	TotalHelp        float64
	ProjectTitle     string
	ProjectID        int64
	Amount           float64
	ProjectCompleted bool
}

// Donate transfers amount from the user to the project. The project row is
// locked first, then the user row (lock order: projects before users). The
// active→completed transition happens at most once; only the donor whose
// donation crosses the target gets the completed_projects credit.
func (s *DonationService) Donate(ctx context.Context, userID, projectID int64, amount float64) (*DonationResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		title  string
		target float64
		status domain.ProjectStatus
	)
	err = tx.QueryRow(ctx,
		`SELECT title, target_amount, status FROM projects WHERE id = $1 FOR UPDATE`,
		projectID,
	).Scan(&title, &target, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	var balance float64
	err = tx.QueryRow(ctx,
		`SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if balance < amount {
		return nil, ErrInsufficientFunds
	}

	var newBalance, totalHelp float64
	err = tx.QueryRow(ctx,
		`UPDATE users
		 SET balance = balance - $1, total_help = total_help + $1
		 WHERE id = $2
		 RETURNING balance, total_help`,
		amount, userID,
	).Scan(&newBalance, &totalHelp)
	if err != nil {
		return nil, err
	}

	var newCurrent float64
	err = tx.QueryRow(ctx,
		`UPDATE projects SET current_amount = current_amount + $1 WHERE id = $2
		 RETURNING current_amount`,
		amount, projectID,
	).Scan(&newCurrent)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO donations (user_id, project_id, amount) VALUES ($1, $2, $3)`,
		userID, projectID, amount,
	); err != nil {
		return nil, err
	}

	completed := false
	if newCurrent >= target && status == domain.ProjectStatusActive {
		completed = true
		if _, err := tx.Exec(ctx,
			`UPDATE projects SET status = $1 WHERE id = $2`,
			domain.ProjectStatusCompleted, projectID,
		); err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE users SET completed_projects = completed_projects + 1 WHERE id = $1`,
			userID,
		); err != nil {
			return nil, err
		}
	}

	record := &domain.Transaction{
		UserID: userID,
		Type:   "donation",
		Amount: -amount,
		Meta:   map[string]interface{}{"project_id": projectID, "project": title},
	}
	if err := s.transactionRepo.CreateWithTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &DonationResult{
		Progress:         economy.Progress(newCurrent, target),
		Balance:          newBalance,
		TotalHelp:        totalHelp,
		ProjectTitle:     title,
		ProjectID:        projectID,
		Amount:           amount,
		ProjectCompleted: completed,
	}, nil
}
