package repository

import (
	"context"

	"charity_farm/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, password_hash, balance, experience, level, last_tap, total_help, completed_projects, created_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Balance,
		&u.Experience,
		&u.Level,
		&u.LastTap,
		&u.TotalHelp,
		&u.CompletedProjects,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (username, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, balance, experience, level, created_at`,
		u.Username,
		u.PasswordHash,
	).Scan(&u.ID, &u.Balance, &u.Experience, &u.Level, &u.CreatedAt)
}

// TopHelperEntry represents one row of the helpers leaderboard
type TopHelperEntry struct {
	Rank              int     `json:"rank"`
	Username          string  `json:"username"`
	Level             int     `json:"level"`
	TotalHelp         float64 `json:"total_help"`
	CompletedProjects int     `json:"completed_projects"`
}

// GetTopByHelp returns users ordered by total donated amount desc
func (r *UserRepository) GetTopByHelp(ctx context.Context, limit int) ([]TopHelperEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT username, level, total_help, completed_projects
		FROM users
		ORDER BY total_help DESC, id
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []TopHelperEntry
	rank := 1
	for rows.Next() {
		var e TopHelperEntry
		if err := rows.Scan(&e.Username, &e.Level, &e.TotalHelp, &e.CompletedProjects); err != nil {
			return nil, err
		}
		e.Rank = rank
		res = append(res, e)
		rank++
	}
	return res, rows.Err()
}
