package repository

import (
	"context"

	"charity_farm/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, title, description, target_amount, current_amount, country, category, image, status, created_at`

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)

	var p domain.Project
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.TargetAmount,
		&p.CurrentAmount,
		&p.Country,
		&p.Category,
		&p.Image,
		&p.Status,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByStatus returns projects with the given status, newest last (seed order)
func (r *ProjectRepository) ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE status = $1 ORDER BY id`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.TargetAmount, &p.CurrentAmount,
			&p.Country, &p.Category, &p.Image, &p.Status, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, &p)
	}
	return res, rows.Err()
}
