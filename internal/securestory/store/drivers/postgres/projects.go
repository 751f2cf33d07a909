package postgres

import (
	"context"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
)

type projectsRepo struct {
	db DBTX
}

func scanProject(row scanner) (domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.Slug, &p.Name, &p.CreatedAt); err != nil {
		return domain.Project{}, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

func (r *projectsRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, slug, name, created_at FROM projects ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectsRepo) GetProjectBySlug(ctx context.Context, slug string) (domain.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx,
		`SELECT id, slug, name, created_at FROM projects WHERE slug = $1`, slug))
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, slug, name, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Slug, p.Name, p.CreatedAt.UTC())
	return mapConstraint(err)
}
