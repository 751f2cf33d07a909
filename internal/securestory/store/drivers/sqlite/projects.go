package sqlite

import (
	"context"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/store/drivers/sqlite/gen"
)

type projectsRepo struct {
	q *gen.Queries
}

func (r *projectsRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.q.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProject(row))
	}
	return projects, nil
}

func (r *projectsRepo) GetProjectBySlug(ctx context.Context, slug string) (domain.Project, error) {
	row, err := r.q.GetProjectBySlug(ctx, slug)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return mapProject(row), nil
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	err := r.q.CreateProject(ctx, gen.CreateProjectParams{
		ID:        p.ID,
		Slug:      p.Slug,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.UTC(),
	})
	return mapConstraint(err)
}
