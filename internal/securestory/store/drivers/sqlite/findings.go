package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/store/drivers/sqlite/gen"
)

type findingsRepo struct {
	q *gen.Queries
}

func (r *findingsRepo) CreateFinding(ctx context.Context, f domain.Finding) error {
	err := r.q.CreateFinding(ctx, gen.CreateFindingParams{
		ID:         f.ID,
		ProjectID:  f.ProjectID,
		Tool:       f.Tool,
		Type:       f.Type,
		Severity:   string(f.Severity),
		Title:      f.Title,
		Status:     string(f.Status),
		FirstSeen:  f.FirstSeen.UTC(),
		ResolvedAt: mapOptionalTime(f.ResolvedAt),
	})
	return mapConstraint(err)
}

func (r *findingsRepo) GetFindingByID(ctx context.Context, id string) (domain.Finding, error) {
	row, err := r.q.GetFindingByID(ctx, id)
	if err != nil {
		return domain.Finding{}, mapNotFound(err)
	}
	return mapFinding(row), nil
}

func (r *findingsRepo) ResolveFinding(ctx context.Context, id string, resolvedAt time.Time) error {
	if _, err := r.q.GetFindingByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return expectOneRow(r.q.ResolveFinding(ctx, gen.ResolveFindingParams{
		ResolvedAt: sql.NullTime{Time: resolvedAt.UTC(), Valid: true},
		ID:         id,
	}))
}

func (r *findingsRepo) ListFindings(ctx context.Context) ([]domain.FindingWithProject, error) {
	rows, err := r.q.ListFindings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FindingWithProject, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.FindingWithProject{
			Finding: mapFinding(gen.Finding{
				ID:         row.ID,
				ProjectID:  row.ProjectID,
				Tool:       row.Tool,
				Type:       row.Type,
				Severity:   row.Severity,
				Title:      row.Title,
				Status:     row.Status,
				FirstSeen:  row.FirstSeen,
				ResolvedAt: row.ResolvedAt,
			}),
			ProjectSlug: row.ProjectSlug,
		})
	}
	return out, nil
}
