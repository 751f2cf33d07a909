package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
)

type findingsRepo struct {
	db DBTX
}

func scanFinding(row scanner, extra ...any) (domain.Finding, error) {
	var (
		f                domain.Finding
		severity, status string
		resolvedAt       sql.NullTime
	)
	dest := []any{&f.ID, &f.ProjectID, &f.Tool, &f.Type, &severity, &f.Title, &status, &f.FirstSeen, &resolvedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return domain.Finding{}, err
	}
	f.Severity = domain.Severity(severity)
	f.Status = domain.FindingStatus(status)
	f.FirstSeen = f.FirstSeen.UTC()
	f.ResolvedAt = nullTimePtr(resolvedAt)
	return f, nil
}

func (r *findingsRepo) CreateFinding(ctx context.Context, f domain.Finding) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO findings (id, project_id, tool, type, severity, title, status, first_seen, resolved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		f.ID, f.ProjectID, f.Tool, f.Type, string(f.Severity), f.Title, string(f.Status),
		f.FirstSeen.UTC(), optionalTime(f.ResolvedAt))
	return mapConstraint(err)
}

func (r *findingsRepo) GetFindingByID(ctx context.Context, id string) (domain.Finding, error) {
	f, err := scanFinding(r.db.QueryRowContext(ctx,
		`SELECT id, project_id, tool, type, severity, title, status, first_seen, resolved_at
		 FROM findings WHERE id = $1`, id))
	if err != nil {
		return domain.Finding{}, mapNotFound(err)
	}
	return f, nil
}

func (r *findingsRepo) ResolveFinding(ctx context.Context, id string, resolvedAt time.Time) error {
	if _, err := r.GetFindingByID(ctx, id); err != nil {
		return err
	}
	return expectOneRow(r.db.ExecContext(ctx,
		`UPDATE findings SET status = 'resolved', resolved_at = $1 WHERE id = $2 AND status = 'open'`,
		resolvedAt.UTC(), id))
}

func (r *findingsRepo) ListFindings(ctx context.Context) ([]domain.FindingWithProject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT f.id, f.project_id, f.tool, f.type, f.severity, f.title, f.status, f.first_seen, f.resolved_at,
		        p.slug
		 FROM findings f
		 JOIN projects p ON p.id = f.project_id
		 ORDER BY f.first_seen DESC, f.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.FindingWithProject{}
	for rows.Next() {
		var slug string
		f, err := scanFinding(rows, &slug)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.FindingWithProject{Finding: f, ProjectSlug: slug})
	}
	return out, rows.Err()
}
