package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
)

const dayLayout = "2006-01-02"

const (
	countOpenBySeverity = `
SELECT f.severity, COUNT(*)
FROM findings f
JOIN projects p ON p.id = f.project_id
WHERE f.status = 'open'
  AND f.first_seen >= $1
  AND ($2 = '' OR p.slug = $2)
GROUP BY f.severity`

	countOpenByDaySeverity = `
SELECT to_char(date_trunc('day', f.first_seen AT TIME ZONE 'UTC'), 'YYYY-MM-DD') AS day, f.severity, COUNT(*)
FROM findings f
JOIN projects p ON p.id = f.project_id
WHERE f.status = 'open'
  AND f.first_seen >= $1
  AND ($2 = '' OR p.slug = $2)
GROUP BY day, f.severity
ORDER BY day ASC`

	resolutionStats = `
SELECT COUNT(*),
       AVG(EXTRACT(EPOCH FROM (f.resolved_at - f.first_seen)) / 3600.0)::float8
FROM findings f
JOIN projects p ON p.id = f.project_id
WHERE f.status = 'resolved'
  AND f.resolved_at IS NOT NULL
  AND f.resolved_at >= $1
  AND ($2 = '' OR p.slug = $2)`
)

type dashboardRepo struct {
	db DBTX
}

func (r *dashboardRepo) CountOpenBySeverity(ctx context.Context, f domain.DashboardFilter) (map[domain.Severity]int, error) {
	rows, err := r.db.QueryContext(ctx, countOpenBySeverity, f.Since.UTC(), f.ProjectSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.Severity]int{}
	for rows.Next() {
		var (
			sev string
			n   int
		)
		if err := rows.Scan(&sev, &n); err != nil {
			return nil, err
		}
		counts[domain.Severity(sev)] = n
	}
	return counts, rows.Err()
}

func (r *dashboardRepo) CountOpenByDaySeverity(ctx context.Context, f domain.DashboardFilter) ([]domain.SeverityDayCount, error) {
	rows, err := r.db.QueryContext(ctx, countOpenByDaySeverity, f.Since.UTC(), f.ProjectSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SeverityDayCount{}
	for rows.Next() {
		var (
			day, sev string
			n        int
		)
		if err := rows.Scan(&day, &sev, &n); err != nil {
			return nil, err
		}
		t, err := time.Parse(dayLayout, day)
		if err != nil {
			return nil, fmt.Errorf("parse day bucket %q: %w", day, err)
		}
		out = append(out, domain.SeverityDayCount{Day: t, Severity: domain.Severity(sev), Count: n})
	}
	return out, rows.Err()
}

func (r *dashboardRepo) ResolutionStats(ctx context.Context, f domain.DashboardFilter) (domain.MTTR, error) {
	var (
		count int
		mean  sql.NullFloat64
	)
	if err := r.db.QueryRowContext(ctx, resolutionStats, f.Since.UTC(), f.ProjectSlug).Scan(&count, &mean); err != nil {
		return domain.MTTR{}, err
	}
	out := domain.MTTR{ResolvedCount: count}
	if count > 0 && mean.Valid {
		hours := mean.Float64
		out.Hours = &hours
	}
	return out, nil
}
