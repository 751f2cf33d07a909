package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/store/drivers/sqlite/gen"
)

const dayLayout = "2006-01-02"

type dashboardRepo struct {
	q *gen.Queries
}

func (r *dashboardRepo) CountOpenBySeverity(ctx context.Context, f domain.DashboardFilter) (map[domain.Severity]int, error) {
	rows, err := r.q.CountOpenBySeverity(ctx, gen.CountOpenBySeverityParams{
		Since:       f.Since.UTC(),
		ProjectSlug: f.ProjectSlug,
	})
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.Severity]int, len(rows))
	for _, row := range rows {
		counts[domain.Severity(row.Severity)] = int(row.Count)
	}
	return counts, nil
}

func (r *dashboardRepo) CountOpenByDaySeverity(ctx context.Context, f domain.DashboardFilter) ([]domain.SeverityDayCount, error) {
	rows, err := r.q.CountOpenByDaySeverity(ctx, gen.CountOpenByDaySeverityParams{
		Since:       f.Since.UTC(),
		ProjectSlug: f.ProjectSlug,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.SeverityDayCount, 0, len(rows))
	for _, row := range rows {
		day, err := time.Parse(dayLayout, row.Day)
		if err != nil {
			return nil, fmt.Errorf("parse day bucket %q: %w", row.Day, err)
		}
		out = append(out, domain.SeverityDayCount{
			Day:      day,
			Severity: domain.Severity(row.Severity),
			Count:    int(row.Count),
		})
	}
	return out, nil
}

func (r *dashboardRepo) ResolutionStats(ctx context.Context, f domain.DashboardFilter) (domain.MTTR, error) {
	row, err := r.q.ResolutionStats(ctx, gen.ResolutionStatsParams{
		Since:       f.Since.UTC(),
		ProjectSlug: f.ProjectSlug,
	})
	if err != nil {
		return domain.MTTR{}, err
	}
	out := domain.MTTR{ResolvedCount: int(row.ResolvedCount)}
	if row.ResolvedCount > 0 && row.MeanHours.Valid {
		hours := row.MeanHours.Float64
		out.Hours = &hours
	}
	return out, nil
}
