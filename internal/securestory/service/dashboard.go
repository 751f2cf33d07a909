package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/store"
	"github.com/aussiebroadwan/securestory/pkg/slogx"
)

// DashboardService computes the risk views over open and resolved findings.
type DashboardService struct {
	Store store.Store
	Now   func() time.Time
}

// ResolveWindow applies the default to a zero window and rejects anything
// outside 1..MaxWindowDays.
func ResolveWindow(days int) (int, error) {
	if days == 0 {
		return domain.DefaultWindowDays, nil
	}
	if days < 1 || days > domain.MaxWindowDays {
		return 0, ErrInvalidWindow
	}
	return days, nil
}

func (s *DashboardService) filter(project string, days int) (domain.DashboardFilter, error) {
	if days < 1 || days > domain.MaxWindowDays {
		return domain.DashboardFilter{}, ErrInvalidWindow
	}
	return domain.DashboardFilter{
		ProjectSlug: strings.TrimSpace(project),
		Since:       clock(s.Now).Add(-time.Duration(days) * 24 * time.Hour),
	}, nil
}

// SeverityCounts counts open findings first seen within the window. Every
// severity is present in the result.
func (s *DashboardService) SeverityCounts(ctx context.Context, project string, days int) (domain.SeverityCounts, error) {
	f, err := s.filter(project, days)
	if err != nil {
		return nil, err
	}

	rows, err := s.Store.Dashboard().CountOpenBySeverity(ctx, f)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to count findings by severity", slog.Any("error", err))
		return nil, err
	}

	counts := domain.NewSeverityCounts()
	for sev, n := range rows {
		if sev.Valid() {
			counts[sev] += n
		}
	}
	return counts, nil
}

// RiskScoreSeries returns one point per UTC day that has open findings in the
// window, ascending by day. Days without findings are omitted.
func (s *DashboardService) RiskScoreSeries(ctx context.Context, project string, days int) ([]domain.RiskPoint, error) {
	f, err := s.filter(project, days)
	if err != nil {
		return nil, err
	}

	rows, err := s.Store.Dashboard().CountOpenByDaySeverity(ctx, f)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to count findings by day", slog.Any("error", err))
		return nil, err
	}

	byDay := make(map[time.Time]*domain.RiskPoint)
	for _, row := range rows {
		if !row.Severity.Valid() {
			continue
		}
		day := row.Day.UTC().Truncate(24 * time.Hour)
		p, ok := byDay[day]
		if !ok {
			p = &domain.RiskPoint{Day: day, Breakdown: domain.NewSeverityCounts()}
			byDay[day] = p
		}
		p.Breakdown[row.Severity] += row.Count
		p.RiskScore += row.Count * row.Severity.Weight()
	}

	series := make([]domain.RiskPoint, 0, len(byDay))
	for _, p := range byDay {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Day.Before(series[j].Day) })
	return series, nil
}

// MTTR averages resolved_at - first_seen over findings resolved within the
// window. Hours is nil when none qualify.
func (s *DashboardService) MTTR(ctx context.Context, project string, days int) (domain.MTTR, error) {
	f, err := s.filter(project, days)
	if err != nil {
		return domain.MTTR{}, err
	}

	out, err := s.Store.Dashboard().ResolutionStats(ctx, f)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to compute MTTR", slog.Any("error", err))
		return domain.MTTR{}, err
	}
	if out.ResolvedCount == 0 {
		out.Hours = nil
	}
	return out, nil
}
