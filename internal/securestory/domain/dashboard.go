package domain

import "time"

const (
	DefaultWindowDays = 30
	MaxWindowDays     = 365
)

// SeverityCounts maps every severity to a count. Values built with
// NewSeverityCounts always carry all four keys.
type SeverityCounts map[Severity]int

func NewSeverityCounts() SeverityCounts {
	c := make(SeverityCounts, len(Severities))
	for _, s := range Severities {
		c[s] = 0
	}
	return c
}

// RiskScore is the weighted sum of the counts.
func (c SeverityCounts) RiskScore() int {
	total := 0
	for s, n := range c {
		total += n * s.Weight()
	}
	return total
}

// SeverityDayCount is one (day, severity) aggregation row from the store.
type SeverityDayCount struct {
	Day      time.Time
	Severity Severity
	Count    int
}

// RiskPoint is one day of the risk-score series.
type RiskPoint struct {
	Day       time.Time
	RiskScore int
	Breakdown SeverityCounts
}

// MTTR is the mean time to remediate over a window. Hours is nil when no
// finding was resolved in the window.
type MTTR struct {
	ResolvedCount int
	Hours         *float64
}

// DashboardFilter narrows an aggregation. An empty ProjectSlug means every
// project.
type DashboardFilter struct {
	ProjectSlug string
	Since       time.Time
}
