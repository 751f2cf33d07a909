package domain

import "time"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities lists every severity, most severe first.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Weight is the severity's contribution to a risk score.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 10
	case SeverityHigh:
		return 6
	case SeverityMedium:
		return 3
	case SeverityLow:
		return 1
	}
	return 0
}

func (s Severity) Valid() bool { return s.Weight() > 0 }

type FindingStatus string

const (
	StatusOpen     FindingStatus = "open"
	StatusResolved FindingStatus = "resolved"
	// StatusDismissed is accepted by the schema but nothing transitions to it yet.
	StatusDismissed FindingStatus = "dismissed"
)

type Finding struct {
	ID         string
	ProjectID  string
	Tool       string
	Type       string
	Severity   Severity
	Title      string
	Status     FindingStatus
	FirstSeen  time.Time
	ResolvedAt *time.Time
}

// FindingWithProject is a finding joined with its project's slug for listings.
type FindingWithProject struct {
	Finding

	ProjectSlug string
}
