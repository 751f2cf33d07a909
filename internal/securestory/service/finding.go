package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/store"
	"github.com/aussiebroadwan/securestory/pkg/idx"
	"github.com/aussiebroadwan/securestory/pkg/slogx"
)

type FindingService struct {
	Store store.Store
	Now   func() time.Time
}

// IngestInput is one finding reported by a scanner.
type IngestInput struct {
	ProjectSlug string
	Tool        string
	Type        string
	Severity    domain.Severity
	Title       string
}

// Ingest records a new open finding against an existing project.
func (s *FindingService) Ingest(ctx context.Context, caller *Caller, in IngestInput) (domain.Finding, error) {
	log := slogx.FromContext(ctx)

	if err := requireWriter(caller); err != nil {
		return domain.Finding{}, err
	}

	in.ProjectSlug = strings.TrimSpace(in.ProjectSlug)
	in.Tool = strings.TrimSpace(in.Tool)
	in.Type = strings.TrimSpace(in.Type)
	in.Title = strings.TrimSpace(in.Title)
	switch {
	case in.ProjectSlug == "":
		return domain.Finding{}, invalid("project_slug", "is required")
	case in.Tool == "":
		return domain.Finding{}, invalid("tool", "is required")
	case in.Type == "":
		return domain.Finding{}, invalid("type", "is required")
	case !in.Severity.Valid():
		return domain.Finding{}, invalid("severity", "must be one of critical, high, medium, low")
	case utf8.RuneCountInString(in.Title) < 2:
		return domain.Finding{}, invalid("title", "must be at least 2 characters")
	}

	project, err := s.Store.Projects().GetProjectBySlug(ctx, in.ProjectSlug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("ingest for unknown project", slog.String("project_slug", in.ProjectSlug))
			return domain.Finding{}, ErrProjectNotFound
		}
		log.Error("failed to look up project", slog.Any("error", err))
		return domain.Finding{}, err
	}

	now := clock(s.Now)
	f := domain.Finding{
		ID:        idx.NewAt(now).String(),
		ProjectID: project.ID,
		Tool:      in.Tool,
		Type:      in.Type,
		Severity:  in.Severity,
		Title:     in.Title,
		Status:    domain.StatusOpen,
		FirstSeen: now,
	}
	if err := s.Store.Findings().CreateFinding(ctx, f); err != nil {
		log.Error("failed to store finding", slog.Any("error", err))
		return domain.Finding{}, err
	}

	log.Info("finding ingested",
		slog.String("finding_id", f.ID),
		slog.String("project_slug", project.Slug),
		slog.String("severity", string(f.Severity)),
	)
	return f, nil
}

// Resolve moves an open finding to resolved.
func (s *FindingService) Resolve(ctx context.Context, caller *Caller, id string) (domain.Finding, error) {
	log := slogx.FromContext(ctx)

	if err := requireWriter(caller); err != nil {
		return domain.Finding{}, err
	}

	now := clock(s.Now)
	if err := s.Store.Findings().ResolveFinding(ctx, id, now); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Finding{}, ErrFindingNotFound
		case errors.Is(err, store.ErrConflict):
			return domain.Finding{}, ErrFindingNotOpen
		}
		log.Error("failed to resolve finding", slog.String("finding_id", id), slog.Any("error", err))
		return domain.Finding{}, err
	}

	f, err := s.Store.Findings().GetFindingByID(ctx, id)
	if err != nil {
		return domain.Finding{}, err
	}

	log.Info("finding resolved",
		slog.String("finding_id", id),
		slog.String("resolved_by", caller.UserID),
	)
	return f, nil
}

// ListFindings returns all findings with their project slug, newest first.
func (s *FindingService) ListFindings(ctx context.Context) ([]domain.FindingWithProject, error) {
	return s.Store.Findings().ListFindings(ctx)
}
