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

type ProjectService struct {
	Store store.Store
	Now   func() time.Time
}

// ListProjects returns every project, newest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.Store.Projects().ListProjects(ctx)
}

func (s *ProjectService) CreateProject(ctx context.Context, caller *Caller, slug, name string) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	if err := requireWriter(caller); err != nil {
		return domain.Project{}, err
	}

	slug = strings.TrimSpace(slug)
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(slug) < 2 {
		return domain.Project{}, invalid("slug", "must be at least 2 characters")
	}
	if utf8.RuneCountInString(name) < 2 {
		return domain.Project{}, invalid("name", "must be at least 2 characters")
	}

	now := clock(s.Now)
	p := domain.Project{
		ID:        idx.NewAt(now).String(),
		Slug:      slug,
		Name:      name,
		CreatedAt: now,
	}
	if err := s.Store.Projects().CreateProject(ctx, p); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Project{}, ErrProjectExists
		}
		log.Error("failed to create project", slog.String("slug", slug), slog.Any("error", err))
		return domain.Project{}, err
	}

	log.Info("project created",
		slog.String("project_id", p.ID),
		slog.String("slug", p.Slug),
		slog.String("created_by", caller.UserID),
	)
	return p, nil
}
