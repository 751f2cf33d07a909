package postgres

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/securestory/internal/securestory/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Users() store.Users                   { return &usersRepo{db: t.tx} }
func (t *txStore) PasswordResets() store.PasswordResets { return &passwordResetsRepo{db: t.tx} }
func (t *txStore) Projects() store.Projects             { return &projectsRepo{db: t.tx} }
func (t *txStore) Findings() store.Findings             { return &findingsRepo{db: t.tx} }
func (t *txStore) Dashboard() store.Dashboard           { return &dashboardRepo{db: t.tx} }
