package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/socialdeck/internal/client/migrations"
	"github.com/dmitrijs2005/socialdeck/internal/client/repositories/sessionkv"
	"github.com/dmitrijs2005/socialdeck/internal/dbx"

	_ "modernc.org/sqlite"
)

// SQLiteStorage keeps entries in a SQLite database. With a file DSN the
// session survives a crash of the client; the CLI still clears it on a
// normal exit.
type SQLiteStorage struct {
	db   *sql.DB
	repo *sessionkv.SQLiteRepository
}

// OpenSQLiteStorage opens dsn and applies the embedded migrations.
func OpenSQLiteStorage(ctx context.Context, dsn string) (*SQLiteStorage, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	// One connection: every :memory: connection is a separate database.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return &SQLiteStorage{db: db, repo: sessionkv.NewSQLiteRepository(db)}, nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return s.repo.Get(ctx, key)
}

func (s *SQLiteStorage) Put(ctx context.Context, entries map[string][]byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessionkv.NewSQLiteRepository(tx)
		for k, v := range entries {
			if err := repo.Put(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStorage) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
