package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dpbr/dpbr-client/internal/client/migrations"
	"github.com/dpbr/dpbr-client/internal/client/repositories/kv"
	"github.com/dpbr/dpbr-client/internal/dbx"
	"github.com/dpbr/dpbr-client/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenDatabase opens (creating if needed) the SQLite file at dsn and brings
// its schema up to date.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection keeps SQLite writers from tripping over each other.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}
	return db, nil
}

// SQLiteStorage stores slots in the auth_slots table.
type SQLiteStorage struct {
	db   *sql.DB
	repo kv.Repository
	log  logging.Logger
}

func NewSQLiteStorage(db *sql.DB, log logging.Logger) *SQLiteStorage {
	return &SQLiteStorage{
		db:   db,
		repo: kv.NewSQLiteRepository(db),
		log:  log.With("storage", "sqlite"),
	}
}

func (s *SQLiteStorage) Get(ctx context.Context, slot Slot) (string, bool) {
	v, ok, err := s.repo.Get(ctx, string(slot))
	if err != nil {
		s.log.Warn(ctx, "storage read failed", "slot", slot, "err", err)
		return "", false
	}
	return v, ok
}

func (s *SQLiteStorage) Set(ctx context.Context, slot Slot, value string) {
	if err := s.repo.Set(ctx, string(slot), value); err != nil {
		s.log.Warn(ctx, "storage write failed", "slot", slot, "err", err)
	}
}

func (s *SQLiteStorage) Remove(ctx context.Context, slots ...Slot) {
	if err := s.repo.Delete(ctx, slotKeys(slots)...); err != nil {
		s.log.Warn(ctx, "storage remove failed", "slots", slots, "err", err)
	}
}

func (s *SQLiteStorage) Update(ctx context.Context, changes Changes) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if len(changes.Set) == 0 && removesAll(changes.Remove) {
			return repo.Clear(ctx)
		}
		for slot, v := range changes.Set {
			if err := repo.Set(ctx, string(slot), v); err != nil {
				return err
			}
		}
		return repo.Delete(ctx, slotKeys(changes.Remove)...)
	})
	if err != nil {
		s.log.Warn(ctx, "storage update rolled back", "err", err)
	}
}

// removesAll reports whether slots names every slot in AllSlots.
func removesAll(slots []Slot) bool {
	named := make(map[Slot]bool, len(slots))
	for _, s := range slots {
		named[s] = true
	}
	for _, s := range AllSlots {
		if !named[s] {
			return false
		}
	}
	return true
}
