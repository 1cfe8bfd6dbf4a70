package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/vmihailenco/msgpack/v5"
)

var ErrCatalogNotFound = errors.New("catalog not found")

// timeLayout keeps created_at lexically ordered.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Info describes a saved catalog.
type Info struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	Units     int
}

// Store persists catalogs in SQLite. Each Save writes a new immutable
// catalog under a fresh id.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

type StoreOption func(*Store)

// WithLogger sets the logger saves and loads are reported to.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

// OpenStore opens the SQLite database at path and prepares its schema.
func OpenStore(ctx context.Context, path string, opts ...StoreOption) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	s, err := NewStore(ctx, db, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewStore prepares the schema on an already open database.
func NewStore(ctx context.Context, db *sql.DB, opts ...StoreOption) (*Store, error) {
	s := &Store{db: db, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("init catalog schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS catalogs (
			id TEXT PRIMARY KEY,
			name TEXT,
			created_at TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS units (
			catalog_id TEXT,
			position INTEGER,
			name TEXT,
			measures TEXT,
			factor REAL,
			aliases BLOB,
			PRIMARY KEY (catalog_id, position)
		);`,
	}
	for _, q := range queries {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// Save validates defs and stores them as a new catalog named name.
func (s *Store) Save(ctx context.Context, name string, defs []Definition) (uuid.UUID, error) {
	if _, err := New(defs); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO catalogs (id, name, created_at) VALUES (?, ?, ?)`,
		id.String(), name, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert catalog: %w", err)
	}
	for i, def := range defs {
		aliases, err := msgpack.Marshal(def.Aliases)
		if err != nil {
			return uuid.Nil, fmt.Errorf("encode aliases of %s: %w", def.Name, err)
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO units (catalog_id, position, name, measures, factor, aliases) VALUES (?, ?, ?, ?, ?, ?)`,
			id.String(), i, def.Name, def.Measures, def.Factor, aliases)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert unit %s: %w", def.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit save: %w", err)
	}
	s.log.Debug("catalog saved", "id", id, "name", name, "units", len(defs))
	return id, nil
}

// Load returns the definitions of catalog id in their saved order.
func (s *Store) Load(ctx context.Context, id uuid.UUID) ([]Definition, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalogs WHERE id = ?`, id.String()).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", id, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, id)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, measures, factor, aliases FROM units WHERE catalog_id = ? ORDER BY position`, id.String())
	if err != nil {
		return nil, fmt.Errorf("load units of %s: %w", id, err)
	}
	defer rows.Close()

	var defs []Definition
	for rows.Next() {
		var def Definition
		var aliases []byte
		if err := rows.Scan(&def.Name, &def.Measures, &def.Factor, &aliases); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		if len(aliases) > 0 {
			if err := msgpack.Unmarshal(aliases, &def.Aliases); err != nil {
				return nil, fmt.Errorf("decode aliases of %s: %w", def.Name, err)
			}
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	s.log.Debug("catalog loaded", "id", id, "units", len(defs))
	return defs, nil
}

// LoadRegistry loads catalog id and builds a registry from it.
func (s *Store) LoadRegistry(ctx context.Context, id uuid.UUID) (*Registry, error) {
	defs, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return New(defs)
}

// Latest returns the id of the most recently saved catalog named name.
func (s *Store) Latest(ctx context.Context, name string) (uuid.UUID, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM catalogs WHERE name = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrCatalogNotFound, name)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("latest catalog %q: %w", name, err)
	}
	return uuid.Parse(raw)
}

// List returns every saved catalog, newest first.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.created_at, COUNT(u.position)
		FROM catalogs c LEFT JOIN units u ON u.catalog_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC, c.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	defer rows.Close()

	var out []Info
	for rows.Next() {
		var info Info
		var id, created string
		if err := rows.Scan(&id, &info.Name, &created, &info.Units); err != nil {
			return nil, fmt.Errorf("scan catalog: %w", err)
		}
		if info.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("catalog id %q: %w", id, err)
		}
		if info.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("catalog %s created_at: %w", id, err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}
