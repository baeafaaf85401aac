// Package store implements core.Store over a database/sql connection pool.
// Each method issues exactly one parameterized statement against the
// sightings table.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/wildlog/pkg/core"
	"github.com/leapstack-labs/wildlog/pkg/dialect"
)

//go:embed schema.sql
var schemaSQL string

// TableName is the fixed table holding sightings.
const TableName = "sightings"

// SQLStore implements core.Store using database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect *dialect.Dialect
	logger  *slog.Logger
	q       queries
}

type queries struct {
	insert        string
	all           string
	findBySpecies string
	exists        string
	update        string
	delete        string
}

// New creates a store over db using the given dialect's placeholders.
// If logger is nil, a discard logger is used.
func New(db *sql.DB, d *dialect.Dialect, logger *slog.Logger) (*SQLStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLStore{
		db:      db,
		dialect: d,
		logger:  logger,
		q:       buildQueries(d),
	}, nil
}

func buildQueries(d *dialect.Dialect) queries {
	p := d.FormatPlaceholder
	return queries{
		insert: fmt.Sprintf(
			"INSERT INTO %s (species, location, date, time) VALUES (%s) RETURNING id",
			TableName, strings.Join(d.Placeholders(4), ", ")),
		all: fmt.Sprintf(
			"SELECT id, species, location, date, time FROM %s", TableName),
		findBySpecies: fmt.Sprintf(
			"SELECT id, species, location, date, time FROM %s WHERE LOWER(species) = LOWER(%s)",
			TableName, p(1)),
		exists: fmt.Sprintf(
			"SELECT 1 FROM %s WHERE id = %s", TableName, p(1)),
		update: fmt.Sprintf(
			"UPDATE %s SET species = %s, location = %s, date = %s, time = %s WHERE id = %s",
			TableName, p(1), p(2), p(3), p(4), p(5)),
		delete: fmt.Sprintf(
			"DELETE FROM %s WHERE id = %s", TableName, p(1)),
	}
}

// InitSchema creates the sightings table if it does not exist.
func (s *SQLStore) InitSchema(ctx context.Context) error {
	ddl := strings.ReplaceAll(schemaSQL, "{{serial_primary_key}}", s.dialect.SerialPrimaryKey)
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return &core.StorageError{Op: "init schema", Err: err}
	}
	s.logger.Debug("sightings schema ready", slog.String("dialect", s.dialect.Name))
	return nil
}

// Insert adds a row and returns the store-assigned id.
func (s *SQLStore) Insert(ctx context.Context, in core.SightingInput) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, s.q.insert, in.Species, in.Location, in.Date, in.Time).Scan(&id)
	if err != nil {
		return 0, &core.StorageError{Op: "insert", Err: err}
	}
	return id, nil
}

// All returns every sighting in store-native order.
func (s *SQLStore) All(ctx context.Context) ([]*core.Sighting, error) {
	return s.query(ctx, "list", s.q.all)
}

// FindBySpecies returns sightings whose species equals species ignoring case.
func (s *SQLStore) FindBySpecies(ctx context.Context, species string) ([]*core.Sighting, error) {
	return s.query(ctx, "search", s.q.findBySpecies, species)
}

// Exists reports whether a sighting with the given id is present.
func (s *SQLStore) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, s.q.exists, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, &core.StorageError{Op: "lookup", Err: err}
	}
	return true, nil
}

// Update overwrites every caller-supplied field of the sighting.
func (s *SQLStore) Update(ctx context.Context, id int64, in core.SightingInput) error {
	if _, err := s.db.ExecContext(ctx, s.q.update, in.Species, in.Location, in.Date, in.Time, id); err != nil {
		return &core.StorageError{Op: "update", Err: err}
	}
	return nil
}

// Delete removes the sighting.
func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, s.q.delete, id); err != nil {
		return &core.StorageError{Op: "delete", Err: err}
	}
	return nil
}

// Ping checks connectivity to the store.
func (s *SQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &core.StorageError{Op: "ping", Err: err}
	}
	return nil
}

func (s *SQLStore) query(ctx context.Context, op, query string, args ...any) ([]*core.Sighting, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &core.StorageError{Op: op, Err: err}
	}
	defer func() { _ = rows.Close() }()

	sightings := make([]*core.Sighting, 0)
	for rows.Next() {
		// Text columns are nullable in databases that predate the schema
		var (
			id                             int64
			species, location, date, clock sql.NullString
		)
		if err := rows.Scan(&id, &species, &location, &date, &clock); err != nil {
			return nil, &core.StorageError{Op: op, Err: fmt.Errorf("failed to scan sighting: %w", err)}
		}
		sightings = append(sightings, &core.Sighting{
			ID:       id,
			Species:  species.String,
			Location: location.String,
			Date:     date.String,
			Time:     clock.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, &core.StorageError{Op: op, Err: fmt.Errorf("error iterating sightings: %w", err)}
	}

	return sightings, nil
}

// Ensure SQLStore implements core.Store interface
var _ core.Store = (*SQLStore)(nil)
