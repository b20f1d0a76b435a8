package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/shiftbot/core/logger"
	"github.com/m3rciful/shiftbot/roster"
	"log/slog"
)

// PostgresStore keeps the roster document as JSONB in a single-row table.
// The UPSERT makes every save atomic for concurrent readers.
type PostgresStore struct {
	db *sqlx.DB
}

const (
	selectDocQuery = `SELECT doc FROM roster_document WHERE id = 1`
	upsertDocQuery = `
		INSERT INTO roster_document (id, doc, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`
)

// NewPostgresStore wraps an established database connection.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Load reads the document row. A missing row or undecodable payload is
// replaced with a persisted fresh default; the caller always receives a
// usable document.
func (s *PostgresStore) Load(ctx context.Context) (*roster.Document, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, selectDocQuery)
	if err != nil {
		return s.heal(ctx, err)
	}

	doc := roster.NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return s.heal(ctx, err)
	}
	doc.Normalize()
	return doc, nil
}

func (s *PostgresStore) heal(ctx context.Context, cause error) (*roster.Document, error) {
	if !errors.Is(cause, sql.ErrNoRows) {
		logger.Warn(ctx, "store", "load.heal",
			slog.String("driver", "postgres"),
			slog.String("err", cause.Error()),
		)
	}
	doc := roster.NewDocument()
	if err := s.Save(ctx, doc); err != nil {
		logger.Error(ctx, "store", "heal.save",
			slog.String("driver", "postgres"),
			slog.String("err", err.Error()),
		)
	}
	return doc, nil
}

// Save upserts the whole document in one statement.
func (s *PostgresStore) Save(ctx context.Context, d *roster.Document) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, upsertDocQuery, data); err != nil {
		logger.Error(ctx, "store", "save",
			slog.String("driver", "postgres"),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
