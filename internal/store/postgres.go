package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
)

// PostgresStore keeps the schema document in a single-row table, the
// backend behind the remote /schema endpoint.
type PostgresStore struct {
	DB *sql.DB
}

// Connect opens a database connection using the given DSN. SSL is disabled
// by default when the DSN does not say otherwise.
func Connect(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DSN is empty")
	}
	if strings.HasPrefix(dsn, "postgres://") && !strings.Contains(dsn, "sslmode=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn = dsn + sep + "sslmode=disable"
	}
	return sql.Open("postgres", dsn)
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// EnsureTable creates the backing table if missing.
func (s *PostgresStore) EnsureTable(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_documents (
			id INT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`)
	if err != nil {
		return fmt.Errorf("ensure schema_documents: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (string, error) {
	var body string
	row := s.DB.QueryRowContext(ctx, `SELECT body FROM schema_documents WHERE id = 1;`)
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("load schema document: %w", err)
	}
	return body, nil
}

func (s *PostgresStore) Save(ctx context.Context, text string) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO schema_documents (id, body, updated_at) VALUES (1, $1, now())
		 ON CONFLICT (id) DO UPDATE SET body = $1, updated_at = now();`, text)
	if err != nil {
		return fmt.Errorf("save schema document: %w", err)
	}
	return nil
}
