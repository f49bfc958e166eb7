package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/releve-app/releve/internal/client/models"
	"github.com/releve-app/releve/internal/dbx"
)

// SQLiteStore keeps the session records in a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the credential database at dsn and applies
// migrations. Use ":memory:" in tests.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate credential store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an already-migrated database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

// Save serializes both records and writes them in a single transaction, so a
// restart never observes a half-written session.
func (s *SQLiteStore) Save(ctx context.Context, user models.User, tokens models.TokenPair) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	tokenData, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyUser, userData); err != nil {
			return err
		}
		return set(ctx, tx, keyTokens, tokenData)
	})
}

// SaveUser rewrites only the user record, leaving tokens untouched.
func (s *SQLiteStore) SaveUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return set(ctx, s.db, keyUser, data)
}

// Load reads both records. Absence or an undecodable row yields a nil record;
// the caller treats anything short of a full pair as "no session".
func (s *SQLiteStore) Load(ctx context.Context) (*models.User, *models.TokenPair, error) {
	userData, err := get(ctx, s.db, keyUser)
	if err != nil {
		return nil, nil, err
	}
	tokenData, err := get(ctx, s.db, keyTokens)
	if err != nil {
		return nil, nil, err
	}

	var user *models.User
	if userData != nil {
		var u models.User
		if err := json.Unmarshal(userData, &u); err == nil {
			user = &u
		}
	}
	var tokens *models.TokenPair
	if tokenData != nil {
		var t models.TokenPair
		if err := json.Unmarshal(tokenData, &t); err == nil {
			tokens = &t
		}
	}
	return user, tokens, nil
}

// Clear removes both records. Clearing an empty store is a no-op success.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, keyUser, keyTokens)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
