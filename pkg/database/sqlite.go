// Package database owns the SQLite file that stores run history.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const driverName = "sqlite3"

// Config holds database configuration
type Config struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB is the history database handle.
type DB struct {
	*sql.DB
	path   string
	logger *zap.Logger
}

// uriPathEscaper escapes the characters that would end or corrupt the path
// part of an SQLite URI filename. SQLite decodes %HH before opening.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// DSN returns the go-sqlite3 connection string for path: WAL journal, a five
// second busy timeout and enforced foreign keys.
func DSN(path string) string {
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "5000")
	q.Set("_foreign_keys", "on")
	return "file:" + uriPathEscaper.Replace(path) + "?" + q.Encode()
}

// New opens the run history database, creating its parent directory if needed.
// A single writer connection is used unless the pool is configured otherwise.
func New(cfg Config, logger *zap.Logger) (*DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open(driverName, DSN(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	open, idle := cfg.MaxOpenConns, cfg.MaxIdleConns
	if open <= 0 {
		open = 1
	}
	if idle <= 0 || idle > open {
		idle = open
	}
	sqlDB.SetMaxOpenConns(open)
	sqlDB.SetMaxIdleConns(idle)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Path, err)
	}

	logger.Info("Database connection established",
		zap.String("path", cfg.Path),
		zap.Int("max_open_conns", open))

	return &DB{DB: sqlDB, path: cfg.Path, logger: logger}, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Check pings the database and confirms the history schema is present.
func (db *DB) Check(ctx context.Context) error {
	var name string
	err := db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'processing_runs'").Scan(&name)
	switch {
	case err == sql.ErrNoRows:
		return fmt.Errorf("history schema missing")
	case err != nil:
		return fmt.Errorf("database check: %w", err)
	}
	return nil
}

// WithTransaction runs fn in a transaction, committing when it returns nil.
func (db *DB) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.logger.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	db.logger.Debug("Closing database connection", zap.String("path", db.path))
	return db.DB.Close()
}
