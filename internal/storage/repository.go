// Package storage implements the durable record store on SQLite.
//
// Records are append-only: there is no update or delete. Retrieval is
// always ordered by date descending, tie-broken by id descending, so
// the newest entry of the newest day comes first.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tally/internal/core"

	_ "modernc.org/sqlite"
)

const displayOrder = " ORDER BY date DESC, id DESC"

// Repository is the SQLite-backed record store.
type Repository struct {
	db *sql.DB
}

// NewRepository opens (or creates) the database at dbPath and applies
// migrations. The path is threaded from configuration so tests can use
// ephemeral files.
func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert persists a validated record and returns the assigned id. The
// id is monotonically increasing and never reused.
func (r *Repository) Insert(ctx context.Context, rec core.Record) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (date, category, amount, notes) VALUES (?, ?, ?, ?)`,
		rec.Date.String(), rec.Category, rec.Amount, notesToNull(rec.Notes))
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"date", rec.Date.String(),
		"category", rec.Category,
		"amount", rec.Amount)

	return id, nil
}

// ListAll returns every record in display order. An empty ledger yields
// an empty slice, not an error.
func (r *Repository) ListAll(ctx context.Context) ([]core.Record, error) {
	return r.selectRecords(ctx,
		`SELECT id, date, category, amount, notes FROM expenses`+displayOrder)
}

// Search returns the records matching every present constraint of the
// filter, in display order. The filter is translated to a parameterized
// WHERE clause; values never enter the SQL text.
func (r *Repository) Search(ctx context.Context, f core.Filter) ([]core.Record, error) {
	var (
		conds []string
		args  []any
	)
	if f.From != nil {
		conds = append(conds, "date >= ?")
		args = append(args, f.From.String())
	}
	if f.To != nil {
		conds = append(conds, "date <= ?")
		args = append(args, f.To.String())
	}
	if f.Category != "" {
		conds = append(conds, "lower(category) = lower(?)")
		args = append(args, f.Category)
	}
	if f.MinAmount != nil {
		conds = append(conds, "amount >= ?")
		args = append(args, *f.MinAmount)
	}
	if f.MaxAmount != nil {
		conds = append(conds, "amount <= ?")
		args = append(args, *f.MaxAmount)
	}

	query := `SELECT id, date, category, amount, notes FROM expenses`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += displayOrder

	return r.selectRecords(ctx, query, args...)
}

func (r *Repository) selectRecords(ctx context.Context, query string, args ...any) ([]core.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var records []core.Record
	for rows.Next() {
		var (
			rec      core.Record
			dateText string
			notes    sql.NullString
		)
		if err := rows.Scan(&rec.ID, &dateText, &rec.Category, &rec.Amount, &notes); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		date, err := core.ParseDate(dateText)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", dateText, err)
		}
		rec.Date = date
		rec.Notes = notes.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return records, nil
}

// notesToNull stores absent notes as NULL rather than an empty string.
func notesToNull(notes string) sql.NullString {
	return sql.NullString{String: notes, Valid: notes != ""}
}
