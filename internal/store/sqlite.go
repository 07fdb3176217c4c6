package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/leadflow-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS leads (
	id                  TEXT PRIMARY KEY,
	company_name        TEXT NOT NULL,
	industry            TEXT NOT NULL,
	city                TEXT NOT NULL DEFAULT 'Unknown',
	state               TEXT NOT NULL DEFAULT '',
	zip                 TEXT NOT NULL DEFAULT '',
	phone               TEXT NOT NULL DEFAULT '',
	email               TEXT NOT NULL DEFAULT '',
	source              TEXT NOT NULL,
	source_id           TEXT NOT NULL UNIQUE,
	signal_type         TEXT NOT NULL,
	signal_date         TEXT NOT NULL DEFAULT '',
	employees_estimated TEXT NOT NULL DEFAULT '1-5',
	score               INTEGER NOT NULL,
	priority            TEXT NOT NULL,
	lead_type           TEXT NOT NULL,
	stage               TEXT NOT NULL DEFAULT 'new',
	owner               TEXT NOT NULL DEFAULT 'Unassigned',
	raw_data            TEXT,
	created_at          DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_leads_priority ON leads(priority);
CREATE INDEX IF NOT EXISTS idx_leads_source ON leads(source);
CREATE INDEX IF NOT EXISTS idx_leads_state ON leads(state);
CREATE INDEX IF NOT EXISTS idx_leads_score ON leads(score DESC);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) InsertLead(ctx context.Context, lead model.Lead) (bool, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	var rawJSON any
	if lead.RawData != nil {
		b, err := json.Marshal(lead.RawData)
		if err != nil {
			return false, eris.Wrap(err, "sqlite: marshal raw_data")
		}
		rawJSON = string(b)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO leads
		 (id, company_name, industry, city, state, zip, phone, email, source, source_id,
		  signal_type, signal_date, employees_estimated, score, priority, lead_type,
		  stage, owner, raw_data, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lead.ID, lead.CompanyName, lead.Industry, lead.City, lead.State, lead.Zip,
		lead.Phone, lead.Email, lead.Source, lead.SourceID,
		string(lead.SignalType), lead.SignalDate, string(lead.EmployeesEstimated),
		lead.Score, string(lead.Priority), string(lead.LeadType),
		lead.Stage, lead.Owner, rawJSON, lead.CreatedAt,
	)
	if err != nil {
		return false, eris.Wrapf(err, "sqlite: insert lead %s", lead.SourceID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, eris.Wrap(err, "sqlite: rows affected")
	}
	return n == 1, nil
}

func (s *SQLiteStore) LeadExists(ctx context.Context, sourceID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM leads WHERE source_id = ?)`,
		sourceID,
	).Scan(&exists)
	if err != nil {
		return false, eris.Wrapf(err, "sqlite: lead exists %s", sourceID)
	}
	return exists, nil
}

func (s *SQLiteStore) SourceIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT source_id FROM leads`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: source ids")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan source id")
		}
		ids = append(ids, id)
	}
	return ids, eris.Wrap(rows.Err(), "sqlite: source ids iterate")
}

func (s *SQLiteStore) ListLeads(ctx context.Context, filter LeadFilter) ([]model.Lead, error) {
	query := `SELECT id, company_name, industry, city, state, zip, phone, email, source, source_id,
	                 signal_type, signal_date, employees_estimated, score, priority, lead_type,
	                 stage, owner, raw_data, created_at
	          FROM leads WHERE 1=1`
	var args []any

	if filter.Priority != "" {
		query += ` AND priority = ?`
		args = append(args, string(filter.Priority))
	}
	if filter.Source != "" {
		query += ` AND source = ?`
		args = append(args, filter.Source)
	}
	if filter.State != "" {
		query += ` AND state = ?`
		args = append(args, filter.State)
	}
	if filter.MinScore > 0 {
		query += ` AND score >= ?`
		args = append(args, filter.MinScore)
	}
	query += ` ORDER BY score DESC, created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list leads")
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		var l model.Lead
		var signalType, bucket, priority, leadType string
		var rawJSON sql.NullString

		if err := rows.Scan(&l.ID, &l.CompanyName, &l.Industry, &l.City, &l.State, &l.Zip,
			&l.Phone, &l.Email, &l.Source, &l.SourceID,
			&signalType, &l.SignalDate, &bucket, &l.Score, &priority, &leadType,
			&l.Stage, &l.Owner, &rawJSON, &l.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan lead")
		}
		l.SignalType = model.SignalType(signalType)
		l.EmployeesEstimated = model.EmployeeBucket(bucket)
		l.Priority = model.Priority(priority)
		l.LeadType = model.LeadType(leadType)

		if rawJSON.Valid && rawJSON.String != "" {
			if err := json.Unmarshal([]byte(rawJSON.String), &l.RawData); err != nil {
				return nil, eris.Wrap(err, "sqlite: unmarshal raw_data")
			}
		}
		leads = append(leads, l)
	}
	return leads, eris.Wrap(rows.Err(), "sqlite: list leads iterate")
}

func (s *SQLiteStore) CountLeads(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, eris.Wrap(err, "sqlite: count leads")
}
