package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/leadflow-cli/internal/db"
	"github.com/sells-group/leadflow-cli/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool db.Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the hot ingestion path.
var preparedStatements = map[string]string{
	"insert_lead": `INSERT INTO leads
		(id, company_name, industry, city, state, zip, phone, email, source, source_id,
		 signal_type, signal_date, employees_estimated, score, priority, lead_type,
		 stage, owner, raw_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (source_id) DO NOTHING`,
	"lead_exists": `SELECT EXISTS (SELECT 1 FROM leads WHERE source_id = $1)`,
	"source_ids":  `SELECT source_id FROM leads`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool; used by tests.
func NewPostgresFromPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS leads (
	id                  TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
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
	raw_data            JSONB,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_leads_priority ON leads(priority);
CREATE INDEX IF NOT EXISTS idx_leads_source ON leads(source);
CREATE INDEX IF NOT EXISTS idx_leads_state ON leads(state);
CREATE INDEX IF NOT EXISTS idx_leads_score ON leads(score DESC);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.pool.Ping(ctx), "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) InsertLead(ctx context.Context, lead model.Lead) (bool, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	var rawJSON []byte
	if lead.RawData != nil {
		var err error
		rawJSON, err = json.Marshal(lead.RawData)
		if err != nil {
			return false, eris.Wrap(err, "postgres: marshal raw_data")
		}
	}

	tag, err := s.pool.Exec(ctx,
		`INSERT INTO leads
		 (id, company_name, industry, city, state, zip, phone, email, source, source_id,
		  signal_type, signal_date, employees_estimated, score, priority, lead_type,
		  stage, owner, raw_data, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		 ON CONFLICT (source_id) DO NOTHING`,
		lead.ID, lead.CompanyName, lead.Industry, lead.City, lead.State, lead.Zip,
		lead.Phone, lead.Email, lead.Source, lead.SourceID,
		string(lead.SignalType), lead.SignalDate, string(lead.EmployeesEstimated),
		lead.Score, string(lead.Priority), string(lead.LeadType),
		lead.Stage, lead.Owner, rawJSON, lead.CreatedAt,
	)
	if err != nil {
		return false, eris.Wrapf(err, "postgres: insert lead %s", lead.SourceID)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *PostgresStore) LeadExists(ctx context.Context, sourceID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM leads WHERE source_id = $1)`,
		sourceID,
	).Scan(&exists)
	if err != nil {
		return false, eris.Wrapf(err, "postgres: lead exists %s", sourceID)
	}
	return exists, nil
}

func (s *PostgresStore) SourceIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT source_id FROM leads`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: source ids")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, eris.Wrap(err, "postgres: scan source id")
		}
		ids = append(ids, id)
	}
	return ids, eris.Wrap(rows.Err(), "postgres: source ids iterate")
}

func (s *PostgresStore) ListLeads(ctx context.Context, filter LeadFilter) ([]model.Lead, error) {
	query := `SELECT id, company_name, industry, city, state, zip, phone, email, source, source_id,
	                 signal_type, signal_date, employees_estimated, score, priority, lead_type,
	                 stage, owner, raw_data, created_at
	          FROM leads WHERE true`
	args := []any{}
	argIdx := 1

	if filter.Priority != "" {
		query += fmt.Sprintf(` AND priority = $%d`, argIdx)
		args = append(args, string(filter.Priority))
		argIdx++
	}
	if filter.Source != "" {
		query += fmt.Sprintf(` AND source = $%d`, argIdx)
		args = append(args, filter.Source)
		argIdx++
	}
	if filter.State != "" {
		query += fmt.Sprintf(` AND state = $%d`, argIdx)
		args = append(args, filter.State)
		argIdx++
	}
	if filter.MinScore > 0 {
		query += fmt.Sprintf(` AND score >= $%d`, argIdx)
		args = append(args, filter.MinScore)
		argIdx++
	}
	query += ` ORDER BY score DESC, created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit)
	argIdx++

	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argIdx)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list leads")
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, eris.Wrap(rows.Err(), "postgres: list leads iterate")
}

func (s *PostgresStore) CountLeads(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, eris.Wrap(err, "postgres: count leads")
}

func scanLead(rows pgx.Rows) (model.Lead, error) {
	var l model.Lead
	var signalType, bucket, priority, leadType string
	var rawJSON []byte

	err := rows.Scan(&l.ID, &l.CompanyName, &l.Industry, &l.City, &l.State, &l.Zip,
		&l.Phone, &l.Email, &l.Source, &l.SourceID,
		&signalType, &l.SignalDate, &bucket, &l.Score, &priority, &leadType,
		&l.Stage, &l.Owner, &rawJSON, &l.CreatedAt)
	if err != nil {
		return model.Lead{}, eris.Wrap(err, "postgres: scan lead")
	}
	l.SignalType = model.SignalType(signalType)
	l.EmployeesEstimated = model.EmployeeBucket(bucket)
	l.Priority = model.Priority(priority)
	l.LeadType = model.LeadType(leadType)

	if len(rawJSON) > 0 {
		if err := json.Unmarshal(rawJSON, &l.RawData); err != nil {
			return model.Lead{}, eris.Wrap(err, "postgres: unmarshal raw_data")
		}
	}
	return l, nil
}
