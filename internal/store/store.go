// Package store persists analysis runs in a local SQLite database so
// past results can be listed, reloaded, and browsed without re-running
// the pipeline.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/papapumpkin/plexus/internal/analysis"
	"github.com/papapumpkin/plexus/internal/network"
	"github.com/papapumpkin/plexus/internal/pairs"
)

// ErrRunNotFound is returned when a run id has no stored row.
var ErrRunNotFound = errors.New("run not found")

// Pair table kinds.
const (
	kindUnobserved = "unobserved"
	kindCrossGroup = "cross_group"
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS
// makes it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    run_id          TEXT PRIMARY KEY,
    dataset_digest  TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    proteins        INTEGER NOT NULL DEFAULT 0,
    raw_edges       INTEGER NOT NULL DEFAULT 0,
    unique_edges    INTEGER NOT NULL DEFAULT 0,
    duplicate_edges INTEGER NOT NULL DEFAULT 0,
    self_edges      INTEGER NOT NULL DEFAULT 0,
    edge_proteins   INTEGER NOT NULL DEFAULT 0,
    group_count     INTEGER NOT NULL DEFAULT 0,
    universe_pairs  INTEGER NOT NULL DEFAULT 0,
    unobserved      INTEGER NOT NULL DEFAULT 0,
    cross_group     INTEGER NOT NULL DEFAULT 0,
    elapsed_ms      INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS group_members (
    run_id     TEXT NOT NULL,
    group_id   INTEGER NOT NULL,
    position   INTEGER NOT NULL,
    protein_id TEXT NOT NULL,
    PRIMARY KEY (run_id, group_id, position)
);

CREATE TABLE IF NOT EXISTS pairs (
    run_id        TEXT NOT NULL,
    kind          TEXT NOT NULL,
    position      INTEGER NOT NULL,
    entity_a      TEXT NOT NULL,
    entity_b      TEXT NOT NULL,
    compartment_a TEXT NOT NULL DEFAULT '',
    compartment_b TEXT NOT NULL DEFAULT '',
    group_a       INTEGER,
    group_b       INTEGER,
    PRIMARY KEY (run_id, kind, position)
);
`

// RunInfo summarizes a stored run.
type RunInfo struct {
	RunID     string
	Digest    string
	CreatedAt time.Time
	Stats     analysis.Stats
}

// Store persists runs in a SQLite database in WAL mode.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath, enables WAL mode and
// a busy timeout, and creates the schema tables if they do not exist.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// Limit to one connection. SQLite only supports a single writer;
	// one connection avoids SQLITE_BUSY contention between pooled
	// connections that each need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveRun upserts a completed run: the stats row plus the full group
// and pair listings. Saving an existing run id replaces its contents.
func (s *Store) SaveRun(ctx context.Context, res *analysis.Result, digest string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx for run %q: %w", res.RunID, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	st := res.Stats
	const upsert = `
		INSERT INTO runs (run_id, dataset_digest, created_at,
			proteins, raw_edges, unique_edges, duplicate_edges, self_edges,
			edge_proteins, group_count, universe_pairs, unobserved, cross_group,
			elapsed_ms)
		VALUES (?, ?, CURRENT_TIMESTAMP, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			dataset_digest  = excluded.dataset_digest,
			created_at      = CURRENT_TIMESTAMP,
			proteins        = excluded.proteins,
			raw_edges       = excluded.raw_edges,
			unique_edges    = excluded.unique_edges,
			duplicate_edges = excluded.duplicate_edges,
			self_edges      = excluded.self_edges,
			edge_proteins   = excluded.edge_proteins,
			group_count     = excluded.group_count,
			universe_pairs  = excluded.universe_pairs,
			unobserved      = excluded.unobserved,
			cross_group     = excluded.cross_group,
			elapsed_ms      = excluded.elapsed_ms`
	if _, err := tx.ExecContext(ctx, upsert, res.RunID, digest,
		st.Proteins, st.RawEdges, st.UniqueEdges, st.DuplicateEdges, st.SelfEdges,
		st.EdgeProteins, st.Groups, st.UniversePairs, st.Unobserved, st.CrossGroup,
		st.Elapsed.Milliseconds()); err != nil {
		return fmt.Errorf("store: upsert run %q: %w", res.RunID, err)
	}

	// Replace the collections wholesale; position columns preserve order.
	for _, table := range []string{"group_members", "pairs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE run_id = ?", res.RunID); err != nil {
			return fmt.Errorf("store: clear %s for run %q: %w", table, res.RunID, err)
		}
	}

	memberStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO group_members (run_id, group_id, position, protein_id) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("store: prepare member insert: %w", err)
	}
	defer memberStmt.Close()
	for _, g := range res.Groups {
		for i, m := range g.Members {
			if _, err := memberStmt.ExecContext(ctx, res.RunID, g.ID, i, m); err != nil {
				return fmt.Errorf("store: insert member %q of group %d: %w", m, g.ID, err)
			}
		}
	}

	pairStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pairs (run_id, kind, position,
			entity_a, entity_b, compartment_a, compartment_b, group_a, group_b)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare pair insert: %w", err)
	}
	defer pairStmt.Close()
	for kind, rows := range map[string][]pairs.Row{
		kindUnobserved: res.Unobserved,
		kindCrossGroup: res.CrossGroup,
	} {
		for i, r := range rows {
			var ga, gb any
			if r.HasGroupA {
				ga = r.GroupA
			}
			if r.HasGroupB {
				gb = r.GroupB
			}
			if _, err := pairStmt.ExecContext(ctx, res.RunID, kind, i,
				r.Pair.A, r.Pair.B, r.CompartmentA, r.CompartmentB, ga, gb); err != nil {
				return fmt.Errorf("store: insert %s pair %s/%s: %w", kind, r.Pair.A, r.Pair.B, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit run %q: %w", res.RunID, err)
	}
	return nil
}

// ListRuns returns every stored run, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	const q = `SELECT run_id, dataset_digest, created_at,
			proteins, raw_edges, unique_edges, duplicate_edges, self_edges,
			edge_proteins, group_count, universe_pairs, unobserved, cross_group,
			elapsed_ms
		FROM runs ORDER BY created_at DESC, run_id DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var infos []RunInfo
	for rows.Next() {
		info, err := scanRunInfo(rows)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate runs: %w", err)
	}
	return infos, nil
}

// GetRun returns the summary row for a single run.
func (s *Store) GetRun(ctx context.Context, runID string) (RunInfo, error) {
	const q = `SELECT run_id, dataset_digest, created_at,
			proteins, raw_edges, unique_edges, duplicate_edges, self_edges,
			edge_proteins, group_count, universe_pairs, unobserved, cross_group,
			elapsed_ms
		FROM runs WHERE run_id = ?`
	row := s.db.QueryRowContext(ctx, q, runID)
	info, err := scanRunInfo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunInfo{}, fmt.Errorf("%w: %q", ErrRunNotFound, runID)
	}
	if err != nil {
		return RunInfo{}, err
	}
	return info, nil
}

// LoadRun reconstructs a full analysis result from storage.
func (s *Store) LoadRun(ctx context.Context, runID string) (*analysis.Result, error) {
	info, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	groups, index, err := s.loadGroups(ctx, runID)
	if err != nil {
		return nil, err
	}
	unobserved, err := s.loadPairs(ctx, runID, kindUnobserved)
	if err != nil {
		return nil, err
	}
	crossGroup, err := s.loadPairs(ctx, runID, kindCrossGroup)
	if err != nil {
		return nil, err
	}

	return &analysis.Result{
		RunID:      info.RunID,
		Stats:      info.Stats,
		Groups:     groups,
		GroupIndex: index,
		Unobserved: unobserved,
		CrossGroup: crossGroup,
	}, nil
}

// DeleteRun removes a run and all its stored rows.
func (s *Store) DeleteRun(ctx context.Context, runID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx for delete %q: %w", runID, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	res, err := tx.ExecContext(ctx, "DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("store: delete run %q: %w", runID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete run rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrRunNotFound, runID)
	}
	for _, table := range []string{"group_members", "pairs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE run_id = ?", runID); err != nil {
			return fmt.Errorf("store: delete %s for run %q: %w", table, runID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit delete %q: %w", runID, err)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) loadGroups(ctx context.Context, runID string) ([]network.Group, map[string]int, error) {
	const q = `SELECT group_id, protein_id FROM group_members
		WHERE run_id = ? ORDER BY group_id, position`
	rows, err := s.db.QueryContext(ctx, q, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("store: query groups: %w", err)
	}
	defer rows.Close()

	var groups []network.Group
	index := make(map[string]int)
	for rows.Next() {
		var id int
		var member string
		if err := rows.Scan(&id, &member); err != nil {
			return nil, nil, fmt.Errorf("store: scan group member: %w", err)
		}
		if len(groups) == 0 || groups[len(groups)-1].ID != id {
			groups = append(groups, network.Group{ID: id})
		}
		last := &groups[len(groups)-1]
		last.Members = append(last.Members, member)
		index[member] = id
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("store: iterate group members: %w", err)
	}
	if len(groups) == 0 {
		return nil, nil, nil
	}
	return groups, index, nil
}

func (s *Store) loadPairs(ctx context.Context, runID, kind string) ([]pairs.Row, error) {
	const q = `SELECT entity_a, entity_b, compartment_a, compartment_b, group_a, group_b
		FROM pairs WHERE run_id = ? AND kind = ? ORDER BY position`
	rows, err := s.db.QueryContext(ctx, q, runID, kind)
	if err != nil {
		return nil, fmt.Errorf("store: query %s pairs: %w", kind, err)
	}
	defer rows.Close()

	var out []pairs.Row
	for rows.Next() {
		var r pairs.Row
		var ga, gb sql.NullInt64
		if err := rows.Scan(&r.Pair.A, &r.Pair.B, &r.CompartmentA, &r.CompartmentB, &ga, &gb); err != nil {
			return nil, fmt.Errorf("store: scan %s pair: %w", kind, err)
		}
		if ga.Valid {
			r.GroupA, r.HasGroupA = int(ga.Int64), true
		}
		if gb.Valid {
			r.GroupB, r.HasGroupB = int(gb.Int64), true
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate %s pairs: %w", kind, err)
	}
	return out, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRunInfo(row rowScanner) (RunInfo, error) {
	var info RunInfo
	var ts string
	var elapsedMS int64
	if err := row.Scan(&info.RunID, &info.Digest, &ts,
		&info.Stats.Proteins, &info.Stats.RawEdges, &info.Stats.UniqueEdges,
		&info.Stats.DuplicateEdges, &info.Stats.SelfEdges,
		&info.Stats.EdgeProteins, &info.Stats.Groups, &info.Stats.UniversePairs,
		&info.Stats.Unobserved, &info.Stats.CrossGroup, &elapsedMS); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunInfo{}, err
		}
		return RunInfo{}, fmt.Errorf("store: scan run: %w", err)
	}
	createdAt, err := parseTimestamp(ts)
	if err != nil {
		return RunInfo{}, fmt.Errorf("store: parse run timestamp: %w", err)
	}
	info.CreatedAt = createdAt
	info.Stats.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	return info, nil
}

// timestampFormats lists the formats SQLite drivers may produce for
// CURRENT_TIMESTAMP. modernc.org/sqlite typically returns RFC 3339,
// while canonical SQLite returns the space-separated DateTime format.
var timestampFormats = []string{
	time.RFC3339,
	time.DateTime,
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", s)
}
