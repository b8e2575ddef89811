// Package session persists per-manuscript state between runs: the last
// outline snapshot and the reading position. Storage is a single SQLite
// database keyed by manuscript ID.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"scribe/outline"
)

const schema = `
CREATE TABLE IF NOT EXISTS anchors (
	doc       TEXT    NOT NULL,
	pos       INTEGER NOT NULL,
	level     INTEGER NOT NULL,
	title     TEXT    NOT NULL,
	style     TEXT    NOT NULL,
	paragraph INTEGER NOT NULL,
	page      INTEGER NOT NULL,
	anchor    TEXT    NOT NULL,
	PRIMARY KEY (doc, pos)
);
CREATE TABLE IF NOT EXISTS positions (
	doc  TEXT PRIMARY KEY,
	page INTEGER NOT NULL
);
`

// Store wraps one database connection.
// NOTE: presently not to be used concurrently!
type Store struct {
	conn *sqlite.Conn
	log  *zap.Logger
}

// Open creates or opens the session database at path. An empty path gives
// a throwaway in-memory store.
func Open(path string, log *zap.Logger) (*Store, error) {
	flags := sqlite.OpenReadWrite | sqlite.OpenCreate
	if len(path) == 0 {
		path = ":memory:"
		flags |= sqlite.OpenMemory
	}

	conn, err := sqlite.OpenConn(path, flags)
	if err != nil {
		return nil, fmt.Errorf("unable to open session store %s: %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to prepare session schema: %w", err)
	}
	return &Store{conn: conn, log: log.Named("session")}, nil
}

func (s *Store) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// SaveOutline replaces the stored outline snapshot for a manuscript.
func (s *Store) SaveOutline(doc uuid.UUID, entries []outline.Entry) (err error) {
	defer sqlitex.Save(s.conn)(&err)

	if err = sqlitex.Execute(s.conn, `DELETE FROM anchors WHERE doc = ?`,
		&sqlitex.ExecOptions{Args: []any{doc.String()}}); err != nil {
		return fmt.Errorf("unable to clear outline for %s: %w", doc, err)
	}
	for i, e := range entries {
		err = sqlitex.Execute(s.conn,
			`INSERT INTO anchors (doc, pos, level, title, style, paragraph, page, anchor) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{doc.String(), i, e.Level, e.Title, e.StyleTag, e.Paragraph, e.Page, e.Anchor}})
		if err != nil {
			return fmt.Errorf("unable to store outline entry %d for %s: %w", i, doc, err)
		}
	}
	s.log.Debug("Outline snapshot saved", zap.Stringer("doc", doc), zap.Int("entries", len(entries)))
	return nil
}

// Outline returns the stored snapshot in saved order, nil when the
// manuscript has none.
func (s *Store) Outline(doc uuid.UUID) ([]outline.Entry, error) {
	var entries []outline.Entry
	err := sqlitex.Execute(s.conn,
		`SELECT level, title, style, paragraph, page, anchor FROM anchors WHERE doc = ? ORDER BY pos`,
		&sqlitex.ExecOptions{
			Args: []any{doc.String()},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				entries = append(entries, outline.Entry{
					Level:     stmt.ColumnInt(0),
					Title:     stmt.ColumnText(1),
					StyleTag:  stmt.ColumnText(2),
					Paragraph: stmt.ColumnInt(3),
					Page:      stmt.ColumnInt(4),
					Anchor:    stmt.ColumnText(5),
				})
				return nil
			}})
	if err != nil {
		return nil, fmt.Errorf("unable to load outline for %s: %w", doc, err)
	}
	return entries, nil
}

// SaveLastPage records the 0-based page the manuscript was left on.
func (s *Store) SaveLastPage(doc uuid.UUID, page int) error {
	if page < 0 {
		page = 0
	}
	err := sqlitex.Execute(s.conn,
		`INSERT INTO positions (doc, page) VALUES (?, ?) ON CONFLICT (doc) DO UPDATE SET page = excluded.page`,
		&sqlitex.ExecOptions{Args: []any{doc.String(), page}})
	if err != nil {
		return fmt.Errorf("unable to store position for %s: %w", doc, err)
	}
	return nil
}

// LastPage returns the stored page and whether the manuscript has one.
func (s *Store) LastPage(doc uuid.UUID) (int, bool, error) {
	page, found := 0, false
	err := sqlitex.Execute(s.conn, `SELECT page FROM positions WHERE doc = ?`,
		&sqlitex.ExecOptions{
			Args: []any{doc.String()},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				page, found = stmt.ColumnInt(0), true
				return nil
			}})
	if err != nil {
		return 0, false, fmt.Errorf("unable to load position for %s: %w", doc, err)
	}
	return page, found, nil
}
