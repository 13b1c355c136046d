// Package localstore is the client-side persistence layer: a small key/value
// table scoped by browser session. It holds exactly two kinds of values per
// session, the auth token and the serialized cart.
package localstore

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Fixed keys. Components agree on these instead of inventing ad hoc ones.
const (
	KeyToken = "jwt"
	KeyCart  = "cart"
)

type Store struct{ db *sqlx.DB }

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS storage(
  session_id TEXT NOT NULL,
  key        TEXT NOT NULL,
  value      TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(session_id, key)
);
CREATE INDEX IF NOT EXISTS idx_storage_session ON storage(session_id);
`
	_, err := db.Exec(schema)
	return err
}

// Get returns the stored value, or ("", false) when the key was never set.
func (s *Store) Get(sid, key string) (string, bool) {
	var v string
	if err := s.db.Get(&v, `SELECT value FROM storage WHERE session_id=? AND key=?`, sid, key); err != nil {
		return "", false
	}
	return v, true
}

func (s *Store) Put(sid, key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO storage(session_id,key,value,updated_at)
		VALUES(?,?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(session_id,key) DO UPDATE
		SET value=excluded.value, updated_at=CURRENT_TIMESTAMP
	`, sid, key, value)
	return err
}

func (s *Store) Delete(sid, key string) error {
	_, err := s.db.Exec(`DELETE FROM storage WHERE session_id=? AND key=?`, sid, key)
	return err
}
