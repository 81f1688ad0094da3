package sessionstore

import (
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/mentoralabs/mentora/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	id        INTEGER PRIMARY KEY CHECK (id = 1),
	token     TEXT    NOT NULL,
	user_json TEXT    NOT NULL DEFAULT '',
	saved_at  INTEGER NOT NULL
);`

// Open opens (creating if needed) the local session database.
func Open(conf *core.Config) (*sqlx.DB, error) {
	if dir := filepath.Dir(conf.SessionDBPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrap(err, "creating session db dir")
		}
	}
	db, err := sqlx.Connect("sqlite3", conf.SessionDBPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening session db")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating session table")
	}
	return db, nil
}
