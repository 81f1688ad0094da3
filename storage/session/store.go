package sessionstore

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mentoralabs/mentora/core/user"
)

type sessionRow struct {
	ID       int    `db:"id"`
	Token    string `db:"token"`
	UserJSON string `db:"user_json"`
	SavedAt  int64  `db:"saved_at"`
}

type store struct {
	db *sqlx.DB
}

var _ user.Store = (*store)(nil)

func NewStore(db *sqlx.DB) user.Store {
	return &store{db: db}
}

func (s *store) get() (sessionRow, error) {
	var row sessionRow
	err := s.db.Get(&row, `SELECT id, token, user_json, saved_at FROM session WHERE id = 1`)
	return row, err
}

func (s *store) Token() (string, error) {
	row, err := s.get()
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "reading session")
	}
	return row.Token, nil
}

func (s *store) SaveToken(token string) error {
	_, err := s.db.Exec(
		`INSERT INTO session (id, token, saved_at) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at`,
		token, time.Now().UTC().Unix(),
	)
	return errors.Wrap(err, "saving token")
}

func (s *store) User() (user.User, error) {
	row, err := s.get()
	if err == sql.ErrNoRows || (err == nil && row.UserJSON == "") {
		return user.User{}, user.ErrNotAuthenticated
	}
	if err != nil {
		return user.User{}, errors.Wrap(err, "reading session")
	}
	var usr user.User
	if err := json.Unmarshal([]byte(row.UserJSON), &usr); err != nil {
		return user.User{}, errors.Wrap(err, "decoding cached user")
	}
	return usr, nil
}

func (s *store) SaveUser(usr user.User) error {
	data, err := json.Marshal(usr)
	if err != nil {
		return errors.Wrap(err, "encoding user")
	}
	res, err := s.db.Exec(`UPDATE session SET user_json = ? WHERE id = 1`, string(data))
	if err != nil {
		return errors.Wrap(err, "caching user")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("no session to attach user to")
	}
	return nil
}

func (s *store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE id = 1`)
	return errors.Wrap(err, "clearing session")
}
