package classifier

import (
	"database/sql"

	authorship "github.com/samuel/go-authorship"
)

const (
	signaturesTable = "signatures"

	// Schema creates the table used by the SQL store.
	Schema = `CREATE TABLE IF NOT EXISTS ` + signaturesTable + ` (
        id INTEGER PRIMARY KEY ASC,
        name TEXT NOT NULL,
        word_length REAL NOT NULL,
        type_token REAL NOT NULL,
        hapax REAL NOT NULL,
        sentence_length REAL NOT NULL,
        sentence_complexity REAL NOT NULL,
        UNIQUE(name))`

	signatureColumns = `"word_length", "type_token", "hapax", "sentence_length", "sentence_complexity"`
	signaturesQuery  = `SELECT "name", ` + signatureColumns + ` FROM ` + signaturesTable + ` ORDER BY "id"`
	signatureQuery   = `SELECT "name", ` + signatureColumns + ` FROM ` + signaturesTable + ` WHERE "name" = ?`
	upsertQuery      = `INSERT INTO ` + signaturesTable + ` ("name", ` + signatureColumns + `) VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT("name") DO UPDATE SET
        "word_length" = excluded."word_length",
        "type_token" = excluded."type_token",
        "hapax" = excluded."hapax",
        "sentence_length" = excluded."sentence_length",
        "sentence_complexity" = excluded."sentence_complexity"`
	deleteQuery = `DELETE FROM ` + signaturesTable + ` WHERE "name" = ?`
)

type sqlStore struct {
	db              *sql.DB
	signaturesQuery *sql.Stmt
	signatureQuery  *sql.Stmt
	upsertQuery     *sql.Stmt
	deleteQuery     *sql.Stmt
}

// NewSQLStore returns an SQL database backed Store. The signatures table
// (see Schema) must already exist.
func NewSQLStore(db *sql.DB) (Store, error) {
	s := &sqlStore{
		db: db,
	}
	var err error
	if s.signaturesQuery, err = db.Prepare(signaturesQuery); err != nil {
		return nil, err
	}
	if s.signatureQuery, err = db.Prepare(signatureQuery); err != nil {
		return nil, err
	}
	if s.upsertQuery, err = db.Prepare(upsertQuery); err != nil {
		return nil, err
	}
	s.deleteQuery, err = db.Prepare(deleteQuery)
	return s, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (authorship.Entry, error) {
	var e authorship.Entry
	sig := &e.Signature
	err := row.Scan(&e.Name, &sig[0], &sig[1], &sig[2], &sig[3], &sig[4])
	return e, err
}

func (s *sqlStore) entries() ([]authorship.Entry, error) {
	rows, err := s.signaturesQuery.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]authorship.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *sqlStore) Names() ([]string, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

func (s *sqlStore) Signature(name string) (authorship.Signature, error) {
	e, err := scanEntry(s.signatureQuery.QueryRow(name))
	if err == sql.ErrNoRows {
		return authorship.Signature{}, ErrSignatureDoesNotExist(name)
	}
	return e.Signature, err
}

func (s *sqlStore) Put(name string, sig authorship.Signature) error {
	_, err := s.upsertQuery.Exec(name, sig[0], sig[1], sig[2], sig[3], sig[4])
	return err
}

func (s *sqlStore) PutEntries(entries []authorship.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt := tx.Stmt(s.upsertQuery)
	for _, e := range entries {
		sig := e.Signature
		if _, err := stmt.Exec(e.Name, sig[0], sig[1], sig[2], sig[3], sig[4]); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *sqlStore) Remove(name string) error {
	res, err := s.deleteQuery.Exec(name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n != 1 {
		return ErrSignatureDoesNotExist(name)
	}
	return nil
}

func (s *sqlStore) Catalog() (*authorship.Catalog, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}
	return authorship.NewCatalog(entries...)
}
