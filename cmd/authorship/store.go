package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	authorship "github.com/samuel/go-authorship"
	"github.com/samuel/go-authorship/classifier"
	"github.com/samuel/go-authorship/internal/corpus"
)

// Catalog sources, in order of precedence.
const (
	sourceKnownDir  = "known-dir"
	sourceDatabase  = "database"
	sourceReference = "reference"
)

// openDatabase opens the sqlite signature database at path, creating the
// signatures table if needed.
func openDatabase(path string) (*sql.DB, classifier.Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(classifier.Schema); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create signatures table: %w", err)
	}
	store, err := classifier.NewSQLStore(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to prepare signature store: %w", err)
	}
	return db, store, nil
}

// openStore returns the store holding the known signatures selected by the
// configuration, the name of its source and a function releasing it.
func (a *app) openStore(ctx context.Context) (classifier.Store, string, func(), error) {
	switch {
	case a.cfg.KnownDir != "":
		catalog, err := corpus.LoadCatalog(ctx, a.cfg.KnownDir, a.cfg.Workers, a.log)
		if err != nil {
			return nil, "", nil, err
		}
		store, err := localStore(catalog)
		return store, sourceKnownDir, func() {}, err
	case a.cfg.Database != "":
		db, store, err := openDatabase(a.cfg.Database)
		if err != nil {
			return nil, "", nil, err
		}
		return store, sourceDatabase, func() { db.Close() }, nil
	default:
		store, err := localStore(authorship.ReferenceCatalog())
		return store, sourceReference, func() {}, err
	}
}

func localStore(catalog *authorship.Catalog) (classifier.Store, error) {
	store := classifier.NewLocalStore()
	if err := store.PutEntries(catalog.Entries()); err != nil {
		return nil, err
	}
	return store, nil
}
