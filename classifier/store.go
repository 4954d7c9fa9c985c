package classifier

import (
	authorship "github.com/samuel/go-authorship"
)

// ErrSignatureDoesNotExist is the error returned when no signature is stored under a name.
type ErrSignatureDoesNotExist string

func (e ErrSignatureDoesNotExist) Error() string {
	return "classifier: signature " + string(e) + " does not exist"
}

// Store is the storage interface for known signatures. Names are kept in the
// order they were first added.
type Store interface {
	Names() ([]string, error)
	Signature(name string) (authorship.Signature, error)
	Put(name string, sig authorship.Signature) error // insert or replace
	PutEntries(entries []authorship.Entry) error     // all or nothing
	Remove(name string) error
	Catalog() (*authorship.Catalog, error)
}

type localStore struct {
	names      []string
	signatures map[string]authorship.Signature
}

// NewLocalStore returns a new in-memory store
func NewLocalStore() Store {
	return &localStore{
		names:      make([]string, 0),
		signatures: make(map[string]authorship.Signature),
	}
}

func (ls *localStore) Names() ([]string, error) {
	return append([]string(nil), ls.names...), nil
}

func (ls *localStore) Signature(name string) (authorship.Signature, error) {
	sig, ok := ls.signatures[name]
	if !ok {
		return authorship.Signature{}, ErrSignatureDoesNotExist(name)
	}
	return sig, nil
}

func (ls *localStore) Put(name string, sig authorship.Signature) error {
	if _, ok := ls.signatures[name]; !ok {
		ls.names = append(ls.names, name)
	}
	ls.signatures[name] = sig
	return nil
}

func (ls *localStore) PutEntries(entries []authorship.Entry) error {
	for _, e := range entries {
		if err := ls.Put(e.Name, e.Signature); err != nil {
			return err
		}
	}
	return nil
}

func (ls *localStore) Remove(name string) error {
	if _, ok := ls.signatures[name]; !ok {
		return ErrSignatureDoesNotExist(name)
	}
	delete(ls.signatures, name)
	for i, n := range ls.names {
		if n == name {
			ls.names = append(ls.names[:i], ls.names[i+1:]...)
			break
		}
	}
	return nil
}

func (ls *localStore) Catalog() (*authorship.Catalog, error) {
	entries := make([]authorship.Entry, len(ls.names))
	for i, n := range ls.names {
		entries[i] = authorship.Entry{Name: n, Signature: ls.signatures[n]}
	}
	return authorship.NewCatalog(entries...)
}
