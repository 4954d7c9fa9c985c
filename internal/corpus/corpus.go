// Package corpus reads directories of known texts and turns them into a
// signature catalog.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	authorship "github.com/samuel/go-authorship"
)

// ErrInvalidEncoding is returned for a file that isn't valid UTF-8.
var ErrInvalidEncoding = errors.New("corpus: file is not valid UTF-8")

// Document is a text read from disk. Name is the file's base name and
// identifies the document in a catalog.
type Document struct {
	Name string
	Path string
	Text string
}

// ReadFile reads a single UTF-8 text file.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return Document{}, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return Document{Name: filepath.Base(path), Path: path, Text: string(data)}, nil
}

// ReadDir reads every regular, non-hidden file in dir, sorted by name.
// Subdirectories are not descended into.
func ReadDir(dir string) ([]Document, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})

	docs := make([]Document, 0, len(files))
	for _, f := range files {
		if !f.Type().IsRegular() || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		doc, err := ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Signatures computes the signature of every document using at most workers
// goroutines (one per CPU when workers <= 0). Entries come back in the order
// of docs.
func Signatures(ctx context.Context, docs []Document, workers int, log *logrus.Entry) ([]authorship.Entry, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	entries := make([]authorship.Entry, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, doc := range docs {
		i, doc := i, doc
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sig, err := authorship.Compute(doc.Text)
			if err != nil {
				return fmt.Errorf("%s: %w", doc.Name, err)
			}
			log.WithFields(logrus.Fields{
				"document":  doc.Name,
				"signature": sig.String(),
			}).Debug("Computed signature")
			entries[i] = authorship.Entry{Name: doc.Name, Signature: sig}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadCatalog reads dir and returns a catalog of its documents' signatures,
// ordered by file name.
func LoadCatalog(ctx context.Context, dir string, workers int, log *logrus.Entry) (*authorship.Catalog, error) {
	docs, err := ReadDir(dir)
	if err != nil {
		return nil, err
	}
	entries, err := Signatures(ctx, docs, workers, log)
	if err != nil {
		return nil, err
	}
	log.WithField("dir", dir).Infof("Loaded %d known signatures", len(entries))
	return authorship.NewCatalog(entries...)
}
