package corpus_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorship "github.com/samuel/go-authorship"
	"github.com/samuel/go-authorship/internal/corpus"
)

func quietLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func writeDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

var known = map[string]string{
	"mark_twain.txt":         "You don't know about me without you have read a book. That is nothing!",
	"Arthur_Conan_Doyle.txt": "To Sherlock Holmes she is always the woman. I have seldom heard him mention her under any other name.",
	"jane_austen.txt":        "It is a truth universally acknowledged, that a single man in possession of a good fortune, must be in want of a wife.",
	".hidden":                "ignored",
}

func TestReadDir(t *testing.T) {
	dir := writeDir(t, known)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	docs, err := corpus.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, d := range docs {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Arthur_Conan_Doyle.txt", "jane_austen.txt", "mark_twain.txt"}, names)
	assert.Equal(t, known["jane_austen.txt"], docs[1].Text)
	assert.Equal(t, filepath.Join(dir, "jane_austen.txt"), docs[1].Path)
}

func TestReadFileInvalidUTF8(t *testing.T) {
	dir := writeDir(t, map[string]string{"bad.txt": "caf\xe9"})

	_, err := corpus.ReadFile(filepath.Join(dir, "bad.txt"))
	assert.True(t, errors.Is(err, corpus.ErrInvalidEncoding))

	_, err = corpus.ReadDir(dir)
	assert.True(t, errors.Is(err, corpus.ErrInvalidEncoding))
}

func TestLoadCatalog(t *testing.T) {
	dir := writeDir(t, known)

	for _, workers := range []int{0, 1, 2, 16} {
		catalog, err := corpus.LoadCatalog(context.Background(), dir, workers, quietLog())
		require.NoError(t, err)
		assert.Equal(t, []string{"Arthur_Conan_Doyle.txt", "jane_austen.txt", "mark_twain.txt"}, catalog.Names())

		want, err := authorship.Compute(known["mark_twain.txt"])
		require.NoError(t, err)
		got, ok := catalog.Lookup("mark_twain.txt")
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestLoadCatalogEmptyDocument(t *testing.T) {
	dir := writeDir(t, map[string]string{
		"good.txt":  "Plenty of words here.",
		"blank.txt": "  ...  ",
	})

	_, err := corpus.LoadCatalog(context.Background(), dir, 2, quietLog())
	require.Error(t, err)
	assert.True(t, errors.Is(err, authorship.ErrEmptyInput))
	assert.Contains(t, err.Error(), "blank.txt")
}

func TestLoadCatalogMissingDir(t *testing.T) {
	_, err := corpus.LoadCatalog(context.Background(), filepath.Join(t.TempDir(), "nope"), 1, quietLog())
	assert.Error(t, err)
}

func TestSignaturesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := []corpus.Document{{Name: "a", Text: "Some text."}}
	_, err := corpus.Signatures(ctx, docs, 1, quietLog())
	assert.True(t, errors.Is(err, context.Canceled))
}
