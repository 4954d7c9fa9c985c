package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorship "github.com/samuel/go-authorship"
)

const pearlText = "A pearl! Pearl! Lustrous pearl! Rare, what a nice find."

// isolate keeps tests away from the user's config file and AUTHORSHIP_* variables.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AUTHORSHIP_WEIGHTS", "AUTHORSHIP_KNOWN_DIR", "AUTHORSHIP_DATABASE",
		"AUTHORSHIP_WORKERS", "AUTHORSHIP_LOG_LEVEL", "AUTHORSHIP_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func knownDir(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, dir, "terse.txt", "Go. Run. Stop now. See it. Eat up.")
	writeFile(t, dir, "verbose.txt", "When the long evening finally settled over the quiet harbour, the fishermen, "+
		"weary and silent, gathered their nets; and the old keeper, remembering earlier winters, lit his lamp.")
	writeFile(t, dir, "middle.txt", "The dog ran to the park. It chased a ball, then it slept.")
	return dir
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "authorship version "+version+"\n", out)

	out, err = run(t, "version", "--json")
	require.NoError(t, err)
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, version, v["version"])
}

func TestSignature(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "pearl.txt", pearlText)

	out, err := run(t, "signature", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "file\tword length\ttype-token ratio\thapax ratio\tsentence length\tsentence complexity", lines[0])
	assert.Equal(t, path+"\t4.1000\t0.7000\t0.5000\t2.5000\t1.2500", lines[1])

	out, err = run(t, "signature", "--json", path)
	require.NoError(t, err)
	var sigs []signatureOutput
	require.NoError(t, json.Unmarshal([]byte(out), &sigs))
	require.Len(t, sigs, 1)
	assert.InDelta(t, 1.25, sigs[0].Signature[authorship.FeatureSentenceComplexity], 1e-9)
}

func TestSignatureEmptyFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "blank.txt", " -- ... ")

	_, err := run(t, "signature", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, authorship.ErrEmptyInput)
	assert.Contains(t, err.Error(), "no words")
}

func TestIdentifyKnownDir(t *testing.T) {
	isolate(t)
	dir := knownDir(t)
	unknown := writeFile(t, t.TempDir(), "unknown.txt", "Sit. Go home. Eat. Be calm now.")

	out, err := run(t, "identify", "--known", dir, unknown)
	require.NoError(t, err)
	assert.Equal(t, "terse.txt\n", out)

	out, err = run(t, "identify", "--known", dir, "--all", unknown)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "rank\tname\tscore", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1\tterse.txt\t"), lines[1])
}

func TestIdentifyJSONOwnText(t *testing.T) {
	isolate(t)
	dir := knownDir(t)

	out, err := run(t, "identify", "--json", "--known", dir, filepath.Join(dir, "middle.txt"))
	require.NoError(t, err)

	var res identifyOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "middle.txt", res.Match)
	assert.Equal(t, sourceKnownDir, res.Source)
	require.Len(t, res.Scores, 3)
	assert.Equal(t, 0.0, res.Scores[0].Score)
}

func TestIdentifyReference(t *testing.T) {
	isolate(t)
	unknown := writeFile(t, t.TempDir(), "unknown.txt", pearlText)

	out, err := run(t, "identify", "--json", unknown)
	require.NoError(t, err)

	var res identifyOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, sourceReference, res.Source)
	assert.Len(t, res.Scores, 4)
	assert.Equal(t, res.Scores[0].Name, res.Match)

	sig, err := authorship.Compute(pearlText)
	require.NoError(t, err)
	want, err := authorship.BestMatch(authorship.ReferenceCatalog(), sig, authorship.DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, want, res.Match)
}

func TestIdentifyErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := run(t, "identify", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	blank := writeFile(t, dir, "blank.txt", "?!")
	_, err = run(t, "identify", blank)
	assert.ErrorIs(t, err, authorship.ErrEmptyInput)

	_, err = run(t, "identify")
	assert.Error(t, err)
}

func TestInvalidWeights(t *testing.T) {
	isolate(t)
	t.Setenv("AUTHORSHIP_WEIGHTS", "1,2,3")

	_, err := run(t, "catalog")
	assert.ErrorIs(t, err, authorship.ErrMalformedWeights)
}

func TestCatalogReference(t *testing.T) {
	isolate(t)

	out, err := run(t, "catalog")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[1], "Arthur_Conan_Doyle.txt\t4.3746\t"), lines[1])
	assert.True(t, strings.HasPrefix(lines[4], "mark_twain.txt\t"), lines[4])
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	dir := knownDir(t)
	cfgPath := writeFile(t, t.TempDir(), "authorship.yaml", "known_dir: "+dir+"\nworkers: 2\n")

	out, err := run(t, "catalog", "--config", cfgPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "middle.txt\t"), lines[1])
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"name", "score"}, [][]string{{"dan", "1.0000"}, {"leo"}},
		[]columnAlignment{alignLeft, alignRight})
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "dan")
	assert.Contains(t, out, "1.0000")
	assert.Equal(t, "", renderTable(nil, nil, nil))
}
