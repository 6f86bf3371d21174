package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/gnolang/sfxtree/internal/tree"
	tt "github.com/gnolang/sfxtree/internal/types"
	"github.com/gnolang/sfxtree/sfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeConfig(t *testing.T, dir, alphabet string) string {
	t.Helper()
	config := sfx.DefaultConfig()
	config.Alphabet = alphabet
	config.Log.Level = "error"
	path := filepath.Join(dir, "sfxtree.yaml")
	require.NoError(t, sfx.WriteConfig(path, config))
	return path
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.yaml")

	out, err := run(t, "init", "--config", path, "--alphabet", "protein", "--construction", "naive")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration file created/updated: "+path)

	config, err := sfx.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "protein", config.Alphabet)
	assert.Equal(t, "naive", config.Construction)

	_, err = run(t, "init", "--config", path, "--construction", "ukkonen")
	assert.Error(t, err)
}

func TestStatsJSON(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "abn")
	input := writeFile(t, dir, "banana.fa", ">fruit\nbanana\n")

	out, err := run(t, "stats", "--config", cfg, "--json", "--verify", "-p", "ana", "-p", "nab", input)
	require.NoError(t, err)

	var report tt.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 11, report.Metrics.Nodes)
	assert.Equal(t, 7, report.Metrics.Leaves)
	assert.Equal(t, 4, report.Metrics.Internal)
	assert.InDelta(t, 1.5, report.Metrics.AverageInternalDepth, 1e-9)
	assert.Equal(t, "ana", report.Metrics.LongestRepeat)
	require.Len(t, report.Occurrences, 2)
	assert.Equal(t, []int{0}, report.Occurrences[0].Inputs)
	assert.Empty(t, report.Occurrences[1].Inputs)
}

func TestStatsFromList(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "dna")
	writeFile(t, dir, "a.fa", ">a\nACGTACGT\n")
	writeFile(t, dir, "b.fa", ">b\nTTACGA\n")
	list := writeFile(t, dir, "inputs.txt", "a.fa\nb.fa\n")

	outPath := filepath.Join(dir, "report.json")
	out, err := run(t, "stats", "--config", cfg, "--list", list, "--json", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	d, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var report tt.Report
	require.NoError(t, json.Unmarshal(d, &report))
	require.Len(t, report.Inputs, 2)
	assert.Equal(t, "b", report.Inputs[1].Name)
	assert.Equal(t, 8+1+6+1, report.Metrics.Leaves)

	text, err := run(t, "stats", "--config", cfg, "--list", list)
	require.NoError(t, err)
	assert.Contains(t, text, "longest repeat: ACGT")
}

func TestStatsErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "dna")

	_, err := run(t, "stats", "--config", cfg)
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.fa", ">bad\nACGN\n")
	_, err = run(t, "stats", "--config", cfg, bad)
	require.Error(t, err)
	assert.True(t, tree.IsSymbolError(err))

	_, err = run(t, "stats", "--config", filepath.Join(dir, "missing.yaml"), bad)
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "abcx")
	input := writeFile(t, dir, "pair.fa", ">first\nxabxac\n>second\nxabxaabxac\n")

	out, err := run(t, "fingerprint", "--config", cfg, input)
	require.NoError(t, err)
	assert.Equal(t, ">first\n0: xabxac\n>second\n0: xabxaa\n", out)

	out, err = run(t, "fingerprint", "--config", cfg, "--json", input)
	require.NoError(t, err)
	var prints []tt.Fingerprints
	require.NoError(t, json.Unmarshal([]byte(out), &prints))
	require.Len(t, prints, 2)
	assert.Equal(t, "second", prints[1].Input.Name)
}

func TestBWT(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "abn")
	input := writeFile(t, dir, "banana.fa", ">fruit\nbanana\n")

	out, err := run(t, "bwt", "--config", cfg, "--verify", input)
	require.NoError(t, err)
	assert.Equal(t, "annb$aa\n", out)

	outPath := filepath.Join(dir, "banana.bwt")
	_, err = run(t, "bwt", "--config", cfg, "-o", outPath, input)
	require.NoError(t, err)
	d, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "a\nn\nn\nb\n$\na\na\n", string(d))

	_, err = run(t, "bwt", "--config", cfg, "-o", filepath.Join(dir, "missing", "x.bwt"), input)
	assert.Error(t, err)

	pair := writeFile(t, dir, "pair.fa", ">a\nban\n>b\nnab\n")
	_, err = run(t, "bwt", "--config", cfg, pair)
	assert.ErrorIs(t, err, tree.ErrMultipleStrings)
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "abn")
	input := writeFile(t, dir, "banana.fa", ">fruit\nbanana\n")

	out, err := run(t, "dump", "--config", cfg, input)
	require.NoError(t, err)
	assert.Equal(t, 11, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "root [0 sd=0]"))

	out, err = run(t, "dump", "--config", cfg, "--children", input)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "\n"))

	out, err = run(t, "dump", "--config", cfg, "--path", "--node", "1", input)
	require.NoError(t, err)
	assert.Equal(t, "|banana$\n", out)

	_, err = run(t, "dump", "--config", cfg, "--node", "99", input)
	assert.Error(t, err)
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "abn")
	input := writeFile(t, dir, "banana.fa", ">fruit\nbanana\n")
	logPath := filepath.Join(dir, "sfxtree.log")

	_, err := run(t, "stats", "--config", cfg, "--log-level", "info", "--log-file", logPath, input)
	require.NoError(t, err)

	d, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(d), "Built suffix tree")

	_, err = run(t, "stats", "--config", cfg, "--log-level", "loud", input)
	assert.Error(t, err)
}
