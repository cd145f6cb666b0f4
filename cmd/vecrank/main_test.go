package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecrank"
	"github.com/hupe1980/vecrank/blobstore"
	"github.com/hupe1980/vecrank/dataset"
	"github.com/hupe1980/vecrank/model"
)

const features = `A,0,0
B,1,0
C,0,2
D,3,3
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"--no-color"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRank(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "features.csv", features)

	code, out, _ := execute(t, "--store", dir, "A", "features.csv", "2", "ssd")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "Top 2 matches for A (ssd):\n  1. B\n  2. C\n", out)

	code, out, _ = execute(t, "--store", "file://"+dir, "--scores", "--workers", "3", "A", "features.csv", "5", "sum-of-squared-difference")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "Top 5 matches for A (sum-of-squared-difference):\n  1. B  1\n  2. C  4\n  3. D  18\n", out)

	code, out, _ = execute(t, "--store", dir, "--exclude", "B,C", "A", "features.csv", "2", "ssd")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "Top 2 matches for A (ssd):\n  1. D\n", out)
}

func TestRank_LocalPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "features.csv", features)

	code, out, _ := execute(t, "D", filepath.Join(dir, "features.csv"), "1", "ssd")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "Top 1 matches for D (ssd):\n  1. C\n", out)
}

func TestRank_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "features.csv", features)
	writeFile(t, dir, "dup.csv", "A,0\nA,1\n")
	writeFile(t, dir, "ragged.csv", "A,0,0\nB,1\n")
	writeFile(t, dir, "broken.csv", "A,0\nB,x\n")
	writeFile(t, dir, "empty.csv", "")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "missing args", args: []string{"A", "features.csv"}, code: exitUsage},
		{name: "non-numeric N", args: []string{"A", "features.csv", "three", "ssd"}, code: exitUsage},
		{name: "zero N", args: []string{"A", "features.csv", "0", "ssd"}, code: exitUsage},
		{name: "unknown metric", args: []string{"A", "features.csv", "3", "cosine"}, code: exitUsage},
		{name: "unknown flag", args: []string{"--bogus", "A", "features.csv", "3", "ssd"}, code: exitUsage},
		{name: "bad workers", args: []string{"--workers", "0", "A", "features.csv", "3", "ssd"}, code: exitUsage},
		{name: "bad codec", args: []string{"--codec", "xml", "A", "features.csv", "3", "ssd"}, code: exitUsage},
		{name: "bad log level", args: []string{"--log-level", "loud", "A", "features.csv", "3", "ssd"}, code: exitUsage},
		{name: "query not found", args: []string{"Z", "features.csv", "3", "ssd"}, code: exitNotFound},
		{name: "duplicate id", args: []string{"A", "dup.csv", "1", "ssd"}, code: exitIntegrity},
		{name: "dimension mismatch", args: []string{"A", "ragged.csv", "1", "ssd"}, code: exitIntegrity},
		{name: "parse error", args: []string{"A", "broken.csv", "1", "ssd"}, code: exitIntegrity},
		{name: "empty file", args: []string{"A", "empty.csv", "1", "ssd"}, code: exitIntegrity},
		{name: "missing file", args: []string{"A", "absent.csv", "1", "ssd"}, code: exitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, stderr := execute(t, append([]string{"--store", dir}, tt.args...)...)
			assert.Equal(t, tt.code, code, stderr)
			assert.Empty(t, out)
			assert.Contains(t, stderr, "error: ")
		})
	}
}

func TestListMetrics(t *testing.T) {
	code, out, _ := execute(t, "--list-metrics")
	require.Equal(t, exitOK, code)

	assert.Contains(t, out, "sum-of-squared-difference")
	assert.Contains(t, out, "histogram-intersection")
	assert.Contains(t, out, "multi-region-histogram")
	assert.Contains(t, out, "texture-and-color-combined")
	assert.Contains(t, out, "descending")
}

func TestMetricsOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "features.csv", features)

	code, _, stderr := execute(t, "--store", dir, "--metrics", "A", "features.csv", "1", "ssd")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stderr, `vecrank_rank_total{metric="ssd",status="success"} 1`)
	assert.Contains(t, stderr, "vecrank_loaded_entries_total 4")
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "features.csv", features)

	out := filepath.Join(dir, "features.json.zst")
	code, stdout, stderr := execute(t, "--store", dir, "--codec", "json", "convert", "features.csv", out)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "wrote 4 entries")

	ds, err := dataset.Load(context.Background(), blobstore.NewLocalStore(dir), "features.json.zst")
	require.NoError(t, err)
	require.Len(t, ds, 4)
	assert.Equal(t, model.Entry{ID: "D", Vector: []float32{3, 3}}, ds[3])

	code, stdout, _ = execute(t, "--store", dir, "A", "features.json.zst", "1", "ssd")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "1. B")
}

func TestParseStore(t *testing.T) {
	tests := []struct {
		raw  string
		want storeSpec
		err  bool
	}{
		{raw: "", want: storeSpec{scheme: "file", dir: "."}},
		{raw: "data/features", want: storeSpec{scheme: "file", dir: "data/features"}},
		{raw: "file:///srv/features", want: storeSpec{scheme: "file", dir: "/srv/features"}},
		{raw: "s3://images", want: storeSpec{scheme: "s3", bucket: "images"}},
		{raw: "s3://images/features/v1/", want: storeSpec{scheme: "s3", bucket: "images", prefix: "features/v1"}},
		{raw: "minio://localhost:9000/images", want: storeSpec{scheme: "minio", endpoint: "localhost:9000", bucket: "images"}},
		{raw: "minio://localhost:9000/images/features", want: storeSpec{scheme: "minio", endpoint: "localhost:9000", bucket: "images", prefix: "features"}},
		{raw: "minio://localhost:9000", err: true},
		{raw: "s3:///features", err: true},
		{raw: "gs://images", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseStore(tt.raw)
			if tt.err {
				var ue *usageError
				assert.ErrorAs(t, err, &ue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitFailure, exitCode(errors.New("boom")))
	assert.Equal(t, exitUsage, exitCode(fmt.Errorf("wrap: %w", vecrank.ErrInvalidN)))
	assert.Equal(t, exitNotFound, exitCode(fmt.Errorf("wrap: %w", vecrank.ErrQueryNotFound)))
	assert.Equal(t, exitIntegrity, exitCode(&vecrank.ErrDimensionMismatch{ID: "x", Expected: 2, Actual: 3}))
	assert.Equal(t, exitIO, exitCode(&ioError{err: blobstore.ErrNotFound}))
}
