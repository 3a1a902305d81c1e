package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/deltae/codec"
	"github.com/hupe1980/deltae/model"
)

func writeBatches(t *testing.T, dir string, ext string) (string, string) {
	t.Helper()

	src, err := model.BatchFromRows([][]model.Triplet{{{50, 2.6772, -79.7751}}})
	require.NoError(t, err)
	ref, err := model.BatchFromRows([][]model.Triplet{{{50, 0, -82.7485}}})
	require.NoError(t, err)

	srcPath := filepath.Join(dir, "src.json"+ext)
	refPath := filepath.Join(dir, "ref.json"+ext)
	require.NoError(t, codec.WriteFile(srcPath, src, nil))
	require.NoError(t, codec.WriteFile(refPath, ref, nil))
	return srcPath, refPath
}

func TestRun(t *testing.T) {
	for _, ext := range []string{"", ".zst", ".lz4"} {
		t.Run("Ext"+ext, func(t *testing.T) {
			dir := t.TempDir()
			srcPath, refPath := writeBatches(t, dir, ext)
			outPath := filepath.Join(dir, "out.json"+ext)

			var stdout, stderr bytes.Buffer
			code := run(context.Background(), []string{
				"-metric", "CIEDE2000",
				"-src", srcPath,
				"-ref", refPath,
				"-out", outPath,
				"-workers", "2",
			}, &stdout, &stderr)
			require.Equal(t, 0, code, stderr.String())

			assert.Contains(t, stdout.String(), "metric:  CIE2000")
			assert.Contains(t, stdout.String(), "shape:   1x1")
			assert.Contains(t, stdout.String(), "count=1 mean=2.0425")

			var out model.Scalars
			require.NoError(t, codec.ReadFile(outPath, &out, nil))
			assert.Equal(t, model.Shape{Rows: 1, Cols: 1}, out.Shape())
			assert.InDelta(t, 2.0425, out.At(0, 0), 1e-4)
		})
	}
}

func TestRunVerboseJSON(t *testing.T) {
	dir := t.TempDir()
	srcPath, refPath := writeBatches(t, dir, "")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-metric", "cmc-2to1",
		"-src", srcPath,
		"-ref", refPath,
		"-codec", "json",
		"-log-format", "json",
		"-v",
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "metric:  CMC_2TO1")
	assert.Contains(t, stderr.String(), `"msg":"distance completed"`)
	assert.Contains(t, stderr.String(), `"msg":"distance summary"`)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	srcPath, refPath := writeBatches(t, dir, "")

	mismatched := filepath.Join(dir, "wide.json")
	require.NoError(t, codec.WriteFile(mismatched, model.NewBatch(1, 2), nil))

	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"UnknownMetric", []string{"-metric", "CIE3000", "-src", srcPath, "-ref", refPath}, 2, "unknown metric name"},
		{"UnknownCodec", []string{"-codec", "gob", "-src", srcPath, "-ref", refPath}, 2, "unknown codec"},
		{"MissingRef", []string{"-src", srcPath}, 2, "-src and -ref are required"},
		{"BadWorkers", []string{"-workers", "0", "-src", srcPath, "-ref", refPath}, 2, "workers must be positive"},
		{"BadLogFormat", []string{"-log-format", "xml", "-src", srcPath, "-ref", refPath}, 2, "unknown log format"},
		{"UnknownFlag", []string{"-frobnicate"}, 2, "flag provided but not defined"},
		{"MissingFile", []string{"-src", filepath.Join(dir, "nope.json"), "-ref", refPath}, 1, "nope.json"},
		{"ShapeMismatch", []string{"-src", srcPath, "-ref", mismatched}, 1, "shape mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr.String(), tt.msg)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunOverflowingShape(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("dimensions do not fit into int")
	}
	dir := t.TempDir()
	wrapped := filepath.Join(dir, "wrapped.json")
	require.NoError(t, os.WriteFile(wrapped, []byte(`{"rows":4294967296,"cols":4294967296,"data":[]}`), 0o644))

	for _, workers := range []string{"1", "8"} {
		t.Run("Workers"+workers, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), []string{
				"-src", wrapped,
				"-ref", wrapped,
				"-workers", workers,
			}, &stdout, &stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), "invalid shape")
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-h"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "-metric")
	assert.Contains(t, stderr.String(), "CIE94_GRAPHIC_ARTS")
}
