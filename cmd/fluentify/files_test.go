package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"a.go",
		"b_test.go",
		"notes.txt",
		"sub/c.go",
		"testdata/d.go",
		"vendor/e.go",
		".hidden/f.go",
		"_skip/g.go",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	got, err := collectFiles([]string{dir, filepath.Join(dir, "a.go"), filepath.Join(dir, "testdata", "d.go")})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.go"),
		filepath.Join(dir, "b_test.go"),
		filepath.Join(dir, "sub", "c.go"),
		filepath.Join(dir, "testdata", "d.go"),
	}, got)

	_, err = collectFiles([]string{filepath.Join(dir, "missing")})
	require.Error(t, err)
}
