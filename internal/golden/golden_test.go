package golden

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldenFiles(t *testing.T) {
	results, err := RunDir(context.Background(), "testdata", Options{})
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, r := range results {
		assert.True(t, r.Passed, "%s:\n%s", r.Path, r.Diff)
	}
}

func TestExpected(t *testing.T) {
	source := "func f() {}\n// File\n//   FunctionDecl f\r\n//no space\n  // indented is code\n"

	assert.Equal(t, "File\n  FunctionDecl f\nno space\n", Expected(source))
	assert.Equal(t, "", Expected("func f() {}"))
}

func TestRunSourceFailureHasDiff(t *testing.T) {
	r := RunSource("bad.ib", "func f() { return 2 }\n// File\n//   FunctionDecl g\n")

	assert.False(t, r.Passed)
	assert.Contains(t, r.Diff, "--- expected")
	assert.Contains(t, r.Diff, "+++ actual")
	assert.Contains(t, r.Diff, "-  FunctionDecl g")
	assert.Contains(t, r.Diff, "+  FunctionDecl f")
	assert.Contains(t, r.Diff, "+        IntLiteral 2")
}

func TestRunSourcePass(t *testing.T) {
	r := RunSource("ok.ib", "func f() {}\n// File\n//   FunctionDecl f\n//     Block\n")

	assert.True(t, r.Passed, r.Diff)
	assert.Empty(t, r.Diff)
}

func TestRunFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"c.ib", "a.ib", "b.ib"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("// File\n"), 0o644))
		paths = append(paths, path)
	}

	results, err := RunFiles(context.Background(), paths, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
		assert.True(t, r.Passed, r.Diff)
	}
}

func TestRunFilesMissingFile(t *testing.T) {
	_, err := RunFiles(context.Background(), []string{filepath.Join(t.TempDir(), "nope.ib")}, 1)
	assert.Error(t, err)
}

func TestRunDirExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.iblang"), []byte("// File\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.ib"), []byte("// nope\n"), 0o644))

	results, err := RunDir(context.Background(), dir, Options{Extension: ".iblang", Parallel: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.ib", "a.ib", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("// File\n"), 0o644))
	}
	single := filepath.Join(dir, "notes.txt")

	files, err := Collect([]string{single, dir}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{single, filepath.Join(dir, "a.ib"), filepath.Join(dir, "b.ib")}, files)

	_, err = Collect([]string{filepath.Join(dir, "missing")}, "")
	assert.ErrorContains(t, err, "failed to stat")
}
