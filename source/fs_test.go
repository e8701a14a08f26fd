package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, contents string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(contents), 0o644))
}

func paths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path()
	}
	return out
}

func TestNewDirSource(t *testing.T) {
	t.Run("empty root", func(t *testing.T) {
		_, err := NewDirSource("")
		assert.Equal(t, ErrRootRequired, err)
	})

	t.Run("invalid include pattern", func(t *testing.T) {
		_, err := NewDirSource(t.TempDir(), WithIncludeGlobs("a[")) // unbalanced class
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadPattern)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		src, err := NewDirSource(t.TempDir(), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, src)
	})
}

func TestDirSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "alpha")
	writeFile(t, root, "notes/b.md", "beta")
	writeFile(t, root, "notes/deep/c.txt", "gamma")

	src, err := NewDirSource(root)
	require.NoError(t, err)

	files, err := src.Files(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "notes/b.md", "notes/deep/c.txt"}, paths(files))
}

func TestDirSourceFiles_WalkErrorPropagates(t *testing.T) {
	// any error inside the walk, path resolution included, surfaces as a
	// wrapped enumeration failure instead of a silently odd descriptor
	src, err := NewDirSource(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)

	_, err = src.Files(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "walking")
}

func TestDirSourceFiles_IncludeExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "alpha")
	writeFile(t, root, "b.md", "beta")
	writeFile(t, root, "notes/c.txt", "gamma")
	writeFile(t, root, "notes/d.log", "delta")

	t.Run("include only txt", func(t *testing.T) {
		src, err := NewDirSource(root, WithIncludeGlobs("**/*.txt", "*.txt"))
		require.NoError(t, err)

		files, err := src.Files(context.Background())
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a.txt", "notes/c.txt"}, paths(files))
	})

	t.Run("exclude notes subtree", func(t *testing.T) {
		src, err := NewDirSource(root, WithExcludeGlobs("notes/**"))
		require.NoError(t, err)

		files, err := src.Files(context.Background())
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a.txt", "b.md"}, paths(files))
	})
}

func TestDirSourceFiles_IgnoreFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".docscoutignore", "*.log\nbuild/\n")
	writeFile(t, root, "a.txt", "alpha")
	writeFile(t, root, "debug.log", "noise")
	writeFile(t, root, "build/out.txt", "artifact")

	src, err := NewDirSource(root)
	require.NoError(t, err)

	files, err := src.Files(context.Background())
	require.NoError(t, err)

	got := paths(files)
	assert.Contains(t, got, "a.txt")
	assert.NotContains(t, got, "debug.log")
	assert.NotContains(t, got, "build/out.txt")
}

func TestDirSourceFiles_FileDescriptor(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/report.txt", "hello world")

	src, err := NewDirSource(root)
	require.NoError(t, err)

	files, err := src.Files(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.Equal(t, "report.txt", f.Name())
	assert.Equal(t, "docs/report.txt", f.Path())
	assert.Equal(t, "text/plain", f.ContentType())
	assert.Equal(t, int64(len("hello world")), f.Size())

	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestDetectContentType_KnownExtensions(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.txt", "text/plain"},
		{"a.md", "text/markdown"},
		{"a.PDF", "application/pdf"},
		{"a.doc", "application/msword"},
		{"a.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, detectContentType(tt.path), "path %s", tt.path)
	}
}

func TestMemFile(t *testing.T) {
	f := NewMemFile("docs/a.txt", "text/plain", []byte("alpha"))
	assert.Equal(t, "a.txt", f.Name())
	assert.Equal(t, "docs/a.txt", f.Path())
	assert.Equal(t, int64(5), f.Size())

	f.FileSize = 1 << 30
	assert.Equal(t, int64(1<<30), f.Size())
}
