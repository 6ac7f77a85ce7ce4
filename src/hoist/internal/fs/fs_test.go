package fs

import (
	"os"
	"os/exec"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMkdirAll(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	err := fs.MkdirAll(path.Join(dir, "foo/bar"))
	assert.NoError(t, err)
}

func TestWorkspaceRoot(t *testing.T) {
	workspace := prepareWorkspaceDirectory(t)
	fs := New()
	_, err := fs.WorkspaceRoot(workspace)
	assert.NoError(t, err)
}

func TestDirExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.DirExists(dir)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.DirExists(dir + "foo")
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestFileExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		filePath := path.Join(dir, "marker")
		require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))
		fs := New()
		result, err := fs.FileExists(filePath)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.FileExists(path.Join(dir, "marker"))
		assert.NoError(t, err)
		assert.False(t, result)
	})

	t.Run("is a directory", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.FileExists(dir)
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "a")
	require.NoError(t, os.WriteFile(file, []byte("contents"), 0666))
	fs := New()
	data, err := fs.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, "contents", string(data))
}

func TestTempFile(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	file, err := fs.TempFile(dir, "")
	require.NoError(t, err)
	defer file.Close()
	assert.Contains(t, file.Name(), dir)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "a")
	require.NoError(t, os.WriteFile(file, []byte("contents"), 0666))
	fs := New()
	assert.NoError(t, fs.Remove(file))
	exists, err := fs.FileExists(file)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func prepareWorkspaceDirectory(t *testing.T) string {
	dir := t.TempDir()
	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	require.NoError(t, cmd.Run())
	return dir
}
