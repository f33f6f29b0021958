package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestFileWalker_Walk(t *testing.T) {
	root := extractEngine(t)
	include := filepath.Join(root, "Engine", "include")

	files, err := NewFileWalker(nil).Walk(context.Background(), include)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ECS/Components.h",
		"Game/Player.hpp",
		"Generated/Ignored.h",
		"Math/Vec.h",
	}, relAll(t, include, files))
}

func TestFileWalker_Extensions(t *testing.T) {
	root := extractEngine(t)
	include := filepath.Join(root, "Engine", "include")

	files, err := NewFileWalker([]string{"hpp", " .TXT "}).Walk(context.Background(), include)
	require.NoError(t, err)
	assert.Equal(t, []string{"Game/Player.hpp", "notes.txt"}, relAll(t, include, files))
}

func TestFileWalker_Gitignore(t *testing.T) {
	root := extractEngine(t)
	include := filepath.Join(root, "Engine", "include")

	files, err := NewFileWalker(nil).WithGitignore(root).Walk(context.Background(), include)
	require.NoError(t, err)
	assert.Equal(t, []string{"ECS/Components.h", "Game/Player.hpp", "Math/Vec.h"}, relAll(t, include, files))
}

func TestFileWalker_GitignoreMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.h"), nil, 0o644))

	files, err := NewFileWalker(nil).WithGitignore(dir).Walk(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestFileWalker_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.h")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := NewFileWalker(nil).Walk(context.Background(), file)
	assert.Error(t, err)
}

func TestFileWalker_HiddenAndCase(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"Legacy.H", "Shapes.HPP", ".Scratch.h", "src/.cache/Gen.h", "src/Mesh.h"} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("#pragma once\n"), 0o644))
	}

	files, err := NewFileWalker(nil).Walk(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Legacy.H", "Shapes.HPP", "src/Mesh.h"}, relAll(t, root, files))
}
