package analyzer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultExtensions are the header extensions scanned when none are configured.
var DefaultExtensions = []string{".h", ".hpp"}

// FileWalker lists header files below a directory in a stable order.
type FileWalker struct {
	extensions map[string]struct{}
	ignoreRoot string
	gitignore  *ignore.GitIgnore
}

// NewFileWalker creates a walker that keeps files with one of the given
// extensions. An empty list means DefaultExtensions.
func NewFileWalker(extensions []string) *FileWalker {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	w := &FileWalker{extensions: make(map[string]struct{}, len(extensions))}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		w.extensions[ext] = struct{}{}
	}
	return w
}

// WithGitignore makes the walker drop paths matched by root/.gitignore.
// Matching is done on paths relative to root. A missing .gitignore is not an error.
func (w *FileWalker) WithGitignore(root string) *FileWalker {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		slog.Debug("No usable .gitignore", "root", root, "error", err)
		return w
	}
	w.ignoreRoot = root
	w.gitignore = gi
	return w
}

// Walk returns every matching file below root, sorted by slash path.
// Hidden directories and files are skipped.
func (w *FileWalker) Walk(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source directory %s is not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("Skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		name := d.Name()
		if d.IsDir() {
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if w.ignored(path, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if _, ok := w.extensions[strings.ToLower(filepath.Ext(name))]; !ok {
			return nil
		}
		if w.ignored(path, false) {
			slog.Debug("Ignored by .gitignore", "path", path)
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return filepath.ToSlash(files[i]) < filepath.ToSlash(files[j])
	})
	return files, nil
}

func (w *FileWalker) ignored(path string, dir bool) bool {
	if w.gitignore == nil {
		return false
	}
	rel, err := filepath.Rel(w.ignoreRoot, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}
	rel = filepath.ToSlash(rel)
	if dir {
		rel += "/"
	}
	return w.gitignore.MatchesPath(rel)
}
