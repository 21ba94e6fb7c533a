package fs

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/dacostarepublic/folio/pkg/core"
)

// DocumentExt is the extension (compared case-insensitively) of indexed files.
const DocumentExt = ".md"

// DefaultIgnore matches version-control metadata anywhere below the root.
// Patterns are matched against root-relative, slash-separated paths.
var DefaultIgnore = []string{"**/.git", "**/.git/**"}

// walker builds the tree for one content root.
type walker struct {
	fs       FileSystem
	root     string
	rootName string
	ignore   []string
	limit    int
	logger   *slog.Logger
}

// visit is the outcome of one filesystem entry: a directory yields a node,
// a file yields a document, a skipped entry yields neither.
type visit struct {
	node core.Node
	doc  *core.Document
}

func (w *walker) walk(ctx context.Context) (core.Node, error) {
	res, err := w.visit(ctx, w.root, "", false)
	if err != nil {
		return nil, err
	}
	return res.node, nil
}

// visit handles one entry. parentName is the base name of the directory the
// entry was listed from; hasParent is false only for the root itself.
func (w *walker) visit(ctx context.Context, path, parentName string, hasParent bool) (visit, error) {
	info, err := w.fs.Stat(path)
	if err != nil {
		// Vanished or unreadable entries are left out of the tree.
		w.logger.Debug("skipping entry", "path", path, "error", err)
		return visit{}, nil
	}

	if info.IsDir() {
		return w.visitDir(ctx, path)
	}
	if info.Mode().IsRegular() {
		return w.visitFile(path, parentName, hasParent)
	}
	return visit{}, nil
}

func (w *walker) visitDir(ctx context.Context, path string) (visit, error) {
	if w.ignored(path) {
		return visit{}, nil
	}

	name := filepath.Base(path)
	entries, err := w.fs.ReadDir(path)
	if err != nil {
		if !errors.Is(err, os.ErrPermission) {
			return visit{}, fmt.Errorf("failed to list %s: %w", path, err)
		}
		w.logger.Debug("permission denied, treating directory as empty", "path", path)
		entries = nil
	}

	results := make([]visit, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	if w.limit > 0 {
		g.SetLimit(w.limit)
	}
	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := w.visit(gctx, filepath.Join(path, entry.Name()), name, true)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return visit{}, err
	}

	var doc *core.Document
	children := make([]core.Node, 0, len(results))
	for _, res := range results {
		switch {
		case res.doc != nil && doc == nil:
			doc = res.doc
		case res.doc != nil:
			w.logger.Warn("directory holds more than one document, keeping the first",
				"dir", path,
				"kept", doc.RelativePath,
				"dropped", res.doc.RelativePath,
			)
		case res.node != nil:
			children = append(children, res.node)
		}
	}

	if doc != nil {
		if len(children) > 0 {
			w.logger.Debug("document directory drops its subdirectories", "dir", path, "dropped", len(children))
		}
		return visit{node: &core.Leaf{Document: *doc}}, nil
	}
	return visit{node: &core.Branch{Name: name, Children: children}}, nil
}

func (w *walker) visitFile(path, parentName string, hasParent bool) (visit, error) {
	if !hasParent {
		return visit{}, fmt.Errorf("%w: document %s has no parent directory", core.ErrInvariant, path)
	}
	if !strings.EqualFold(filepath.Ext(path), DocumentExt) || parentName == w.rootName || w.ignored(path) {
		return visit{}, nil
	}

	raw, err := w.fs.ReadFile(path)
	if err != nil {
		return visit{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	header, err := ExtractHeader(raw)
	if err != nil {
		return visit{}, fmt.Errorf("%s: %w", path, err)
	}

	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return visit{}, err
	}

	sum := md5.Sum(raw)
	title := header.Title
	if title == "" {
		title = parentName
	}

	return visit{doc: &core.Document{
		ID:           header.ID,
		Title:        title,
		Metadata:     header.Fields,
		RelativePath: filepath.ToSlash(rel),
		ContentHash:  hex.EncodeToString(sum[:]),
	}}, nil
}

// ignored reports whether path matches one of the ignore patterns.
// The root itself is never ignored.
func (w *walker) ignored(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil || rel == "." {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// compileIgnore validates patterns and prepends DefaultIgnore.
func compileIgnore(extra []string) ([]string, error) {
	patterns := append([]string{}, DefaultIgnore...)
	for _, p := range extra {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}
