// Package filesystem provides a read-only asset store backed by a directory
// root. It uses os.Root for sandboxed access, so lookups cannot escape the
// asset tree, and assigns content types from file extensions.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	tombolos "github.com/AlexandrosLiaskos/Tombolos"
)

// Store serves files beneath a sandboxed directory root.
type Store struct {
	root *os.Root
}

// NewAssetStore creates a Store over the given root directory.
// The root provides sandboxed file operations preventing path traversal.
func NewAssetStore(root *os.Root) *Store {
	return &Store{root: root}
}

// Get opens a file for reading and returns its metadata. Directories and
// missing files both report tombolos.ErrNotFound.
func (s *Store) Get(ctx context.Context, path string) (tombolos.Asset, io.ReadSeekCloser, error) {
	if err := ctx.Err(); err != nil {
		return tombolos.Asset{}, nil, err
	}

	f, err := s.root.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tombolos.Asset{}, nil, tombolos.ErrNotFound
		}
		return tombolos.Asset{}, nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return tombolos.Asset{}, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if info.IsDir() {
		_ = f.Close()
		return tombolos.Asset{}, nil, tombolos.ErrNotFound
	}

	asset := tombolos.Asset{
		Path:        path,
		ContentType: detectContentType(path),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
	}

	return asset, f, nil
}

// List recursively walks the root directory and returns all files with their
// path, size, mod time, and detected content type. This is intended for
// deployment verification, not the request path.
func (s *Store) List(ctx context.Context) ([]tombolos.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	assets := []tombolos.Asset{}

	err := s.walkDir(ctx, ".", &assets)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return assets, nil
}

func (s *Store) walkDir(ctx context.Context, path string, assets *[]tombolos.Asset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dirEntries, err := fs.ReadDir(s.root.FS(), path)
	if err != nil {
		return err
	}

	for _, entry := range dirEntries {
		if err := ctx.Err(); err != nil {
			return err
		}

		entryPath := filepath.Join(path, entry.Name())

		if entry.IsDir() {
			if err := s.walkDir(ctx, entryPath, assets); err != nil {
				return err
			}
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("walk dir: %w", err)
		}

		*assets = append(*assets, tombolos.Asset{
			Path:        entryPath,
			ContentType: detectContentType(entryPath),
			Size:        info.Size(),
			ModTime:     info.ModTime(),
		})
	}

	return nil
}

func detectContentType(path string) string {
	ext := filepath.Ext(path)
	contentType := mime.TypeByExtension(ext)

	if contentType == "" {
		return "application/octet-stream"
	}

	return contentType
}
