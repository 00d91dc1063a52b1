// Package savefile persists the encoded quest to a single text file on disk.
package savefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Load when the save file does not exist.
// It wraps os.ErrNotExist.
var ErrNotFound = fmt.Errorf("save file not found: %w", os.ErrNotExist)

// File is a quest save file. It implements quest.Persister.
type File struct {
	Path string
}

// New returns a File for path.
func New(path string) *File {
	return &File{Path: path}
}

// Load returns the file's contents.
func (f *File) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", f.Path, ErrNotFound)
		}
		return "", fmt.Errorf("reading save file: %w", err)
	}
	return string(data), nil
}

// Save replaces the file with text. The data goes to a temp file that is
// renamed over the target, so readers see either the old or the new quest.
func (f *File) Save(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating save directory: %w", err)
		}
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing temp save file: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming save file: %w", err)
	}
	return nil
}
