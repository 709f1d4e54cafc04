// Package files is the local-disk blob store behind attachment uploads.
package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// MaxSize caps a single upload.
const MaxSize = 25 << 20

var forbiddenExt = regexp.MustCompile(`(?i)\.(exe|bat|cmd|sh|js|jar|py)$`)

type Storage struct {
	Dir string
}

func New(dir string) *Storage { return &Storage{Dir: dir} }

// Save writes the upload under <dir>/<owner>/ with a collision-proof
// name and returns the path relative to the storage root.
func (s *Storage) Save(owner, fileType, originalName string, r io.Reader) (string, int64, error) {
	if forbiddenExt.MatchString(originalName) {
		return "", 0, fmt.Errorf("forbidden file extension: %s", filepath.Ext(originalName))
	}

	safe := sanitizeFileName(originalName)
	dir := filepath.Join(s.Dir, owner)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, err
	}
	name := fmt.Sprintf("%s_%d_%s", fileType, time.Now().Unix(), safe)
	dst := filepath.Join(dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", 0, fmt.Errorf("cannot save file: %w", err)
	}
	defer out.Close()

	written, err := io.Copy(out, io.LimitReader(r, MaxSize+1))
	if err != nil {
		os.Remove(dst)
		return "", 0, fmt.Errorf("write error: %w", err)
	}
	if written > MaxSize {
		os.Remove(dst)
		return "", 0, fmt.Errorf("file exceeds %d bytes", MaxSize)
	}

	return filepath.Join(owner, name), written, nil
}

// Delete removes a previously saved file. Paths are confined to the
// storage root.
func (s *Storage) Delete(rel string) error {
	full := filepath.Join(s.Dir, rel)
	root, err := filepath.Abs(s.Dir)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(full)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return fmt.Errorf("path escapes storage root")
	}
	return os.Remove(abs)
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
