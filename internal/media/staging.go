package media

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Stager writes incoming multipart files to the staging directory.
type Stager struct {
	dir string
	now func() time.Time
}

func NewStager(dir string) *Stager {
	return &Stager{dir: dir, now: time.Now}
}

func (s *Stager) Dir() string { return s.dir }

// maxStageAttempts caps the suffixes tried when staged names collide.
const maxStageAttempts = 1000

// Stage saves fh as <dir>/<unixMillis>-<sanitized name> and returns the path.
// When that name is taken, a -<n> suffix is added before the extension.
func (s *Stager) Stage(fh *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("staging dir: %w", err)
	}
	name := SanitizeFilename(fh.Filename)
	if name == "" {
		name = "upload"
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, dst, err := s.create(fmt.Sprintf("%d-%s", s.now().UnixMilli(), name))
	if err != nil {
		return "", fmt.Errorf("stage upload: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("stage upload: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("stage upload: %w", err)
	}
	return dst, nil
}

// create opens a file that did not exist before, so concurrent uploads of the
// same name never share a staging path.
func (s *Stager) create(name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 0; n < maxStageAttempts; n++ {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s-%d%s", stem, n, ext)
		}
		dst := filepath.Join(s.dir, candidate)
		f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, dst, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
	}
	return nil, "", fmt.Errorf("no free name for %s after %d attempts", name, maxStageAttempts)
}

// SanitizeFilename keeps letters, digits, dots, dashes and underscores, and
// turns spaces into dashes. Any directory part is dropped.
func SanitizeFilename(s string) string {
	s = filepath.Base(strings.ReplaceAll(s, "\\", "/"))
	if s == "." || s == "/" {
		return ""
	}
	var b strings.Builder
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-', c == '_':
			b.WriteRune(c)
		case c == ' ':
			b.WriteByte('-')
		}
	}
	return strings.TrimLeft(b.String(), ".")
}
