// Package fs provides file-based storage for rendered articles.
package fs

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/mread"
)

// MaxNameChars caps the length of a sanitized base name.
const MaxNameChars = 200

// fallbackName is used when neither title nor URL yields a name.
const fallbackName = "article"

var (
	illegalChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	separators   = regexp.MustCompile(`[\s-]+`)
)

// DefaultDir returns ~/.medium-reader/articles.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".medium-reader", "articles"), nil
}

// SanitizeFilename makes name safe to use as a file name on common
// filesystems: illegal characters become hyphens, surrounding spaces and
// dots are trimmed, runs of whitespace and hyphens collapse to a single
// hyphen, and the result is capped at MaxNameChars characters.
func SanitizeFilename(name string) string {
	name = illegalChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, " .")
	name = separators.ReplaceAllString(name, "-")
	if runes := []rune(name); len(runes) > MaxNameChars {
		name = string(runes[:MaxNameChars])
	}
	return name
}

// Filename derives a file name for an article: the sanitized title, else
// the last path segment of pageURL, else "article", followed by ext.
func Filename(title, pageURL, ext string) string {
	base := SanitizeFilename(title)
	if base == "" {
		base = SanitizeFilename(lastSegment(pageURL))
	}
	if base == "" {
		base = fallbackName
	}
	if !strings.HasSuffix(base, ext) {
		base += ext
	}
	return base
}

func lastSegment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	var last string
	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			last = part
		}
	}
	return last
}

// Ensure Store implements mread.ArticleStore at compile time.
var _ mread.ArticleStore = (*Store)(nil)

// Store writes articles as files in a single directory.
type Store struct {
	dir string
}

// NewStore creates a Store that writes to dir. The directory is created
// on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes content to the directory under a sanitized form of filename.
// An existing file is never overwritten: name.html, name-1.html,
// name-2.html and so on are tried in turn.
func (s *Store) Save(ctx context.Context, filename, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := filepath.Ext(filename)
	base := SanitizeFilename(strings.TrimSuffix(filename, ext))
	if base == "" {
		base = fallbackName
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create storage directory: %w", err)
	}

	for n := 0; ; n++ {
		name := base + ext
		if n > 0 {
			name = fmt.Sprintf("%s-%d%s", base, n, ext)
		}
		path := filepath.Join(s.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", path, err)
		}

		if _, err := f.WriteString(content); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", path, err)
		}
		return path, nil
	}
}
