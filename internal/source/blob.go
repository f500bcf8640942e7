package source

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Lister is the seam to a blob store: it yields entry names and fetches
// entries as bytes. Implementations own transport, auth, and timeouts.
type Lister interface {
	List(ctx context.Context) ([]string, error)
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Data drops land in folders named hospitals_MM_YYYY, e.g. hospitals_07_2023.
var hospitalFolder = regexp.MustCompile(`^hospitals_\d{2}_\d{4}/`)

// FilterHospitalFolders keeps CSV entries under hospitals_MM_YYYY folders.
func FilterHospitalFolders(names []string) []string {
	var out []string
	for _, n := range names {
		if hospitalFolder.MatchString(n) && strings.HasSuffix(n, ".csv") {
			out = append(out, n)
		}
	}
	return out
}

// FromBlob lists the store, keeps entries under hospital data-drop folders,
// and returns a lazily-fetched Source per entry.
func FromBlob(ctx context.Context, l Lister) ([]Source, error) {
	names, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []Source
	for _, name := range FilterHospitalFolders(names) {
		out = append(out, &blobSource{lister: l, name: name})
	}
	return out, nil
}

type blobSource struct {
	lister Lister
	name   string
}

func (s *blobSource) Name() string { return s.name }

func (s *blobSource) Open(ctx context.Context) (io.ReadCloser, error) {
	data, err := s.lister.Fetch(ctx, s.name)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// CachedLister memoizes another Lister's listing and fetches for a fixed TTL.
// The cache is owned by whoever constructed it, not shared process-wide, so
// two runs with different TTLs never interfere.
type CachedLister struct {
	inner Lister
	c     *cache.Cache
}

// NewCachedLister wraps inner with a TTL cache. Expired entries are purged
// on the same interval they expire.
func NewCachedLister(inner Lister, ttl time.Duration) *CachedLister {
	return &CachedLister{inner: inner, c: cache.New(ttl, ttl)}
}

func (l *CachedLister) List(ctx context.Context) ([]string, error) {
	if v, ok := l.c.Get("list"); ok {
		return v.([]string), nil
	}
	names, err := l.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	l.c.Set("list", names, cache.DefaultExpiration)
	return names, nil
}

func (l *CachedLister) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := "blob:" + name
	if v, ok := l.c.Get(key); ok {
		return v.([]byte), nil
	}
	data, err := l.inner.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	l.c.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

// DirLister serves a local directory through the Lister interface. It stands
// in for a real blob client in tests and offline runs.
type DirLister struct {
	Root string
}

func (l DirLister) List(ctx context.Context) ([]string, error) {
	var out []string
	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(l.Root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (l DirLister) Fetch(ctx context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(l.Root, filepath.FromSlash(name)))
}
