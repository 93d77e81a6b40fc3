package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/audiocircuits/pkg/errors"
	"github.com/matzehuels/audiocircuits/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "preview:a"); hit || err != nil {
		t.Fatalf("Get on empty cache = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "preview:a", []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "preview:a")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "preview:a"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "preview:a"); hit {
		t.Error("entry should be gone after Delete")
	}
	if err := c.Delete(ctx, "preview:a"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "preview:x", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "preview:x"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("preview:bad")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "preview:bad"); hit || err != nil {
		t.Errorf("corrupt entry = hit %v, err %v; want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"preview:1", "preview:2"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("Clear left %d entries", len(entries))
	}
}

func TestNewFileCacheInvalidPath(t *testing.T) {
	if _, err := NewFileCache(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("NewFileCache(\"\") error = %v, want INVALID_PATH", err)
	}
}

func TestFileCacheHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	h := &countingHooks{}
	observability.SetCacheHooks(h)

	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_, _, _ = c.Get(ctx, "preview:k")
	_ = c.Set(ctx, "preview:k", []byte("abc"), 0)
	_, _, _ = c.Get(ctx, "preview:k")

	if h.misses != 1 || h.hits != 1 || h.setBytes != 3 {
		t.Errorf("hooks = %+v, want 1 miss, 1 hit, 3 bytes set", h)
	}
	if h.keyType != "preview" {
		t.Errorf("keyType = %q, want preview", h.keyType)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	k1 := k.PreviewKey("graph {}", PreviewKeyOpts{Format: "svg"})
	if !strings.HasPrefix(k1, "preview:") || len(k1) != len("preview:")+64 {
		t.Errorf("PreviewKey unexpected: %s", k1)
	}
	if k1 != k.PreviewKey("graph {}", PreviewKeyOpts{Format: "svg"}) {
		t.Error("PreviewKey should be deterministic")
	}
	if k1 == k.PreviewKey("graph {}", PreviewKeyOpts{Format: "png", Scale: 2}) {
		t.Error("Different PreviewKeyOpts should produce different keys")
	}
	if k1 == k.PreviewKey("graph { a }", PreviewKeyOpts{Format: "svg"}) {
		t.Error("Different DOT sources should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "v1.0.0:")
	key := scoped.PreviewKey("graph {}", PreviewKeyOpts{Format: "svg"})
	if !strings.HasPrefix(key, "v1.0.0:preview:") {
		t.Errorf("ScopedKeyer key should be prefixed: %s", key)
	}

	nilInner := NewScopedKeyer(nil, "p:")
	if nilInner.PreviewKey("g", PreviewKeyOpts{}) != "p:"+NewDefaultKeyer().PreviewKey("g", PreviewKeyOpts{}) {
		t.Error("nil inner should fall back to DefaultKeyer")
	}
}

func TestKeyType(t *testing.T) {
	tests := map[string]string{
		"preview:abc":    "preview",
		"v1:preview:abc": "preview",
		"nocolon":        "unknown",
		":leading":       "unknown",
	}
	for key, want := range tests {
		if got := keyType(key); got != want {
			t.Errorf("keyType(%q) = %q, want %q", key, got, want)
		}
	}
}

type countingHooks struct {
	hits, misses, setBytes int
	keyType                string
}

func (h *countingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.hits++
	h.keyType = keyType
}

func (h *countingHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.misses++
	h.keyType = keyType
}

func (h *countingHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.setBytes += size
	h.keyType = keyType
}
