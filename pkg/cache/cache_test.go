package cache

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
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

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// ClassificationKey depends only on the prompt
	ck1 := k.ClassificationKey("login form")
	ck2 := k.ClassificationKey("login form")
	if ck1 != ck2 {
		t.Error("ClassificationKey should be deterministic")
	}
	if !strings.HasPrefix(ck1, "classify:") {
		t.Errorf("ClassificationKey missing prefix: %s", ck1)
	}

	// ResultKey should include options in hash
	rk1 := k.ResultKey("dashboard", ResultKeyOpts{Archetype: "dashboard", Width: 1440, Height: 900})
	rk2 := k.ResultKey("dashboard", ResultKeyOpts{Archetype: "dashboard", Width: 1200, Height: 900})
	if rk1 == rk2 {
		t.Error("Different ResultKeyOpts should produce different keys")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "ws:123:")

	// All keys should be prefixed
	ck := scoped.ClassificationKey("login form")
	if !strings.HasPrefix(ck, "ws:123:classify:") {
		t.Errorf("ScopedKeyer ClassificationKey should be prefixed: %s", ck)
	}

	rk := scoped.ResultKey("dashboard", ResultKeyOpts{})
	if !strings.HasPrefix(rk, "ws:123:") {
		t.Errorf("ScopedKeyer ResultKey should be prefixed: %s", rk)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.ClassificationKey("hello")
	if !strings.HasPrefix(key, "prefix:classify:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before set
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expected miss before Set")
	}

	// Round trip
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || !hit {
		t.Fatalf("Get after Set: hit=%v err=%v", hit, err)
	}
	if string(data) != "value" {
		t.Errorf("Get = %q, want %q", data, "value")
	}

	// Expired entries miss
	if err := c.Set(ctx, "stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "stale"); hit {
		t.Error("expired entry should miss")
	}

	// Delete is idempotent
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("second Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("deleted entry should miss")
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip and expiry", func(t *testing.T) {
		c := NewMemoryCache(10)
		defer c.Close()

		if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
			t.Fatalf("Set error: %v", err)
		}
		data, hit, err := c.Get(ctx, "key")
		if err != nil || !hit || string(data) != "value" {
			t.Errorf("Get = %q hit=%v err=%v", data, hit, err)
		}

		if err := c.Set(ctx, "stale", []byte("old"), -time.Second); err != nil {
			t.Fatalf("Set error: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "stale"); hit {
			t.Error("expired entry should miss")
		}
	})

	t.Run("evicts oldest at capacity", func(t *testing.T) {
		mc := NewMemoryCache(3).(*MemoryCache)
		defer mc.Close()

		for i := 0; i < 3; i++ {
			key := fmt.Sprintf("key-%d", i)
			if err := mc.Set(ctx, key, []byte{byte(i)}, 0); err != nil {
				t.Fatalf("Set error: %v", err)
			}
		}
		if err := mc.Set(ctx, "key-3", []byte{3}, 0); err != nil {
			t.Fatalf("Set error: %v", err)
		}

		if mc.Len() != 3 {
			t.Errorf("Len() = %d, want 3", mc.Len())
		}
		if _, hit, _ := mc.Get(ctx, "key-0"); hit {
			t.Error("oldest entry should be evicted")
		}
		if _, hit, _ := mc.Get(ctx, "key-3"); !hit {
			t.Error("newest entry should be present")
		}
	})

	t.Run("overwriting does not evict", func(t *testing.T) {
		mc := NewMemoryCache(2).(*MemoryCache)
		defer mc.Close()

		_ = mc.Set(ctx, "a", []byte("1"), 0)
		_ = mc.Set(ctx, "b", []byte("2"), 0)
		_ = mc.Set(ctx, "a", []byte("3"), 0)

		if mc.Len() != 2 {
			t.Errorf("Len() = %d, want 2", mc.Len())
		}
		data, hit, _ := mc.Get(ctx, "a")
		if !hit || string(data) != "3" {
			t.Errorf("Get(a) = %q hit=%v, want overwritten value", data, hit)
		}
		if _, hit, _ := mc.Get(ctx, "b"); !hit {
			t.Error("entry b should survive an overwrite of a")
		}
	})
}
