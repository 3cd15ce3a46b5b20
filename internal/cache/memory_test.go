package cache

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreGetMiss(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
}

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "top", []byte("value")); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := store.Get(ctx, "top")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Fatalf("expected 'value', got %q", got)
	}
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "top", []byte("value")); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	first, _ := store.Get(ctx, "top")
	first[0] = 'X'

	second, _ := store.Get(ctx, "top")
	if string(second) != "value" {
		t.Fatalf("expected cached value to be unaffected, got %q", second)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "top", []byte("value"))
	if err := store.Delete(ctx, "top"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := store.Get(ctx, "top"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss after delete, got %v", err)
	}
}

func TestMemoryStoreFlush(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "top", []byte("a"))
	store.Set(ctx, "42", []byte("b"))

	if err := store.Flush(ctx); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}

	for _, key := range []string{"top", "42"} {
		if _, err := store.Get(ctx, key); !errors.Is(err, ErrMiss) {
			t.Fatalf("expected ErrMiss for %q after flush, got %v", key, err)
		}
	}
}
