package kvstore

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryBucketPutGet(t *testing.T) {
	ctx := context.Background()
	bucket := NewMemoryBucket()

	if err := bucket.Put(ctx, "k1", []byte("v1")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := bucket.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("Get() = %q, want %q", got, "v1")
	}
}

func TestMemoryBucketGetMissing(t *testing.T) {
	bucket := NewMemoryBucket()

	_, err := bucket.Get(context.Background(), "missing")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() error = %v, want ErrKeyNotFound", err)
	}
}

func TestMemoryBucketOverwrite(t *testing.T) {
	ctx := context.Background()
	bucket := NewMemoryBucket()

	bucket.Put(ctx, "k", []byte("old"))
	bucket.Put(ctx, "k", []byte("new"))

	got, err := bucket.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "new" {
		t.Errorf("Get() = %q, want %q", got, "new")
	}
}

func TestMemoryBucketDelete(t *testing.T) {
	ctx := context.Background()
	bucket := NewMemoryBucket()

	bucket.Put(ctx, "k", []byte("v"))
	if err := bucket.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := bucket.Get(ctx, "k"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrKeyNotFound", err)
	}

	// Deleting an absent key is not an error.
	if err := bucket.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestMemoryBucketKeysSorted(t *testing.T) {
	ctx := context.Background()
	bucket := NewMemoryBucket()

	for _, k := range []string{"c", "a", "b"} {
		bucket.Put(ctx, k, []byte("v"))
	}

	keys, err := bucket.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestMemoryBucketValueIsolation(t *testing.T) {
	ctx := context.Background()
	bucket := NewMemoryBucket()

	value := []byte("original")
	bucket.Put(ctx, "k", value)
	value[0] = 'X'

	got, err := bucket.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "original" {
		t.Errorf("Get() = %q, caller mutation leaked into the bucket", got)
	}
}
