package cache

import (
	"context"
	"testing"

	"hanscan/internal/textutil"
)

func TestTranslationMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	tm := NewTranslationMemory(store)

	if _, ok := tm.Get(ctx, "操作成功"); ok {
		t.Error("empty memory should miss")
	}
	if err := tm.Set(ctx, "操作成功", "Operation succeeded"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := tm.Get(ctx, "操作成功")
	if !ok || got != "Operation succeeded" {
		t.Errorf("got %q, %v", got, ok)
	}
}

func TestTranslationMemoryHashesKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	tm := NewTranslationMemory(store)

	if err := tm.Set(ctx, "确定", "OK"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := store.Get(ctx, "确定"); ok {
		t.Error("store should never see raw source text")
	}
	if v, ok := store.Get(ctx, textutil.Hash("确定")); !ok || v != "OK" {
		t.Errorf("store key should be the content hash, got %q, %v", v, ok)
	}
}

func TestTranslationMemoryReadThrough(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Set(ctx, textutil.Hash("取消"), "Cancel")

	tm := NewTranslationMemory(store)
	if got, ok := tm.Get(ctx, "取消"); !ok || got != "Cancel" {
		t.Fatalf("first read should hit the store, got %q, %v", got, ok)
	}

	// A second read must come from the front map even if the store entry
	// disappears underneath.
	store.mu.Lock()
	delete(store.data, textutil.Hash("取消"))
	store.mu.Unlock()

	if got, ok := tm.Get(ctx, "取消"); !ok || got != "Cancel" {
		t.Errorf("second read should hit memory, got %q, %v", got, ok)
	}
}

func TestTranslationMemorySetBatch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	tm := NewTranslationMemory(store)

	pairs := map[string]string{
		"保存": "Save",
		"删除": "Delete",
	}
	if err := tm.SetBatch(ctx, pairs); err != nil {
		t.Fatalf("set batch: %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("store holds %d entries, want 2", store.Len())
	}
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	if _, err := Open(Config{Backend: "etcd"}); err == nil {
		t.Error("unknown backend should fail")
	}
}

func TestOpenMemoryBackend(t *testing.T) {
	tm, err := Open(Config{Backend: "memory"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer tm.Close()
	if err := tm.Set(context.Background(), "刷新", "Refresh"); err != nil {
		t.Errorf("set: %v", err)
	}
}
