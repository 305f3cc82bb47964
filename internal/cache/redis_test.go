package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func TestRedisStoreGetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStoreFromClient(db)
	mock.ExpectGet("hanscan:abc").SetVal("OK")

	v, ok := store.Get(context.Background(), "abc")
	if !ok || v != "OK" {
		t.Errorf("got %q, %v", v, ok)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRedisStoreGetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStoreFromClient(db)
	mock.ExpectGet("hanscan:missing").RedisNil()

	if _, ok := store.Get(context.Background(), "missing"); ok {
		t.Error("expected a miss")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRedisStoreSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStoreFromClient(db)
	mock.ExpectSet("hanscan:abc", "OK", time.Duration(0)).SetVal("OK")

	if err := store.Set(context.Background(), "abc", "OK"); err != nil {
		t.Errorf("set: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
