// Package storage provides the durable local key/value store backing
// the ledgers and the session record. Writes are last-write-wins; no
// transactions, no schema versioning.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
	"github.com/hoangptkd/clone-ebay/pkg/retry"
	"github.com/syndtr/goleveldb/leveldb"
)

var _ port.KV = (*LevelDB)(nil)

type LevelDB struct {
	db *leveldb.DB
}

// Open opens (or creates) the store at path. Opening retries briefly:
// a store released by a just-exited process can still hold its file
// lock.
func Open(ctx context.Context, path string) (*LevelDB, error) {
	const op = "storage.Open"
	log := slog.With("op", op)

	retryCfg := retry.Config{
		MaxAttempts: 3,
		Backoff:     retry.LinearBackoff(100 * time.Millisecond),
	}
	db, err := retry.DoWithResult(ctx, retryCfg, func() (*leveldb.DB, error) {
		return leveldb.OpenFile(path, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}

	log.Info("local storage is available", "path", path)
	return &LevelDB{db}, nil
}

func (s *LevelDB) Get(key string) ([]byte, error) {
	const op = "LevelDB.Get"

	b, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, fmt.Errorf("%s: key %q: %w", op, key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}
	return b, nil
}

func (s *LevelDB) Put(key string, value []byte) error {
	const op = "LevelDB.Put"

	if err := s.db.Put([]byte(key), value, nil); err != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *LevelDB) Delete(key string) error {
	const op = "LevelDB.Delete"

	if err := s.db.Delete([]byte(key), nil); err != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *LevelDB) Close() {
	const op = "LevelDB.Close"
	log := slog.With("op", op)

	log.Info("closing local storage...")
	if err := s.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("local storage is closed")
}
