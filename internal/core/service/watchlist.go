package service

import (
	"log/slog"
	"time"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

const watchlistKeyPrefix = "watchlist:"

// A WatchlistLedger is the saved-product set for one storage
// partition, mirrored to durable storage with the same discipline as
// [CartLedger].
type WatchlistLedger struct {
	partition string
	kv        port.KV
	entries   []domain.WatchlistEntry
	now       func() time.Time
}

func NewWatchlistLedger(partition string, kv port.KV) *WatchlistLedger {
	l := &WatchlistLedger{partition: partition, kv: kv, now: time.Now}
	l.load()
	return l
}

func (l *WatchlistLedger) key() string {
	return watchlistKeyPrefix + l.partition
}

func (l *WatchlistLedger) load() {
	const op = "WatchlistLedger.load"

	entries, err := loadLedger[domain.WatchlistEntry](l.kv, l.key())
	if err != nil {
		slog.Warn("starting with empty watchlist",
			"op", op, "partition", l.partition, "err", err)
		return
	}
	l.entries = entries
}

func (l *WatchlistLedger) save() {
	const op = "WatchlistLedger.save"

	if err := saveLedger(l.kv, l.key(), l.entries); err != nil {
		slog.Warn("watchlist persists in memory only",
			"op", op, "partition", l.partition, "err", err)
	}
}

func (l *WatchlistLedger) Entries() []domain.WatchlistEntry {
	entries := make([]domain.WatchlistEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Add appends an entry stamped with the current time. Adding a product
// that is already saved is a no-op.
func (l *WatchlistLedger) Add(p domain.Product) {
	if l.Contains(p.ID) {
		return
	}
	l.entries = append(l.entries, domain.NewWatchlistEntry(p, l.now()))
	l.save()
}

func (l *WatchlistLedger) Remove(productID int64) {
	for i := range l.entries {
		if l.entries[i].ProductID == productID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			l.save()
			return
		}
	}
}

func (l *WatchlistLedger) Clear() {
	l.entries = nil
	l.save()
}

func (l *WatchlistLedger) Contains(productID int64) bool {
	for _, e := range l.entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}
