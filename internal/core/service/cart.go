package service

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

const cartKeyPrefix = "cart:"

// A CartLedger is the in-memory cart for one storage partition,
// mirrored to durable storage after every mutation. It is bound to its
// partition for its whole lifetime; an identity change constructs a
// fresh ledger instead of repartitioning this one.
type CartLedger struct {
	partition string
	kv        port.KV
	lines     []domain.CartLine
}

// NewCartLedger loads the partition's persisted lines. An absent or
// malformed stored value yields an empty cart.
func NewCartLedger(partition string, kv port.KV) *CartLedger {
	l := &CartLedger{partition: partition, kv: kv}
	l.load()
	return l
}

func (l *CartLedger) key() string {
	return cartKeyPrefix + l.partition
}

func (l *CartLedger) load() {
	const op = "CartLedger.load"

	lines, err := loadLedger[domain.CartLine](l.kv, l.key())
	if err != nil {
		slog.Warn("starting with empty cart",
			"op", op, "partition", l.partition, "err", err)
		return
	}
	l.lines = lines
}

// save mirrors the full line list to storage. A storage failure is
// logged and swallowed: the ledger keeps operating in memory for the
// rest of the cycle.
func (l *CartLedger) save() {
	const op = "CartLedger.save"

	if err := saveLedger(l.kv, l.key(), l.lines); err != nil {
		slog.Warn("cart persists in memory only",
			"op", op, "partition", l.partition, "err", err)
	}
}

func (l *CartLedger) Lines() []domain.CartLine {
	lines := make([]domain.CartLine, len(l.lines))
	copy(lines, l.lines)
	return lines
}

// Add merges quantity into the existing line for the product, or
// appends a new line. Quantity is assumed positive, validated by the
// caller.
func (l *CartLedger) Add(p domain.Product, quantity int) {
	for i := range l.lines {
		if l.lines[i].ProductID == p.ID {
			l.lines[i].Quantity += quantity
			l.save()
			return
		}
	}
	l.lines = append(l.lines, domain.NewCartLine(p, quantity))
	l.save()
}

// UpdateQuantity sets the line's quantity to exactly quantity; a value
// of zero or less removes the line.
func (l *CartLedger) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		l.Remove(productID)
		return
	}
	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines[i].Quantity = quantity
			l.save()
			return
		}
	}
}

func (l *CartLedger) Remove(productID int64) {
	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			l.save()
			return
		}
	}
}

func (l *CartLedger) Clear() {
	l.lines = nil
	l.save()
}

// Total sums price times quantity over all lines.
func (l *CartLedger) Total() float64 {
	var total float64
	for _, line := range l.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Count sums quantities, not line count.
func (l *CartLedger) Count() int {
	var count int
	for _, line := range l.lines {
		count += line.Quantity
	}
	return count
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func loadLedger[T any](kv port.KV, key string) ([]T, error) {
	b, err := kv.Get(key)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func saveLedger[T any](kv port.KV, key string, items []T) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return kv.Put(key, b)
}
