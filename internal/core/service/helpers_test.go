package service_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
)

// memKV is an in-memory stand-in for the durable local storage.
type memKV struct {
	data map[string][]byte
	puts int
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (kv *memKV) Get(key string) ([]byte, error) {
	b, ok := kv.data[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	return b, nil
}

func (kv *memKV) Put(key string, value []byte) error {
	kv.data[key] = value
	kv.puts++
	return nil
}

func (kv *memKV) Delete(key string) error {
	delete(kv.data, key)
	return nil
}

// brokenKV fails every operation, simulating unavailable storage.
type brokenKV struct{}

var errBroken = errors.New("storage offline")

func (brokenKV) Get(string) ([]byte, error) { return nil, errBroken }
func (brokenKV) Put(string, []byte) error { return errBroken }
func (brokenKV) Delete(string) error { return errBroken }

type fakeCatalog struct {
	products   []domain.Product
	categories []domain.Category
	users      []domain.User
}

func (c fakeCatalog) Products() []domain.Product { return c.products }
func (c fakeCatalog) Categories() []domain.Category { return c.categories }
func (c fakeCatalog) Users() []domain.User { return c.users }

func (c fakeCatalog) ProductByID(id int64) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func testProducts() []domain.Product {
	mustTime := func(v string) time.Time {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			panic(err)
		}
		return t
	}
	return []domain.Product{
		{
			ID: 1, Title: "Red brocade dress", Description: "Five-color brocade",
			Category: "A", Price: 100, Currency: "VND", Seller: "Mai",
			Size: "M", Color: "Red", DressLength: "Long",
			SleeveLength: "Long Sleeve",
			CreatedAt:    mustTime("2024-03-01T00:00:00Z"),
		},
		{
			ID: 2, Title: "Blue modern dress", Description: "Modern cut",
			Category: "A", Price: 50, Currency: "VND", Seller: "Lan",
			Size: "S", Color: "Blue", DressLength: "Midi",
			SleeveLength: "Short Sleeve",
			CreatedAt:    mustTime("2024-05-01T00:00:00Z"),
		},
		{
			ID: 3, Title: "Green silk dress", Description: "Light silk",
			Category: "B", Price: 75, Currency: "VND", Seller: "Mai",
			Size: "M", Color: "Green", DressLength: "Short",
			SleeveLength: "Sleeveless",
			// no creation timestamp: sorts as least recent
		},
	}
}
