// Package catalog loads the static marketplace document: a single
// JSON file exposing users, products and categories, consumed in full
// once per process and read-only thereafter.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

var _ port.Catalog = (*Store)(nil)

type (
	document struct {
		Users      []userDoc     `json:"users"`
		Products   []productDoc  `json:"products"`
		Categories []categoryDoc `json:"categories"`
	}

	userDoc struct {
		ID        json.Number `json:"id"`
		Name      string      `json:"name"`
		Email     string      `json:"email"`
		Password  string      `json:"password"`
		Address   string      `json:"address"`
		City      string      `json:"city"`
		State     string      `json:"state"`
		ZipCode   string      `json:"zipCode"`
		Country   string      `json:"country"`
		Phone     string      `json:"phone"`
		CreatedAt string      `json:"createdAt"`
	}

	productDoc struct {
		ID           int64   `json:"id"`
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		Category     string  `json:"category"`
		Price        float64 `json:"price"`
		Currency     string  `json:"currency"`
		Condition    string  `json:"condition"`
		Seller       string  `json:"seller"`
		ShippingCost float64 `json:"shippingCost"`
		Location     string  `json:"location"`
		Image        string  `json:"image"`
		Size         string  `json:"size"`
		Color        string  `json:"color"`
		DressLength  string  `json:"dressLength"`
		SleeveLength string  `json:"sleeveLength"`
		CreatedAt    string  `json:"createdAt"`
	}

	categoryDoc struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image"`
	}
)

// A Store is the in-memory catalog. Document order is preserved; the
// "Best Match" sort depends on it.
type Store struct {
	users      []domain.User
	products   []domain.Product
	categories []domain.Category
	byID       map[int64]domain.Product
}

// Load reads the document at path after waiting out fetchDelay, which
// simulates the network fetch of the original system. The result is
// complete or an error, never partial.
func Load(ctx context.Context, path string, fetchDelay time.Duration) (*Store, error) {
	const op = "catalog.Load"
	log := slog.With("op", op)

	if fetchDelay > 0 {
		timer := time.NewTimer(fetchDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-timer.C:
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read document: %w", op, err)
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to parse document: %w", op, err)
	}

	s := fromDocument(doc)
	log.Info("catalog document loaded",
		"nProducts", len(s.products),
		"nCategories", len(s.categories),
		"nUsers", len(s.users),
	)
	return s, nil
}

func fromDocument(doc document) *Store {
	s := &Store{byID: make(map[int64]domain.Product, len(doc.Products))}

	for _, u := range doc.Users {
		s.users = append(s.users, domain.User{
			ID:        u.ID.String(),
			Name:      u.Name,
			Email:     u.Email,
			Password:  u.Password,
			Address:   u.Address,
			City:      u.City,
			State:     u.State,
			ZipCode:   u.ZipCode,
			Country:   u.Country,
			Phone:     u.Phone,
			CreatedAt: parseTimestamp(u.CreatedAt),
		})
	}

	for _, p := range doc.Products {
		dp := domain.Product{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Category:     p.Category,
			Price:        p.Price,
			Currency:     p.Currency,
			Condition:    p.Condition,
			Seller:       p.Seller,
			ShippingCost: p.ShippingCost,
			Location:     p.Location,
			Image:        p.Image,
			Size:         p.Size,
			Color:        p.Color,
			DressLength:  p.DressLength,
			SleeveLength: p.SleeveLength,
			CreatedAt:    parseTimestamp(p.CreatedAt),
		}
		s.products = append(s.products, dp)
		s.byID[dp.ID] = dp
	}

	for _, c := range doc.Categories {
		s.categories = append(s.categories, domain.Category{
			ID:    c.ID,
			Name:  c.Name,
			Image: c.Image,
		})
	}
	return s
}

// parseTimestamp tolerates absent or malformed timestamps: such
// products sort as least recent.
func parseTimestamp(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (s *Store) Products() []domain.Product {
	return s.products
}

func (s *Store) Categories() []domain.Category {
	return s.categories
}

func (s *Store) Users() []domain.User {
	return s.users
}

func (s *Store) ProductByID(id int64) (domain.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}
