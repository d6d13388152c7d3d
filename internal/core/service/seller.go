package service

import (
	"fmt"
	"log/slog"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

const listingsKeyPrefix = "listings:"

var _ port.SellerOperator = (*Storefront)(nil)

// CreateListing fabricates a product listed by the session identity
// and persists it in the identity's partition. Listings are never
// written back to the catalog document.
func (s *Storefront) CreateListing(form domain.ListingForm) (domain.Product, error) {
	const op = "Storefront.CreateListing"

	s.mu.Lock()
	defer s.mu.Unlock()

	seller, ok := s.session.Current()
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNoSession)
	}
	if form.Title == "" || form.Category == "" || form.Price <= 0 {
		return domain.Product{}, fmt.Errorf(
			"%s: title, category and a positive price are required: %w",
			op, domain.ErrValidation)
	}

	p := domain.Product{
		ID:           s.listingID(),
		Title:        form.Title,
		Description:  form.Description,
		Category:     form.Category,
		Condition:    form.Condition,
		Price:        form.Price,
		ShippingCost: form.ShippingCost,
		Location:     form.Location,
		Image:        form.Image,
		Size:         form.Size,
		Color:        form.Color,
		DressLength:  form.DressLength,
		SleeveLength: form.SleeveLength,
		Seller:       seller.Name,
		CreatedAt:    s.now(),
	}

	partition := s.session.Partition()
	listings := s.loadListings(partition)
	listings = append(listings, p)
	if err := saveLedger(s.kv, listingsKeyPrefix+partition, listings); err != nil {
		slog.Warn("listing persists in memory only",
			"op", op, "partition", partition, "err", err)
	}
	return p, nil
}

// Listings merges catalog products listed by the session identity with
// the session-local listings.
func (s *Storefront) Listings() ([]domain.Product, error) {
	const op = "Storefront.Listings"

	s.mu.Lock()
	defer s.mu.Unlock()

	seller, ok := s.session.Current()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNoSession)
	}

	var listings []domain.Product
	for _, p := range s.catalog.Products() {
		if p.Seller == seller.Name {
			listings = append(listings, p)
		}
	}
	listings = append(listings, s.loadListings(s.session.Partition())...)
	return listings, nil
}

// SellerStats derives dashboard totals from the identity's listings
// and order history.
func (s *Storefront) SellerStats() (domain.SellerStats, error) {
	const op = "Storefront.SellerStats"

	listings, err := s.Listings()
	if err != nil {
		return domain.SellerStats{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	orders := s.loadOrders(s.session.Partition())
	s.mu.Unlock()

	stats := domain.SellerStats{
		TotalListings: len(listings),
		TotalOrders:   len(orders),
	}
	for _, o := range orders {
		stats.TotalSales += o.Total
	}
	return stats, nil
}

func (s *Storefront) loadListings(partition string) []domain.Product {
	const op = "Storefront.loadListings"

	listings, err := loadLedger[domain.Product](s.kv, listingsKeyPrefix+partition)
	if err != nil {
		slog.Warn("starting with no session listings",
			"op", op, "partition", partition, "err", err)
		return nil
	}
	return listings
}
