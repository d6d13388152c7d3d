package domain

import "time"

// A WatchlistEntry is a saved product: identity, display snapshot and
// the moment it was saved.
type WatchlistEntry struct {
	ProductID int64     `json:"product_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Seller    string    `json:"seller"`
	Image     string    `json:"image"`
	AddedAt   time.Time `json:"added_at"`
}

func NewWatchlistEntry(p Product, addedAt time.Time) WatchlistEntry {
	return WatchlistEntry{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Currency:  p.Currency,
		Seller:    p.Seller,
		Image:     p.Image,
		AddedAt:   addedAt,
	}
}
