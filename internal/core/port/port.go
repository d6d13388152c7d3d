package port

import (
	"context"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
)

// KV is the durable local storage contract: string keys, opaque text
// values, last write wins. Get returns [domain.ErrNotFound] for an
// absent key.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Catalog is the read-only static document: loaded once, the sole
// source of truth for products, categories and account records.
type Catalog interface {
	Products() []domain.Product
	Categories() []domain.Category
	Users() []domain.User
	ProductByID(id int64) (domain.Product, bool)
}

type ProductBrowser interface {
	Search(query string, sel domain.FilterSelection, sort domain.SortOption) []domain.Product
	Product(id int64) (domain.Product, error)
	Categories() []domain.Category
}

type CartOperator interface {
	CartLines() []domain.CartLine
	AddToCart(productID int64, quantity int) error
	UpdateCartQuantity(productID int64, quantity int) error
	RemoveFromCart(productID int64) error
	ClearCart() error
	CartTotal() float64
	CartCount() int
}

type WatchlistOperator interface {
	WatchlistEntries() []domain.WatchlistEntry
	AddToWatchlist(productID int64) error
	RemoveFromWatchlist(productID int64) error
	ClearWatchlist() error
	InWatchlist(productID int64) bool
}

type SessionOperator interface {
	Current() (domain.User, bool)
	Login(email, password string) (domain.User, error)
	Register(reg domain.Registration) (domain.User, error)
	Logout() error
	UpdateProfile(patch domain.ProfilePatch) (domain.User, error)
}

type CheckoutOperator interface {
	PlaceOrder(ctx context.Context, form domain.CheckoutForm) (domain.Order, error)
	Orders() []domain.Order
}

type SellerOperator interface {
	CreateListing(form domain.ListingForm) (domain.Product, error)
	Listings() ([]domain.Product, error)
	SellerStats() (domain.SellerStats, error)
}
