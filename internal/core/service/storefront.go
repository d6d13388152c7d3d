package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

var (
	_ port.CartOperator      = (*Storefront)(nil)
	_ port.WatchlistOperator = (*Storefront)(nil)
	_ port.SessionOperator   = (*Storefront)(nil)
)

type StorefrontConfig struct {
	PaymentDelay     time.Duration
	TaxRate          float64
	ShippingFlatCost float64
}

// A Storefront binds the session identity to the cart and watchlist
// ledgers: every identity transition rebuilds both ledgers from the
// new partition, discarding in-memory state of the prior one. The
// ledgers themselves are single-threaded; the storefront serializes
// access because the HTTP adapter calls in from concurrent handlers.
type Storefront struct {
	mu        sync.Mutex
	catalog   port.Catalog
	kv        port.KV
	cfg       StorefrontConfig
	session   *SessionProvider
	cart      *CartLedger
	watchlist *WatchlistLedger
	now       func() time.Time
	orderID   func() string
	listingID func() int64
}

func NewStorefront(
	catalog port.Catalog, kv port.KV, cfg StorefrontConfig,
) *Storefront {
	s := &Storefront{
		catalog: catalog,
		kv:      kv,
		cfg:     cfg,
		session: NewSessionProvider(catalog, kv),
		now:     time.Now,
		orderID: func() string { return "ORD-" + uuid.NewString() },
	}
	// Listing IDs share the catalog's int64 identity space. The clock
	// seed keeps them far above catalog IDs, the counter keeps two
	// listings in the same millisecond distinct.
	seq := new(atomic.Int64)
	seq.Store(time.Now().UnixMilli())
	s.listingID = func() int64 { return seq.Add(1) }
	s.reloadLedgers()
	return s
}

func (s *Storefront) reloadLedgers() {
	partition := s.session.Partition()
	s.cart = NewCartLedger(partition, s.kv)
	s.watchlist = NewWatchlistLedger(partition, s.kv)
}

func (s *Storefront) product(productID int64) (domain.Product, error) {
	p, ok := s.catalog.ProductByID(productID)
	if !ok {
		return domain.Product{}, fmt.Errorf("product %d: %w",
			productID, domain.ErrNotFound)
	}
	return p, nil
}

// Cart operations.

func (s *Storefront) CartLines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Storefront) AddToCart(productID int64, quantity int) error {
	const op = "Storefront.AddToCart"

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return fmt.Errorf("%s: quantity must be positive: %w",
			op, domain.ErrValidation)
	}
	p, err := s.product(productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cart.Add(p, quantity)
	return nil
}

func (s *Storefront) UpdateCartQuantity(productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(productID, quantity)
	return nil
}

func (s *Storefront) RemoveFromCart(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	return nil
}

func (s *Storefront) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	return nil
}

func (s *Storefront) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Storefront) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// Watchlist operations.

func (s *Storefront) WatchlistEntries() []domain.WatchlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watchlist.Entries()
}

func (s *Storefront) AddToWatchlist(productID int64) error {
	const op = "Storefront.AddToWatchlist"

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.product(productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.watchlist.Add(p)
	return nil
}

func (s *Storefront) RemoveFromWatchlist(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchlist.Remove(productID)
	return nil
}

func (s *Storefront) ClearWatchlist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchlist.Clear()
	return nil
}

func (s *Storefront) InWatchlist(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watchlist.Contains(productID)
}

// Session operations. Ledgers follow every identity transition.

func (s *Storefront) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Current()
}

func (s *Storefront) Login(email, password string) (domain.User, error) {
	const op = "Storefront.Login"

	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.session.Login(email, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	s.reloadLedgers()
	return u, nil
}

func (s *Storefront) Register(reg domain.Registration) (domain.User, error) {
	const op = "Storefront.Register"

	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.session.Register(reg)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	s.reloadLedgers()
	return u, nil
}

func (s *Storefront) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Logout()
	s.reloadLedgers()
	return nil
}

func (s *Storefront) UpdateProfile(patch domain.ProfilePatch) (domain.User, error) {
	const op = "Storefront.UpdateProfile"

	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.session.UpdateProfile(patch)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
