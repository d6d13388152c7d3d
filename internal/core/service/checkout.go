package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

const ordersKeyPrefix = "orders:"

var _ port.CheckoutOperator = (*Storefront)(nil)

// PlaceOrder validates the form and the cart, waits out the simulated
// payment, persists the order in the identity's partition and clears
// the cart. The result is never partial: a failed payment wait leaves
// cart and history untouched.
func (s *Storefront) PlaceOrder(
	ctx context.Context, form domain.CheckoutForm,
) (domain.Order, error) {
	const op = "Storefront.PlaceOrder"

	s.mu.Lock()
	lines := s.cart.Lines()
	subtotal := s.cart.Total()
	partition := s.session.Partition()
	userID := partition
	s.mu.Unlock()

	if len(lines) == 0 {
		return domain.Order{}, fmt.Errorf("%s: cart is empty: %w",
			op, domain.ErrValidation)
	}
	if err := validateCheckoutForm(form); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.simulatePayment(ctx); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	billing := form.Billing
	if form.SameAsBilling {
		billing = form.Shipping
	}

	tax := subtotal * s.cfg.TaxRate
	order := domain.Order{
		ID:              s.orderID(),
		UserID:          userID,
		Lines:           lines,
		Subtotal:        subtotal,
		Tax:             tax,
		ShippingCost:    s.cfg.ShippingFlatCost,
		Total:           subtotal + tax + s.cfg.ShippingFlatCost,
		ShippingAddress: form.Shipping,
		BillingAddress:  billing,
		PaymentMethod:   form.PaymentMethod,
		Status:          domain.OrderStatusPaid,
		CreatedAt:       s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendOrder(partition, order)
	// The identity may have switched during the payment wait, swapping
	// the live ledgers. Clear the purchased partition, never whichever
	// cart the storefront points at now.
	if s.session.Partition() == partition {
		s.cart.Clear()
	} else {
		NewCartLedger(partition, s.kv).Clear()
	}
	return order, nil
}

// Orders returns the identity's purchase history, newest first.
func (s *Storefront) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.loadOrders(s.session.Partition())
	slices.SortStableFunc(orders, func(a, b domain.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return orders
}

func (s *Storefront) loadOrders(partition string) []domain.Order {
	const op = "Storefront.loadOrders"

	orders, err := loadLedger[domain.Order](s.kv, ordersKeyPrefix+partition)
	if err != nil {
		slog.Warn("starting with empty order history",
			"op", op, "partition", partition, "err", err)
		return nil
	}
	return orders
}

func (s *Storefront) appendOrder(partition string, order domain.Order) {
	const op = "Storefront.appendOrder"

	orders := append(s.loadOrders(partition), order)
	if err := saveLedger(s.kv, ordersKeyPrefix+partition, orders); err != nil {
		slog.Warn("order persists in memory only",
			"op", op, "partition", partition, "err", err)
	}
}

// simulatePayment stands in for a payment round-trip: it resolves
// after the configured delay or fails with the context's error.
func (s *Storefront) simulatePayment(ctx context.Context) error {
	if s.cfg.PaymentDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.cfg.PaymentDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func validateCheckoutForm(form domain.CheckoutForm) error {
	if err := validateAddress("shipping", form.Shipping); err != nil {
		return err
	}
	if !form.SameAsBilling {
		if err := validateAddress("billing", form.Billing); err != nil {
			return err
		}
	}
	if form.PaymentMethod == domain.PaymentCreditCard {
		if form.CardName == "" || form.CardNumber == "" ||
			form.CardExpiry == "" || form.CardCvv == "" {
			return fmt.Errorf("card details are required: %w",
				domain.ErrValidation)
		}
	}
	return nil
}

func validateAddress(kind string, a domain.Address) error {
	if a.Address == "" || a.City == "" || a.Zip == "" || a.Country == "" {
		return fmt.Errorf("%s address is incomplete: %w",
			kind, domain.ErrValidation)
	}
	return nil
}
