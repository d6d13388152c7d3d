package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

// POST /v1/checkout, GET /v1/orders

type CheckoutHandler struct {
	checkout port.CheckoutOperator
}

func RegisterCheckout(mux *http.ServeMux, checkout port.CheckoutOperator) {
	h := CheckoutHandler{checkout}
	mux.HandleFunc("POST /v1/checkout", h.PlaceOrder)
	mux.HandleFunc("GET /v1/orders", h.GetOrders)
}

func (h CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PlaceOrder"
	log := slog.With("op", op)

	var req CheckoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	form := domain.CheckoutForm{
		Shipping:      toAddress(req.Shipping),
		SameAsBilling: req.SameAsBilling,
		Billing:       toAddress(req.Billing),
		PaymentMethod: req.PaymentMethod,
		CardName:      req.CardName,
		CardNumber:    req.CardNumber,
		CardExpiry:    req.CardExpiry,
		CardCvv:       req.CardCvv,
	}

	order, err := h.checkout.PlaceOrder(r.Context(), form)
	if err != nil {
		writeError(w, err)
		log.Warn("checkout rejected", "err", err)
		return
	}
	writeJSON(w, http.StatusCreated, order)

	log.Info("order placed", "order", order.ID, "total", order.Total)
}

func (h CheckoutHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.checkout.Orders())
}
