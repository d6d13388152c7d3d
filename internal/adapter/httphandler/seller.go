package httphandler

import (
	"net/http"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

// GET /v1/seller/listings, POST /v1/seller/listings, GET /v1/seller/stats

type SellerHandler struct {
	seller port.SellerOperator
}

func RegisterSeller(mux *http.ServeMux, seller port.SellerOperator) {
	h := SellerHandler{seller}
	mux.HandleFunc("GET /v1/seller/listings", h.GetListings)
	mux.HandleFunc("POST /v1/seller/listings", h.CreateListing)
	mux.HandleFunc("GET /v1/seller/stats", h.GetStats)
}

func (h SellerHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	ps, err := h.seller.Listings()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h SellerHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req CreateListingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.seller.CreateListing(domain.ListingForm{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Condition:    req.Condition,
		Price:        req.Price,
		ShippingCost: req.ShippingCost,
		Location:     req.Location,
		Image:        req.Image,
		Size:         req.Size,
		Color:        req.Color,
		DressLength:  req.DressLength,
		SleeveLength: req.SleeveLength,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProduct(p))
}

func (h SellerHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.seller.SellerStats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
