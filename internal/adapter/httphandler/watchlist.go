package httphandler

import (
	"net/http"
	"strconv"

	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

// GET /v1/watchlist, DELETE /v1/watchlist
// POST /v1/watchlist/items, DELETE /v1/watchlist/items/{id}

type WatchlistHandler struct {
	watchlist port.WatchlistOperator
}

func RegisterWatchlist(mux *http.ServeMux, watchlist port.WatchlistOperator) {
	h := WatchlistHandler{watchlist}
	mux.HandleFunc("GET /v1/watchlist", h.GetWatchlist)
	mux.HandleFunc("DELETE /v1/watchlist", h.ClearWatchlist)
	mux.HandleFunc("POST /v1/watchlist/items", h.AddItem)
	mux.HandleFunc("DELETE /v1/watchlist/items/{id}", h.RemoveItem)
}

func (h WatchlistHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Watchlist{Entries: h.watchlist.WatchlistEntries()})
}

func (h WatchlistHandler) ClearWatchlist(w http.ResponseWriter, r *http.Request) {
	if err := h.watchlist.ClearWatchlist(); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h WatchlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddWatchlistItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.watchlist.AddToWatchlist(req.ProductID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h WatchlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.watchlist.RemoveFromWatchlist(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
