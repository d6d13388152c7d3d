package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

// GET /v1/products?q=&category=&size=&dress_length=&color=&sleeve_length=&sort=
// GET /v1/products/{id}
// GET /v1/categories

type BrowseHandler struct {
	browser port.ProductBrowser
}

func RegisterBrowse(mux *http.ServeMux, browser port.ProductBrowser) {
	h := BrowseHandler{browser}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
}

func (h BrowseHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "BrowseHandler.GetProducts"
	log := slog.With("op", op)

	q := r.URL.Query()

	sel := domain.NewFilterSelection()
	if c := q.Get("category"); c != "" {
		sel.SetCategory(c)
	}
	sel.Size = q["size"]
	sel.DressLength = q["dress_length"]
	sel.Color = q["color"]
	sel.SleeveLength = q["sleeve_length"]

	sort := domain.SortBestMatch
	if v := q.Get("sort"); v != "" {
		sort = domain.SortOption(v)
	}

	ps := h.browser.Search(q.Get("q"), sel, sort)
	writeJSON(w, http.StatusOK, toProducts(ps))

	log.Info("search served", "query", q.Get("q"), "nResults", len(ps))
}

func (h BrowseHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.browser.Product(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(p))
}

func (h BrowseHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cs := h.browser.Categories()
	vs := make([]Category, 0, len(cs))
	for _, c := range cs {
		vs = append(vs, Category{ID: c.ID, Name: c.Name, Image: c.Image})
	}
	writeJSON(w, http.StatusOK, vs)
}
