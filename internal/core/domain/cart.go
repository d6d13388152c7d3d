package domain

// A CartLine is one cart position: the product identity, a snapshot of
// its display fields taken at add time, and a positive quantity.
type CartLine struct {
	ProductID    int64   `json:"product_id"`
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	Seller       string  `json:"seller"`
	Image        string  `json:"image"`
	ShippingCost float64 `json:"shipping_cost"`
	Quantity     int     `json:"quantity"`
}

func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		ProductID:    p.ID,
		Title:        p.Title,
		Price:        p.Price,
		Currency:     p.Currency,
		Seller:       p.Seller,
		Image:        p.Image,
		ShippingCost: p.ShippingCost,
		Quantity:     quantity,
	}
}
