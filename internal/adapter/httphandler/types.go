package httphandler

import (
	"time"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
)

type (
	Product struct {
		ID           int64   `json:"id"`
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		Category     string  `json:"category"`
		Price        float64 `json:"price"`
		Currency     string  `json:"currency"`
		Condition    string  `json:"condition"`
		Seller       string  `json:"seller"`
		ShippingCost float64 `json:"shipping_cost"`
		Location     string  `json:"location"`
		Image        string  `json:"image"`
		Size         string  `json:"size,omitempty"`
		Color        string  `json:"color,omitempty"`
		DressLength  string  `json:"dress_length,omitempty"`
		SleeveLength string  `json:"sleeve_length,omitempty"`
		CreatedAt    string  `json:"created_at,omitempty"`
	}

	Category struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image"`
	}

	User struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
		City    string `json:"city"`
		State   string `json:"state"`
		ZipCode string `json:"zip_code"`
		Country string `json:"country"`
		Phone   string `json:"phone"`
	}

	Cart struct {
		Lines []domain.CartLine `json:"lines"`
		Total float64           `json:"total"`
		Count int               `json:"count"`
	}

	Watchlist struct {
		Entries []domain.WatchlistEntry `json:"entries"`
	}
)

type (
	AddCartItemRequest struct {
		ProductID int64 `json:"product_id"`
		Quantity  int   `json:"quantity"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity"`
	}

	AddWatchlistItemRequest struct {
		ProductID int64 `json:"product_id"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	RegisterRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Address  string `json:"address"`
		City     string `json:"city"`
		State    string `json:"state"`
		ZipCode  string `json:"zip_code"`
		Country  string `json:"country"`
		Phone    string `json:"phone"`
	}

	ProfilePatchRequest struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
		City    string `json:"city"`
		State   string `json:"state"`
		ZipCode string `json:"zip_code"`
		Country string `json:"country"`
		Phone   string `json:"phone"`
	}

	AddressRequest struct {
		Address string `json:"address"`
		City    string `json:"city"`
		State   string `json:"state"`
		Zip     string `json:"zip"`
		Country string `json:"country"`
	}

	CheckoutRequest struct {
		Shipping      AddressRequest `json:"shipping"`
		SameAsBilling bool           `json:"same_as_billing"`
		Billing       AddressRequest `json:"billing"`
		PaymentMethod string         `json:"payment_method"`
		CardName      string         `json:"card_name"`
		CardNumber    string         `json:"card_number"`
		CardExpiry    string         `json:"card_expiry"`
		CardCvv       string         `json:"card_cvv"`
	}

	CreateListingRequest struct {
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		Category     string  `json:"category"`
		Condition    string  `json:"condition"`
		Price        float64 `json:"price"`
		ShippingCost float64 `json:"shipping_cost"`
		Location     string  `json:"location"`
		Image        string  `json:"image"`
		Size         string  `json:"size"`
		Color        string  `json:"color"`
		DressLength  string  `json:"dress_length"`
		SleeveLength string  `json:"sleeve_length"`
	}
)

func toProduct(p domain.Product) Product {
	v := Product{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Price:        p.Price,
		Currency:     p.Currency,
		Condition:    p.Condition,
		Seller:       p.Seller,
		ShippingCost: p.ShippingCost,
		Location:     p.Location,
		Image:        p.Image,
		Size:         p.Size,
		Color:        p.Color,
		DressLength:  p.DressLength,
		SleeveLength: p.SleeveLength,
	}
	if !p.CreatedAt.IsZero() {
		v.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	return v
}

func toProducts(ps []domain.Product) []Product {
	vs := make([]Product, 0, len(ps))
	for _, p := range ps {
		vs = append(vs, toProduct(p))
	}
	return vs
}

func toUser(u domain.User) User {
	return User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		City:    u.City,
		State:   u.State,
		ZipCode: u.ZipCode,
		Country: u.Country,
		Phone:   u.Phone,
	}
}

func toAddress(a AddressRequest) domain.Address {
	return domain.Address{
		Address: a.Address,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: a.Country,
	}
}
