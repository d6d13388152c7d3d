package domain

import "time"

const (
	PaymentCreditCard = "credit-card"
	PaymentPaypal     = "paypal"

	OrderStatusPaid = "paid"
)

type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Order struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Lines           []CartLine `json:"lines"`
	Subtotal        float64    `json:"subtotal"`
	Tax             float64    `json:"tax"`
	ShippingCost    float64    `json:"shipping_cost"`
	Total           float64    `json:"total"`
	ShippingAddress Address    `json:"shipping_address"`
	BillingAddress  Address    `json:"billing_address"`
	PaymentMethod   string     `json:"payment_method"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

// A CheckoutForm is the validated caller input for placing an order.
// When SameAsBilling is set the billing address is taken from the
// shipping address. Card fields are required for credit-card payment.
type CheckoutForm struct {
	Shipping      Address
	SameAsBilling bool
	Billing       Address
	PaymentMethod string
	CardName      string
	CardNumber    string
	CardExpiry    string
	CardCvv       string
}

// A ListingForm carries the fields a seller listing is created from.
// Title, Category and a positive Price are required.
type ListingForm struct {
	Title        string
	Description  string
	Category     string
	Condition    string
	Price        float64
	ShippingCost float64
	Location     string
	Image        string
	Size         string
	Color        string
	DressLength  string
	SleeveLength string
}

type SellerStats struct {
	TotalListings int     `json:"total_listings"`
	TotalOrders   int     `json:"total_orders"`
	TotalSales    float64 `json:"total_sales"`
}
