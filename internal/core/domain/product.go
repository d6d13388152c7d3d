package domain

import "time"

type (
	Product struct {
		ID           int64
		Title        string
		Description  string
		Category     string
		Price        float64
		Currency     string
		Condition    string
		Seller       string
		ShippingCost float64
		Location     string
		Image        string
		Size         string
		Color        string
		DressLength  string
		SleeveLength string
		CreatedAt    time.Time
	}

	Category struct {
		ID    int64
		Name  string
		Image string
	}
)
