// Command seedcatalog writes a small starter catalog document so the
// shop binary has something to browse out of the box.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

const seedDocument = `{
  "users": [
    {
      "id": 1,
      "name": "Nguyen Van A",
      "email": "demo@example.com",
      "password": "password123",
      "address": "12 Hang Bac",
      "city": "Hanoi",
      "state": "",
      "zipCode": "100000",
      "country": "VN",
      "phone": "+84 912 345 678",
      "createdAt": "2024-01-15T09:00:00Z"
    }
  ],
  "products": [
    {
      "id": 1,
      "title": "Ao dai gam ngu sac",
      "description": "Traditional five-color brocade ao dai",
      "category": "Traditional",
      "price": 1404205,
      "currency": "VND",
      "condition": "New",
      "seller": "Nguyen Van A",
      "shippingCost": 150000,
      "location": "Hanoi, VN",
      "image": "/images/ao-dai-gam.jpg",
      "size": "M",
      "color": "Pink",
      "dressLength": "Long",
      "sleeveLength": "Long Sleeve",
      "createdAt": "2024-03-02T10:30:00Z"
    },
    {
      "id": 2,
      "title": "Ao dai cach tan mau xanh",
      "description": "Modern cut ao dai in blue",
      "category": "Modern",
      "price": 1200000,
      "currency": "VND",
      "condition": "New",
      "seller": "Nguyen Van A",
      "shippingCost": 150000,
      "location": "Hanoi, VN",
      "image": "/images/ao-dai-xanh.jpg",
      "size": "S",
      "color": "Blue",
      "dressLength": "Midi",
      "sleeveLength": "Short Sleeve",
      "createdAt": "2024-04-18T14:00:00Z"
    }
  ],
  "categories": [
    { "id": 1, "name": "Traditional", "image": "/images/cat-traditional.jpg" },
    { "id": 2, "name": "Modern", "image": "/images/cat-modern.jpg" }
  ]
}
`

func main() {
	out := pflag.StringP("out", "o", "database.json", "output document path")
	pflag.Parse()

	// round-trip through json to guarantee the seed stays well-formed
	var doc map[string]any
	if err := json.Unmarshal([]byte(seedDocument), &doc); err != nil {
		die(err)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		die(err)
	}

	if err := os.WriteFile(*out, b, 0o644); err != nil {
		die(err)
	}
	fmt.Printf("catalog document written to %s\n", *out)
}

func die(err error) {
	fmt.Printf("failed to write catalog document: %v\n", err)
	os.Exit(2)
}
