package domain

import "time"

// GuestPartition is the storage partition used while no session identity
// is established.
const GuestPartition = "guest"

// A User is a catalog account record. Password is kept only on records
// read from the catalog document and is stripped before a user becomes
// the session identity.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// WithoutPassword returns a copy safe to establish as session identity.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// A Registration carries the fields a new account is fabricated from.
// Name, Email and Password are required.
type Registration struct {
	Name     string
	Email    string
	Password string
	Address  string
	City     string
	State    string
	ZipCode  string
	Country  string
	Phone    string
}

// A ProfilePatch merges into the current identity; empty fields are
// left untouched.
type ProfilePatch struct {
	Name    string
	Email   string
	Address string
	City    string
	State   string
	ZipCode string
	Country string
	Phone   string
}
