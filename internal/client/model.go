package client

import "time"

type Client struct {
	ID        string
	Name      string
	Surname   string
	Company   string
	Email     string
	Phone     *string
	SellerID  string
	CreatedAt time.Time
}

// OwnerID makes Client usable with the authz guard.
func (c Client) OwnerID() string { return c.SellerID }

type ClientInput struct {
	Name    string
	Surname string
	Company string
	Email   string
	Phone   *string
}
