package domain

// Customer holds the renter registry entry. NationalID is unique across all
// customers.
type Customer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Email      string `json:"email"`
}
