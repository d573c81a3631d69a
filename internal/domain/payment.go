package domain

import "time"

// Payment is an append-only entry against a rental. Entries are never updated
// or deleted; a reversal is a new entry with the negated amount and ReversalOf
// pointing at the original.
type Payment struct {
	ID          int64     `json:"id"`
	RentalID    int64     `json:"rental_id"`
	PaidOn      time.Time `json:"paid_on"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method,omitempty"`
	ReversalOf  *int64    `json:"reversal_of,omitempty"`
}

// Reversal reports whether this entry cancels a prior payment.
func (p *Payment) Reversal() bool {
	return p.ReversalOf != nil
}
