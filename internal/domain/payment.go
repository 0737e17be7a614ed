package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const PaymentStatusPaid PaymentStatus = "paid"

// Payment is immutable. TransactionID is the processor's payment intent id
// and is unique across all payments.
type Payment struct {
	ID            string        `json:"id"`
	TransactionID string        `json:"transaction_id"`
	AmountCents   int64         `json:"amount_cents"`
	Currency      string        `json:"currency"`
	CustomerEmail string        `json:"customer_email"`
	ClubID        string        `json:"club_id"`
	ClubName      string        `json:"club_name"`
	EventID       string        `json:"event_id"`
	Status        PaymentStatus `json:"status"`
	PaidAt        time.Time     `json:"paid_at"`
	TrackingID    string        `json:"tracking_id"`
}

// Amount returns the payment amount in major currency units.
func (p *Payment) Amount() decimal.Decimal {
	return decimal.New(p.AmountCents, -2)
}
