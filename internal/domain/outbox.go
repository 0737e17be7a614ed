package domain

import "time"

const EventTypePaymentReconciled = "payment.reconciled"

// OutboxMessage is written in the same transaction as the records it
// describes and relayed to sinks afterwards.
type OutboxMessage struct {
	ID          string     `json:"id"`
	AggregateID string     `json:"aggregate_id"`
	EventType   string     `json:"event_type"`
	Payload     []byte     `json:"payload"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at"`
}

// PaymentReconciledEvent is the payload of a payment.reconciled message.
type PaymentReconciledEvent struct {
	TransactionID string    `json:"transaction_id"`
	TrackingID    string    `json:"tracking_id"`
	AmountCents   int64     `json:"amount_cents"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customer_email"`
	ClubID        string    `json:"club_id"`
	ClubName      string    `json:"club_name"`
	EventID       string    `json:"event_id,omitempty"`
	PaidAt        time.Time `json:"paid_at"`
}
