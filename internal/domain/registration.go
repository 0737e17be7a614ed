package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"
)

// EventRegistration is never mutated once created. PaymentID holds the
// transaction id of the payment that produced it, nil for free registrations.
type EventRegistration struct {
	ID           string             `json:"id"`
	EventID      string             `json:"event_id"`
	ClubID       string             `json:"club_id"`
	UserEmail    string             `json:"user_email"`
	Status       RegistrationStatus `json:"status"`
	PaymentID    *string            `json:"payment_id"`
	RegisteredAt time.Time          `json:"registered_at"`
}
