package domain

import "time"

type MembershipStatus string

const MembershipStatusActive MembershipStatus = "active"

type Membership struct {
	ID        string           `json:"id"`
	ClubID    string           `json:"club_id"`
	UserEmail string           `json:"user_email"`
	Status    MembershipStatus `json:"status"`
	PaymentID string           `json:"payment_id"`
	JoinedAt  time.Time        `json:"joined_at"`
}
