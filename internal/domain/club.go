package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClubStatus string

const (
	ClubStatusPending  ClubStatus = "pending"
	ClubStatusApproved ClubStatus = "approved"
	ClubStatusRejected ClubStatus = "rejected"
)

func (s ClubStatus) Valid() bool {
	switch s {
	case ClubStatusPending, ClubStatusApproved, ClubStatusRejected:
		return true
	}
	return false
}

type Club struct {
	ID             string          `json:"id"`
	ClubName       string          `json:"club_name"`
	Description    string          `json:"description"`
	Image          string          `json:"image"`
	BannerImage    string          `json:"banner_image"`
	Location       string          `json:"location"`
	Category       string          `json:"category"`
	MembershipFee  decimal.Decimal `json:"membership_fee"`
	CreatedByEmail string          `json:"created_by_email"`
	Status         ClubStatus      `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CreateClubInput struct {
	ClubName       string
	Description    string
	Image          string
	BannerImage    string
	Location       string
	Category       string
	MembershipFee  decimal.Decimal
	CreatedByEmail string
}

// ClubPatch is a partial update. Nil fields keep their stored value.
type ClubPatch struct {
	ClubName      *string
	Description   *string
	Location      *string
	MembershipFee *decimal.Decimal
	Category      *string
	BannerImage   *string
}

// Apply returns a copy of c with the set fields of p applied. Empty strings
// count as unset, same as a blank banner image.
func (p ClubPatch) Apply(c Club) Club {
	set := func(dst *string, v *string) {
		if v != nil && *v != "" {
			*dst = *v
		}
	}
	set(&c.ClubName, p.ClubName)
	set(&c.Description, p.Description)
	set(&c.Location, p.Location)
	set(&c.Category, p.Category)
	set(&c.BannerImage, p.BannerImage)
	if p.MembershipFee != nil {
		c.MembershipFee = *p.MembershipFee
	}
	return c
}

// ClubDeletion reports what a cascading club delete removed.
type ClubDeletion struct {
	DeletedCount int
	EventIDs     []string
}
