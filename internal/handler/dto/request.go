package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type CreateCheckoutRequest struct {
	ClubID      string      `json:"clubId"      binding:"required"`
	ClubName    string      `json:"clubName"    binding:"required"`
	EventID     string      `json:"eventId"`
	SenderEmail string      `json:"senderEmail" binding:"required,email"`
	Cost        json.Number `json:"cost"        binding:"required"`
}

type CreateEventRequest struct {
	ClubID      string          `json:"clubId"      binding:"required,uuid"`
	Title       string          `json:"title"       binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date"        binding:"required"`
	Location    string          `json:"location"`
	Price       decimal.Decimal `json:"price"`
}

type CreateClubRequest struct {
	ClubName       string          `json:"clubName"       binding:"required"`
	Description    string          `json:"description"`
	Image          string          `json:"image"`
	BannerImage    string          `json:"bannerImage"`
	Location       string          `json:"location"`
	Category       string          `json:"category"`
	MembershipFee  decimal.Decimal `json:"membershipFee"`
	CreatedByEmail string          `json:"createdByEmail" binding:"required,email"`
}

type UpdateClubStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateClubRequest lists every field a club owner may change.
type UpdateClubRequest struct {
	ClubName      *string          `json:"clubName"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location"`
	MembershipFee *decimal.Decimal `json:"membershipFee"`
	Category      *string          `json:"category"`
	BannerImage   *string          `json:"bannerImage"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    binding:"required,email"`
	PhotoURL string `json:"photoURL"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
