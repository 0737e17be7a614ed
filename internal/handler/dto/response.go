package dto

import (
	"time"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type ReconcileResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	TrackingID    string `json:"trackingId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

type RegistrationResponse struct {
	ID           string  `json:"id"`
	EventID      string  `json:"eventId"`
	ClubID       string  `json:"clubId"`
	UserEmail    string  `json:"userEmail"`
	Status       string  `json:"status"`
	PaymentID    *string `json:"paymentId"`
	RegisteredAt string  `json:"registeredAt"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CustomerEmail string  `json:"customerEmail"`
	ClubID        string  `json:"clubId"`
	ClubName      string  `json:"clubName"`
	EventID       string  `json:"eventId,omitempty"`
	PaymentStatus string  `json:"paymentStatus"`
	PaidAt        string  `json:"paidAt"`
	TrackingID    string  `json:"trackingId"`
}

type EventResponse struct {
	ID          string  `json:"id"`
	ClubID      string  `json:"clubId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"createdAt"`
}

type ClubResponse struct {
	ID             string  `json:"id"`
	ClubName       string  `json:"clubName"`
	Description    string  `json:"description"`
	Image          string  `json:"image"`
	BannerImage    string  `json:"bannerImage"`
	Location       string  `json:"location"`
	Category       string  `json:"category"`
	MembershipFee  float64 `json:"membershipFee"`
	CreatedByEmail string  `json:"createdByEmail"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

type DeleteResponse struct {
	DeletedCount int `json:"deletedCount"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	PhotoURL  string `json:"photoURL"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type OverviewResponse struct {
	TotalUsers       int     `json:"totalUsers"`
	TotalClubs       int     `json:"totalClubs"`
	PendingClubs     int     `json:"pendingClubs"`
	ApprovedClubs    int     `json:"approvedClubs"`
	TotalMemberships int     `json:"totalMemberships"`
	TotalEvents      int     `json:"totalEvents"`
	TotalPayments    float64 `json:"totalPayments"`
}

func ToReconcileResponse(r *domain.ReconcileResult) ReconcileResponse {
	return ReconcileResponse{
		Success:       r.Success,
		Message:       r.Message,
		TrackingID:    r.TrackingID,
		TransactionID: r.TransactionID,
	}
}

func ToRegistrationResponse(r *domain.EventRegistration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		ClubID:       r.ClubID,
		UserEmail:    r.UserEmail,
		Status:       string(r.Status),
		PaymentID:    r.PaymentID,
		RegisteredAt: r.RegisteredAt.Format(time.RFC3339),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount().InexactFloat64(),
		Currency:      p.Currency,
		CustomerEmail: p.CustomerEmail,
		ClubID:        p.ClubID,
		ClubName:      p.ClubName,
		EventID:       p.EventID,
		PaymentStatus: string(p.Status),
		PaidAt:        p.PaidAt.Format(time.RFC3339),
		TrackingID:    p.TrackingID,
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		ClubID:      e.ClubID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format(time.RFC3339),
		Location:    e.Location,
		Price:       e.Price.InexactFloat64(),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToClubResponse(c *domain.Club) ClubResponse {
	return ClubResponse{
		ID:             c.ID,
		ClubName:       c.ClubName,
		Description:    c.Description,
		Image:          c.Image,
		BannerImage:    c.BannerImage,
		Location:       c.Location,
		Category:       c.Category,
		MembershipFee:  c.MembershipFee.InexactFloat64(),
		CreatedByEmail: c.CreatedByEmail,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      c.UpdatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		PhotoURL:  u.PhotoURL,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToOverviewResponse(o *domain.Overview) OverviewResponse {
	return OverviewResponse{
		TotalUsers:       o.TotalUsers,
		TotalClubs:       o.TotalClubs,
		PendingClubs:     o.PendingClubs,
		ApprovedClubs:    o.ApprovedClubs,
		TotalMemberships: o.TotalMemberships,
		TotalEvents:      o.TotalEvents,
		TotalPayments:    o.TotalPayments.InexactFloat64(),
	}
}
