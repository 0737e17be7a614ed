package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iamshakil01/clubsphere-servers/internal/auth"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	List(ctx context.Context, clubID string) ([]*domain.Event, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, eventID, userEmail string) (*domain.EventRegistration, error)
}

type CheckoutSvc interface {
	InitiateCheckout(ctx context.Context, intent domain.CheckoutIntent) (string, error)
}

type ReconciliationSvc interface {
	Reconcile(ctx context.Context, sessionID string) (*domain.ReconcileResult, error)
}

type PaymentSvc interface {
	List(ctx context.Context, email, verifiedEmail string) ([]*domain.Payment, error)
}

type ClubSvc interface {
	Create(ctx context.Context, input domain.CreateClubInput) (*domain.Club, error)
	GetByID(ctx context.Context, id string) (*domain.Club, error)
	ListApproved(ctx context.Context) ([]*domain.Club, error)
	ListAll(ctx context.Context) ([]*domain.Club, error)
	UpdateStatus(ctx context.Context, id string, status domain.ClubStatus) error
	Update(ctx context.Context, id, editorEmail string, patch domain.ClubPatch) (*domain.Club, error)
	Delete(ctx context.Context, id string) (int, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	Role(ctx context.Context, email string) (domain.Role, error)
}

type AdminSvc interface {
	Overview(ctx context.Context) (*domain.Overview, error)
}

type Services struct {
	Events         EventSvc
	Registrations  RegistrationSvc
	Checkout       CheckoutSvc
	Reconciliation ReconciliationSvc
	Payments       PaymentSvc
	Clubs          ClubSvc
	Users          UserSvc
	Admin          AdminSvc
}

type Handler struct {
	eventService          EventSvc
	registrationService   RegistrationSvc
	checkoutService       CheckoutSvc
	reconciliationService ReconciliationSvc
	paymentService        PaymentSvc
	clubService           ClubSvc
	userService           UserSvc
	adminService          AdminSvc
}

func NewHandler(s Services) *Handler {
	return &Handler{
		eventService:          s.Events,
		registrationService:   s.Registrations,
		checkoutService:       s.Checkout,
		reconciliationService: s.Reconciliation,
		paymentService:        s.Payments,
		clubService:           s.Clubs,
		userService:           s.Users,
		adminService:          s.Admin,
	}
}

func badRequest(c *ginext.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Kind: domain.Kind(domain.ErrInvalidArgument)})
}

// verifiedEmail returns the email set by the auth middleware.
func verifiedEmail(c *ginext.Context) string {
	return c.GetString(auth.ContextEmailKey)
}

func validID(c *ginext.Context, name string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, "invalid "+name+" id")
		return "", false
	}
	return id, true
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		badRequest(c, "invalid date format, expected RFC3339")
		return
	}

	input := domain.CreateEventInput{
		ClubID:      req.ClubID,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Price:       req.Price,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context(), c.Query("clubId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RegisterForEvent(c *ginext.Context) {
	eventID, ok := validID(c, "event")
	if !ok {
		return
	}

	reg, err := h.registrationService.Register(c.Request.Context(), eventID, verifiedEmail(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

// Payments

func (h *Handler) CreateCheckoutSession(c *ginext.Context) {
	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	url, err := h.checkoutService.InitiateCheckout(c.Request.Context(), domain.CheckoutIntent{
		ClubID:      req.ClubID,
		ClubName:    req.ClubName,
		EventID:     req.EventID,
		SenderEmail: req.SenderEmail,
		Cost:        req.Cost.String(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{URL: url})
}

func (h *Handler) PaymentSuccess(c *ginext.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		badRequest(c, "session_id is required")
		return
	}

	res, err := h.reconciliationService.Reconcile(c.Request.Context(), sessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconcileResponse(res))
}

func (h *Handler) ListPayments(c *ginext.Context) {
	payments, err := h.paymentService.List(c.Request.Context(), c.Query("email"), verifiedEmail(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, dto.ToPaymentResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Clubs

func (h *Handler) CreateClub(c *ginext.Context) {
	var req dto.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	club, err := h.clubService.Create(c.Request.Context(), domain.CreateClubInput{
		ClubName:       req.ClubName,
		Description:    req.Description,
		Image:          req.Image,
		BannerImage:    req.BannerImage,
		Location:       req.Location,
		Category:       req.Category,
		MembershipFee:  req.MembershipFee,
		CreatedByEmail: req.CreatedByEmail,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClubResponse(club))
}

func (h *Handler) ListClubs(c *ginext.Context) {
	clubs, err := h.clubService.ListApproved(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClubResponses(clubs))
}

func (h *Handler) ListAllClubs(c *ginext.Context) {
	clubs, err := h.clubService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClubResponses(clubs))
}

func toClubResponses(clubs []*domain.Club) []dto.ClubResponse {
	resp := make([]dto.ClubResponse, 0, len(clubs))
	for _, cl := range clubs {
		resp = append(resp, dto.ToClubResponse(cl))
	}
	return resp
}

func (h *Handler) GetClub(c *ginext.Context) {
	id, ok := validID(c, "club")
	if !ok {
		return
	}

	club, err := h.clubService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClubResponse(club))
}

func (h *Handler) UpdateClubStatus(c *ginext.Context) {
	id, ok := validID(c, "club")
	if !ok {
		return
	}

	var req dto.UpdateClubStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.clubService.UpdateStatus(c.Request.Context(), id, domain.ClubStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) UpdateClub(c *ginext.Context) {
	id, ok := validID(c, "club")
	if !ok {
		return
	}

	var req dto.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	club, err := h.clubService.Update(c.Request.Context(), id, verifiedEmail(c), domain.ClubPatch{
		ClubName:      req.ClubName,
		Description:   req.Description,
		Location:      req.Location,
		MembershipFee: req.MembershipFee,
		Category:      req.Category,
		BannerImage:   req.BannerImage,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClubResponse(club))
}

func (h *Handler) DeleteClub(c *ginext.Context) {
	id, ok := validID(c, "club")
	if !ok {
		return
	}

	n, err := h.clubService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: n})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if errors.Is(err, domain.ErrUserExists) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "User already exists"})
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateUserRole(c *ginext.Context) {
	id, ok := validID(c, "user")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.userService.UpdateRole(c.Request.Context(), id, domain.Role(req.Role)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoleResponse{Role: req.Role})
}

func (h *Handler) GetUserRole(c *ginext.Context) {
	role, err := h.userService.Role(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoleResponse{Role: string(role)})
}

// Admin

func (h *Handler) AdminOverview(c *ginext.Context) {
	o, err := h.adminService.Overview(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(o))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	kind := domain.Kind(err)
	msg := domain.Message(err)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msg, Kind: kind})

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrAlreadyPaid):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Kind: kind})

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: msg, Kind: kind})

	case errors.Is(err, domain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Kind: kind})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: msg, Kind: kind})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: msg, Kind: kind})

	case errors.Is(err, domain.ErrUpstream),
		errors.Is(err, context.DeadlineExceeded):
		if msg == "" {
			msg = "upstream timeout"
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: msg, Kind: kind})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Kind: kind})
	}
}
