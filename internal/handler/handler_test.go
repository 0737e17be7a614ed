package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iamshakil01/clubsphere-servers/internal/auth"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/handler/dto"
	hmocks "github.com/iamshakil01/clubsphere-servers/internal/handler/mocks"
	"github.com/iamshakil01/clubsphere-servers/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testSecret = "test-secret"

type testEnv struct {
	events   *hmocks.MockEventSvc
	regs     *hmocks.MockRegistrationSvc
	checkout *hmocks.MockCheckoutSvc
	recon    *hmocks.MockReconciliationSvc
	payments *hmocks.MockPaymentSvc
	clubs    *hmocks.MockClubSvc
	users    *hmocks.MockUserSvc
	admin    *hmocks.MockAdminSvc
	router   http.Handler
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		events:   hmocks.NewMockEventSvc(t),
		regs:     hmocks.NewMockRegistrationSvc(t),
		checkout: hmocks.NewMockCheckoutSvc(t),
		recon:    hmocks.NewMockReconciliationSvc(t),
		payments: hmocks.NewMockPaymentSvc(t),
		clubs:    hmocks.NewMockClubSvc(t),
		users:    hmocks.NewMockUserSvc(t),
		admin:    hmocks.NewMockAdminSvc(t),
	}

	h := NewHandler(Services{
		Events:         env.events,
		Registrations:  env.regs,
		Checkout:       env.checkout,
		Reconciliation: env.recon,
		Payments:       env.payments,
		Clubs:          env.clubs,
		Users:          env.users,
		Admin:          env.admin,
	})
	authMW := middleware.Auth(auth.NewVerifier(testSecret))

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.POST("/events/:id/register", authMW, h.RegisterForEvent)
		api.POST("/create-checkout-session", h.CreateCheckoutSession)
		api.PATCH("/payment-success", h.PaymentSuccess)
		api.GET("/payments", authMW, h.ListPayments)
		api.POST("/clubs", h.CreateClub)
		api.GET("/clubs", h.ListClubs)
		api.GET("/clubs/:id", h.GetClub)
		api.PATCH("/dashboard/clubs-management/:id", authMW, h.UpdateClub)
		api.DELETE("/dashboard/clubs-management/:id", h.DeleteClub)
		api.POST("/users", h.CreateUser)
		api.GET("/users/:email/role", authMW, h.GetUserRole)
		api.GET("/admin", h.AdminOverview)
	}
	env.router = r

	return env
}

func bearer(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.NewVerifier(testSecret).Issue(email, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(env *testEnv, method, path string, body any, authHeader string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Registration ---

func TestHandler_RegisterForEvent_Success(t *testing.T) {
	env := setupRouter(t)
	eventID := uuid.New().String()

	env.regs.EXPECT().Register(mock.Anything, eventID, "a@x.io").Return(&domain.EventRegistration{
		ID:           "r1",
		EventID:      eventID,
		ClubID:       "c1",
		UserEmail:    "a@x.io",
		Status:       domain.RegistrationStatusRegistered,
		RegisteredAt: time.Now(),
	}, nil)

	w := do(env, http.MethodPost, "/api/events/"+eventID+"/register", nil, bearer(t, "a@x.io"))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "r1", resp.ID)
	assert.Nil(t, resp.PaymentID)
}

func TestHandler_RegisterForEvent_Unauthenticated(t *testing.T) {
	env := setupRouter(t)

	w := do(env, http.MethodPost, "/api/events/"+uuid.New().String()+"/register", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_RegisterForEvent_AlreadyRegistered(t *testing.T) {
	env := setupRouter(t)
	eventID := uuid.New().String()

	env.regs.EXPECT().Register(mock.Anything, eventID, "a@x.io").Return(nil, domain.ErrAlreadyRegistered)

	w := do(env, http.MethodPost, "/api/events/"+eventID+"/register", nil, bearer(t, "a@x.io"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "already registered", resp.Error)
	assert.Equal(t, "conflict", resp.Kind)
}

func TestHandler_RegisterForEvent_EventNotFound(t *testing.T) {
	env := setupRouter(t)
	eventID := uuid.New().String()

	env.regs.EXPECT().Register(mock.Anything, eventID, "a@x.io").
		Return(nil, fmt.Errorf("get event: %w", domain.ErrEventNotFound))

	w := do(env, http.MethodPost, "/api/events/"+eventID+"/register", nil, bearer(t, "a@x.io"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "event not found", decodeError(t, w).Error)
}

func TestHandler_RegisterForEvent_InvalidID(t *testing.T) {
	env := setupRouter(t)

	w := do(env, http.MethodPost, "/api/events/not-a-uuid/register", nil, bearer(t, "a@x.io"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Checkout ---

func TestHandler_CreateCheckoutSession_Success(t *testing.T) {
	env := setupRouter(t)

	env.checkout.EXPECT().InitiateCheckout(mock.Anything, domain.CheckoutIntent{
		ClubID:      "c1",
		ClubName:    "Chess Club",
		EventID:     "e1",
		SenderEmail: "a@x.io",
		Cost:        "12.5",
	}).Return("https://checkout.example/cs_1", nil)

	w := do(env, http.MethodPost, "/api/create-checkout-session", map[string]any{
		"clubId": "c1", "clubName": "Chess Club", "eventId": "e1", "senderEmail": "a@x.io", "cost": 12.5,
	}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.example/cs_1", resp.URL)
}

func TestHandler_CreateCheckoutSession_AlreadyPaid(t *testing.T) {
	env := setupRouter(t)

	env.checkout.EXPECT().InitiateCheckout(mock.Anything, mock.Anything).Return("", domain.ErrAlreadyPaid)

	w := do(env, http.MethodPost, "/api/create-checkout-session", map[string]any{
		"clubId": "c1", "clubName": "Chess Club", "senderEmail": "a@x.io", "cost": "5",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "already paid", decodeError(t, w).Error)
}

func TestHandler_CreateCheckoutSession_InvalidAmount(t *testing.T) {
	env := setupRouter(t)

	env.checkout.EXPECT().InitiateCheckout(mock.Anything, mock.Anything).
		Return("", fmt.Errorf("initiate: %w", domain.Detailf(domain.ErrInvalidAmount, "cost must be positive")))

	w := do(env, http.MethodPost, "/api/create-checkout-session", map[string]any{
		"clubId": "c1", "clubName": "Chess Club", "senderEmail": "a@x.io", "cost": 0,
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "invalid_argument", resp.Kind)
	assert.Equal(t, "invalid amount: cost must be positive", resp.Error)
}

func TestHandler_CreateCheckoutSession_MissingClubName(t *testing.T) {
	env := setupRouter(t)

	w := do(env, http.MethodPost, "/api/create-checkout-session", map[string]any{
		"clubId": "c1", "senderEmail": "a@x.io", "cost": 5,
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_argument", decodeError(t, w).Kind)
}

func TestHandler_CreateCheckoutSession_MissingFields(t *testing.T) {
	env := setupRouter(t)

	w := do(env, http.MethodPost, "/api/create-checkout-session", map[string]any{"clubId": "c1"}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reconciliation ---

func TestHandler_PaymentSuccess_FirstCall(t *testing.T) {
	env := setupRouter(t)

	env.recon.EXPECT().Reconcile(mock.Anything, "cs_1").Return(&domain.ReconcileResult{
		Success: true, TrackingID: "t-1", TransactionID: "pi_1",
	}, nil)

	w := do(env, http.MethodPatch, "/api/payment-success?session_id=cs_1", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"trackingId":"t-1","transactionId":"pi_1"}`, w.Body.String())
}

func TestHandler_PaymentSuccess_AlreadyExists(t *testing.T) {
	env := setupRouter(t)

	env.recon.EXPECT().Reconcile(mock.Anything, "cs_1").Return(&domain.ReconcileResult{
		Success: true, Message: "already exists", TrackingID: "t-1", TransactionID: "pi_1",
	}, nil)

	w := do(env, http.MethodPatch, "/api/payment-success?session_id=cs_1", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ReconcileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "already exists", resp.Message)
	assert.Equal(t, "t-1", resp.TrackingID)
}

func TestHandler_PaymentSuccess_NotPaid(t *testing.T) {
	env := setupRouter(t)

	env.recon.EXPECT().Reconcile(mock.Anything, "cs_1").Return(&domain.ReconcileResult{Success: false}, nil)

	w := do(env, http.MethodPatch, "/api/payment-success?session_id=cs_1", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false}`, w.Body.String())
}

func TestHandler_PaymentSuccess_MissingSession(t *testing.T) {
	env := setupRouter(t)

	w := do(env, http.MethodPatch, "/api/payment-success", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PaymentSuccess_GatewayDown(t *testing.T) {
	env := setupRouter(t)

	env.recon.EXPECT().Reconcile(mock.Anything, "cs_1").Return(nil, domain.ErrGatewayUnavailable)

	w := do(env, http.MethodPatch, "/api/payment-success?session_id=cs_1", nil, "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "upstream", decodeError(t, w).Kind)
}

// --- Payments ---

func TestHandler_ListPayments_Own(t *testing.T) {
	env := setupRouter(t)

	env.payments.EXPECT().List(mock.Anything, "a@x.io", "a@x.io").Return([]*domain.Payment{
		{ID: "p1", TransactionID: "pi_1", AmountCents: 1250, PaidAt: time.Now()},
	}, nil)

	w := do(env, http.MethodGet, "/api/payments?email=a@x.io", nil, bearer(t, "a@x.io"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 12.5, resp[0].Amount)
}

func TestHandler_ListPayments_Forbidden(t *testing.T) {
	env := setupRouter(t)

	env.payments.EXPECT().List(mock.Anything, "b@x.io", "a@x.io").Return(nil, domain.ErrEmailMismatch)

	w := do(env, http.MethodGet, "/api/payments?email=b@x.io", nil, bearer(t, "a@x.io"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden access", decodeError(t, w).Error)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	env := setupRouter(t)
	clubID := uuid.New().String()
	date := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	env.events.EXPECT().CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.ClubID == clubID && in.Title == "Blitz" && in.Date.Equal(date) &&
			in.Price.Equal(decimal.RequireFromString("7.5"))
	})).Return(&domain.Event{ID: "e1", ClubID: clubID, Title: "Blitz", Date: date, Price: decimal.RequireFromString("7.5")}, nil)

	w := do(env, http.MethodPost, "/api/events", map[string]any{
		"clubId": clubID, "title": "Blitz", "date": date.Format(time.RFC3339), "price": 7.5,
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Blitz", resp.Title)
	assert.Equal(t, 7.5, resp.Price)
}

func TestHandler_CreateEvent_BadDate(t *testing.T) {
	env := setupRouter(t)

	w := do(env, http.MethodPost, "/api/events", map[string]any{
		"clubId": uuid.New().String(), "title": "Blitz", "date": "tomorrow",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_ByClub(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().List(mock.Anything, "c1").Return([]*domain.Event{{ID: "e1"}, {ID: "e2"}}, nil)

	w := do(env, http.MethodGet, "/api/events?clubId=c1", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Clubs ---

func TestHandler_GetClub_NotFound(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.clubs.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrClubNotFound)

	w := do(env, http.MethodGet, "/api/clubs/"+id, nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateClub_NotOwner(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.clubs.EXPECT().Update(mock.Anything, id, "intruder@x.io", mock.Anything).Return(nil, domain.ErrNotClubOwner)

	w := do(env, http.MethodPatch, "/api/dashboard/clubs-management/"+id, map[string]any{"clubName": "Mine"}, bearer(t, "intruder@x.io"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteClub(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.clubs.EXPECT().Delete(mock.Anything, id).Return(1, nil)

	w := do(env, http.MethodDelete, "/api/dashboard/clubs-management/"+id, nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deletedCount":1}`, w.Body.String())
}

func TestHandler_DeleteClub_NotFound(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.clubs.EXPECT().Delete(mock.Anything, id).Return(0, domain.ErrClubNotFound)

	w := do(env, http.MethodDelete, "/api/dashboard/clubs-management/"+id, nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Existing(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Create(mock.Anything, mock.Anything).Return(&domain.User{ID: "u1"}, domain.ErrUserExists)

	w := do(env, http.MethodPost, "/api/users", map[string]any{"email": "a@x.io", "name": "Ann"}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, w.Body.String())
}

func TestHandler_GetUserRole(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Role(mock.Anything, "a@x.io").Return(domain.RoleMember, nil)

	w := do(env, http.MethodGet, "/api/users/a@x.io/role", nil, bearer(t, "a@x.io"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"member"}`, w.Body.String())
}

// --- Admin ---

func TestHandler_AdminOverview(t *testing.T) {
	env := setupRouter(t)

	env.admin.EXPECT().Overview(mock.Anything).Return(&domain.Overview{
		TotalUsers: 3, TotalClubs: 2, ApprovedClubs: 1, PendingClubs: 1,
		TotalPayments: decimal.RequireFromString("40.25"),
	}, nil)

	w := do(env, http.MethodGet, "/api/admin", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.OverviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalUsers)
	assert.Equal(t, 40.25, resp.TotalPayments)
}

func TestHandler_InternalError(t *testing.T) {
	env := setupRouter(t)

	env.clubs.EXPECT().ListApproved(mock.Anything).Return(nil, errors.New("boom"))

	w := do(env, http.MethodGet, "/api/clubs", nil, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w).Error)
}
