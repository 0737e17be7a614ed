package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)

	CreateCheckoutSession(c *ginext.Context)
	PaymentSuccess(c *ginext.Context)
	ListPayments(c *ginext.Context)

	CreateClub(c *ginext.Context)
	ListClubs(c *ginext.Context)
	GetClub(c *ginext.Context)
	ListAllClubs(c *ginext.Context)
	UpdateClubStatus(c *ginext.Context)
	UpdateClub(c *ginext.Context)
	DeleteClub(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	UpdateUserRole(c *ginext.Context)
	GetUserRole(c *ginext.Context)

	AdminOverview(c *ginext.Context)
}

// InitRouter builds the engine. authMW guards routes that act on behalf of
// the verified user; mw is applied to every route.
func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.POST("/events/:id/register", authMW, h.RegisterForEvent)

		// Payments
		api.POST("/create-checkout-session", h.CreateCheckoutSession)
		api.PATCH("/payment-success", h.PaymentSuccess)
		api.GET("/payments", authMW, h.ListPayments)

		// Clubs
		api.POST("/clubs", h.CreateClub)
		api.GET("/clubs", h.ListClubs)
		api.GET("/clubs/:id", h.GetClub)

		dashboard := api.Group("/dashboard/clubs-management")
		dashboard.GET("", h.ListAllClubs)
		dashboard.PATCH("/:id/status", h.UpdateClubStatus)
		dashboard.PATCH("/:id", authMW, h.UpdateClub)
		dashboard.DELETE("/:id", h.DeleteClub)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.PATCH("/users/:id", h.UpdateUserRole)
		api.GET("/users/:email/role", authMW, h.GetUserRole)

		api.GET("/admin", h.AdminOverview)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
