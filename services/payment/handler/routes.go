package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/payguard/payguard/internal/pkg/middleware"
	"github.com/payguard/payguard/internal/pkg/models"
	"github.com/payguard/payguard/services/payment/handler/http"
	"github.com/payguard/payguard/services/payment/handler/websocket"
)

// Handler coordinates all protocol handlers for the payment service
type Handler struct {
	paymentHandler *http.PaymentHandler
	streamHandler  *websocket.ActivityStreamHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	paymentHandler *http.PaymentHandler,
	streamHandler *websocket.ActivityStreamHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		streamHandler:  streamHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwtMiddleware := middleware.JWTAuthMiddleware(h.cfg.JWT)

	api := e.Group("/api/v1", jwtMiddleware)

	paymentGroup := api.Group("/payments")
	paymentGroup.POST("/intents", h.paymentHandler.SubmitIntent)
	paymentGroup.GET("/transactions/current", h.paymentHandler.CurrentTransaction)
	paymentGroup.POST("/transactions/:id/approve", h.paymentHandler.Approve)
	paymentGroup.POST("/transactions/:id/deny", h.paymentHandler.Deny)

	policyGroup := api.Group("/policy")
	policyGroup.GET("", h.paymentHandler.GetPolicy)
	policyGroup.PUT("", h.paymentHandler.UpdatePolicy)

	activityGroup := api.Group("/activities")
	activityGroup.GET("", h.paymentHandler.ListActivities)
	activityGroup.GET("/:id", h.paymentHandler.GetActivity)

	wsGroup := e.Group("/ws", jwtMiddleware)
	wsGroup.GET("/activities", h.streamHandler.HandleActivityStream)
}
