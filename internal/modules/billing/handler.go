package billing

import (
	"log"
	"net/http"

	"gympay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	manager        *Manager
	publishableKey string
}

func NewHandler(manager *Manager, publishableKey string) *Handler {
	return &Handler{manager: manager, publishableKey: publishableKey}
}

// GetSubscription handles GET /api/billing/subscription
func (h *Handler) GetSubscription(c *gin.Context) {
	if !h.ensureLoaded(c) {
		return
	}
	c.JSON(http.StatusOK, h.manager.Subscription())
}

// GetCustomer handles GET /api/billing/customer
func (h *Handler) GetCustomer(c *gin.Context) {
	if !h.ensureLoaded(c) {
		return
	}
	c.JSON(http.StatusOK, h.manager.Customer())
}

// GetInvoices handles GET /api/billing/invoices
func (h *Handler) GetInvoices(c *gin.Context) {
	if !h.ensureLoaded(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.manager.Invoices()})
}

// GetPlans handles GET /api/billing/plans
func (h *Handler) GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, Plans())
}

// GetConfig handles GET /api/billing/config; the dashboard needs the
// publishable key to initialize its provider SDK.
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publishable_key": h.publishableKey})
}

func (h *Handler) ensureLoaded(c *gin.Context) bool {
	if h.manager.Loaded() {
		return true
	}
	if err := h.manager.Refresh(c.Request.Context()); err != nil {
		log.Printf("billing_refresh_failed err=%v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to load billing data")
		return false
	}
	return true
}

// Webhook handles POST /api/stripe/webhook. Events are acknowledged and
// logged; no signature verification exists yet.
func (h *Handler) Webhook(c *gin.Context) {
	log.Printf("stripe_webhook_received content_length=%d", c.Request.ContentLength)
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// CreateCheckoutSession handles POST /api/stripe/create-checkout-session.
// Placeholder until the provider integration lands server-side.
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	response.ErrorWithMessage(c, http.StatusNotImplemented,
		"Stripe integration not yet implemented",
		"This endpoint will be implemented in the next phase")
}

// CreatePortalSession handles POST /api/stripe/create-portal-session.
func (h *Handler) CreatePortalSession(c *gin.Context) {
	response.ErrorWithMessage(c, http.StatusNotImplemented,
		"Stripe integration not yet implemented",
		"This endpoint will be implemented in the next phase")
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	billing := r.Group("/billing")
	{
		billing.GET("/subscription", h.GetSubscription)
		billing.GET("/customer", h.GetCustomer)
		billing.GET("/invoices", h.GetInvoices)
		billing.GET("/plans", h.GetPlans)
		billing.GET("/config", h.GetConfig)
	}

	stripe := r.Group("/stripe")
	{
		stripe.POST("/webhook", h.Webhook)
		stripe.POST("/create-checkout-session", h.CreateCheckoutSession)
		stripe.POST("/create-portal-session", h.CreatePortalSession)
	}
}
