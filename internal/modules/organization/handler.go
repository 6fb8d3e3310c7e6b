package organization

import (
	"context"
	"log"
	"net/http"

	"gympay/internal/domain"
	"gympay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Store interface {
	List(ctx context.Context) ([]domain.Organization, error)
	Create(ctx context.Context, org *domain.Organization) error
}

type CreateOrganizationRequest struct {
	Name             string `json:"name" binding:"required"`
	SubscriptionPlan string `json:"subscription_plan"`
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List handles GET /api/organizations
func (h *Handler) List(c *gin.Context) {
	orgs, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("organization_list_failed err=%v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch organizations")
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// Create handles POST /api/organizations
func (h *Handler) Create(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	plan := req.SubscriptionPlan
	if plan == "" {
		plan = "starter"
	}
	org := &domain.Organization{Name: req.Name, SubscriptionPlan: plan}
	if err := h.store.Create(c.Request.Context(), org); err != nil {
		log.Printf("organization_create_failed err=%v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	orgs := r.Group("/organizations")
	{
		orgs.GET("", h.List)
		orgs.POST("", h.Create)
	}
}
