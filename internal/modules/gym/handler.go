package gym

import (
	"log"
	"net/http"

	"gympay/internal/domain"
	"gympay/internal/pkg/response"
	"gympay/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store Store
	orgID string
}

func NewHandler(store Store, orgID string) *Handler {
	return &Handler{store: store, orgID: orgID}
}

// List handles GET /api/gyms
func (h *Handler) List(c *gin.Context) {
	gyms, err := h.store.List(c.Request.Context(), h.orgID)
	if err != nil {
		log.Printf("gym_list_failed org_id=%s err=%v", h.orgID, err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch gyms")
		return
	}
	c.JSON(http.StatusOK, gyms)
}

// Create handles POST /api/gyms
func (h *Handler) Create(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	gym := &domain.Gym{
		OrganizationID: h.orgID,
		Name:           req.Name,
		Location:       req.Location,
		Status:         domain.GymActive,
	}
	if fields := validator.Validate(gym); fields != nil {
		response.ValidationError(c, http.StatusBadRequest, "Invalid gym data", fields)
		return
	}
	if err := h.store.Create(c.Request.Context(), gym); err != nil {
		log.Printf("gym_create_failed org_id=%s err=%v", h.orgID, err)
		response.Error(c, http.StatusInternalServerError, "Failed to create gym")
		return
	}

	c.JSON(http.StatusCreated, gym)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	gyms := r.Group("/gyms")
	{
		gyms.GET("", h.List)
		gyms.POST("", h.Create)
	}
}
