package referral

import (
	"errors"
	"log"
	"net/http"

	"gympay/internal/pkg/response"
	"gympay/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/referrals
func (h *Handler) List(c *gin.Context) {
	referrals, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("referral_list_failed err=%v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch referrals")
		return
	}
	c.JSON(http.StatusOK, referrals)
}

// Create handles POST /api/referrals
func (h *Handler) Create(c *gin.Context) {
	var req CreateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	referral, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var fields validator.FieldErrors
		if errors.As(err, &fields) {
			response.ValidationError(c, http.StatusBadRequest, "Invalid referral data", fields)
			return
		}
		log.Printf("referral_create_failed err=%v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create referral")
		return
	}

	c.JSON(http.StatusCreated, referral)
}

// Stats handles GET /api/referrals/stats
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		log.Printf("referral_stats_failed err=%v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch referral stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	referrals := r.Group("/referrals")
	{
		referrals.GET("", h.List)
		referrals.POST("", h.Create)
		referrals.GET("/stats", h.Stats)
	}
}
