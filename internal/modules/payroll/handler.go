package payroll

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"gympay/internal/pkg/response"
	"gympay/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListPeriods handles GET /api/payroll
func (h *Handler) ListPeriods(c *gin.Context) {
	periods, err := h.service.ListPeriods(c.Request.Context())
	if err != nil {
		log.Printf("payroll_list_failed err=%v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch payroll periods")
		return
	}
	c.JSON(http.StatusOK, periods)
}

// CreatePeriod handles POST /api/payroll
func (h *Handler) CreatePeriod(c *gin.Context) {
	var req CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	period, err := h.service.CreatePeriod(c.Request.Context(), req)
	if err != nil {
		var fields validator.FieldErrors
		switch {
		case errors.As(err, &fields):
			response.ValidationError(c, http.StatusBadRequest, "Invalid payroll period data", fields)
		case errors.Is(err, ErrBadDate):
			response.Error(c, http.StatusBadRequest, "Period dates must be YYYY-MM-DD")
		case errors.Is(err, ErrInvalidPeriod):
			response.Error(c, http.StatusBadRequest, "Period end must not precede period start")
		default:
			log.Printf("payroll_create_failed err=%v", err)
			response.Error(c, http.StatusInternalServerError, "Failed to create payroll period")
		}
		return
	}

	c.JSON(http.StatusCreated, period)
}

// Entries handles GET /api/payroll/:id/entries
func (h *Handler) Entries(c *gin.Context) {
	periodID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payroll period ID")
		return
	}

	entries, err := h.service.Entries(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Payroll period not found")
			return
		}
		log.Printf("payroll_entries_failed period_id=%d err=%v", periodID, err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch payroll entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	payroll := r.Group("/payroll")
	{
		payroll.GET("", h.ListPeriods)
		payroll.POST("", h.CreatePeriod)
		payroll.GET("/:id/entries", h.Entries)
	}
}
