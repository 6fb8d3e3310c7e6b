package instructor

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"gympay/internal/pkg/response"
	"gympay/internal/pkg/validator"
	"gympay/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/instructors
func (h *Handler) List(c *gin.Context) {
	instructors, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("instructor_list_failed err=%v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch instructors")
		return
	}
	c.JSON(http.StatusOK, instructors)
}

// Create handles POST /api/instructors
func (h *Handler) Create(c *gin.Context) {
	var req CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	instructor, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var fields validator.FieldErrors
		if errors.As(err, &fields) {
			response.ValidationError(c, http.StatusBadRequest, "Invalid instructor data", fields)
			return
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Error(c, http.StatusConflict, "An instructor with this email already exists")
			return
		}
		log.Printf("instructor_create_failed err=%v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create instructor")
		return
	}

	c.JSON(http.StatusCreated, instructor)
}

// Update handles PUT /api/instructors/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid instructor ID")
		return
	}

	var req UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	instructor, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		var fields validator.FieldErrors
		switch {
		case errors.As(err, &fields):
			response.ValidationError(c, http.StatusBadRequest, "Invalid instructor data", fields)
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "Instructor not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Status must be active or inactive")
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.Error(c, http.StatusConflict, "An instructor with this email already exists")
		default:
			log.Printf("instructor_update_failed id=%d err=%v", id, err)
			response.Error(c, http.StatusInternalServerError, "Failed to update instructor")
		}
		return
	}

	c.JSON(http.StatusOK, instructor)
}

// Delete handles DELETE /api/instructors/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid instructor ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Instructor not found")
			return
		}
		log.Printf("instructor_delete_failed id=%d err=%v", id, err)
		response.Error(c, http.StatusInternalServerError, "Failed to delete instructor")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	instructors := r.Group("/instructors")
	{
		instructors.GET("", h.List)
		instructors.POST("", h.Create)
		instructors.PUT("/:id", h.Update)
		instructors.DELETE("/:id", h.Delete)
	}
}
