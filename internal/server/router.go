package server

import (
	"net/http"
	"strings"
	"time"

	"gympay/internal/config"
	"gympay/internal/middleware"
	"gympay/internal/modules/analytics"
	"gympay/internal/modules/billing"
	"gympay/internal/modules/gym"
	"gympay/internal/modules/instructor"
	"gympay/internal/modules/organization"
	"gympay/internal/modules/payroll"
	"gympay/internal/modules/referral"

	"github.com/gin-gonic/gin"
)

// Deps carries the stores selected at startup. Handlers never know
// whether they talk to the datastore or to the demo layer.
type Deps struct {
	Organizations organization.Store
	Gyms          gym.Store
	Instructors   instructor.Store
	Payroll       payroll.Store
	Analytics     analytics.Source
	Referrals     referral.Store
	Billing       *billing.Manager

	DatastoreConnected bool
}

// New assembles the full GymPay router.
func New(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.FrontendURL, cfg.ExtraCORSOrigins))

	orgID := config.DemoOrganizationID

	orgHandler := organization.NewHandler(deps.Organizations)
	gymHandler := gym.NewHandler(deps.Gyms, orgID)
	instructorHandler := instructor.NewHandler(instructor.NewService(deps.Instructors, orgID))
	payrollHandler := payroll.NewHandler(payroll.NewService(deps.Payroll, orgID))
	analyticsHandler := analytics.NewHandler(deps.Analytics, orgID)
	referralHandler := referral.NewHandler(referral.NewService(deps.Referrals, orgID))
	billingHandler := billing.NewHandler(deps.Billing, cfg.StripePublishableKey)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "GymPay Backend API",
			"version": "1.0.0",
			"status":  "running",
			"endpoints": gin.H{
				"health":      "/health",
				"test":        "/api/test",
				"gyms":        "/api/gyms",
				"instructors": "/api/instructors",
				"payroll":     "/api/payroll",
				"analytics":   "/api/analytics/overview",
				"referrals":   "/api/referrals",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		database := "mock"
		if deps.DatastoreConnected {
			database = "connected"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.Environment,
			"database":    database,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":   "Backend server is running successfully!",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		orgHandler.RegisterRoutes(api)
		gymHandler.RegisterRoutes(api)
		instructorHandler.RegisterRoutes(api)
		payrollHandler.RegisterRoutes(api)
		analyticsHandler.RegisterRoutes(api)
		referralHandler.RegisterRoutes(api)
		billingHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "API endpoint not found",
				"message": "API route " + path + " not found",
			})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not found",
			"message": "This is the GymPay backend API. Frontend should be accessed at " + cfg.FrontendURL,
		})
	})

	return r
}
