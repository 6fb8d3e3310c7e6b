package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"gympay/internal/config"
	"gympay/internal/database"
	"gympay/internal/demo"
	"gympay/internal/modules/analytics"
	"gympay/internal/modules/billing"
	"gympay/internal/repository"
	"gympay/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg := config.Load()

	deps := server.Deps{
		Billing: billing.NewManager(cfg),
	}

	if cfg.DatastoreConfigured() {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("datastore connection failed: %v", err)
		}

		analyticsRepo := repository.NewAnalyticsRepository(db)
		payrollRepo := repository.NewPayrollRepository(db)

		deps.Organizations = repository.NewOrganizationRepository(db)
		deps.Gyms = repository.NewGymRepository(db)
		deps.Instructors = repository.NewInstructorRepository(db)
		deps.Payroll = payrollRepo
		deps.Analytics = analytics.NewStoreSource(analyticsRepo, payrollRepo)
		deps.Referrals = repository.NewReferralRepository(db)
		deps.DatastoreConnected = true

		log.Println("Datastore configured, serving persisted data")
	} else {
		deps.Organizations = demo.NewOrganizationStore()
		deps.Gyms = demo.NewGymStore()
		deps.Instructors = demo.NewInstructorStore()
		deps.Payroll = demo.NewPayrollStore()
		deps.Analytics = demo.NewAnalyticsSource()
		deps.Referrals = demo.NewReferralStore()

		log.Println("Datastore not configured, using mock data")
	}

	// Demo mode loads synchronously; a real backend failure here is
	// recorded and retried lazily on first billing request.
	if err := deps.Billing.Refresh(context.Background()); err != nil {
		log.Printf("billing_initial_load_failed err=%v", err)
	}

	r := server.New(cfg, deps)

	log.Printf("GymPay backend listening on %s (env=%s)", cfg.Addr(), cfg.Environment)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
