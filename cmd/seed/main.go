package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"gympay/internal/config"
	"gympay/internal/database"
	"gympay/internal/domain"
)

// Seeds the demo organization into a configured datastore so the server
// can be exercised outside mock mode. Defaults to a local SQLite file.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "gympay.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Organization{},
		&domain.Gym{},
		&domain.Instructor{},
		&domain.PayrollPeriod{},
		&domain.PayrollEntry{},
		&domain.AnalyticsEntry{},
		&domain.Referral{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM referrals")
	db.Exec("DELETE FROM analytics_data")
	db.Exec("DELETE FROM payroll_entries")
	db.Exec("DELETE FROM payroll_periods")
	db.Exec("DELETE FROM instructors")
	db.Exec("DELETE FROM gyms")
	db.Exec("DELETE FROM organizations")

	orgID := config.DemoOrganizationID

	log.Println("Creating organization...")
	org := domain.Organization{
		ID:               orgID,
		Name:             "Fitness Group International",
		SubscriptionPlan: "professional",
	}
	if err := db.Create(&org).Error; err != nil {
		log.Fatal("seed organization failed:", err)
	}

	log.Println("Creating gyms...")
	gyms := []domain.Gym{
		{OrganizationID: orgID, Name: "Downtown Fitness", Location: "New York, NY", Status: domain.GymActive},
		{OrganizationID: orgID, Name: "Westside Gym", Location: "Los Angeles, CA", Status: domain.GymActive},
		{OrganizationID: orgID, Name: "Elite Training Center", Location: "Chicago, IL", Status: domain.GymActive},
	}
	for i := range gyms {
		if err := db.Create(&gyms[i]).Error; err != nil {
			log.Fatal("seed gym failed:", err)
		}
	}

	log.Println("Creating instructors...")
	instructors := []domain.Instructor{
		{
			OrganizationID: orgID,
			GymID:          &gyms[0].ID,
			FirstName:      "Sarah",
			LastName:       "Johnson",
			Email:          "sarah.johnson@example.com",
			Phone:          "+1 212 555 0101",
			Specialties:    []string{"Yoga", "Pilates"},
			HourlyRate:     45.00,
			Status:         domain.InstructorActive,
		},
		{
			OrganizationID: orgID,
			GymID:          &gyms[0].ID,
			FirstName:      "Michael",
			LastName:       "Chen",
			Email:          "michael.chen@example.com",
			Phone:          "+1 212 555 0102",
			Specialties:    []string{"HIIT", "Strength Training"},
			HourlyRate:     50.00,
			Status:         domain.InstructorActive,
		},
		{
			OrganizationID: orgID,
			GymID:          &gyms[1].ID,
			FirstName:      "Emma",
			LastName:       "Davis",
			Email:          "emma.davis@example.com",
			Phone:          "+1 310 555 0103",
			Specialties:    []string{"Zumba", "Dance"},
			HourlyRate:     42.00,
			Status:         domain.InstructorActive,
		},
	}
	for i := range instructors {
		if err := db.Create(&instructors[i]).Error; err != nil {
			log.Fatal("seed instructor failed:", err)
		}
	}

	log.Println("Creating payroll...")
	marchProcessed := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	februaryProcessed := time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC)
	periods := []domain.PayrollPeriod{
		{
			OrganizationID:  orgID,
			PeriodStart:     "2024-03-01",
			PeriodEnd:       "2024-03-15",
			Status:          domain.PayrollCompleted,
			TotalAmount:     12450.00,
			InstructorCount: 18,
			ProcessedDate:   &marchProcessed,
		},
		{
			OrganizationID:  orgID,
			PeriodStart:     "2024-02-16",
			PeriodEnd:       "2024-02-29",
			Status:          domain.PayrollCompleted,
			TotalAmount:     11820.00,
			InstructorCount: 17,
			ProcessedDate:   &februaryProcessed,
		},
	}
	for i := range periods {
		if err := db.Create(&periods[i]).Error; err != nil {
			log.Fatal("seed payroll period failed:", err)
		}
	}

	entries := []domain.PayrollEntry{
		{
			PayrollPeriodID: periods[0].ID,
			InstructorID:    instructors[0].ID,
			HoursWorked:     40.0,
			HourlyRate:      45.00,
			TotalAmount:     1800.00,
			Bonuses:         50.00,
			NetAmount:       1850.00,
		},
		{
			PayrollPeriodID: periods[0].ID,
			InstructorID:    instructors[1].ID,
			HoursWorked:     36.0,
			HourlyRate:      50.00,
			TotalAmount:     1800.00,
			NetAmount:       1800.00,
		},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			log.Fatal("seed payroll entry failed:", err)
		}
	}

	log.Println("Creating analytics entries...")
	now := time.Now().UTC()
	for day := 0; day < 28; day++ {
		entry := domain.AnalyticsEntry{
			OrganizationID: orgID,
			Date:           now.AddDate(0, 0, -day).Format("2006-01-02"),
			MetricType:     domain.MetricRevenue,
			MetricValue:    2840.00 + float64(day%7)*120,
			Metadata:       map[string]any{"source": "classes"},
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Fatal("seed analytics failed:", err)
		}
	}

	log.Println("Creating referrals...")
	referrals := []domain.Referral{
		{
			OrganizationID: orgID,
			ReferrerName:   "Sarah Johnson",
			ReferredName:   "Mike Wilson",
			ReferralType:   "member",
			Status:         domain.ReferralConverted,
			RewardAmount:   50.00,
		},
		{
			OrganizationID: orgID,
			ReferrerName:   "John Smith",
			ReferredName:   "Emma Davis",
			ReferralType:   "member",
			Status:         domain.ReferralPending,
		},
	}
	for i := range referrals {
		if err := db.Create(&referrals[i]).Error; err != nil {
			log.Fatal("seed referral failed:", err)
		}
	}

	log.Println("Seed complete")
}
