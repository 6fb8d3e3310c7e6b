// Package demo provides the fixed in-memory datasets and stores used when
// no datastore connection is configured. Reads return canned records;
// creates echo the submitted record back with a generated id and default
// fields, without touching the canned lists.
package demo

import (
	"time"

	"gympay/internal/config"
	"gympay/internal/domain"
)

func organizations() []domain.Organization {
	return []domain.Organization{
		{
			ID:               config.DemoOrganizationID,
			Name:             "Fitness Group International",
			SubscriptionPlan: "professional",
			CreatedAt:        time.Now().UTC(),
		},
	}
}

func gyms() []domain.Gym {
	return []domain.Gym{
		{ID: 1, OrganizationID: config.DemoOrganizationID, Name: "Downtown Fitness", Location: "New York, NY", Status: domain.GymActive},
		{ID: 2, OrganizationID: config.DemoOrganizationID, Name: "Westside Gym", Location: "Los Angeles, CA", Status: domain.GymActive},
		{ID: 3, OrganizationID: config.DemoOrganizationID, Name: "Elite Training Center", Location: "Chicago, IL", Status: domain.GymActive},
	}
}

func instructors() []domain.Instructor {
	downtown := &domain.Gym{ID: 1, Name: "Downtown Fitness", Location: "New York, NY", Status: domain.GymActive}
	westside := &domain.Gym{ID: 2, Name: "Westside Gym", Location: "Los Angeles, CA", Status: domain.GymActive}

	return []domain.Instructor{
		{
			ID:             1,
			OrganizationID: config.DemoOrganizationID,
			FirstName:      "Sarah",
			LastName:       "Johnson",
			Email:          "sarah.johnson@example.com",
			Specialties:    []string{"Yoga", "Pilates"},
			HourlyRate:     45.00,
			Status:         domain.InstructorActive,
			Gym:            downtown,
		},
		{
			ID:             2,
			OrganizationID: config.DemoOrganizationID,
			FirstName:      "Michael",
			LastName:       "Chen",
			Email:          "michael.chen@example.com",
			Specialties:    []string{"HIIT", "Strength Training"},
			HourlyRate:     50.00,
			Status:         domain.InstructorActive,
			Gym:            downtown,
		},
		{
			ID:             3,
			OrganizationID: config.DemoOrganizationID,
			FirstName:      "Emma",
			LastName:       "Davis",
			Email:          "emma.davis@example.com",
			Specialties:    []string{"Zumba", "Dance"},
			HourlyRate:     42.00,
			Status:         domain.InstructorActive,
			Gym:            westside,
		},
	}
}

func payrollPeriods() []domain.PayrollPeriod {
	march := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	february := time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC)

	return []domain.PayrollPeriod{
		{
			ID:              1,
			OrganizationID:  config.DemoOrganizationID,
			PeriodStart:     "2024-03-01",
			PeriodEnd:       "2024-03-15",
			Status:          domain.PayrollCompleted,
			TotalAmount:     12450.00,
			InstructorCount: 18,
			ProcessedDate:   &march,
		},
		{
			ID:              2,
			OrganizationID:  config.DemoOrganizationID,
			PeriodStart:     "2024-02-16",
			PeriodEnd:       "2024-02-29",
			Status:          domain.PayrollCompleted,
			TotalAmount:     11820.00,
			InstructorCount: 17,
			ProcessedDate:   &february,
		},
	}
}

func payrollEntries() []domain.PayrollEntry {
	return []domain.PayrollEntry{
		{
			ID:              1,
			PayrollPeriodID: 1,
			InstructorID:    1,
			HoursWorked:     40.0,
			HourlyRate:      45.00,
			TotalAmount:     1800.00,
			Bonuses:         50.00,
			NetAmount:       1850.00,
			Instructor: &domain.Instructor{
				ID:        1,
				FirstName: "Sarah",
				LastName:  "Johnson",
				Email:     "sarah.johnson@example.com",
			},
		},
	}
}

func analyticsEntries() []domain.AnalyticsEntry {
	today := time.Now().UTC().Format("2006-01-02")

	return []domain.AnalyticsEntry{
		{
			ID:             1,
			OrganizationID: config.DemoOrganizationID,
			Date:           today,
			MetricType:     domain.MetricRevenue,
			MetricValue:    2840.00,
			Metadata:       map[string]any{"source": "classes"},
		},
		{
			ID:             2,
			OrganizationID: config.DemoOrganizationID,
			Date:           today,
			MetricType:     domain.MetricAttendance,
			MetricValue:    89.0,
			Metadata:       map[string]any{"total_capacity": 100},
		},
	}
}

func analyticsOverview() *domain.AnalyticsOverview {
	return &domain.AnalyticsOverview{
		TotalRevenue:      98432,
		ActiveInstructors: 23,
		TotalHours:        1203,
		GrowthRate:        8.1,
	}
}

func referrals() []domain.Referral {
	now := time.Now().UTC()

	return []domain.Referral{
		{
			ID:             1,
			OrganizationID: config.DemoOrganizationID,
			ReferrerName:   "Sarah Johnson",
			ReferredName:   "Mike Wilson",
			ReferralType:   "member",
			Status:         domain.ReferralConverted,
			RewardAmount:   50.00,
			CreatedAt:      now,
		},
		{
			ID:             2,
			OrganizationID: config.DemoOrganizationID,
			ReferrerName:   "John Smith",
			ReferredName:   "Emma Davis",
			ReferralType:   "member",
			Status:         domain.ReferralPending,
			RewardAmount:   0.00,
			CreatedAt:      now,
		},
	}
}
