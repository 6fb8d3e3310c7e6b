package domain

import "time"

// Organization is the top-level tenant. Every gym, instructor, payroll
// period and referral belongs to exactly one organization, and every query
// in the repository layer filters by its ID.
type Organization struct {
	ID               string    `gorm:"column:id;primaryKey" json:"id"`
	Name             string    `gorm:"column:name" json:"name"`
	SubscriptionPlan string    `gorm:"column:subscription_plan" json:"subscription_plan"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Organization) TableName() string { return "organizations" }
