package domain

import "time"

type GymStatus string

const (
	GymActive   GymStatus = "active"
	GymInactive GymStatus = "inactive"
)

type Gym struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	OrganizationID string    `gorm:"column:organization_id;index" json:"organization_id"`
	Name           string    `json:"name" validate:"required"`
	Location       string    `json:"location" validate:"required"`
	Status         GymStatus `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Gym) TableName() string { return "gyms" }
