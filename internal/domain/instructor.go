package domain

import "time"

type InstructorStatus string

const (
	InstructorActive   InstructorStatus = "active"
	InstructorInactive InstructorStatus = "inactive"
)

// Instructor teaches classes at one of the organization's gyms. The gym
// assignment is optional; referential integrity is enforced by the
// datastore, not here.
type Instructor struct {
	ID             int64            `gorm:"primaryKey" json:"id"`
	OrganizationID string           `gorm:"column:organization_id;index" json:"organization_id"`
	GymID          *int64           `gorm:"column:gym_id" json:"gym_id,omitempty"`
	FirstName      string           `gorm:"column:first_name" json:"first_name" validate:"required"`
	LastName       string           `gorm:"column:last_name" json:"last_name" validate:"required"`
	Email          string           `json:"email" validate:"required,email"`
	Phone          string           `json:"phone,omitempty"`
	Specialties    []string         `gorm:"serializer:json" json:"specialties"`
	HourlyRate     float64          `gorm:"column:hourly_rate" json:"hourly_rate" validate:"gte=0"`
	Status         InstructorStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	Gym *Gym `gorm:"foreignKey:GymID" json:"gym,omitempty"`
}

func (Instructor) TableName() string { return "instructors" }
