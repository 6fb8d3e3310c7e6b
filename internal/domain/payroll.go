package domain

import "time"

type PayrollStatus string

const (
	PayrollDraft     PayrollStatus = "draft"
	PayrollCompleted PayrollStatus = "completed"
)

// PayrollPeriod is one payroll run for an organization. Totals are stored
// as submitted; nothing in this codebase derives them from hours and rates.
type PayrollPeriod struct {
	ID              int64         `gorm:"primaryKey" json:"id"`
	OrganizationID  string        `gorm:"column:organization_id;index" json:"organization_id"`
	PeriodStart     string        `gorm:"column:period_start;type:date" json:"period_start" validate:"required"`
	PeriodEnd       string        `gorm:"column:period_end;type:date" json:"period_end" validate:"required"`
	Status          PayrollStatus `json:"status"`
	TotalAmount     float64       `gorm:"column:total_amount" json:"total_amount" validate:"gte=0"`
	InstructorCount int           `gorm:"column:instructor_count" json:"instructor_count" validate:"gte=0"`
	ProcessedDate   *time.Time    `gorm:"column:processed_date" json:"processed_date,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

func (PayrollPeriod) TableName() string { return "payroll_periods" }

// PayrollEntry is one instructor's line in a payroll period.
type PayrollEntry struct {
	ID              int64   `gorm:"primaryKey" json:"id"`
	PayrollPeriodID int64   `gorm:"column:payroll_period_id;index" json:"payroll_period_id"`
	InstructorID    int64   `gorm:"column:instructor_id" json:"instructor_id"`
	HoursWorked     float64 `gorm:"column:hours_worked" json:"hours_worked"`
	HourlyRate      float64 `gorm:"column:hourly_rate" json:"hourly_rate"`
	TotalAmount     float64 `gorm:"column:total_amount" json:"total_amount"`
	Bonuses         float64 `json:"bonuses"`
	Deductions      float64 `json:"deductions"`
	NetAmount       float64 `gorm:"column:net_amount" json:"net_amount"`

	Instructor *Instructor `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
}

func (PayrollEntry) TableName() string { return "payroll_entries" }
