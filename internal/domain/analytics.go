package domain

import "time"

const (
	MetricRevenue    = "revenue"
	MetricAttendance = "attendance"
)

// AnalyticsEntry is one dated metric sample for an organization.
type AnalyticsEntry struct {
	ID             int64          `gorm:"primaryKey" json:"id"`
	OrganizationID string         `gorm:"column:organization_id;index" json:"organization_id"`
	Date           string         `gorm:"type:date" json:"date"`
	MetricType     string         `gorm:"column:metric_type" json:"metric_type"`
	MetricValue    float64        `gorm:"column:metric_value" json:"metric_value"`
	Metadata       map[string]any `gorm:"serializer:json" json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (AnalyticsEntry) TableName() string { return "analytics_data" }

// AnalyticsOverview is the aggregate the dashboard's overview widgets
// render. Field names follow the wire contract the dashboard expects.
type AnalyticsOverview struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	ActiveInstructors int64   `json:"activeInstructors"`
	TotalHours        float64 `json:"totalHours"`
	GrowthRate        float64 `json:"growthRate"`
}
