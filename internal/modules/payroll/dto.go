package payroll

// CreatePeriodRequest carries the totals as provided by the operator; the
// server does not derive them from hours and rates.
type CreatePeriodRequest struct {
	PeriodStart     string  `json:"period_start" binding:"required"`
	PeriodEnd       string  `json:"period_end" binding:"required"`
	TotalAmount     float64 `json:"total_amount" binding:"gte=0"`
	InstructorCount int     `json:"instructor_count" binding:"gte=0"`
}
