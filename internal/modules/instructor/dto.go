package instructor

type CreateInstructorRequest struct {
	FirstName   string   `json:"first_name" binding:"required"`
	LastName    string   `json:"last_name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone"`
	GymID       *int64   `json:"gym_id"`
	Specialties []string `json:"specialties"`
	HourlyRate  float64  `json:"hourly_rate" binding:"gte=0"`
}

// UpdateInstructorRequest carries only the fields the form can change;
// nil pointers mean "leave as is".
type UpdateInstructorRequest struct {
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	Phone       *string   `json:"phone"`
	GymID       *int64    `json:"gym_id"`
	Specialties *[]string `json:"specialties"`
	HourlyRate  *float64  `json:"hourly_rate" binding:"omitempty,gte=0"`
	Status      *string   `json:"status"`
}
