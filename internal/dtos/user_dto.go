package dtos

// UserUpdateRequest is a partial update: nil pointer means "leave as is",
// so clients can clear a field by sending an empty string explicitly.
type UserUpdateRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Gender      *string `json:"gender"`
	Description *string `json:"description"`
	CompanyID   *uint   `json:"company_id"`
}

type ExperienceRequest struct {
	JobTitle string `json:"job_title" binding:"required"`
	Company  string `json:"company" binding:"required"`
}

type EducationRequest struct {
	Degree string `json:"degree" binding:"required"`
}
