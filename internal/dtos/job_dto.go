package dtos

import "jobboard-api/internal/models"

// JobCreationRequest arrives as multipart form data because jobs can
// carry an image; the file part is handled separately by the handler.
type JobCreationRequest struct {
	Title       string `form:"title" binding:"required"`
	Salary      int    `form:"salary" binding:"required,min=0"`
	Description string `form:"description" binding:"required"`
	CompanyID   uint   `form:"company_id" binding:"required"`
}

type JobUpdateRequest struct {
	Title       *string `json:"title"`
	Salary      *int    `json:"salary"`
	Description *string `json:"description"`
}

type JobApplicationRequest struct {
	JobID       uint   `json:"jobId" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	PortfolioLink string `json:"portfolioLink"`
}

// JobListResponse carries offset-style cursor pagination: pass NextCursor
// back as ?cursor= to fetch the following page.
type JobListResponse struct {
	Jobs       []models.Job `json:"jobs"`
	NextCursor *int         `json:"nextCursor"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
