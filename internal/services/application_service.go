package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard-api/internal/dtos"
	"jobboard-api/internal/models"
)

// ApplicationService owns the job-application workflow: registering a
// user for a job, listing applicants for review, and the accept decision
// that closes a job.
type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Register records one user's application to one job and bumps the job's
// applicant counter. At most one application can exist per (job, user):
// the pre-check gives a clean error in the common case, and the composite
// unique index on applications catches the race where two requests pass
// the check together. Either way the second caller gets
// ErrDuplicateApplication and the counter moves by exactly one.
func (s *ApplicationService) Register(userID uint, req *dtos.JobApplicationRequest) (*models.Application, error) {
	var job models.Job
	if err := s.DB.First(&job, req.JobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if !job.Status {
		return nil, ErrJobClosed
	}

	var existing models.Application
	err := s.DB.Where("job_id = ? AND user_id = ?", req.JobID, userID).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateApplication
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	app := &models.Application{
		JobID:         req.JobID,
		UserID:        userID,
		Description:   req.Description,
		PortfolioLink: req.PortfolioLink,
	}

	// Insert and increment commit together or not at all, so the counter
	// always matches the number of application rows.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		return tx.Model(&models.Job{}).Where("id = ?", req.JobID).
			UpdateColumn("applicant_count", gorm.Expr("applicant_count + ?", 1)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}
	return app, nil
}

// JobsForUser lists the jobs a user has applied to, company included.
func (s *ApplicationService) JobsForUser(userID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.
		Joins("JOIN applications ON applications.job_id = jobs.id").
		Where("applications.user_id = ?", userID).
		Preload("Company").
		Find(&jobs).Error
	return jobs, err
}

// ListOpen returns the applications still worth reviewing: those whose
// job is open, newest first. Applications for jobs that have since closed
// stay in the store but drop out of this view.
func (s *ApplicationService) ListOpen() ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.
		Joins("JOIN jobs ON jobs.id = applications.job_id AND jobs.status = ? AND jobs.deleted_at IS NULL", true).
		Preload("Job").
		Preload("User").
		Order("applications.created_at DESC").
		Find(&apps).Error
	return apps, err
}

// Accept is the one-way transition that closes a job: an admin picks an
// applicant, the application is flagged accepted, and the job stops
// taking registrations. Nothing in this service reopens a job.
func (s *ApplicationService) Accept(jobID, applicantID uint, caller *models.User) error {
	if caller == nil || caller.Role != models.RoleAdmin {
		return ErrUnauthorized
	}

	var app models.Application
	err := s.DB.Where("job_id = ? AND user_id = ?", jobID, applicantID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApplicantNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Job{}).Where("id = ?", jobID).
			UpdateColumn("status", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Application{}).Where("id = ?", app.ID).
			UpdateColumn("accepted", true).Error
	})
}
