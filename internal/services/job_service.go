package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard-api/internal/dtos"
	"jobboard-api/internal/models"
)

const defaultPageSize = 10

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

func (s *JobService) Create(req *dtos.JobCreationRequest, imagePath string) (*models.Job, error) {
	var company models.Company
	if err := s.DB.First(&company, req.CompanyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	// New jobs start open with an empty applicant count.
	job := &models.Job{
		CompanyID:   company.ID,
		Title:       req.Title,
		Salary:      req.Salary,
		Description: req.Description,
		Image:       imagePath,
		Status:      true,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	job.Company = company
	return job, nil
}

// List pages through open jobs with an offset cursor. The next cursor is
// nil once the final page has been served.
func (s *JobService) List(cursor, pageSize int) (*dtos.JobListResponse, error) {
	return s.page(s.DB.Where("status = ?", true), cursor, pageSize)
}

// Search is List narrowed by a case-insensitive title match, newest first.
func (s *JobService) Search(title string, cursor, pageSize int) (*dtos.JobListResponse, error) {
	q := s.DB.Where("status = ?", true)
	if title != "" {
		q = q.Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%")
	}
	return s.page(q.Order("created_at DESC"), cursor, pageSize)
}

func (s *JobService) page(q *gorm.DB, cursor, pageSize int) (*dtos.JobListResponse, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var jobs []models.Job
	if err := q.Preload("Company").Offset(cursor).Limit(pageSize).Find(&jobs).Error; err != nil {
		return nil, err
	}

	resp := &dtos.JobListResponse{Jobs: jobs}
	if len(jobs) == pageSize {
		next := cursor + len(jobs)
		resp.NextCursor = &next
	}
	return resp, nil
}

func (s *JobService) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.Preload("Company").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Update(id uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes the job and reports its image path so the handler can
// clean the file up from disk afterwards.
func (s *JobService) Delete(id uint) (imagePath string, err error) {
	job, err := s.GetByID(id)
	if err != nil {
		return "", err
	}
	if err := s.DB.Delete(&models.Job{}, id).Error; err != nil {
		return "", err
	}
	return job.Image, nil
}
