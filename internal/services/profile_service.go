package services

import (
	"gorm.io/gorm"

	"jobboard-api/internal/dtos"
	"jobboard-api/internal/models"
)

// ProfileService covers the CV-style side data users attach to their
// accounts: work experience and education entries.
type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

func (s *ProfileService) AddExperience(userID uint, req *dtos.ExperienceRequest) (*models.Experience, error) {
	exp := &models.Experience{
		UserID:   userID,
		JobTitle: req.JobTitle,
		Company:  req.Company,
	}
	if err := s.DB.Create(exp).Error; err != nil {
		return nil, err
	}
	return exp, nil
}

func (s *ProfileService) ListExperience(userID uint) ([]models.Experience, error) {
	var list []models.Experience
	err := s.DB.Where("user_id = ?", userID).Find(&list).Error
	return list, err
}

func (s *ProfileService) AddEducation(userID uint, req *dtos.EducationRequest) (*models.Education, error) {
	edu := &models.Education{
		UserID: userID,
		Degree: req.Degree,
	}
	if err := s.DB.Create(edu).Error; err != nil {
		return nil, err
	}
	return edu, nil
}

func (s *ProfileService) ListEducation(userID uint) ([]models.Education, error) {
	var list []models.Education
	err := s.DB.Where("user_id = ?", userID).Find(&list).Error
	return list, err
}
