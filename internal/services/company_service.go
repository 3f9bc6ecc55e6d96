package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard-api/internal/dtos"
	"jobboard-api/internal/models"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

func (s *CompanyService) Create(req *dtos.CompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:    req.Name,
		Address: req.Address,
		Website: req.Website,
	}
	if err := s.DB.Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) GetAll() ([]models.Company, error) {
	var companies []models.Company
	err := s.DB.Find(&companies).Error
	return companies, err
}

func (s *CompanyService) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := s.DB.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) Update(id uint, req *dtos.CompanyRequest) (*models.Company, error) {
	company, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	company.Name = req.Name
	company.Address = req.Address
	company.Website = req.Website
	if err := s.DB.Save(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Delete(id uint) error {
	res := s.DB.Delete(&models.Company{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// Search matches company names case-insensitively; an empty query lists
// everything, same as GetAll.
func (s *CompanyService) Search(name string) ([]models.Company, error) {
	var companies []models.Company
	q := s.DB
	if name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}
	err := q.Find(&companies).Error
	return companies, err
}
