package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	Role         string `gorm:"default:'user'" json:"role"`
	Image        string `json:"image,omitempty"`

	// Optional employer link; most users have none
	CompanyID *uint    `json:"company_id,omitempty"`
	Company   *Company `json:"company,omitempty"`

	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name    string `gorm:"not null" json:"name"`
	Address string `gorm:"not null" json:"address"`
	Website string `json:"website,omitempty"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Foreign Key
	CompanyID uint `gorm:"not null" json:"company_id"`
	// Association: GORM needs Preload() to fill this
	Company Company `json:"company"`

	Title       string `gorm:"not null" json:"title"`
	Salary      int    `gorm:"not null" json:"salary"`
	Description string `gorm:"type:text;not null" json:"description"`
	Image       string `json:"image,omitempty"`

	// Status true = open to new applicants. Flips to false exactly once,
	// when an applicant is accepted; nothing ever flips it back.
	Status bool `gorm:"default:true" json:"status"`

	// ApplicantCount only ever goes up, one per successful registration.
	ApplicantCount int `gorm:"default:0" json:"applicant_count"`
}

// Application links one user's registration to one job. The composite
// unique index makes duplicate (job, user) inserts fail at the database,
// so two racing registrations can never both commit.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID uint `gorm:"not null;uniqueIndex:idx_job_user" json:"job_id"`
	Job   Job  `json:"job,omitempty"`

	UserID uint `gorm:"not null;uniqueIndex:idx_job_user" json:"user_id"`
	User   User `json:"user,omitempty"`

	Description   string `gorm:"type:text;not null" json:"description"`
	PortfolioLink string `json:"portfolio_link,omitempty"`

	// Set when an admin accepts this applicant and the job closes.
	Accepted bool `gorm:"default:false" json:"accepted"`
}

type Experience struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	JobTitle  string    `gorm:"not null" json:"job_title"`
	Company   string    `gorm:"not null" json:"company"`
}

type Education struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Degree    string    `gorm:"not null" json:"degree"`
}
