package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard-api/internal/models"
)

// newTestDB opens a per-test in-memory sqlite store with the same
// TranslateError setting as production, so unique-index violations
// surface as gorm.ErrDuplicatedKey here too.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
		&models.Experience{},
		&models.Education{},
	))
	return db
}

func seedCompany(t *testing.T, db *gorm.DB) *models.Company {
	t.Helper()
	company := &models.Company{Name: "Acme", Address: "1 Main St"}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedJob(t *testing.T, db *gorm.DB, companyID uint) *models.Job {
	t.Helper()
	job := &models.Job{
		CompanyID:   companyID,
		Title:       "Backend Engineer",
		Salary:      90000,
		Description: "Build the job board",
		Status:      true,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
