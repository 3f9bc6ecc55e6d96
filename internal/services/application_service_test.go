package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobboard-api/internal/dtos"
	"jobboard-api/internal/models"
)

func TestRegisterCreatesApplicationAndIncrementsCounter(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	company := seedCompany(t, db)
	job := seedJob(t, db, company.ID)
	user := seedUser(t, db, "a@example.com", models.RoleUser)

	app, err := svc.Register(user.ID, &dtos.JobApplicationRequest{
		JobID:         job.ID,
		Description:   "I would like this job",
		PortfolioLink: "https://example.com/me",
	})
	require.NoError(t, err)
	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, user.ID, app.UserID)
	assert.False(t, app.Accepted)

	var got models.Job
	require.NoError(t, db.First(&got, job.ID).Error)
	assert.Equal(t, 1, got.ApplicantCount)
	assert.True(t, got.Status)
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	company := seedCompany(t, db)
	job := seedJob(t, db, company.ID)
	user := seedUser(t, db, "a@example.com", models.RoleUser)

	req := &dtos.JobApplicationRequest{JobID: job.ID, Description: "first try"}
	_, err := svc.Register(user.ID, req)
	require.NoError(t, err)

	_, err = svc.Register(user.ID, req)
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	// Counter moved by exactly one, and only one row exists for the pair.
	var got models.Job
	require.NoError(t, db.First(&got, job.ID).Error)
	assert.Equal(t, 1, got.ApplicantCount)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", job.ID, user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterRejectsUnknownJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	user := seedUser(t, db, "a@example.com", models.RoleUser)

	_, err := svc.Register(user.ID, &dtos.JobApplicationRequest{JobID: 999, Description: "hello"})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestRegisterRejectsClosedJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	company := seedCompany(t, db)
	job := seedJob(t, db, company.ID)
	user := seedUser(t, db, "a@example.com", models.RoleUser)

	require.NoError(t, db.Model(job).UpdateColumn("status", false).Error)

	_, err := svc.Register(user.ID, &dtos.JobApplicationRequest{JobID: job.ID, Description: "too late"})
	assert.ErrorIs(t, err, ErrJobClosed)

	var got models.Job
	require.NoError(t, db.First(&got, job.ID).Error)
	assert.Equal(t, 0, got.ApplicantCount)
}

func TestRegisterUniqueIndexBacksUpPrecheck(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	company := seedCompany(t, db)
	job := seedJob(t, db, company.ID)
	user := seedUser(t, db, "a@example.com", models.RoleUser)

	// Simulate the race: a competing request committed between the
	// pre-check and the insert. The store-level unique index rejects the
	// second write regardless of the pre-check, which is the guarantee
	// the pre-check alone cannot give.
	rival := &models.Application{JobID: job.ID, UserID: user.ID, Description: "raced in"}
	require.NoError(t, db.Create(rival).Error)

	dup := &models.Application{JobID: job.ID, UserID: user.ID, Description: "loser"}
	assert.ErrorIs(t, db.Create(dup).Error, gorm.ErrDuplicatedKey)

	_, regErr := svc.Register(user.ID, &dtos.JobApplicationRequest{JobID: job.ID, Description: "also loses"})
	assert.ErrorIs(t, regErr, ErrDuplicateApplication)
}

func TestJobsForUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	company := seedCompany(t, db)
	applied := seedJob(t, db, company.ID)
	other := seedJob(t, db, company.ID)
	user := seedUser(t, db, "a@example.com", models.RoleUser)

	_, err := svc.Register(user.ID, &dtos.JobApplicationRequest{JobID: applied.ID, Description: "pick me"})
	require.NoError(t, err)

	jobs, err := svc.JobsForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, applied.ID, jobs[0].ID)
	assert.Equal(t, company.Name, jobs[0].Company.Name)
	assert.NotEqual(t, other.ID, jobs[0].ID)
}

func TestListOpenNewestFirstAndExcludesClosedJobs(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	company := seedCompany(t, db)
	openJob := seedJob(t, db, company.ID)
	closedJob := seedJob(t, db, company.ID)
	first := seedUser(t, db, "first@example.com", models.RoleUser)
	second := seedUser(t, db, "second@example.com", models.RoleUser)

	base := time.Now().Add(-time.Hour)
	olderApp := &models.Application{JobID: openJob.ID, UserID: first.ID, Description: "older", CreatedAt: base}
	newerApp := &models.Application{JobID: openJob.ID, UserID: second.ID, Description: "newer", CreatedAt: base.Add(time.Minute)}
	closedApp := &models.Application{JobID: closedJob.ID, UserID: first.ID, Description: "hidden", CreatedAt: base.Add(2 * time.Minute)}
	require.NoError(t, db.Create(olderApp).Error)
	require.NoError(t, db.Create(newerApp).Error)
	require.NoError(t, db.Create(closedApp).Error)

	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", closedJob.ID).
		UpdateColumn("status", false).Error)

	apps, err := svc.ListOpen()
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "newer", apps[0].Description)
	assert.Equal(t, "older", apps[1].Description)
	assert.Equal(t, openJob.ID, apps[0].Job.ID)
	assert.Equal(t, second.Email, apps[0].User.Email)
}

func TestAcceptRequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	company := seedCompany(t, db)
	job := seedJob(t, db, company.ID)
	applicant := seedUser(t, db, "a@example.com", models.RoleUser)
	caller := seedUser(t, db, "b@example.com", models.RoleUser)

	_, err := svc.Register(applicant.ID, &dtos.JobApplicationRequest{JobID: job.ID, Description: "pick me"})
	require.NoError(t, err)

	err = svc.Accept(job.ID, applicant.ID, caller)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Job must be untouched.
	var got models.Job
	require.NoError(t, db.First(&got, job.ID).Error)
	assert.True(t, got.Status)
}

func TestAcceptUnknownApplicant(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	company := seedCompany(t, db)
	job := seedJob(t, db, company.ID)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)

	err := svc.Accept(job.ID, 999, admin)
	assert.ErrorIs(t, err, ErrApplicantNotFound)
}

func TestAcceptClosesJobAndFlagsApplication(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	company := seedCompany(t, db)
	job := seedJob(t, db, company.ID)
	applicant := seedUser(t, db, "a@example.com", models.RoleUser)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)

	_, err := svc.Register(applicant.ID, &dtos.JobApplicationRequest{JobID: job.ID, Description: "pick me"})
	require.NoError(t, err)

	require.NoError(t, svc.Accept(job.ID, applicant.ID, admin))

	var gotJob models.Job
	require.NoError(t, db.First(&gotJob, job.ID).Error)
	assert.False(t, gotJob.Status)

	var gotApp models.Application
	require.NoError(t, db.Where("job_id = ? AND user_id = ?", job.ID, applicant.ID).
		First(&gotApp).Error)
	assert.True(t, gotApp.Accepted)

	// The closed job's applications drop out of the review list.
	apps, err := svc.ListOpen()
	require.NoError(t, err)
	assert.Empty(t, apps)
}

// Full lifecycle: open job, register, duplicate rejected, accept, closed.
func TestApplicationLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	company := seedCompany(t, db)
	job := seedJob(t, db, company.ID)
	userA := seedUser(t, db, "a@example.com", models.RoleUser)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)

	_, err := svc.Register(userA.ID, &dtos.JobApplicationRequest{JobID: job.ID, Description: "hire me"})
	require.NoError(t, err)

	var got models.Job
	require.NoError(t, db.First(&got, job.ID).Error)
	assert.Equal(t, 1, got.ApplicantCount)

	_, err = svc.Register(userA.ID, &dtos.JobApplicationRequest{JobID: job.ID, Description: "hire me again"})
	assert.ErrorIs(t, err, ErrDuplicateApplication)
	require.NoError(t, db.First(&got, job.ID).Error)
	assert.Equal(t, 1, got.ApplicantCount)

	require.NoError(t, svc.Accept(job.ID, userA.ID, admin))
	require.NoError(t, db.First(&got, job.ID).Error)
	assert.False(t, got.Status)

	apps, err := svc.ListOpen()
	require.NoError(t, err)
	assert.Empty(t, apps)

	// Terminal state: nobody else can register once the job closed.
	userB := seedUser(t, db, "b@example.com", models.RoleUser)
	_, err = svc.Register(userB.ID, &dtos.JobApplicationRequest{JobID: job.ID, Description: "me too"})
	assert.ErrorIs(t, err, ErrJobClosed)
}
