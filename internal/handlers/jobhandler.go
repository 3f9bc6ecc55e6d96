package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/auth"
	"jobboard-api/internal/dtos"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
)

// JobHandler wires the job CRUD surface and the application workflow
// (register, review, accept) onto the router.
type JobHandler struct {
	JobService         *services.JobService
	ApplicationService *services.ApplicationService
	Uploads            *storage.Uploads
}

func NewJobHandler(jobs *services.JobService, apps *services.ApplicationService, uploads *storage.Uploads) *JobHandler {
	return &JobHandler{
		JobService:         jobs,
		ApplicationService: apps,
		Uploads:            uploads,
	}
}

// Create is the POST /api/job endpoint. Multipart because listings can
// ship an image alongside the form fields.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		imagePath, err = h.Uploads.Save(c, file, "jobs")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed: " + err.Error()})
			return
		}
	}

	job, err := h.JobService.Create(&req, imagePath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) List(c *gin.Context) {
	resp, err := h.JobService.List(queryInt(c, "cursor", 0), queryInt(c, "pageSize", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Search(c *gin.Context) {
	resp, err := h.JobService.Search(c.Query("title"), queryInt(c, "cursor", 0), queryInt(c, "pageSize", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	job, err := h.JobService.GetByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.Update(uint(id), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	imagePath, err := h.JobService.Delete(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Uploads.Remove(imagePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove job image: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dtos.MessageResponse{Message: "Job deleted"})
}

// RegisterForJob is the POST /api/job/registerforjob endpoint: the caller
// applies to a job. Duplicates and closed jobs both come back as 400.
func (h *JobHandler) RegisterForJob(c *gin.Context) {
	var req dtos.JobApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.ApplicationService.Register(auth.CurrentUser(c).ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "User successfully registered for the job",
		"application": app,
	})
}

func (h *JobHandler) GetJobsForUser(c *gin.Context) {
	jobs, err := h.ApplicationService.JobsForUser(auth.CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetApplicants is the GET /api/job/getapplicant endpoint: pending
// applications for still-open jobs, newest first.
func (h *JobHandler) GetApplicants(c *gin.Context) {
	apps, err := h.ApplicationService.ListOpen()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// AcceptApplicant is the POST /api/job/acceptapplicant/:jobId/accept/:userId
// endpoint. The caller comes from the bearer token and must be an admin;
// :userId names the applicant being accepted.
func (h *JobHandler) AcceptApplicant(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}
	applicantID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid applicant id"})
		return
	}

	if err := h.ApplicationService.Accept(uint(jobID), uint(applicantID), auth.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.MessageResponse{
		Message: "Applicant accepted successfully, job status updated to inactive",
	})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
