package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/auth"
	"jobboard-api/internal/dtos"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
)

type UserHandler struct {
	UserService    *services.UserService
	ProfileService *services.ProfileService
	Uploads        *storage.Uploads
}

func NewUserHandler(users *services.UserService, profiles *services.ProfileService, uploads *storage.Uploads) *UserHandler {
	return &UserHandler{
		UserService:    users,
		ProfileService: profiles,
		Uploads:        uploads,
	}
}

// Me is the GET /api/users/me endpoint.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.UserService.GetByID(auth.CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dtos.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.UserService.Update(auth.CurrentUser(c).ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.UserService.Delete(auth.CurrentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.MessageResponse{Message: "Account deleted"})
}

// UpdateImage replaces the caller's profile picture. The old file stays
// on disk until the new one is saved, so a failed upload loses nothing.
func (h *UserHandler) UpdateImage(c *gin.Context) {
	current := auth.CurrentUser(c)

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	imagePath, err := h.Uploads.Save(c, file, "profiles")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed: " + err.Error()})
		return
	}

	user, err := h.UserService.SetImage(current.ID, imagePath)
	if err != nil {
		respondError(c, err)
		return
	}
	if current.Image != "" && current.Image != imagePath {
		_ = h.Uploads.Remove(current.Image)
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) AddExperience(c *gin.Context) {
	var req dtos.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	exp, err := h.ProfileService.AddExperience(auth.CurrentUser(c).ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}

func (h *UserHandler) ListExperience(c *gin.Context) {
	list, err := h.ProfileService.ListExperience(auth.CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *UserHandler) AddEducation(c *gin.Context) {
	var req dtos.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	edu, err := h.ProfileService.AddEducation(auth.CurrentUser(c).ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, edu)
}

func (h *UserHandler) ListEducation(c *gin.Context) {
	list, err := h.ProfileService.ListEducation(auth.CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
