package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard-api/internal/auth"
)

// Register mounts every route group on the router. The api-key gate
// wraps the whole /api tree; the bearer middleware wraps only the routes
// that act on behalf of a user.
func Register(
	r *gin.Engine,
	db *gorm.DB,
	issuer *auth.TokenIssuer,
	apiKey string,
	authH *AuthHandler,
	userH *UserHandler,
	companyH *CompanyHandler,
	jobH *JobHandler,
) {
	api := r.Group("/api", auth.RequireAPIKey(apiKey))
	requireAuth := auth.RequireAuth(issuer, db)

	api.GET("/health", HealthCheck)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
	}

	users := api.Group("/users", requireAuth)
	{
		users.GET("/me", userH.Me)
		users.PUT("/me", userH.Update)
		users.DELETE("/me", userH.Delete)
		users.PUT("/me/image", userH.UpdateImage)
		users.POST("/me/experience", userH.AddExperience)
		users.GET("/me/experience", userH.ListExperience)
		users.POST("/me/education", userH.AddEducation)
		users.GET("/me/education", userH.ListEducation)
	}

	companies := api.Group("/companies")
	{
		companies.POST("", companyH.Create)
		companies.GET("", companyH.GetAll)
		companies.GET("/search", companyH.Search)
		companies.GET("/:id", companyH.GetByID)
		companies.PUT("/:id", companyH.Update)
		companies.DELETE("/:id", companyH.Delete)
	}

	jobs := api.Group("/job")
	{
		jobs.POST("", jobH.Create)
		jobs.GET("", jobH.List)
		jobs.GET("/search", jobH.Search)
		jobs.GET("/id/:id", jobH.GetByID)
		jobs.PUT("/:id", jobH.Update)
		jobs.DELETE("/:id", jobH.Delete)

		jobs.POST("/registerforjob", requireAuth, jobH.RegisterForJob)
		jobs.POST("/getjobsforuser", requireAuth, jobH.GetJobsForUser)
		jobs.GET("/getapplicant", requireAuth, jobH.GetApplicants)
		jobs.POST("/acceptapplicant/:jobId/accept/:userId", requireAuth, jobH.AcceptApplicant)
	}
}
