package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter mounts every route under /api. The same wiring backs the server
// binary and the e2e suite.
func NewRouter(
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
	githubHandler *GithubHandler,
	authMiddleware gin.HandlerFunc,
	errorMiddleware gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/auth", authMiddleware, authHandler.CurrentUser)
		api.POST("/auth", authHandler.Login)
		api.POST("/users", authHandler.Register)

		p := api.Group("/profile")
		{
			p.GET("", profileHandler.List)
			p.POST("", authMiddleware, profileHandler.Upsert)
			p.DELETE("", authMiddleware, profileHandler.DeleteAccount)
			p.GET("/me", authMiddleware, profileHandler.GetMine)
			p.GET("/user/:user_id", profileHandler.GetByUserID)
			p.PUT("/experience", authMiddleware, profileHandler.AddExperience)
			p.DELETE("/experience/:exp_id", authMiddleware, profileHandler.RemoveExperience)
			p.PUT("/education", authMiddleware, profileHandler.AddEducation)
			p.DELETE("/education/:edu_id", authMiddleware, profileHandler.RemoveEducation)
			p.GET("/github/:username", githubHandler.Repos)
		}
	}

	return router
}
