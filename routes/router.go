// file: routes/router.go
package routes

import (
	"HackPort/controllers"
	"HackPort/middlewares"
	"HackPort/models"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		// --- 队伍侧路由 ---
		teamsPublic := apiV1.Group("/teams")
		{
			teamsPublic.POST("/login", controllers.TeamLogin)
		}
		teamsAuth := apiV1.Group("/teams")
		teamsAuth.Use(middlewares.TeamAuthMiddleware())
		{
			teamsAuth.GET("/me", controllers.GetTeamProfile)
		}

		submissionRoutes := apiV1.Group("/submissions")
		submissionRoutes.Use(middlewares.TeamAuthMiddleware())
		{
			submissionRoutes.POST("", controllers.UploadSubmission)
			submissionRoutes.GET("", controllers.ListMySubmissions)
		}

		// --- 管理端路由 ---
		apiV1.POST("/admin/login", controllers.AdminLogin)

		adminTeamRoutes := apiV1.Group("/admin/teams")
		adminTeamRoutes.Use(middlewares.AdminAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminTeamRoutes.GET("", controllers.AdminGetTeams)
			adminTeamRoutes.POST("", controllers.AdminCreateTeam)
			adminTeamRoutes.POST("/import", controllers.AdminImportTeams)
			adminTeamRoutes.POST("/:id/folders", controllers.AdminProvisionTeamFolders)
			adminTeamRoutes.PUT("/:id/uploads", controllers.AdminUpdateTeamUploads)
			adminTeamRoutes.POST("/:id/reset-access-code", controllers.AdminResetAccessCode)
			adminTeamRoutes.DELETE("/:id", controllers.AdminDeleteTeam)
		}

		adminSubmissionRoutes := apiV1.Group("/admin/submissions")
		adminSubmissionRoutes.Use(middlewares.AdminAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminSubmissionRoutes.GET("", controllers.AdminListSubmissions)
		}

		adminSettingsRoutes := apiV1.Group("/admin/settings")
		adminSettingsRoutes.Use(middlewares.AdminAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminSettingsRoutes.GET("/folders", controllers.GetFolderSettings)
			adminSettingsRoutes.PUT("/folders", controllers.UpdateFolderSettings)
		}
	}

	return r
}
