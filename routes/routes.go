package routes

import (
	"bloom/config"
	"bloom/controllers"
	"bloom/middlewares"
	"bloom/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	authCtl := controllers.NewAuthController(services.NewAuthService(config.DB))
	activityCtl := controllers.NewActivityController(services.NewActivityService(config.DB))
	sleepCtl := controllers.NewSleepController(services.NewSleepService(config.DB))
	moodCtl := controllers.NewMoodController(services.NewMoodService(config.DB))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected journal routes
	journal := r.Group("/")
	journal.Use(middlewares.AuthMiddleware())
	{
		journal.GET("/activities", activityCtl.Days)
		journal.POST("/activities", activityCtl.Log)
		journal.GET("/sleep", sleepCtl.Days)
		journal.POST("/sleep", sleepCtl.Log)
		journal.GET("/mood", moodCtl.Days)
		journal.POST("/mood", moodCtl.Log)
	}

	return r
}
