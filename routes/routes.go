package routes

import (
	"fotostudio-backend/config"
	"fotostudio-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// The SPA is served from another origin during development.
	r.Use(cors.Default())

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		schedules := api.Group("/schedules")
		{
			schedules.POST("", controllers.CreateSchedule)
			schedules.GET("", controllers.GetSchedules)
			schedules.GET("/:id", controllers.GetSchedule)
			schedules.PUT("/:id", controllers.UpdateSchedule)
			schedules.DELETE("/:id", controllers.DeleteSchedule)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", controllers.CreateTask)
			tasks.GET("", controllers.GetTasks)
			tasks.GET("/:id", controllers.GetTask)
			tasks.PUT("/:id", controllers.UpdateTask)
			tasks.DELETE("/:id", controllers.DeleteTask)
		}

		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
