package controllers

import (
	"net/http"
	"time"

	"fotostudio-backend/config"
	"fotostudio-backend/models"
	"fotostudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalCustomers   int64               `json:"totalCustomers"`
	UpcomingSessions int64               `json:"upcomingSessions"`
	NextSessions     []models.Scheduling `json:"nextSessions"`
	LateTasks        int64               `json:"lateTasks"`
}

// GetDashboardOverview summarizes the studio's current state: registered
// customers, sessions from today onward, and unfinished tasks whose delivery
// date already passed.
func GetDashboardOverview(c *gin.Context) {
	today := utils.BeginningOfDay(time.Now().UTC())

	var overview DashboardOverview

	if err := config.DB.Model(&models.Customer{}).Count(&overview.TotalCustomers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	if err := config.DB.Model(&models.Scheduling{}).
		Where("date >= ?", today).
		Count(&overview.UpcomingSessions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	if err := config.DB.
		Where("date >= ?", today).
		Order("date ASC").
		Limit(5).
		Find(&overview.NextSessions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	if err := config.DB.Model(&models.Task{}).
		Where("data_entrega < ? AND status <> ?", today, models.TaskStatusFinished).
		Count(&overview.LateTasks).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	if overview.NextSessions == nil {
		overview.NextSessions = []models.Scheduling{}
	}

	c.JSON(http.StatusOK, overview)
}
