package controllers

import (
	"errors"
	"net/http"
	"time"

	"fotostudio-backend/config"
	"fotostudio-backend/models"
	"fotostudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskInput defines the expected JSON structure for creating or updating a
// post-production task.
type TaskInput struct {
	Cliente      string  `json:"cliente"`
	Filho        string  `json:"filho"`
	Servico      string  `json:"servico"`
	DataEnsaio   string  `json:"dataEnsaio"`
	DataEntrega  string  `json:"dataEntrega"`
	Status       string  `json:"status"`
	ArmazenadoHD *string `json:"armazenadoHD"`
	MinFotos     *int    `json:"minFotos"`
	Observacao   *string `json:"observacao"`
}

// TaskResponse decorates a task with its priority, derived from the delivery
// date on every read and never stored.
type TaskResponse struct {
	models.Task
	Priority utils.Priority `json:"priority"`
}

func taskResponse(task models.Task, today time.Time) TaskResponse {
	return TaskResponse{
		Task:     task,
		Priority: utils.TaskPriority(task.Status, task.DataEntrega, today),
	}
}

// CreateTask records a new post-production task.
func CreateTask(c *gin.Context) {
	var input TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Cliente == "" || input.Servico == "" || input.DataEnsaio == "" || input.DataEntrega == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Client, service, session date, and delivery date are required")
		return
	}
	if !models.IsTaskServiceType(input.Servico) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service type")
		return
	}
	dataEnsaio, ok := utils.ParseDate(input.DataEnsaio)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid session date")
		return
	}
	dataEntrega, ok := utils.ParseDate(input.DataEntrega)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid delivery date")
		return
	}

	task := models.Task{
		ID:          uuid.New(),
		Cliente:     input.Cliente,
		Filho:       input.Filho,
		Servico:     input.Servico,
		DataEnsaio:  dataEnsaio,
		DataEntrega: dataEntrega,
		Status:      models.TaskStatusNotStarted,
		MinFotos:    input.MinFotos,
	}
	if task.Filho == "" {
		task.Filho = "N/A"
	}
	if input.Status != "" {
		if !models.IsTaskStatus(input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
			return
		}
		task.Status = input.Status
	}
	if input.ArmazenadoHD != nil {
		task.ArmazenadoHD = *input.ArmazenadoHD
	}
	if input.Observacao != nil {
		task.Observacao = *input.Observacao
	}

	if err := config.DB.Create(&task).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, taskResponse(task, time.Now()))
}

// GetTasks lists tasks sorted by delivery date. Optional filters: status and
// servico exact match, and mes, a zero-based month index (0-11) constraining
// the delivery date to that month of the current year. Unlike schedules,
// tasks take no year parameter; the current server year is always used.
func GetTasks(c *gin.Context) {
	q := config.DB.Model(&models.Task{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if servico := c.Query("servico"); servico != "" {
		q = q.Where("servico = ?", servico)
	}
	if mes, ok := parseIntParam(c.Query("mes")); ok && mes >= 0 && mes <= 11 {
		start, end := utils.MonthRangeUTC(time.Now().UTC().Year(), mes)
		q = q.Where("data_entrega >= ? AND data_entrega <= ?", start, end)
	}

	var tasks []models.Task
	if err := q.Order("data_entrega ASC").Find(&tasks).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	today := time.Now()
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskResponse(task, today))
	}

	c.JSON(http.StatusOK, responses)
}

// GetTask retrieves a specific task by ID.
func GetTask(c *gin.Context) {
	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var task models.Task
	if err := config.DB.First(&task, "id = ?", taskUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, taskResponse(task, time.Now()))
}

// UpdateTask updates the provided fields of a task.
func UpdateTask(c *gin.Context) {
	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var input TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var task models.Task
	if err := config.DB.First(&task, "id = ?", taskUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Cliente != "" {
		task.Cliente = input.Cliente
	}
	if input.Filho != "" {
		task.Filho = input.Filho
	}
	if input.Servico != "" {
		if !models.IsTaskServiceType(input.Servico) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service type")
			return
		}
		task.Servico = input.Servico
	}
	if input.DataEnsaio != "" {
		dataEnsaio, ok := utils.ParseDate(input.DataEnsaio)
		if !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid session date")
			return
		}
		task.DataEnsaio = dataEnsaio
	}
	if input.DataEntrega != "" {
		dataEntrega, ok := utils.ParseDate(input.DataEntrega)
		if !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid delivery date")
			return
		}
		task.DataEntrega = dataEntrega
	}
	if input.Status != "" {
		if !models.IsTaskStatus(input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
			return
		}
		task.Status = input.Status
	}
	if input.ArmazenadoHD != nil {
		task.ArmazenadoHD = *input.ArmazenadoHD
	}
	if input.MinFotos != nil {
		task.MinFotos = input.MinFotos
	}
	if input.Observacao != nil {
		task.Observacao = *input.Observacao
	}

	if err := config.DB.Save(&task).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, taskResponse(task, time.Now()))
}

// DeleteTask removes a task.
func DeleteTask(c *gin.Context) {
	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID")
		return
	}

	result := config.DB.Delete(&models.Task{}, "id = ?", taskUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete task")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		return
	}

	c.Status(http.StatusNoContent)
}
