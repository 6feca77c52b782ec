package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fotostudio-backend/config"
	"fotostudio-backend/models"
	"fotostudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchedulingInput defines the expected JSON structure for creating or
// updating a schedule. CustomerID is a pointer so an update can tell "key
// absent" (keep the current link) apart from "key present but invalid"
// (drop the link).
type SchedulingInput struct {
	CustomerID    *string  `json:"customerId"`
	CustomerName  string   `json:"customerName"`
	SessionType   string   `json:"sessionType"`
	Date          string   `json:"date"`
	Observacao    *string  `json:"observacao"`
	Indicacao     *string  `json:"indicacao"`
	PaymentStatus string   `json:"paymentStatus"`
	EntryValue    *float64 `json:"entryValue"`
	PaymentMethod *string  `json:"paymentMethod"`
}

func validPaymentFields(status string, method *string) (string, bool) {
	if status != "" && !models.IsPaymentStatus(status) {
		return "Invalid payment status", false
	}
	if method != nil && !models.IsPaymentMethod(*method) {
		return "Invalid payment method", false
	}
	return "", true
}

// CreateSchedule books a new session. The customer link is best effort: an
// unparseable customerId is dropped, never rejected.
func CreateSchedule(c *gin.Context) {
	var input SchedulingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CustomerName == "" || input.SessionType == "" || input.Date == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer name, session type, and date are required")
		return
	}
	if !models.IsSessionType(input.SessionType) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid session type")
		return
	}
	date, ok := utils.ParseDate(input.Date)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date")
		return
	}
	if msg, ok := validPaymentFields(input.PaymentStatus, input.PaymentMethod); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	schedule := models.Scheduling{
		ID:            uuid.New(),
		CustomerName:  input.CustomerName,
		SessionType:   input.SessionType,
		Date:          date,
		PaymentStatus: models.PaymentStatusPending,
		EntryValue:    input.EntryValue,
		PaymentMethod: input.PaymentMethod,
	}
	if input.Observacao != nil {
		schedule.Observacao = *input.Observacao
	}
	if input.Indicacao != nil {
		schedule.Indicacao = *input.Indicacao
	}
	if input.PaymentStatus != "" {
		schedule.PaymentStatus = input.PaymentStatus
	}
	if input.CustomerID != nil {
		if customerUUID, err := uuid.Parse(*input.CustomerID); err == nil {
			schedule.CustomerID = &customerUUID
		}
	}

	if err := config.DB.Create(&schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create schedule")
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetSchedules lists schedules sorted by session date, with the linked
// customer populated. Optional filters: sessionType and paymentStatus exact
// match, indicacao case-insensitive substring, and a year/month window (year
// alone covers the whole calendar year; month alone covers that month of the
// current year). Malformed numeric parameters are skipped, not rejected.
func GetSchedules(c *gin.Context) {
	q := config.DB.Model(&models.Scheduling{}).
		Preload("Customer").
		Preload("Customer.Children", orderedChildren)

	if sessionType := c.Query("sessionType"); sessionType != "" {
		q = q.Where("session_type = ?", sessionType)
	}
	if paymentStatus := c.Query("paymentStatus"); paymentStatus != "" {
		q = q.Where("payment_status = ?", paymentStatus)
	}
	if indicacao := c.Query("indicacao"); indicacao != "" {
		q = q.Where("LOWER(indicacao) LIKE ?", "%"+strings.ToLower(indicacao)+"%")
	}

	year, yearOK := parseIntParam(c.Query("year"))
	month, monthOK := parseIntParam(c.Query("month"))
	monthOK = monthOK && month >= 1 && month <= 12
	var start, end time.Time
	haveRange := true
	switch {
	case yearOK && monthOK:
		start, end = utils.MonthRangeUTC(year, month-1)
	case yearOK:
		start, end = utils.YearRangeUTC(year)
	case monthOK:
		start, end = utils.MonthRangeUTC(time.Now().UTC().Year(), month-1)
	default:
		haveRange = false
	}
	if haveRange {
		q = q.Where("date >= ? AND date <= ?", start, end)
	}

	var schedules []models.Scheduling
	if err := q.Order("date ASC").Find(&schedules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedules")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// GetSchedule retrieves a specific schedule by ID.
func GetSchedule(c *gin.Context) {
	scheduleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	var schedule models.Scheduling
	if err := config.DB.Preload("Customer").Preload("Customer.Children", orderedChildren).
		First(&schedule, "id = ?", scheduleUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// UpdateSchedule updates the provided fields of a schedule. Whatever the
// payload carried, payment fields that make no sense for the resulting
// status are cleared before the record is stored.
func UpdateSchedule(c *gin.Context) {
	scheduleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	var input SchedulingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if msg, ok := validPaymentFields(input.PaymentStatus, input.PaymentMethod); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	var schedule models.Scheduling
	if err := config.DB.First(&schedule, "id = ?", scheduleUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CustomerName != "" {
		schedule.CustomerName = input.CustomerName
	}
	if input.SessionType != "" {
		if !models.IsSessionType(input.SessionType) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid session type")
			return
		}
		schedule.SessionType = input.SessionType
	}
	if input.Date != "" {
		date, ok := utils.ParseDate(input.Date)
		if !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date")
			return
		}
		schedule.Date = date
	}
	if input.Observacao != nil {
		schedule.Observacao = *input.Observacao
	}
	if input.Indicacao != nil {
		schedule.Indicacao = *input.Indicacao
	}
	if input.PaymentStatus != "" {
		schedule.PaymentStatus = input.PaymentStatus
	}
	if input.EntryValue != nil {
		schedule.EntryValue = input.EntryValue
	}
	if input.PaymentMethod != nil {
		schedule.PaymentMethod = input.PaymentMethod
	}
	if input.CustomerID != nil {
		if customerUUID, err := uuid.Parse(*input.CustomerID); err == nil {
			schedule.CustomerID = &customerUUID
		} else {
			schedule.CustomerID = nil
		}
	}

	schedule.ApplyPaymentRules()

	if err := config.DB.Save(&schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update schedule")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule removes a schedule.
func DeleteSchedule(c *gin.Context) {
	scheduleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	result := config.DB.Delete(&models.Scheduling{}, "id = ?", scheduleUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete schedule")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIntParam(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
