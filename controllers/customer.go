package controllers

import (
	"errors"
	"net/http"

	"fotostudio-backend/config"
	"fotostudio-backend/models"
	"fotostudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChildInput is one entry of the children list on the registration form.
type ChildInput struct {
	Name string `json:"name"`
	DOB  string `json:"dob"`
}

// CustomerInput defines the expected JSON structure for creating or updating
// a customer. Updates replace every mutable field with the submitted payload.
type CustomerInput struct {
	FullName      string       `json:"fullName" binding:"required"`
	PreferredName string       `json:"preferredName"`
	CPF           string       `json:"cpf" binding:"required"`
	DOB           string       `json:"dob" binding:"required"`
	Address       string       `json:"address" binding:"required"`
	CEP           string       `json:"cep" binding:"required"`
	Phone         string       `json:"phone" binding:"required"`
	Email         string       `json:"email" binding:"required"`
	Instagram     string       `json:"instagram"`
	Children      []ChildInput `json:"children"`
	HusbandName   string       `json:"husbandName"`
	HusbandDOB    string       `json:"husbandDob"`
}

// customerConflict returns "CPF" or "Email" when another customer already
// holds the value, or "" when both are free. exclude skips the customer being
// updated. Uniqueness is checked here explicitly rather than by inspecting
// driver duplicate-key errors, so the colliding field can be named.
func customerConflict(cpf, email string, exclude *uuid.UUID) (string, error) {
	for _, check := range []struct {
		column, value, field string
	}{
		{"cpf", cpf, "CPF"},
		{"email", email, "Email"},
	} {
		q := config.DB.Model(&models.Customer{}).Where(check.column+" = ?", check.value)
		if exclude != nil {
			q = q.Where("id <> ?", *exclude)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count > 0 {
			return check.field, nil
		}
	}
	return "", nil
}

func childRows(customerID uuid.UUID, children []ChildInput) []models.Child {
	rows := make([]models.Child, 0, len(children))
	for i, child := range children {
		rows = append(rows, models.Child{
			ID:         uuid.New(),
			CustomerID: customerID,
			Position:   i,
			Name:       child.Name,
			DOB:        child.DOB,
		})
	}
	return rows
}

func orderedChildren(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// CreateCustomer registers a new customer.
func CreateCustomer(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	field, err := customerConflict(input.CPF, input.Email, nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if field != "" {
		utils.RespondWithError(c, http.StatusConflict, "Erro: "+field+" já cadastrado.")
		return
	}

	customer := models.Customer{
		ID:            uuid.New(),
		FullName:      input.FullName,
		PreferredName: input.PreferredName,
		CPF:           input.CPF,
		DOB:           input.DOB,
		Address:       input.Address,
		CEP:           input.CEP,
		Phone:         input.Phone,
		Email:         input.Email,
		Instagram:     input.Instagram,
		HusbandName:   input.HusbandName,
		HusbandDOB:    input.HusbandDOB,
	}
	customer.Children = childRows(customer.ID, input.Children)

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers lists customers, optionally keeping only families with a
// birthday in the given month (the customer's own, the husband's, or any
// child's). Filtered results come back alphabetically; unfiltered ones
// newest first.
func GetCustomers(c *gin.Context) {
	q := config.DB.Model(&models.Customer{}).Preload("Children", orderedChildren)

	if seg, ok := utils.MonthSegment(c.Query("month")); ok {
		q = q.Where(
			`substr(dob, 6, 2) = @m OR substr(husband_dob, 6, 2) = @m OR EXISTS (
				SELECT 1 FROM children
				WHERE children.customer_id = customers.id AND substr(children.dob, 6, 2) = @m
			)`,
			map[string]interface{}{"m": seg},
		).Order("full_name ASC")
	} else {
		q = q.Order("created_at DESC")
	}

	var customers []models.Customer
	if err := q.Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	for i := range customers {
		if customers[i].Children == nil {
			customers[i].Children = []models.Child{}
		}
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID.
func GetCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var customer models.Customer
	if err := config.DB.Preload("Children", orderedChildren).
		First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if customer.Children == nil {
		customer.Children = []models.Child{}
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer replaces all mutable fields of an existing customer,
// including the whole children list.
func UpdateCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	field, err := customerConflict(input.CPF, input.Email, &customerUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if field != "" {
		utils.RespondWithError(c, http.StatusConflict, "Erro: "+field+" já pertence a outro cliente.")
		return
	}

	customer.FullName = input.FullName
	customer.PreferredName = input.PreferredName
	customer.CPF = input.CPF
	customer.DOB = input.DOB
	customer.Address = input.Address
	customer.CEP = input.CEP
	customer.Phone = input.Phone
	customer.Email = input.Email
	customer.Instagram = input.Instagram
	customer.HusbandName = input.HusbandName
	customer.HusbandDOB = input.HusbandDOB
	customer.Children = nil

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Child{}).Error; err != nil {
			return err
		}
		if err := tx.Save(&customer).Error; err != nil {
			return err
		}
		rows := childRows(customer.ID, input.Children)
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		customer.Children = rows
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	if customer.Children == nil {
		customer.Children = []models.Child{}
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer and their children entries. Existing
// schedules that reference the customer are left untouched.
func DeleteCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var deleted bool
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Customer{}, "id = ?", customerUUID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("customer_id = ?", customerUUID).Delete(&models.Child{}).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.Status(http.StatusNoContent)
}
