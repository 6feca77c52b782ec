package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"fotostudio-backend/config"
	"fotostudio-backend/models"
	"fotostudio-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter wires the real router against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// A second connection would see a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Child{},
		&models.Scheduling{},
		&models.Task{},
	))

	config.DB = db
	return routes.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func customerPayload(fullName, cpf, email string) map[string]interface{} {
	return map[string]interface{}{
		"fullName": fullName,
		"cpf":      cpf,
		"dob":      "1990-07-15",
		"address":  "Rua das Flores, 123",
		"cep":      "01000-000",
		"phone":    "11999990000",
		"email":    email,
	}
}

func schedulePayload(customerName, sessionType, date string) map[string]interface{} {
	return map[string]interface{}{
		"customerName": customerName,
		"sessionType":  sessionType,
		"date":         date,
	}
}

func taskPayload(cliente, servico, dataEnsaio, dataEntrega string) map[string]interface{} {
	return map[string]interface{}{
		"cliente":     cliente,
		"servico":     servico,
		"dataEnsaio":  dataEnsaio,
		"dataEntrega": dataEntrega,
	}
}
