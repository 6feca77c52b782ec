package forms

import (
	"testing"
	"time"

	"fotostudio-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTaskOpenNewDefaults(t *testing.T) {
	f := NewTaskForm().OpenNew()

	assert.Equal(t, ModeNew, f.Mode)
	assert.Equal(t, models.TaskServiceTypes[0], f.Data.Servico)
	assert.Equal(t, models.TaskStatusNotStarted, f.Data.Status)
	assert.Empty(t, f.Data.DataEntrega)
}

func TestTaskOpenEditReformatsDates(t *testing.T) {
	minFotos := 30
	task := models.Task{
		ID:          uuid.New(),
		Cliente:     "Maria Souza",
		Filho:       "Ana",
		Servico:     "Newborn",
		DataEnsaio:  time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		DataEntrega: time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
		Status:      models.TaskStatusInProgress,
		MinFotos:    &minFotos,
	}

	f := NewTaskForm().OpenEdit(task)

	assert.Equal(t, ModeEditing, f.Mode)
	assert.True(t, f.IsUpdate())
	assert.Equal(t, "2024-06-03", f.Data.DataEnsaio)
	assert.Equal(t, "2024-06-20", f.Data.DataEntrega)
	assert.Equal(t, "30", f.Data.MinFotos)
}

func TestTaskSubmitOutcomes(t *testing.T) {
	f := NewTaskForm().OpenNew()

	failed, effect := f.SubmitFailed("Invalid delivery date")
	assert.Equal(t, ModeNew, failed.Mode)
	assert.Equal(t, "Invalid delivery date", failed.Error)
	assert.Equal(t, EffectNone, effect)

	closed, effect := failed.SubmitSucceeded()
	assert.Equal(t, ModeClosed, closed.Mode)
	assert.Equal(t, EffectRefetch, effect)
}
