package forms

import (
	"strconv"

	"fotostudio-backend/models"
)

// TaskFormData holds the editable fields of the post-production task modal.
type TaskFormData struct {
	Cliente      string
	Filho        string
	Servico      string
	DataEnsaio   string
	DataEntrega  string
	Status       string
	ArmazenadoHD string
	MinFotos     string
	Observacao   string
}

// TaskForm is the edit buffer of the task modal.
type TaskForm struct {
	Mode  Mode
	ID    string
	Data  TaskFormData
	Error string
}

func NewTaskForm() TaskForm {
	return TaskForm{Mode: ModeClosed}
}

// OpenNew resets the buffer: first service preselected, status not started.
func (f TaskForm) OpenNew() TaskForm {
	return TaskForm{
		Mode: ModeNew,
		Data: TaskFormData{
			Servico: models.TaskServiceTypes[0],
			Status:  models.TaskStatusNotStarted,
		},
	}
}

// OpenEdit snapshots an existing record, reformatting both stored timestamps
// into the calendar-date strings the date inputs edit.
func (f TaskForm) OpenEdit(task models.Task) TaskForm {
	data := TaskFormData{
		Cliente:      task.Cliente,
		Filho:        task.Filho,
		Servico:      task.Servico,
		DataEnsaio:   task.DataEnsaio.UTC().Format("2006-01-02"),
		DataEntrega:  task.DataEntrega.UTC().Format("2006-01-02"),
		Status:       task.Status,
		ArmazenadoHD: task.ArmazenadoHD,
		Observacao:   task.Observacao,
	}
	if task.MinFotos != nil {
		data.MinFotos = strconv.Itoa(*task.MinFotos)
	}
	return TaskForm{Mode: ModeEditing, ID: task.ID.String(), Data: data}
}

func (f TaskForm) Close() TaskForm {
	return TaskForm{Mode: ModeClosed}
}

func (f TaskForm) IsUpdate() bool { return f.ID != "" }

func (f TaskForm) SubmitSucceeded() (TaskForm, Effect) {
	return f.Close(), EffectRefetch
}

func (f TaskForm) SubmitFailed(message string) (TaskForm, Effect) {
	f.Error = message
	return f, EffectNone
}
