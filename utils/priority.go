package utils

import (
	"time"

	"fotostudio-backend/models"
)

// Priority is the derived urgency classification of a post-production task.
// It is computed on every read and never persisted: two clients looking at
// the same task on different days legitimately see different priorities.
type Priority struct {
	Label string `json:"label"`
	Color string `json:"color"`
	rank  int
}

var (
	PriorityUrgent = Priority{Label: "Urgente", Color: "#e63946", rank: 3}
	PriorityMedium = Priority{Label: "Média", Color: "#ffc300", rank: 2}
	PriorityLow    = Priority{Label: "Baixa", Color: "#457b9d", rank: 1}
	PriorityNormal = Priority{Label: "Normal", Color: "#6c757d", rank: 0}
)

// MoreUrgentThan orders tiers Urgente > Média > Baixa > Normal.
func (p Priority) MoreUrgentThan(o Priority) bool { return p.rank > o.rank }

// TaskPriority classifies a task by the calendar days left until delivery.
// Finished tasks are always Normal, whatever their dates. An unfinished task
// whose delivery date already passed is Urgente.
func TaskPriority(status string, delivery, today time.Time) Priority {
	if status == models.TaskStatusFinished {
		return PriorityNormal
	}

	// Compare UTC calendar dates; stored delivery dates are UTC midnights.
	diffDays := DaysBetween(today.UTC(), delivery.UTC())
	switch {
	case diffDays < 0:
		return PriorityUrgent
	case diffDays <= 2:
		return PriorityUrgent
	case diffDays <= 4:
		return PriorityMedium
	case diffDays <= 6:
		return PriorityLow
	default:
		return PriorityNormal
	}
}
