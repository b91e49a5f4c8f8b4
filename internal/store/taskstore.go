package store

import (
	"math"
	"time"

	"taskboard/internal/domain/models"

	"github.com/google/uuid"
)

// The dashboard view has no real multi-user attribution; every task is
// stamped with this placeholder identity.
const placeholderCreator = "current-user"

// TaskStore owns the flat task collection behind the default dashboard
// view.
type TaskStore struct {
	states StateStore
	state  taskState
}

type taskState struct {
	Tasks             []models.Task `json:"tasks"`
	IsCreateModalOpen bool          `json:"isCreateModalOpen"`
}

func NewTaskStore(states StateStore) (*TaskStore, error) {
	s := &TaskStore{states: states}
	if err := loadState(states, taskStateKey, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *TaskStore) OpenCreateModal() {
	s.state.IsCreateModalOpen = true
	s.persist()
}

func (s *TaskStore) CloseCreateModal() {
	s.state.IsCreateModalOpen = false
	s.persist()
}

func (s *TaskStore) IsCreateModalOpen() bool {
	return s.state.IsCreateModalOpen
}

// AddTask appends a new task built from an already-validated form
// payload. Status is forced to TODO regardless of input. Always
// succeeds; returns a copy of the created task.
func (s *TaskStore) AddTask(form models.TaskFormData) models.Task {
	now := time.Now()
	task := models.Task{
		ID:          uuid.New().String(),
		Title:       form.Title,
		Description: form.Description,
		Priority:    form.Priority,
		Status:      models.StatusTodo,
		DueDate:     form.DueDate,
		CreatedBy:   placeholderCreator,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.state.Tasks = append(s.state.Tasks, task)
	s.persist()
	return task
}

// UpdateTaskStatus replaces the status of the task with the given id and
// bumps UpdatedAt. An unknown id is silently ignored, same as the
// dashboard UI.
func (s *TaskStore) UpdateTaskStatus(taskID string, status models.TaskStatus) {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == taskID {
			s.state.Tasks[i].Status = status
			s.state.Tasks[i].UpdatedAt = time.Now()
			s.persist()
			return
		}
	}
}

// Tasks returns the collection in insertion order.
func (s *TaskStore) Tasks() []models.Task {
	tasks := make([]models.Task, len(s.state.Tasks))
	copy(tasks, s.state.Tasks)
	return tasks
}

// GetStatistics recomputes the dashboard aggregate from the current
// collection on every call; nothing is cached.
func (s *TaskStore) GetStatistics() models.TaskStatistics {
	stats := models.TaskStatistics{Total: len(s.state.Tasks)}
	for _, task := range s.state.Tasks {
		switch task.Status {
		case models.StatusDone:
			stats.Completed++
		case models.StatusInProgress:
			stats.InProgress++
		}
	}
	if stats.Total > 0 {
		stats.Completion = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}

func (s *TaskStore) persist() {
	saveState(s.states, taskStateKey, s.state)
}
