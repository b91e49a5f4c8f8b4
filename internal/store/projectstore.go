package store

import (
	"time"

	"taskboard/internal/domain/models"

	"github.com/google/uuid"
)

// ProjectStore owns the project collection and the separate
// project-scoped task collection.
type ProjectStore struct {
	states StateStore
	state  projectState
}

type projectState struct {
	Projects          []models.Project     `json:"projects"`
	Tasks             []models.ProjectTask `json:"tasks"`
	SelectedProjectID string               `json:"selectedProjectId,omitempty"`
}

func NewProjectStore(states StateStore) (*ProjectStore, error) {
	s := &ProjectStore{states: states}
	if err := loadState(states, projectStateKey, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

// AddProject creates a project owned by the given user snapshot. The
// snapshot is taken at call time; the stored UserID never changes if the
// user later logs out. Without an authenticated user the call is a
// silent no-op and returns nil.
func (s *ProjectStore) AddProject(form models.ProjectFormData, owner *models.User) *models.Project {
	if owner == nil {
		return nil
	}

	project := models.Project{
		ID:          uuid.New().String(),
		Name:        form.Name,
		Description: form.Description,
		Color:       form.Color,
		CreatedAt:   time.Now(),
		UserID:      owner.ID,
	}
	s.state.Projects = append(s.state.Projects, project)
	s.persist()
	return &project
}

// AddTask appends a project-scoped task. The project reference is not
// checked; a task may point at a project that does not exist.
func (s *ProjectStore) AddTask(form models.ProjectTaskFormData) models.ProjectTask {
	task := models.ProjectTask{
		ID:          uuid.New().String(),
		Title:       form.Title,
		Description: form.Description,
		Status:      form.Status,
		ProjectID:   form.ProjectID,
		CreatedAt:   time.Now(),
	}
	s.state.Tasks = append(s.state.Tasks, task)
	s.persist()
	return task
}

// UpdateTaskStatus replaces the status of the task with the given id; an
// unknown id is silently ignored.
func (s *ProjectStore) UpdateTaskStatus(taskID string, status models.ProjectTaskStatus) {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == taskID {
			s.state.Tasks[i].Status = status
			s.persist()
			return
		}
	}
}

// GetProjectTasks returns the tasks referencing projectID, preserving
// relative order.
func (s *ProjectStore) GetProjectTasks(projectID string) []models.ProjectTask {
	tasks := make([]models.ProjectTask, 0)
	for _, task := range s.state.Tasks {
		if task.ProjectID == projectID {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// GetProjectStats counts the project's tasks by status. Progress stays
// unrounded so callers keep the fractional precision.
func (s *ProjectStore) GetProjectStats(projectID string) models.ProjectStats {
	tasks := s.GetProjectTasks(projectID)

	var stats models.ProjectStats
	for _, task := range tasks {
		switch task.Status {
		case models.ProjectStatusTodo:
			stats.Todo++
		case models.ProjectStatusInProgress:
			stats.InProgress++
		case models.ProjectStatusDone:
			stats.Done++
		}
	}
	if total := len(tasks); total > 0 {
		stats.Progress = float64(stats.Done) / float64(total) * 100
	}
	return stats
}

// SelectProject records the selection unconditionally; the id is not
// validated against the project collection.
func (s *ProjectStore) SelectProject(projectID string) {
	s.state.SelectedProjectID = projectID
	s.persist()
}

func (s *ProjectStore) SelectedProjectID() string {
	return s.state.SelectedProjectID
}

// Projects returns the project collection in insertion order.
func (s *ProjectStore) Projects() []models.Project {
	projects := make([]models.Project, len(s.state.Projects))
	copy(projects, s.state.Projects)
	return projects
}

func (s *ProjectStore) persist() {
	saveState(s.states, projectStateKey, s.state)
}
