package store

import (
	"testing"

	"taskboard/internal/domain/models"
	inmemory "taskboard/repository/inmemory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProjectStore(t *testing.T) *ProjectStore {
	t.Helper()

	s, err := NewProjectStore(inmemory.NewStorage())
	require.NoError(t, err)
	return s
}

func projectTaskForm(title, projectID string, status models.ProjectTaskStatus) models.ProjectTaskFormData {
	return models.ProjectTaskFormData{
		Title:     title,
		Status:    status,
		ProjectID: projectID,
	}
}

func TestProjectStoreAddProject(t *testing.T) {
	owner := &models.User{ID: "user-1", Username: "alice", Email: "a@x.com"}

	tests := []struct {
		name  string
		owner *models.User
		want  struct {
			created bool
			userID  string
		}
	}{
		{
			name:  "with authenticated user",
			owner: owner,
			want: struct {
				created bool
				userID  string
			}{
				created: true,
				userID:  "user-1",
			},
		},
		{
			name:  "without user is a silent no-op",
			owner: nil,
			want: struct {
				created bool
				userID  string
			}{
				created: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestProjectStore(t)

			project := store.AddProject(models.ProjectFormData{
				Name:        "P1",
				Description: "desc",
				Color:       "blue",
			}, tt.owner)

			if !tt.want.created {
				assert.Nil(t, project)
				assert.Empty(t, store.Projects())
				return
			}
			require.NotNil(t, project)
			assert.NotEmpty(t, project.ID)
			assert.Equal(t, tt.want.userID, project.UserID)
			assert.False(t, project.CreatedAt.IsZero())
			require.Len(t, store.Projects(), 1)
		})
	}
}

func TestProjectStoreAddTaskNoReferenceCheck(t *testing.T) {
	store := newTestProjectStore(t)

	// The project id is not validated; a dangling reference is allowed.
	task := store.AddTask(projectTaskForm("orphan", "no-such-project", models.ProjectStatusTodo))

	assert.NotEmpty(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Len(t, store.GetProjectTasks("no-such-project"), 1)
}

func TestProjectStoreGetProjectTasks(t *testing.T) {
	store := newTestProjectStore(t)

	first := store.AddTask(projectTaskForm("a", "p1", models.ProjectStatusTodo))
	store.AddTask(projectTaskForm("b", "p2", models.ProjectStatusTodo))
	second := store.AddTask(projectTaskForm("c", "p1", models.ProjectStatusDone))

	tasks := store.GetProjectTasks("p1")

	require.Len(t, tasks, 2)
	assert.Equal(t, first.ID, tasks[0].ID, "filter keeps relative order")
	assert.Equal(t, second.ID, tasks[1].ID)
	assert.Empty(t, store.GetProjectTasks("p3"))
}

func TestProjectStoreUpdateTaskStatus(t *testing.T) {
	tests := []struct {
		name   string
		taskID func(created models.ProjectTask) string
		want   models.ProjectTaskStatus
	}{
		{
			name:   "existing task",
			taskID: func(created models.ProjectTask) string { return created.ID },
			want:   models.ProjectStatusDone,
		},
		{
			name:   "unknown id is a silent no-op",
			taskID: func(models.ProjectTask) string { return "nonexistent" },
			want:   models.ProjectStatusTodo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestProjectStore(t)
			created := store.AddTask(projectTaskForm("task", "p1", models.ProjectStatusTodo))
			before := store.GetProjectTasks("p1")

			store.UpdateTaskStatus(tt.taskID(created), models.ProjectStatusDone)

			tasks := store.GetProjectTasks("p1")
			require.Len(t, tasks, 1)
			assert.Equal(t, tt.want, tasks[0].Status)
			if tt.want == models.ProjectStatusTodo {
				assert.Equal(t, before, tasks, "collection must be unchanged after a miss")
			}
		})
	}
}

func TestProjectStoreGetProjectStats(t *testing.T) {
	tests := []struct {
		name     string
		statuses []models.ProjectTaskStatus
		want     models.ProjectStats
		progress float64
	}{
		{
			name:     "no tasks",
			statuses: nil,
			want:     models.ProjectStats{},
		},
		{
			name: "counts by status",
			statuses: []models.ProjectTaskStatus{
				models.ProjectStatusTodo,
				models.ProjectStatusInProgress,
				models.ProjectStatusDone,
				models.ProjectStatusDone,
			},
			want:     models.ProjectStats{Todo: 1, InProgress: 1, Done: 2},
			progress: 50,
		},
		{
			name: "progress stays unrounded",
			statuses: []models.ProjectTaskStatus{
				models.ProjectStatusDone,
				models.ProjectStatusTodo,
				models.ProjectStatusTodo,
			},
			want:     models.ProjectStats{Todo: 2, Done: 1},
			progress: 100.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestProjectStore(t)
			for _, status := range tt.statuses {
				store.AddTask(projectTaskForm("task", "p1", status))
			}

			stats := store.GetProjectStats("p1")

			assert.Equal(t, tt.want.Todo, stats.Todo)
			assert.Equal(t, tt.want.InProgress, stats.InProgress)
			assert.Equal(t, tt.want.Done, stats.Done)
			assert.InDelta(t, tt.progress, stats.Progress, 1e-9)
		})
	}
}

func TestProjectStoreSelectProject(t *testing.T) {
	store := newTestProjectStore(t)

	assert.Empty(t, store.SelectedProjectID())

	// Selection accepts any id, including one that does not exist.
	store.SelectProject("ghost-project")
	assert.Equal(t, "ghost-project", store.SelectedProjectID())

	store.SelectProject("another")
	assert.Equal(t, "another", store.SelectedProjectID())
}

func TestProjectStoreOwnershipIsSnapshot(t *testing.T) {
	store := newTestProjectStore(t)
	owner := &models.User{ID: "user-1", Username: "alice", Email: "a@x.com"}

	project := store.AddProject(models.ProjectFormData{Name: "P1", Color: "red"}, owner)
	require.NotNil(t, project)

	// Mutating the caller's user after creation must not leak into the
	// stored project.
	owner.ID = "someone-else"

	assert.Equal(t, "user-1", store.Projects()[0].UserID)
}

func TestProjectStoreRehydration(t *testing.T) {
	states := inmemory.NewStorage()
	owner := &models.User{ID: "user-1"}

	store, err := NewProjectStore(states)
	require.NoError(t, err)
	project := store.AddProject(models.ProjectFormData{Name: "P1", Color: "blue"}, owner)
	require.NotNil(t, project)
	store.AddTask(projectTaskForm("task", project.ID, models.ProjectStatusDone))
	store.SelectProject(project.ID)

	reloaded, err := NewProjectStore(states)
	require.NoError(t, err)

	require.Len(t, reloaded.Projects(), 1)
	assert.Equal(t, project.ID, reloaded.SelectedProjectID())
	stats := reloaded.GetProjectStats(project.ID)
	assert.Equal(t, 1, stats.Done)
	assert.InDelta(t, 100, stats.Progress, 1e-9)
}
