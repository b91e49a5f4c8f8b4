package models

import "time"

// TaskStatus is the dashboard task enumeration. ProjectTaskStatus below
// covers the same states with different spelling; the two sets are kept
// separate on purpose because they are serialized independently and were
// never unified in the source data.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "HIGH"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityLow    TaskPriority = "LOW"
)

type ProjectTaskStatus string

const (
	ProjectStatusTodo       ProjectTaskStatus = "todo"
	ProjectStatusInProgress ProjectTaskStatus = "inProgress"
	ProjectStatusDone       ProjectTaskStatus = "done"
)

type AuthProvider string

const (
	ProviderEmail  AuthProvider = "email"
	ProviderGoogle AuthProvider = "google"
)

// Task is a dashboard (kanban) task.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	DueDate     string       `json:"dueDate"`
	CreatedBy   string       `json:"createdBy"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// ProjectTask is a task inside a project's detail view. ProjectID is not
// referentially enforced against the project collection.
type ProjectTask struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      ProjectTaskStatus `json:"status"`
	ProjectID   string            `json:"projectId"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      string    `json:"userId"`
}

type User struct {
	ID       string       `json:"id"`
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Provider AuthProvider `json:"provider,omitempty"`
	Avatar   string       `json:"avatar,omitempty"`
}

// Form payloads arrive at the stores already validated; validation runs
// at the surface layer against the tags below.

type TaskFormData struct {
	Title       string       `json:"title" validate:"required,min=1,max=100"`
	Description string       `json:"description" validate:"omitempty,max=500"`
	Priority    TaskPriority `json:"priority" validate:"required,oneof=HIGH MEDIUM LOW"`
	DueDate     string       `json:"dueDate" validate:"required"`
}

type ProjectFormData struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Color       string `json:"color" validate:"required,max=30"`
}

type ProjectTaskFormData struct {
	Title       string            `json:"title" validate:"required,min=1,max=100"`
	Description string            `json:"description" validate:"omitempty,max=500"`
	Status      ProjectTaskStatus `json:"status" validate:"omitempty,oneof=todo inProgress done"`
	ProjectID   string            `json:"projectId" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// ProfileUpdate carries a partial profile edit; empty fields are left
// untouched.
type ProfileUpdate struct {
	Username string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

// TaskStatistics is the dashboard aggregate. Completion is rounded to a
// whole percentage.
type TaskStatistics struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Completion int `json:"completion"`
}

// ProjectStats is the per-project aggregate. Progress is intentionally
// unrounded; rounding happens at display time.
type ProjectStats struct {
	Todo       int     `json:"todo"`
	InProgress int     `json:"inProgress"`
	Done       int     `json:"done"`
	Progress   float64 `json:"progress"`
}
