package main

import (
	"fmt"

	"taskboard/internal/domain/errors"
	"taskboard/internal/domain/models"

	"github.com/spf13/cobra"
)

var allowedProjectTaskStatuses = map[models.ProjectTaskStatus]bool{
	models.ProjectStatusTodo:       true,
	models.ProjectStatusInProgress: true,
	models.ProjectStatusDone:       true,
}

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects and project tasks",
	}

	cmd.AddCommand(projectAddCmd())
	cmd.AddCommand(projectListCmd())
	cmd.AddCommand(projectSelectCmd())
	cmd.AddCommand(projectTaskAddCmd())
	cmd.AddCommand(projectTasksCmd())
	cmd.AddCommand(projectTaskStatusCmd())
	cmd.AddCommand(projectStatsCmd())

	return cmd
}

func projectAddCmd() *cobra.Command {
	var form models.ProjectFormData

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project owned by the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateForm(form); err != nil {
				return err
			}

			appl, err := newApplication()
			if err != nil {
				return err
			}

			// Ownership is a snapshot of the current user at creation
			// time; logging out later does not change stored projects.
			project := appl.projects.AddProject(form, appl.auth.CurrentUser())
			if project == nil {
				fmt.Println("Not logged in; no project created")
				return nil
			}
			fmt.Printf("Created project %s (%s)\n", project.ID, project.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&form.Name, "name", "n", "", "project name")
	cmd.Flags().StringVarP(&form.Description, "description", "d", "", "project description")
	cmd.Flags().StringVar(&form.Color, "color", "blue", "project color tag")

	return cmd
}

func projectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			appl, err := newApplication()
			if err != nil {
				return err
			}

			projects := appl.projects.Projects()
			if len(projects) == 0 {
				fmt.Println("No projects")
				return nil
			}
			selected := appl.projects.SelectedProjectID()
			for _, project := range projects {
				marker := " "
				if project.ID == selected {
					marker = "*"
				}
				fmt.Printf("%s %s  %-8s  %s\n", marker, project.ID, project.Color, project.Name)
			}
			return nil
		},
	}
}

func projectSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select [projectID]",
		Short: "Select the active project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appl, err := newApplication()
			if err != nil {
				return err
			}

			// Selection is unconditional; the id is not checked against
			// the project collection.
			appl.projects.SelectProject(args[0])
			return nil
		},
	}
}

func projectTaskAddCmd() *cobra.Command {
	var form models.ProjectTaskFormData
	var status string

	cmd := &cobra.Command{
		Use:   "add-task",
		Short: "Add a task to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			appl, err := newApplication()
			if err != nil {
				return err
			}

			form.Status = models.ProjectTaskStatus(status)
			if form.ProjectID == "" {
				form.ProjectID = appl.projects.SelectedProjectID()
			}
			if err := validateForm(form); err != nil {
				return err
			}

			task := appl.projects.AddTask(form)
			fmt.Printf("Created task %s (%s)\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&form.Title, "title", "t", "", "task title")
	cmd.Flags().StringVarP(&form.Description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&status, "status", "s", string(models.ProjectStatusTodo), "status (todo, inProgress, done)")
	cmd.Flags().StringVarP(&form.ProjectID, "project", "p", "", "project id (defaults to the selected project)")

	return cmd
}

func projectTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks [projectID]",
		Short: "List a project's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appl, err := newApplication()
			if err != nil {
				return err
			}

			tasks := appl.projects.GetProjectTasks(args[0])
			if len(tasks) == 0 {
				fmt.Println("No tasks")
				return nil
			}
			for _, task := range tasks {
				fmt.Printf("%s  %-10s  %s\n", task.ID, task.Status, task.Title)
			}
			return nil
		},
	}
}

func projectTaskStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "task-status [taskID] [status]",
		Short: "Move a project task to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := models.ProjectTaskStatus(args[1])
			if !allowedProjectTaskStatuses[status] {
				return errors.ErrInvalidStatus
			}

			appl, err := newApplication()
			if err != nil {
				return err
			}

			appl.projects.UpdateTaskStatus(args[0], status)
			return nil
		},
	}
}

func projectStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [projectID]",
		Short: "Show a project's task statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appl, err := newApplication()
			if err != nil {
				return err
			}

			stats := appl.projects.GetProjectStats(args[0])
			fmt.Printf("Todo:        %d\n", stats.Todo)
			fmt.Printf("In progress: %d\n", stats.InProgress)
			fmt.Printf("Done:        %d\n", stats.Done)
			// Progress is stored unrounded; round only here, at display
			// time.
			fmt.Printf("Progress:    %.0f%%\n", stats.Progress)
			return nil
		},
	}
}
