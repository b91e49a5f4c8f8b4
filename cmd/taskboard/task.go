package main

import (
	"fmt"

	"taskboard/internal/domain/errors"
	"taskboard/internal/domain/models"

	"github.com/spf13/cobra"
)

var allowedTaskStatuses = map[models.TaskStatus]bool{
	models.StatusTodo:       true,
	models.StatusInProgress: true,
	models.StatusDone:       true,
}

func taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage dashboard tasks",
	}

	cmd.AddCommand(taskAddCmd())
	cmd.AddCommand(taskListCmd())
	cmd.AddCommand(taskStatusCmd())
	cmd.AddCommand(taskStatsCmd())

	return cmd
}

func taskAddCmd() *cobra.Command {
	var form models.TaskFormData
	var priority string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			form.Priority = models.TaskPriority(priority)
			if err := validateForm(form); err != nil {
				return err
			}

			appl, err := newApplication()
			if err != nil {
				return err
			}

			task := appl.tasks.AddTask(form)
			fmt.Printf("Created task %s (%s)\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&form.Title, "title", "t", "", "task title")
	cmd.Flags().StringVarP(&form.Description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(models.PriorityMedium), "priority (HIGH, MEDIUM, LOW)")
	cmd.Flags().StringVar(&form.DueDate, "due", "", "due date (YYYY-MM-DD)")

	return cmd
}

func taskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List dashboard tasks in insertion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			appl, err := newApplication()
			if err != nil {
				return err
			}

			tasks := appl.tasks.Tasks()
			if len(tasks) == 0 {
				fmt.Println("No tasks")
				return nil
			}
			for _, task := range tasks {
				fmt.Printf("%s  %-11s  %-6s  due %-10s  %s\n",
					task.ID, task.Status, task.Priority, task.DueDate, task.Title)
			}
			return nil
		},
	}
}

func taskStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [taskID] [status]",
		Short: "Move a task to another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := models.TaskStatus(args[1])
			if !allowedTaskStatuses[status] {
				return errors.ErrInvalidStatus
			}

			appl, err := newApplication()
			if err != nil {
				return err
			}

			// An unknown id is a no-op by design; the store stays silent
			// and so does the CLI.
			appl.tasks.UpdateTaskStatus(args[0], status)
			return nil
		},
	}
}

func taskStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			appl, err := newApplication()
			if err != nil {
				return err
			}

			stats := appl.tasks.GetStatistics()
			fmt.Printf("Total:       %d\n", stats.Total)
			fmt.Printf("In progress: %d\n", stats.InProgress)
			fmt.Printf("Completed:   %d\n", stats.Completed)
			fmt.Printf("Completion:  %d%%\n", stats.Completion)
			return nil
		},
	}
}
