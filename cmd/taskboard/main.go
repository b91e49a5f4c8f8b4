package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

var (
	configFile  string
	dataDirFlag string
	backendFlag string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "taskboard",
		Short:         "Taskboard - local kanban task and project tracker",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "datadir", "", "data directory for persisted state")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "state backend (file, sqlite, memory)")

	rootCmd.AddCommand(taskCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(authCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
