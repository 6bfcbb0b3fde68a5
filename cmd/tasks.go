// file: cmd/tasks.go
// version: 1.1.0
// guid: 3a4b5c6d-7e8f-9a0b-1c2d-3e4f5a6b7c8d

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeffjose/audtag/internal/config"
	"github.com/jeffjose/audtag/internal/scanner"
	"github.com/jeffjose/audtag/internal/tags"
	"github.com/jeffjose/audtag/internal/tasks"
)

var taskName string
var taskDryRun bool

// tasksCmd represents the tasks command
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks configured in audtag.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := tasks.LoadConfig(config.AppConfig.TasksFile)
		if err != nil {
			return err
		}
		if len(cfg.Tasks) == 0 {
			fmt.Println("No tasks configured")
			fmt.Println("Create ~/audtag.yaml or ./audtag.yaml to define tasks")
			return nil
		}
		for _, t := range cfg.Tasks {
			fmt.Printf("%-20s %-8s %s\n", t.Name, t.Type, t.Description)
		}
		return nil
	},
}

var moveCmd = newTaskCommand("move", "Move tagged files using a configured task")
var copyCmd = newTaskCommand("copy", "Copy tagged files using a configured task")
var renameCmd = newTaskCommand("rename", "Rename files in place using a configured task")

// newTaskCommand builds a command that runs the named (or only) configured
// task of the given type over the expanded file arguments.
func newTaskCommand(taskType, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   taskType + " [paths...]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := tasks.LoadConfig(config.AppConfig.TasksFile)
			if err != nil {
				return err
			}

			task, err := resolveTask(cfg, taskType, taskName)
			if err != nil {
				return err
			}

			files, err := scanner.Expand(args, config.AppConfig.Workers)
			if err != nil {
				return err
			}

			runner := tasks.NewRunner(tags.NewFileReader())
			runner.DryRun = taskDryRun
			return runner.Execute(task, files)
		},
	}
	cmd.Flags().StringVar(&taskName, "task", "", "task name from audtag.yaml (defaults to the only task of this type)")
	cmd.Flags().BoolVarP(&taskDryRun, "dry-run", "n", false, "show what would happen without changing anything")
	return cmd
}

// resolveTask picks a configured task: by name when given, otherwise the
// single task of the requested type.
func resolveTask(cfg *tasks.Config, taskType, name string) (tasks.Task, error) {
	if name != "" {
		task, ok := cfg.Find(name)
		if !ok {
			return tasks.Task{}, fmt.Errorf("no task named %q in config", name)
		}
		if task.Type != taskType {
			return tasks.Task{}, fmt.Errorf("task %q has type %q, not %q", name, task.Type, taskType)
		}
		return task, nil
	}

	var matches []tasks.Task
	for _, t := range cfg.Tasks {
		if t.Type == taskType {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return tasks.Task{}, fmt.Errorf("no %s task configured in audtag.yaml", taskType)
	case 1:
		return matches[0], nil
	default:
		return tasks.Task{}, fmt.Errorf("multiple %s tasks configured, pick one with --task", taskType)
	}
}
