// file: internal/tasks/tasks.go
// version: 1.3.0
// guid: 9c0d1e2f-3a4b-5c6d-7e8f-9a0b1c2d3e4f

// Package tasks runs post-tagging move, copy, and rename operations using
// naming patterns declared in audtag.yaml.
package tasks

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jeffjose/audtag/internal/fileops"
	"github.com/jeffjose/audtag/internal/tags"
)

// Task is one configured operation.
type Task struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"` // move, copy, or rename
	Description   string `yaml:"description"`
	Destination   string `yaml:"destination"`
	NamingPattern string `yaml:"naming_pattern"`
}

// Config is the audtag.yaml task section.
type Config struct {
	Tasks []Task `yaml:"tasks"`
}

// LoadConfig reads task definitions. Search order: $AUDTAG_CONFIG_HOME (or
// $HOME)/audtag.yaml, ./audtag.yaml, ./tasks.yaml. A missing file is not an
// error; it just means no tasks are configured.
func LoadConfig(explicitPath string) (*Config, error) {
	var candidates []string
	if explicitPath != "" {
		candidates = []string{explicitPath}
	} else {
		home := os.Getenv("AUDTAG_CONFIG_HOME")
		if home == "" {
			home, _ = os.UserHomeDir()
		}
		if home != "" {
			candidates = append(candidates, filepath.Join(home, "audtag.yaml"))
		}
		candidates = append(candidates, "audtag.yaml", "tasks.yaml")
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
		return &cfg, nil
	}
	return &Config{}, nil
}

// Find returns the task with the given name.
func (c *Config) Find(name string) (Task, bool) {
	for _, t := range c.Tasks {
		if t.Name == name {
			return t, true
		}
	}
	return Task{}, false
}

// errCancelled aborts the whole run when the user answers "quit" at an
// overwrite prompt.
var errCancelled = errors.New("operation cancelled")

// Runner executes tasks over file lists.
type Runner struct {
	Reader tags.Reader
	DryRun bool

	// Prompt decides what to do when a destination exists: "yes", "no",
	// "all", or "quit". Defaults to an interactive stdin prompt.
	Prompt func(src, dst string) string

	overwriteAll bool
}

// NewRunner returns a Runner reading pattern variables through reader.
func NewRunner(reader tags.Reader) *Runner {
	r := &Runner{Reader: reader}
	r.Prompt = r.stdinPrompt
	return r
}

// Execute runs task over files. Per-file failures are reported and counted
// but do not stop the remaining files; a "quit" prompt answer does.
func (r *Runner) Execute(task Task, files []string) error {
	if len(files) == 0 {
		fmt.Println("No files to process")
		return nil
	}

	succeeded := 0
	for _, f := range files {
		ok, err := r.executeOne(task, f)
		if err != nil {
			if errors.Is(err, errCancelled) {
				return err
			}
			fmt.Printf("✗ %s: %v\n", filepath.Base(f), err)
			continue
		}
		if ok {
			succeeded++
		}
	}
	fmt.Printf("%s: %d/%d files processed\n", task.Name, succeeded, len(files))
	return nil
}

func (r *Runner) executeOne(task Task, path string) (bool, error) {
	destPath, err := r.destinationFor(task, path)
	if err != nil {
		return false, err
	}

	switch task.Type {
	case "rename":
		if destPath == path {
			fmt.Printf("✓ %s (already correct)\n", filepath.Base(path))
			return true, nil
		}
		return r.transfer(path, destPath, true)
	case "move":
		return r.transfer(path, destPath, true)
	case "copy":
		return r.transfer(path, destPath, false)
	default:
		return false, fmt.Errorf("unknown task type %q", task.Type)
	}
}

// destinationFor computes the target path for one file. Cover images keep
// their original filename so they stay recognizable next to the book.
func (r *Runner) destinationFor(task Task, path string) (string, error) {
	meta := metadataFor(path, r.Reader)

	var filename string
	if isCoverImage(path) {
		filename = filepath.Base(path)
	} else {
		pattern := task.NamingPattern
		if pattern == "" {
			pattern = "{filename}.{ext}"
		}
		filename = expandPattern(pattern, meta)
		if filename == "" {
			return "", fmt.Errorf("naming pattern %q expanded to nothing for %s", pattern, path)
		}
	}

	if task.Type == "rename" {
		return filepath.Join(filepath.Dir(path), filename), nil
	}
	destDir := expandHome(expandPattern(task.Destination, meta))
	if destDir == "" {
		return "", fmt.Errorf("destination pattern %q expanded to nothing", task.Destination)
	}
	return filepath.Join(destDir, filename), nil
}

// transfer moves or copies src to dst, handling existing destinations:
// identical files are skipped (and the source removed when moving), anything
// else goes through the overwrite prompt.
func (r *Runner) transfer(src, dst string, move bool) (bool, error) {
	display := fmt.Sprintf("%s → %s", filepath.Base(src), filepath.Base(dst))

	if r.DryRun {
		if _, err := os.Stat(dst); err == nil {
			if filesIdentical(src, dst) {
				fmt.Printf("✓ %s (identical)\n", display)
			} else {
				fmt.Printf("  %s (exists)\n", display)
			}
		} else {
			fmt.Printf("  %s\n", display)
		}
		return true, nil
	}

	if _, err := os.Stat(dst); err == nil {
		if filesIdentical(src, dst) {
			if move {
				if err := os.Remove(src); err != nil {
					return false, fmt.Errorf("error removing source: %w", err)
				}
				fmt.Printf("✓ %s (identical, source removed)\n", display)
			} else {
				fmt.Printf("✓ %s (identical)\n", display)
			}
			return true, nil
		}
		switch r.askOverwrite(src, dst) {
		case "no":
			fmt.Printf("⊘ %s (skipped)\n", filepath.Base(src))
			return false, nil
		case "quit":
			return false, errCancelled
		}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, fmt.Errorf("error creating destination directory: %w", err)
	}

	if move {
		if err := moveFile(src, dst); err != nil {
			return false, err
		}
	} else {
		if err := fileops.CopyFile(src, dst); err != nil {
			return false, err
		}
	}
	fmt.Printf("✓ %s\n", display)
	return true, nil
}

func (r *Runner) askOverwrite(src, dst string) string {
	if r.overwriteAll {
		return "yes"
	}
	choice := r.Prompt(src, dst)
	if choice == "all" {
		r.overwriteAll = true
		return "yes"
	}
	return choice
}

func (r *Runner) stdinPrompt(src, dst string) string {
	fmt.Printf("Destination exists: %s\nOverwrite? [y]es/[n]o/[a]ll/[q]uit: ", dst)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "quit"
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return "yes"
	case "a", "all":
		return "all"
	case "q", "quit":
		return "quit"
	default:
		return "no"
	}
}

// moveFile renames, falling back to copy+remove across filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := fileops.CopyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func filesIdentical(a, b string) bool {
	same, err := fileops.FilesIdentical(a, b)
	return err == nil && same
}

func isCoverImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return false
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.Contains(strings.ToLower(stem), "cover")
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
