// file: internal/scanner/scanner.go
// version: 2.0.0
// guid: 3c4d5e6f-7a8b-9c0d-1e2f-3a4b5c6d7e8f

// Package scanner expands input paths into the list of supported audio
// files beneath them.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jeffjose/audtag/internal/config"
)

// Expand resolves paths (files or directories) to supported audio files.
// Directories are walked recursively and scanned in parallel; files inside
// them with unsupported extensions are filtered silently. A directly named
// file with an unsupported extension gets a warning instead, since the user
// asked for it explicitly. The result is sorted for deterministic grouping.
func Expand(paths []string, workers int) ([]string, error) {
	if workers < 1 {
		workers = 1
	}

	var files []string
	var dirs []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", p, err)
		}
		if info.IsDir() {
			subDirs, err := collectDirs(p)
			if err != nil {
				return nil, err
			}
			dirs = append(dirs, subDirs...)
			continue
		}
		if !config.AppConfig.IsSupportedExtension(filepath.Ext(p)) {
			fmt.Printf("Skipping unsupported file: %s\n", p)
			continue
		}
		files = append(files, p)
	}

	found, err := scanDirs(dirs, workers)
	if err != nil {
		return nil, err
	}
	files = append(files, found...)

	sort.Strings(files)
	return files, nil
}

// collectDirs lists dir and every directory beneath it.
func collectDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}
	return dirs, nil
}

// scanDirs reads directories in parallel behind a bounded semaphore and
// merges the supported files found in each.
func scanDirs(dirs []string, workers int) ([]string, error) {
	var mu sync.Mutex
	var files []string
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for _, dir := range dirs {
		wg.Add(1)
		go func(scanDir string) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			entries, err := os.ReadDir(scanDir)
			if err != nil {
				return
			}

			var local []string
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				ext := strings.ToLower(filepath.Ext(entry.Name()))
				if config.AppConfig.IsSupportedExtension(ext) {
					local = append(local, filepath.Join(scanDir, entry.Name()))
				}
			}

			if len(local) > 0 {
				mu.Lock()
				files = append(files, local...)
				mu.Unlock()
			}
		}(dir)
	}

	wg.Wait()
	return files, nil
}
