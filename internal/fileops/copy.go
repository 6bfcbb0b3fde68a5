// file: internal/fileops/copy.go
// version: 1.1.0
// guid: 8f7e6d5c-4b3a-2918-7f6e-5d4c3b2a1908

package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile copies src to dst, creating parent directories, syncing the data
// to disk, and carrying over the source permissions.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("error opening source file: %w", err)
	}
	defer sourceFile.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("error creating destination directory: %w", err)
	}

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("error creating destination file: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("error copying file: %w", err)
	}
	if err := destFile.Sync(); err != nil {
		return fmt.Errorf("error syncing destination file: %w", err)
	}

	sourceInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("error reading source permissions: %w", err)
	}
	return os.Chmod(dst, sourceInfo.Mode())
}

// FilesIdentical reports whether two files have the same content, comparing
// sizes before hashing.
func FilesIdentical(a, b string) (bool, error) {
	sizeA, err := GetFileSize(a)
	if err != nil {
		return false, err
	}
	sizeB, err := GetFileSize(b)
	if err != nil {
		return false, err
	}
	if sizeA != sizeB {
		return false, nil
	}

	hashA, err := ComputeFileHash(a)
	if err != nil {
		return false, err
	}
	hashB, err := ComputeFileHash(b)
	if err != nil {
		return false, err
	}
	return hashA == hashB, nil
}
