package utils

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

type FileStorage interface {
	UploadFile(file multipart.File, fileName string) (string, error)
	DeleteFile(fileName string) error
	FileExists(fileName string) (bool, error)
}

type LocalFileStorage struct {
	uploadPath string
}

func NewLocalFileStorage(uploadPath string) *LocalFileStorage {
	return &LocalFileStorage{uploadPath: uploadPath}
}

// UploadFile stores an uploaded multipart file under the given name.
func (s *LocalFileStorage) UploadFile(file multipart.File, fileName string) (string, error) {
	filePath := filepath.Join(s.uploadPath, fileName)

	if _, err := os.Stat(s.uploadPath); os.IsNotExist(err) {
		if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
			return "", fmt.Errorf("failed to create upload directory: %w", err)
		}
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		// Clean up on error
		os.Remove(filePath)
		return "", fmt.Errorf("failed to copy file content: %w", err)
	}

	return filePath, nil
}

// DeleteFile removes a stored file
func (s *LocalFileStorage) DeleteFile(fileName string) error {
	fullPath := filepath.Join(s.uploadPath, fileName)

	// Check if file exists first
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil // File doesn't exist, nothing to delete
	}

	err := os.Remove(fullPath)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// FileExists checks if a file exists in storage
func (s *LocalFileStorage) FileExists(fileName string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.uploadPath, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check file existence: %w", err)
	}

	return true, nil
}

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFileName strips any path component from a client-supplied
// filename and replaces characters that are unsafe on disk.
func SanitizeFileName(name string) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		base = "file"
	}
	return unsafeFileNameChars.ReplaceAllString(base, "_")
}

// UniqueFileName prefixes a sanitized original name with a timestamp
// and a random disambiguator, so two uploads of the same file never
// collide on disk.
func UniqueFileName(originalName string) string {
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), SanitizeFileName(originalName))
}
