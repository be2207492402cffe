// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🚫 ErrInvalidEncoding is returned when a target file is not valid UTF-8
var ErrInvalidEncoding = errors.New("file content is not valid UTF-8")

// 📊 FileStatus represents the current state of a target file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // Content changed by the rewrite
	StatusUnchanged            // Content identical after the rewrite
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// 💾 FileManager handles the file system operations of a rewrite
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
}

// 🔧 Manager implements FileManager rooted at a base directory
type Manager struct {
	baseDir string          // Base directory for all operations
	logger  *zerolog.Logger // Logger for file system events
}

// 🏭 New creates a new status manager
func New(baseDir string, logger *zerolog.Logger) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
		logger:  logger,
	}
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, path)
}

// ReadFile reads the whole target file and enforces strict UTF-8 content.
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, errors.Errorf("reading %s: %w", path, ErrInvalidEncoding)
	}

	m.logger.Debug().Str("file", path).Int("bytes", len(content)).Msg("read file")
	return content, nil
}

// WriteFileAtomic writes content through a temp file and renames it into
// place, so a failure mid-write never leaves a truncated target behind.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)
	tempPath := absPath + ".tmp"

	// Write to temp file
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	m.logger.Debug().Str("file", path).Int("bytes", len(content)).Msg("wrote file")
	return nil
}

// FileExists checks whether the target file exists.
func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file: %w", err)
}

// 🔍 Compare reports the status a rewrite produced for a file
func Compare(original, modified []byte) FileStatus {
	if bytes.Equal(original, modified) {
		return StatusUnchanged
	}
	return StatusModified
}
