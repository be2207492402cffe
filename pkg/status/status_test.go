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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()

	dir := t.TempDir()
	logger := zerolog.Nop()
	return New(dir, &logger), dir
}

func TestManager_ReadFile(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, dir string)
		path        string
		want        string
		wantErr     bool
		errContains string
		errIs       error
	}{
		{
			name: "reads_existing_file",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "component.jsx"), []byte(`<div className="subject-code">`), 0644))
			},
			path: "component.jsx",
			want: `<div className="subject-code">`,
		},
		{
			name:        "missing_file",
			path:        "missing.jsx",
			wantErr:     true,
			errContains: "reading file",
		},
		{
			name: "invalid_utf8",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "binary.jsx"), []byte{0xff, 0xfe, 0x00, 0x80}, 0644))
			},
			path:    "binary.jsx",
			wantErr: true,
			errIs:   ErrInvalidEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, dir := newTestManager(t)
			if tt.setup != nil {
				tt.setup(t, dir)
			}

			content, err := mgr.ReadFile(context.Background(), tt.path)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))
		})
	}
}

func TestManager_WriteFileAtomic(t *testing.T) {
	mgr, dir := newTestManager(t)
	ctx := context.Background()

	content := []byte(`<div className="viewer-timetable-grid">`)
	require.NoError(t, mgr.WriteFileAtomic(ctx, "component.jsx", content))

	// Round-trip fidelity: reading back yields exactly what was written.
	got, err := mgr.ReadFile(ctx, "component.jsx")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// No temp file left behind.
	_, err = os.Stat(filepath.Join(dir, "component.jsx.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestManager_WriteFileAtomic_Overwrites(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, mgr.WriteFileAtomic(ctx, "component.jsx", []byte("old content")))
	require.NoError(t, mgr.WriteFileAtomic(ctx, "component.jsx", []byte("new")))

	got, err := mgr.ReadFile(ctx, "component.jsx")
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestManager_FileExists(t *testing.T) {
	mgr, dir := newTestManager(t)
	ctx := context.Background()

	exists, err := mgr.FileExists(ctx, "component.jsx")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "component.jsx"), []byte("x"), 0644))

	exists, err = mgr.FileExists(ctx, "component.jsx")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, StatusUnchanged, Compare([]byte("same"), []byte("same")))
	assert.Equal(t, StatusModified, Compare([]byte("old"), []byte("new")))
}

func TestFileStatus_String(t *testing.T) {
	assert.Equal(t, "modified", StatusModified.String())
	assert.Equal(t, "unchanged", StatusUnchanged.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
}
