/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: result_writer_test.go
Description: Tests for the run summary writer. Covers directory creation,
versioned file naming, and JSON round-tripping of the summary payload.
*/

package utils_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/slg-learner/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteRunSummary tests summary file creation under runs/
func TestWriteRunSummary(t *testing.T) {
	dir := t.TempDir()
	summary := map[string]interface{}{
		"run_id":  "abc-123",
		"classes": 4,
	}

	path, err := utils.WriteRunSummary(dir, "1.0.0", summary)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "runs"), filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_run_v1.0.0.json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "abc-123", decoded["run_id"])
	assert.Equal(t, float64(4), decoded["classes"])
}

// TestWriteRunSummaryUnwritableDir tests the directory creation error
func TestWriteRunSummaryUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not_a_dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := utils.WriteRunSummary(file, "1.0.0", map[string]string{})
	assert.Error(t, err)
}
