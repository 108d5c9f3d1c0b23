/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: result_writer.go
Description: Utility for writing run summaries to the output directory.
Handles timestamped, versioned file naming. Ensures directories exist and
writes JSON files for easy analysis.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteRunSummary writes a run summary to the output directory with
// timestamp and version
func WriteRunSummary(outputDir string, version string, result interface{}) (string, error) {
	// Ensure runs subdirectory exists
	runsDir := filepath.Join(outputDir, "runs")
	if err := os.MkdirAll(runsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create runs directory: %w", err)
	}

	// Generate filename: 2024-06-11_01-30-00_run_v1.0.0.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_run_v%s.json", timestamp, version)
	filePath := filepath.Join(runsDir, filename)

	// Marshal result to JSON
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	// Write to file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write summary file: %w", err)
	}

	return filePath, nil
}
