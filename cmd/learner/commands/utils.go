/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the SLG Learner commands. Provides common
configuration loading, logging setup, and utility functions used across all
command implementations.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kleascm/slg-learner/pkg/inference"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/kleascm/slg-learner/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("SLG")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging() error {
	logLevel := viper.GetString("log_level")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logrus.SetLevel(level)
	if viper.GetBool("json_logs") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return nil
}

// SetupLearnerLogger builds the full file-backed logger from the logging
// flags (directory, format, rotation). The caller owns Close.
func SetupLearnerLogger() (*logging.Logger, error) {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Colors:    true,
		Compress:  viper.GetBool("log_compress"),
	}
	if viper.GetBool("json_logs") {
		config.Format = logging.LogFormatJSON
	}
	if err := config.Validate(); err != nil {
		return nil, interfaces.WrapConfiguration(err.Error())
	}
	return logging.NewLogger(config)
}

// createLearnerConfig assembles the typed configuration from viper state
func createLearnerConfig() *interfaces.LearnerConfig {
	return &interfaces.LearnerConfig{
		InputPath:    viper.GetString("input"),
		OutputDir:    viper.GetString("output"),
		Granularity:  interfaces.Granularity(viper.GetString("granularity")),
		Segmentation: interfaces.Segmentation(viper.GetString("segment")),
		Lengths: interfaces.LengthPolicy{
			MinLength: viper.GetInt("min_length"),
			MaxLength: viper.GetInt("max_length"),
		},
		Visualize: viper.GetBool("visualize"),
		Lite:      viper.GetBool("lite"),
		PrintOnly: viper.GetBool("print"),
	}
}

// resolveAutoFormat replaces granularity "auto" with an inferred format.
// A sample of the corpus is read and handed to the inference engine; the
// inferred segmentation is only adopted when the user left segment at its
// default, so an explicit --segment always wins.
func resolveAutoFormat(config *interfaces.LearnerConfig, logger *logrus.Logger) error {
	if config.Granularity != interfaces.GranularityAuto {
		return nil
	}

	sample, err := readCorpusSample(config.InputPath)
	if err != nil {
		return err
	}

	format := inference.NewTextInferenceEngine().InferFormat(sample)
	config.Granularity = interfaces.Granularity(format.Granularity)
	if !viper.IsSet("segment") {
		config.Segmentation = interfaces.Segmentation(format.Segmentation)
	}

	logger.WithFields(logrus.Fields{
		"granularity":  format.Granularity,
		"segmentation": format.Segmentation,
		"confidence":   fmt.Sprintf("%.2f", format.Confidence),
	}).Info("Corpus format inferred")
	return nil
}

// corpus sample size for format inference
const sampleBytes = 8192

// readCorpusSample reads up to sampleBytes from the corpus path. For a
// directory the lexicographically first regular file is sampled, matching
// the order the loader visits files in.
func readCorpusSample(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", interfaces.WrapInput(fmt.Sprintf("cannot stat corpus path %s: %v", path, err))
	}

	target := path
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return "", interfaces.WrapInput(fmt.Sprintf("cannot read corpus directory %s: %v", path, err))
		}
		var names []string
		for _, entry := range entries {
			if !entry.IsDir() {
				names = append(names, entry.Name())
			}
		}
		if len(names) == 0 {
			return "", interfaces.WrapInput(fmt.Sprintf("corpus directory %s contains no files", path))
		}
		sort.Strings(names)
		target = filepath.Join(path, names[0])
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return "", interfaces.WrapInput(fmt.Sprintf("cannot read corpus sample from %s: %v", target, err))
	}
	if len(data) > sampleBytes {
		data = data[:sampleBytes]
	}
	return string(data), nil
}
