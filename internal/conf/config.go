// config.go: settings struct and functions to load and save the settings for
// the tnmrecode application.
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oncotools/tnmrecode/internal/errors"
)

// ColumnSettings names the required input columns. Header matching is exact
// and case-sensitive.
type ColumnSettings struct {
	ID            string // record identifier column
	ClinicalT     string
	ClinicalN     string
	PathT         string
	PathN         string
	Metastasis    string
	PositiveNodes string
}

// InputSettings contains settings for the batch input source.
type InputSettings struct {
	Path    string         // path to the input CSV, set per invocation
	Columns ColumnSettings // required column headers
}

// OutputSettings contains settings for batch result output.
type OutputSettings struct {
	Format string // "csv" or "table"
	Path   string // output file path, stdout when empty
}

// ServerSettings contains settings for the review/upload HTTP server.
type ServerSettings struct {
	Host    string
	Port    int
	Metrics bool // expose the prometheus endpoint
}

// Settings is the root configuration for the application.
type Settings struct {
	Debug  bool
	Input  InputSettings
	Output OutputSettings
	Server ServerSettings
}

var (
	settingsInstance *Settings
	once             sync.Once
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file, applying defaults for anything unset,
// and returns the populated settings.
func Load() (*Settings, error) {
	setDefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	configPaths := configSearchPaths()
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.New(err).
				Component("conf").
				Category(errors.CategoryConfiguration).
				Build()
		}
		// No config file anywhere in the search path, create one from the
		// defaults so the user has something to edit.
		if err := writeDefaultConfig(configPaths[0]); err != nil {
			return nil, err
		}
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, errors.New(err).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build()
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}

	settingsMutex.Lock()
	settingsInstance = settings
	settingsMutex.Unlock()
	return settings, nil
}

// Setting returns the current settings instance, loading it on first use.
func Setting() *Settings {
	once.Do(func() {
		settingsMutex.RLock()
		loaded := settingsInstance != nil
		settingsMutex.RUnlock()
		if !loaded {
			if _, err := Load(); err != nil {
				panic(fmt.Sprintf("error loading settings: %v", err))
			}
		}
	})
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// configSearchPaths lists the directories searched for the config file, in
// priority order.
func configSearchPaths() []string {
	paths := []string{}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "tnmrecode"))
	}
	paths = append(paths, ".")
	return paths
}

// writeDefaultConfig marshals the default settings to a fresh config file.
func writeDefaultConfig(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.New(err).
			Component("conf").
			Category(errors.CategoryFileIO).
			Context("dir", dir).
			Build()
	}

	defaults := &Settings{}
	if err := viper.Unmarshal(defaults); err != nil {
		return errors.New(err).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build()
	}

	data, err := yaml.Marshal(defaults)
	if err != nil {
		return errors.New(err).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build()
	}

	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.New(err).
			Component("conf").
			Category(errors.CategoryFileIO).
			Context("path", configPath).
			Build()
	}
	return nil
}
