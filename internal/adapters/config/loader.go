// Package config loads operator defaults from an optional YAML file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ecswatch/internal/core/domain"
	"go.trai.ch/ecswatch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// fileName is the config file looked up on the search path.
const fileName = "ecswatch.yaml"

// schema is the on-disk shape of the config file.
type schema struct {
	Cluster  string `yaml:"cluster"`
	Region   string `yaml:"region"`
	Profile  string `yaml:"profile"`
	Interval int    `yaml:"interval"`
	Detail   bool   `yaml:"detail"`
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader over the filesystem.
type Loader struct {
	paths []string
}

// NewLoader creates a Loader with the default search path: the working
// directory first, then the user config directory.
func NewLoader() *Loader {
	return &Loader{paths: defaultSearchPaths()}
}

// NewLoaderWithPaths creates a Loader with an explicit search path.
// Used by tests.
func NewLoaderWithPaths(paths ...string) *Loader {
	return &Loader{paths: paths}
}

// Load returns the settings from the first config file found on the search
// path. No file anywhere is not an error: empty settings are returned and
// flags or environment variables must fill in the rest.
func (l *Loader) Load() (domain.Settings, error) {
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return domain.Settings{}, zerr.With(
				errors.Join(domain.ErrConfigReadFailed, err), "path", path)
		}

		var s schema
		if err := yaml.Unmarshal(data, &s); err != nil {
			return domain.Settings{}, zerr.With(
				errors.Join(domain.ErrConfigParseFailed, err), "path", path)
		}

		return domain.Settings{
			Cluster:         s.Cluster,
			Region:          s.Region,
			Profile:         s.Profile,
			IntervalSeconds: s.Interval,
			Detail:          s.Detail,
		}, nil
	}

	return domain.Settings{}, nil
}

// defaultSearchPaths is cwd first so a project-local file wins over the
// user-wide one.
func defaultSearchPaths() []string {
	paths := []string{fileName}

	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "ecswatch", fileName))
	}

	return paths
}
