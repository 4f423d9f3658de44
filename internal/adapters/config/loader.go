// Package config resolves the deplist run configuration.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader from an optional YAML file, an optional
// .env file and the process environment.
type Loader struct {
	Logger ports.Logger
	// LookupEnv reads an environment variable. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, LookupEnv: os.LookupEnv}
}

// Load resolves the configuration for cwd.
//
// Precedence for the source root is the override, then the environment
// (after .env has been applied), and it is an error if neither yields a value.
func (l *Loader) Load(cwd string, overrides domain.ConfigOverrides) (*domain.Config, error) {
	l.loadDotEnv(cwd)

	file, err := l.readFile(cwd, overrides.ConfigPath)
	if err != nil {
		return nil, err
	}

	sourceEnv := file.SourceEnv
	if sourceEnv == "" {
		sourceEnv = domain.DefaultSourceEnv
	}

	sourceRoot := overrides.SourceRoot
	if sourceRoot == "" {
		sourceRoot, err = l.sourceRootFromEnv(sourceEnv)
		if err != nil {
			return nil, err
		}
	}

	projects := file.Projects
	if len(projects) == 0 {
		projects = []string{domain.DefaultProject}
	}

	return &domain.Config{
		SourceRoot:  sourceRoot,
		Projects:    projects,
		DependsFile: file.DependsFile,
		PageFile:    file.PageFile,
	}, nil
}

// loadDotEnv applies cwd/.env without overriding variables that are already set.
func (l *Loader) loadDotEnv(cwd string) {
	path := filepath.Join(cwd, domain.EnvFileName)
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		l.Logger.Warn("ignoring " + path + ": " + err.Error())
	}
}

func (l *Loader) readFile(cwd, explicit string) (File, error) {
	var file File

	path := explicit
	if path == "" {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	// #nosec G304 -- path is the user-selected config file
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			if explicit == "" {
				return file, nil
			}
			return file, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return file, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	for _, project := range file.Projects {
		if err := domain.ValidateProject(project); err != nil {
			return file, zerr.With(err, "path", path)
		}
	}

	return file, nil
}

func (l *Loader) sourceRootFromEnv(name string) (string, error) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	value, ok := lookup(name)
	if !ok || value == "" {
		return "", zerr.With(domain.ErrEnvironmentMissing, "variable", name)
	}
	return value, nil
}
