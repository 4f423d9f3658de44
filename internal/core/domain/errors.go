package domain

import "go.trai.ch/zerr"

var (
	// ErrEnvironmentMissing is returned when the source root environment variable is unset or empty.
	ErrEnvironmentMissing = zerr.New("source root environment variable is not set")

	// ErrDependencyFileNotFound is returned when a project's dependency file does not exist.
	ErrDependencyFileNotFound = zerr.New("dependency file not found")

	// ErrMalformedEntry is returned when a product-list line has fewer than two tokens.
	ErrMalformedEntry = zerr.New("malformed product list entry")

	// ErrPageOutdated is returned by the check when a page is missing or differs from its dependency file.
	ErrPageOutdated = zerr.New("dependency page is out of date")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidProjectName is returned when a project name is empty or is not a single path element.
	ErrInvalidProjectName = zerr.New("project name must be a single directory name")

	// ErrNoProjects is returned when neither the command line nor the config names a project.
	ErrNoProjects = zerr.New("no projects specified")
)
