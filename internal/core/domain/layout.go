package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

const (
	// DefaultProject is the project whose dependency page is generated when none is named.
	DefaultProject = "fhiclcpp"

	// DefaultSourceEnv is the environment variable naming the source root.
	DefaultSourceEnv = "MRB_SOURCE"

	// DefaultDependsFile is the dependency-declaration file, relative to the project directory.
	DefaultDependsFile = "ups/product_deps"

	// DefaultPageFile is the rendered page, relative to the project directory.
	DefaultPageFile = "docs/depends.rst"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "deplist.yaml"

	// EnvFileName is the name of the optional dotenv file loaded before the environment is read.
	EnvFileName = ".env"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout locates the dependency file and the rendered page of one project.
type Layout struct {
	SourceRoot  string
	Project     string
	DependsFile string
	PageFile    string
}

// NewLayout returns a Layout for project under sourceRoot using the default relative paths.
func NewLayout(sourceRoot, project string) Layout {
	return Layout{
		SourceRoot:  sourceRoot,
		Project:     project,
		DependsFile: DefaultDependsFile,
		PageFile:    DefaultPageFile,
	}
}

// DependsPath returns <source root>/<project>/<depends file>.
func (l Layout) DependsPath() string {
	return filepath.Join(l.SourceRoot, l.Project, filepath.FromSlash(l.DependsFile))
}

// PagePath returns <source root>/<project>/<page file>.
func (l Layout) PagePath() string {
	return filepath.Join(l.SourceRoot, l.Project, filepath.FromSlash(l.PageFile))
}

// ValidateProject checks that project names a single directory under the source root.
func ValidateProject(project string) error {
	if project == "" || project == "." || project == ".." || filepath.Base(project) != project {
		return zerr.With(ErrInvalidProjectName, "project", project)
	}
	return nil
}
