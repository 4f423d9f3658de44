package domain

// Config is the resolved configuration for one invocation.
type Config struct {
	// SourceRoot is the directory under which every project lives.
	SourceRoot string
	// Projects are the projects processed when the command names none.
	Projects []string
	// DependsFile is the dependency file path relative to a project directory.
	DependsFile string
	// PageFile is the page path relative to a project directory.
	PageFile string
}

// Layout returns the Layout of project under this configuration.
func (c *Config) Layout(project string) Layout {
	l := NewLayout(c.SourceRoot, project)
	if c.DependsFile != "" {
		l.DependsFile = c.DependsFile
	}
	if c.PageFile != "" {
		l.PageFile = c.PageFile
	}
	return l
}

// ConfigOverrides are values supplied on the command line that take precedence
// over the config file and the environment.
type ConfigOverrides struct {
	// ConfigPath is an explicit config file. Empty means the default file, if present.
	ConfigPath string
	// SourceRoot replaces the value of the source root environment variable.
	SourceRoot string
}
