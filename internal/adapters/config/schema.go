package config

// File represents the structure of the deplist.yaml configuration file.
// Every key is optional.
type File struct {
	Version     string   `yaml:"version"`
	SourceEnv   string   `yaml:"sourceEnv"`
	Projects    []string `yaml:"projects"`
	DependsFile string   `yaml:"dependsFile"`
	PageFile    string   `yaml:"pageFile"`
}
