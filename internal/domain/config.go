package domain

// Config represents the agegroup configuration loaded from agegroup.yaml.
type Config struct {
	Masking  MaskingConfig
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type MaskingConfig struct {
	Enabled bool
}

type DefaultsConfig struct {
	Dataset string
	Format  string
	Workers int
}

type PathsConfig struct {
	DatasetsDir string
	ReportsDir  string
}

// DefaultConfig provides sane defaults if agegroup.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Masking: MaskingConfig{Enabled: false},
		Defaults: DefaultsConfig{
			Dataset: "customers",
			Format:  "pretty",
			Workers: 4,
		},
		Paths: PathsConfig{
			DatasetsDir: "datasets",
			ReportsDir:  "reports",
		},
	}
}
