package config

// Libscanfile represents the structure of the libscan.yaml configuration file.
type Libscanfile struct {
	Version         string        `yaml:"version" validate:"omitempty,eq=1"`
	AppsDir         string        `yaml:"appsDir"`
	OutputDir       string        `yaml:"outputDir"`
	MaxDepth        int           `yaml:"maxDepth" validate:"gte=0"`
	OnDepthExceeded string        `yaml:"onDepthExceeded"`
	StatsFile       string        `yaml:"statsFile"`
	NativePatterns  []string      `yaml:"nativePatterns" validate:"dive,required,regexp"`
	Categories      []CategoryDTO `yaml:"categories" validate:"required,min=1,unique=Name,dive"`
}

// CategoryDTO represents one category of applications in the configuration.
type CategoryDTO struct {
	Name    string            `yaml:"name" validate:"required,excludesall=/"`
	Apps    string            `yaml:"apps"`
	Imports []string          `yaml:"imports" validate:"dive,required"`
	Unused  []string          `yaml:"unused" validate:"dive,required"`
	Libs    map[string]string `yaml:"libs" validate:"dive,required"`
}
