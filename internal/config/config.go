// Package config handles uimtool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	IO      IOConfig      `yaml:"io"`
	Logging LoggingConfig `yaml:"logging"`
}

// IOConfig holds batch import/export defaults.
type IOConfig struct {
	InvertY       bool   `yaml:"invert_y"`       // Flip Y between screen and scene orientation
	BuildFlipbook bool   `yaml:"build_flipbook"` // Keyframe imported batches as a visibility flipbook
	SelectedOnly  bool   `yaml:"selected_only"`  // Export only selected objects
	FrameSuffix   string `yaml:"frame_suffix"`   // Suffix preceding embedded frame numbers
	OutputDir     string `yaml:"output_dir"`     // Default export directory
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		IO: IOConfig{
			InvertY:       true,
			BuildFlipbook: false,
			SelectedOnly:  true,
			FrameSuffix:   ".json",
			OutputDir:     ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Flags holds CLI values that override file settings.
type Flags struct {
	Debug     bool
	OutputDir string
}

// Resolve applies CLI flag overrides; flags take priority over the file.
func (c *Config) Resolve(f Flags) {
	if f.Debug {
		c.Logging.Level = "debug"
	}
	if f.OutputDir != "" {
		c.IO.OutputDir = f.OutputDir
	}
}
