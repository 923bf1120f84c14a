package config

// ColorScheme holds the hex colors used by CLI output styling
type ColorScheme struct {
	Title   string `yaml:"title"`
	Subtle  string `yaml:"subtle"`
	Normal  string `yaml:"normal"`
	Accent  string `yaml:"accent"`
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	ErrorFg string `yaml:"error_fg"`
}

// DefaultColorScheme returns the built-in color palette
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Title:   "#F5F5F5",
		Subtle:  "#6C6C6C",
		Normal:  "#D0D0D0",
		Accent:  "#7AA2F7",
		Success: "#9ECE6A",
		Warning: "#E0AF68",
		ErrorFg: "#F7768E",
	}
}

// ApplyDefaults fills in any unset colors with the default palette
func (c *ColorScheme) ApplyDefaults() {
	defaults := DefaultColorScheme()
	if c.Title == "" {
		c.Title = defaults.Title
	}
	if c.Subtle == "" {
		c.Subtle = defaults.Subtle
	}
	if c.Normal == "" {
		c.Normal = defaults.Normal
	}
	if c.Accent == "" {
		c.Accent = defaults.Accent
	}
	if c.Success == "" {
		c.Success = defaults.Success
	}
	if c.Warning == "" {
		c.Warning = defaults.Warning
	}
	if c.ErrorFg == "" {
		c.ErrorFg = defaults.ErrorFg
	}
}
