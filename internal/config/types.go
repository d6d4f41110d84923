package config

// Config is the top-level quickref configuration, corresponding to .quickref.yml.
type Config struct {
	Port           int            `yaml:"port" koanf:"port"`
	ContentFile    string         `yaml:"content_file" koanf:"content_file"`
	OutputDir      string         `yaml:"output_dir" koanf:"output_dir"`
	HighlightStyle string         `yaml:"highlight_style" koanf:"highlight_style"`
	Terminal       TerminalConfig `yaml:"terminal" koanf:"terminal"`
	CORS           CORSConfig     `yaml:"cors" koanf:"cors"`
}

// TerminalConfig controls the print and tui commands.
type TerminalConfig struct {
	Style    string `yaml:"style" koanf:"style"`
	WordWrap int    `yaml:"word_wrap" koanf:"word_wrap"`
}

// CORSConfig holds HTTP cross-origin settings.
type CORSConfig struct {
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}
