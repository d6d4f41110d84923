package config

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".quickref.yml"

// StyleAuto picks a dark or light terminal style from the background colour.
const StyleAuto = "auto"

// TerminalStyles lists the accepted terminal.style values.
var TerminalStyles = []string{StyleAuto, "dark", "light", "notty", "ascii", "dracula", "pink"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		OutputDir:      "site",
		HighlightStyle: "github",
		Terminal: TerminalConfig{
			Style:    StyleAuto,
			WordWrap: 100,
		},
	}
}
