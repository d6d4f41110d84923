package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to quickref! Let's configure your cheatsheet.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port for `quickref serve`",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 2. Terminal style.
	stylePrompt := promptui.Select{
		Label: "Terminal style for print and tui",
		Items: TerminalStyles,
	}
	_, style, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("terminal style: %w", err)
	}
	cfg.Terminal.Style = style

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for `quickref site`",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	// 4. Optional content file.
	contentPrompt := promptui.Prompt{
		Label:   "Content file (leave blank for the built-in cheatsheet)",
		Default: "",
	}
	contentFile, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}
	cfg.ContentFile = strings.TrimSpace(contentFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(input string) error {
	port, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	return checkPort(port)
}
